/*
 * Copyright 2022 ByteDance Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ssa

// Builder constructs SSA functions block by block. Values are numbered from 1
// in allocation order and blocks from 0 in creation order.
type Builder struct {
    fn *Func
    nv Value
    np int
}

func CreateBuilder(name string) *Builder {
    return &Builder {
        fn: &Func{Name: name},
    }
}

// NewValue allocates a fresh SSA value without defining it, for forward
// references such as loop-carried phi operands.
func (self *Builder) NewValue() Value {
    self.nv++
    return self.nv
}

func (self *Builder) Block() *BasicBlock {
    bb := &BasicBlock{Id: len(self.fn.Blocks)}
    self.fn.Blocks = append(self.fn.Blocks, bb)
    return bb
}

// Emit appends ins to bb, wiring predecessor lists when ins is a terminator.
func (self *Builder) Emit(bb *BasicBlock, ins IrNode) {
    if t, ok := ins.(IrTerminator); ok {
        for _, s := range t.Successors() {
            s.addPred(bb)
        }
    }
    bb.Ins = append(bb.Ins, ins)
}

func (self *Builder) Param(bb *BasicBlock) Value {
    r := self.NewValue()
    self.Emit(bb, &IrParam{R: r, Id: self.np})
    self.np++
    return r
}

func (self *Builder) Set(bb *BasicBlock, v Operand) Value {
    r := self.NewValue()
    self.Emit(bb, &IrSet{R: r, V: v})
    return r
}

// Phi inserts an empty phi node after the existing phis of bb. Incoming
// operands are filled in by the caller once the predecessors are known.
func (self *Builder) Phi(bb *BasicBlock) *IrPhi {
    i := 0
    p := &IrPhi{R: self.NewValue(), V: make(map[*BasicBlock]Operand)}

    /* find the end of the phi section */
    for i < len(bb.Ins) {
        if _, ok := bb.Ins[i].(*IrPhi); !ok {
            break
        }
        i++
    }

    /* insert the node */
    bb.Ins = append(bb.Ins, nil)
    copy(bb.Ins[i + 1:], bb.Ins[i:])
    bb.Ins[i] = p
    return p
}

func (self *Builder) Call(bb *BasicBlock, fn string, args ...Operand) Value {
    r := self.NewValue()
    self.Emit(bb, &IrCall{R: r, Fn: &Callee{Name: fn}, In: args})
    return r
}

// CallVoid emits a call whose result, if any, is discarded.
func (self *Builder) CallVoid(bb *BasicBlock, fn string, args ...Operand) {
    self.Emit(bb, &IrCall{Fn: &Callee{Name: fn}, In: args})
}

func (self *Builder) Store(bb *BasicBlock, mem Operand, v Operand) {
    self.Emit(bb, &IrStore{Mem: mem, V: v})
}

func (self *Builder) Breakpoint(bb *BasicBlock) {
    self.Emit(bb, new(IrBreakpoint))
}

func (self *Builder) Return(bb *BasicBlock, r ...Operand) {
    self.Emit(bb, &IrReturn{R: r})
}

func (self *Builder) Jump(bb *BasicBlock, to *BasicBlock) {
    self.Emit(bb, &IrJump{To: to})
}

func (self *Builder) Branch(bb *BasicBlock, cond Operand, t *BasicBlock, f *BasicBlock) {
    self.Emit(bb, &IrBranch{Cond: cond, Then: t, Else: f})
}

func (self *Builder) Build() *Func {
    return self.fn
}
