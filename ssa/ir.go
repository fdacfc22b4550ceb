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

import (
    `fmt`
    `sort`
    `strings`
)

// Value names a single SSA definition site. The zero Value names nothing.
type Value uint32

const (
    NoValue Value = 0
)

func (self Value) String() string {
    if self == NoValue {
        return "_"
    } else {
        return fmt.Sprintf("%%v%d", uint32(self))
    }
}

// Operand is either a reference to an SSA value or an integer literal.
type Operand struct {
    V   Value
    Lit int64
}

// Ref returns an operand referencing v.
func Ref(v Value) Operand {
    return Operand{V: v}
}

// Lit returns a literal operand.
func Lit(v int64) Operand {
    return Operand{Lit: v}
}

// IsValue reports whether the operand refers to another SSA value rather than
// being a literal.
func (self Operand) IsValue() bool {
    return self.V != NoValue
}

func (self Operand) String() string {
    if self.IsValue() {
        return self.V.String()
    } else {
        return fmt.Sprintf("$%d", self.Lit)
    }
}

// Callee identifies the target of a call instruction.
type Callee struct {
    Name string
}

func (self *Callee) String() string {
    if self == nil {
        return "<nil>"
    } else {
        return self.Name
    }
}

type IrNode interface {
    fmt.Stringer
    irnode()
}

func (*IrReturn)     irnode() {}
func (*IrSet)        irnode() {}
func (*IrPhi)        irnode() {}
func (*IrCall)       irnode() {}
func (*IrParam)      irnode() {}
func (*IrBranch)     irnode() {}
func (*IrJump)       irnode() {}
func (*IrStore)      irnode() {}
func (*IrBreakpoint) irnode() {}

type IrUsages interface {
    IrNode
    Usages() []Operand
}

type IrDefinitions interface {
    IrNode
    Definition() Value
}

type IrTerminator interface {
    IrNode
    Successors() []*BasicBlock
    irterminator()
}

func (*IrReturn) irterminator() {}
func (*IrBranch) irterminator() {}
func (*IrJump)   irterminator() {}

type IrReturn struct {
    R []Operand
}

func (self *IrReturn) String() string {
    nb := len(self.R)
    ret := make([]string, 0, nb)

    /* dump operands */
    for _, r := range self.R {
        ret = append(ret, r.String())
    }

    /* join them together */
    return fmt.Sprintf(
        "ret {%s}",
        strings.Join(ret, ", "),
    )
}

func (self *IrReturn) Usages() []Operand {
    return self.R
}

func (self *IrReturn) Successors() []*BasicBlock {
    return nil
}

type IrSet struct {
    R Value
    V Operand
}

func (self *IrSet) String() string {
    return fmt.Sprintf("%s = %s", self.R, self.V)
}

func (self *IrSet) Usages() []Operand {
    return []Operand { self.V }
}

func (self *IrSet) Definition() Value {
    return self.R
}

type IrPhi struct {
    R Value
    V map[*BasicBlock]Operand
}

func (self *IrPhi) String() string {
    nb := len(self.V)
    ret := make([]string, 0, nb)
    phi := make([]struct{b int; v Operand}, 0, nb)

    /* add each path */
    for bb, v := range self.V {
        phi = append(phi, struct{b int; v Operand}{b: bb.Id, v: v})
    }

    /* sort by basic block ID */
    sort.Slice(phi, func(i int, j int) bool {
        return phi[i].b < phi[j].b
    })

    /* dump as string */
    for _, p := range phi {
        ret = append(ret, fmt.Sprintf("bb_%d: %s", p.b, p.v))
    }

    /* join them together */
    return fmt.Sprintf(
        "%s = φ(%s)",
        self.R,
        strings.Join(ret, ", "),
    )
}

// Usages enumerates the incoming operands in no particular order.
func (self *IrPhi) Usages() (r []Operand) {
    r = make([]Operand, 0, len(self.V))
    for _, v := range self.V { r = append(r, v) }
    return
}

func (self *IrPhi) Definition() Value {
    return self.R
}

type IrCall struct {
    R  Value
    Fn *Callee
    In []Operand
}

func (self *IrCall) String() string {
    in := make([]string, 0, len(self.In))

    /* dump args */
    for _, r := range self.In {
        in = append(in, r.String())
    }

    /* calls with their result discarded */
    if self.R == NoValue {
        return fmt.Sprintf("call %s(%s)", self.Fn, strings.Join(in, ", "))
    } else {
        return fmt.Sprintf("%s = call %s(%s)", self.R, self.Fn, strings.Join(in, ", "))
    }
}

func (self *IrCall) Usages() []Operand {
    return self.In
}

func (self *IrCall) Definition() Value {
    return self.R
}

type IrParam struct {
    R  Value
    Id int
}

func (self *IrParam) String() string {
    return fmt.Sprintf("%s = param(#%d)", self.R, self.Id)
}

func (self *IrParam) Definition() Value {
    return self.R
}

type IrBranch struct {
    Cond Operand
    Then *BasicBlock
    Else *BasicBlock
}

func (self *IrBranch) String() string {
    return fmt.Sprintf("br %s, bb_%d, bb_%d", self.Cond, self.Then.Id, self.Else.Id)
}

func (self *IrBranch) Usages() []Operand {
    return []Operand { self.Cond }
}

func (self *IrBranch) Successors() []*BasicBlock {
    return []*BasicBlock { self.Then, self.Else }
}

type IrJump struct {
    To *BasicBlock
}

func (self *IrJump) String() string {
    return fmt.Sprintf("goto bb_%d", self.To.Id)
}

func (self *IrJump) Successors() []*BasicBlock {
    return []*BasicBlock { self.To }
}

type IrStore struct {
    Mem Operand
    V   Operand
}

func (self *IrStore) String() string {
    return fmt.Sprintf("store(%s -> *%s)", self.V, self.Mem)
}

func (self *IrStore) Usages() []Operand {
    return []Operand { self.Mem, self.V }
}

type IrBreakpoint struct{}

func (*IrBreakpoint) String() string {
    return "breakpoint"
}
