/*
 * Copyright 2024 CloudWeGo Authors
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

package frontend

import (
	"fmt"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ssa"

	"github.com/cloudwego/ssadce"
	ir "github.com/cloudwego/ssadce/ssa"
)

// Oracle lists the Go builtins and pseudo-callees that never have observable
// effects. Instructions that may panic or block are not listed.
var Oracle = ir.NewConstSet(
	"len", "cap", "real", "imag", "complex",
	"op:Alloc",
	"op:BinOp",
	"op:UnOp",
	"op:Convert",
	"op:ChangeInterface",
	"op:MakeInterface",
	"op:MakeClosure",
	"op:MakeMap",
	"op:Extract",
	"op:Field",
	"op:TypeAssertOk",
)

// Lowered is a Go function translated into the optimizer IR.
type Lowered struct {
	Func   *ir.Func
	Origin map[ir.IrNode]ssa.Instruction
}

type lowering struct {
	b      *ir.Builder
	vals   map[ssa.Value]ir.Value
	blocks map[*ssa.BasicBlock]*ir.BasicBlock
	origin map[ir.IrNode]ssa.Instruction
}

// Lower translates fn. Parameters and free variables become IrParam
// instructions of the entry block; constants, globals and functions become
// literal operands.
func Lower(fn *ssa.Function) *Lowered {
	self := &lowering{
		b:      ir.CreateBuilder(fn.String()),
		vals:   make(map[ssa.Value]ir.Value),
		blocks: make(map[*ssa.BasicBlock]*ir.BasicBlock, len(fn.Blocks)),
		origin: make(map[ir.IrNode]ssa.Instruction),
	}

	/* external functions have no body */
	if len(fn.Blocks) == 0 {
		return &Lowered{Func: self.b.Build(), Origin: self.origin}
	}

	/* allocate the blocks */
	for _, bb := range fn.Blocks {
		self.blocks[bb] = self.b.Block()
	}

	/* parameters and free variables */
	for _, v := range fn.Params {
		self.vals[v] = self.b.Param(self.blocks[fn.Blocks[0]])
	}
	for _, v := range fn.FreeVars {
		self.vals[v] = self.b.Param(self.blocks[fn.Blocks[0]])
	}

	/* every value is named before lowering, so forward references resolve */
	for _, bb := range fn.Blocks {
		for _, ins := range bb.Instrs {
			if v, ok := ins.(ssa.Value); ok {
				self.vals[v] = self.b.NewValue()
			}
		}
	}

	/* lower every instruction */
	for _, bb := range fn.Blocks {
		for _, ins := range bb.Instrs {
			if node := self.instr(bb, ins); node != nil {
				self.b.Emit(self.blocks[bb], node)
				self.origin[node] = ins
			}
		}
	}

	/* all done */
	return &Lowered{Func: self.b.Build(), Origin: self.origin}
}

func (self *lowering) instr(bb *ssa.BasicBlock, ins ssa.Instruction) ir.IrNode {
	switch p := ins.(type) {
	case *ssa.DebugRef:
		return nil
	case *ssa.Phi:
		return self.phi(bb, p)
	case *ssa.Return:
		return &ir.IrReturn{R: self.operands(p.Results)}
	case *ssa.If:
		return &ir.IrBranch{Cond: self.operand(p.Cond), Then: self.blocks[bb.Succs[0]], Else: self.blocks[bb.Succs[1]]}
	case *ssa.Jump:
		return &ir.IrJump{To: self.blocks[bb.Succs[0]]}
	case *ssa.Store:
		return &ir.IrStore{Mem: self.operand(p.Addr), V: self.operand(p.Val)}
	case *ssa.ChangeType:
		return &ir.IrSet{R: self.vals[p], V: self.operand(p.X)}
	case *ssa.Call:
		return self.call(self.vals[p], callee(&p.Call), &p.Call)
	case *ssa.Go:
		return self.call(ir.NoValue, "go", &p.Call)
	case *ssa.Defer:
		return self.call(ir.NoValue, "defer", &p.Call)
	default:
		return self.generic(ins)
	}
}

func (self *lowering) phi(bb *ssa.BasicBlock, p *ssa.Phi) *ir.IrPhi {
	ret := &ir.IrPhi{R: self.vals[p], V: make(map[*ir.BasicBlock]ir.Operand, len(p.Edges))}

	/* edges are in the same order as the predecessors */
	for i, v := range p.Edges {
		ret.V[self.blocks[bb.Preds[i]]] = self.operand(v)
	}
	return ret
}

func (self *lowering) call(r ir.Value, name string, c *ssa.CallCommon) *ir.IrCall {
	args := make([]ssa.Value, 0, len(c.Args)+1)
	args = append(args, c.Value)
	args = append(args, c.Args...)

	/* the callee value itself is an operand, as it may be a closure */
	return &ir.IrCall{
		R:  r,
		Fn: &ir.Callee{Name: name},
		In: self.operands(args),
	}
}

func (self *lowering) generic(ins ssa.Instruction) *ir.IrCall {
	var r ir.Value
	var in []ir.Operand

	/* value instructions define a result */
	if v, ok := ins.(ssa.Value); ok {
		r = self.vals[v]
	}

	/* some operand slots are optional */
	for _, v := range ins.Operands(nil) {
		if v != nil && *v != nil {
			in = append(in, self.operand(*v))
		}
	}

	/* all done */
	return &ir.IrCall{
		R:  r,
		Fn: &ir.Callee{Name: opname(ins)},
		In: in,
	}
}

func (self *lowering) operand(v ssa.Value) ir.Operand {
	if r, ok := self.vals[v]; ok {
		return ir.Ref(r)
	} else if c, ok := v.(*ssa.Const); ok && c.Value != nil && c.Value.Kind() == constant.Int {
		i, _ := constant.Int64Val(c.Value)
		return ir.Lit(i)
	} else {
		return ir.Lit(0)
	}
}

func (self *lowering) operands(vv []ssa.Value) []ir.Operand {
	ret := make([]ir.Operand, 0, len(vv))
	for _, v := range vv {
		ret = append(ret, self.operand(v))
	}
	return ret
}

func callee(c *ssa.CallCommon) string {
	if c.IsInvoke() {
		return "invoke:" + c.Method.Name()
	} else if fn := c.StaticCallee(); fn != nil {
		return fn.String()
	} else if b, ok := c.Value.(*ssa.Builtin); ok {
		return b.Name()
	} else {
		return "dynamic"
	}
}

func opname(ins ssa.Instruction) string {
	switch p := ins.(type) {
	case *ssa.BinOp:
		switch p.Op {
		case token.QUO, token.REM:
			return "op:Div"
		case token.SHL, token.SHR:
			if signed(p.Y) {
				return "op:Shift"
			}
		case token.EQL, token.NEQ:
			if incomparable(p.X.Type()) {
				return "op:Compare"
			}
		}
	case *ssa.MakeMap:
		if _, ok := p.Reserve.(*ssa.Const); p.Reserve != nil && !ok {
			return "op:MakeMapSized"
		}
	case *ssa.UnOp:
		if p.Op == token.MUL {
			return "op:Load"
		} else if p.Op == token.ARROW {
			return "op:Recv"
		}
	case *ssa.TypeAssert:
		if p.CommaOk {
			return "op:TypeAssertOk"
		}
	}
	return "op:" + strings.TrimPrefix(fmt.Sprintf("%T", ins), "*ssa.")
}

// signed reports whether a shift count may be negative at run time.
func signed(v ssa.Value) bool {
	if _, ok := v.(*ssa.Const); ok {
		return false
	} else if t, ok := v.Type().Underlying().(*types.Basic); ok {
		return t.Info()&types.IsUnsigned == 0
	} else {
		return true
	}
}

// incomparable reports whether comparing two values of type t may panic,
// which happens when an interface inside holds an incomparable dynamic type.
func incomparable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Interface:
		return true
	case *types.Array:
		return incomparable(u.Elem())
	case *types.Struct:
		for i := 0; i < u.NumFields(); i++ {
			if incomparable(u.Field(i).Type()) {
				return true
			}
		}
	}
	return false
}

// Dead runs the optimizer over the lowered function and returns the Go
// instructions it removed, in their original order.
func (self *Lowered) Dead(options ...ssadce.Option) (ret []ssa.Instruction) {
	var all []ir.IrNode
	var kept = make(map[ir.IrNode]bool)

	/* remember every instruction */
	for _, bb := range self.Func.Blocks {
		all = append(all, bb.Ins...)
	}

	/* run the pass */
	options = append([]ssadce.Option{ssadce.WithEffectOracle(Oracle)}, options...)
	ssadce.Eliminate(self.Func, options...)

	/* collect the survivors */
	for _, bb := range self.Func.Blocks {
		for _, v := range bb.Ins {
			kept[v] = true
		}
	}

	/* everything else is dead */
	for _, v := range all {
		if !kept[v] {
			ret = append(ret, self.Origin[v])
		}
	}
	return
}
