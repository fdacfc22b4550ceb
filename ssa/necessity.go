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

package ssa

// necessary applies the per-kind necessity rule to ins for the current phase.
// Every instruction kind is listed so that adding one fails loudly here
// instead of silently falling into a rule that drops its operands.
func (self *_DCEState) necessary(ins IrNode) {
    switch p := ins.(type) {
        case *IrReturn     : self.require(p, p.R...)
        case *IrCall       : self.call(p)
        case *IrSet        : self.assign(p)
        case *IrPhi        : self.phi(p)
        case *IrBranch     : self.require(p, p.Cond)
        case *IrStore      : self.require(p, p.Mem, p.V)
        case *IrParam      : self.require(p)
        case *IrJump       : self.require(p)
        case *IrBreakpoint : self.require(p)
        default            : panic("dce: invalid instruction: " + ins.String())
    }
}

// require marks ins as necessary and enqueues every operand that refers to
// another SSA value.
func (self *_DCEState) require(ins IrNode, ops ...Operand) {
    self.mark[ins] = _M_necessary

    /* literals have no defining instruction */
    for _, v := range ops {
        if v.IsValue() {
            self.work.Push(v.V)
        }
    }
}

func (self *_DCEState) call(p *IrCall) {
    if !self.intrinsic || !self.oracle.IsConst(p.Fn) {
        self.require(p, p.In...)
    } else {
        self.mark[p] = _M_provisional
    }
}

func (self *_DCEState) assign(p *IrSet) {
    if !self.intrinsic {
        self.require(p, p.V)
    }
}

func (self *_DCEState) phi(p *IrPhi) {
    if !self.intrinsic {
        self.require(p, p.Usages()...)
    }
}
