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
    `github.com/oleiade/lane`
)

type Pass interface {
    Apply(*Func)
}

type _Mark uint8

const (
    _M_unmarked _Mark = iota
    _M_provisional
    _M_necessary
)

// DCE removes instructions whose results are never used. Returns, branches,
// stores and calls to callees the oracle does not know to be const are always
// kept, together with everything they transitively depend on.
type DCE struct {
    Oracle EffectOracle
}

type _DCEState struct {
    fn        *Func
    oracle    EffectOracle
    mark      map[IrNode]_Mark
    defs      map[Value]IrNode
    work      *lane.Stack
    intrinsic bool
}

func newDCEState(fn *Func, oracle EffectOracle) *_DCEState {
    if oracle == nil {
        oracle = NoConst
    }

    /* state is never shared across functions */
    return &_DCEState {
        fn     : fn,
        oracle : oracle,
        mark   : make(map[IrNode]_Mark),
        defs   : make(map[Value]IrNode),
        work   : lane.NewStack(),
    }
}

func (self DCE) Apply(fn *Func) {
    st := newDCEState(fn, self.Oracle)
    st.markIntrinsic()
    st.propagate()
    st.sweep()
}

func (self *_DCEState) markIntrinsic() {
    self.intrinsic = true

    /* Phase 1: mark everything that is necessary regardless of its uses */
    for _, bb := range self.fn.Blocks {
        for _, v := range bb.Ins {
            if d, ok := v.(IrDefinitions); ok {
                if r := d.Definition(); r != NoValue {
                    self.defs[r] = v
                }
            }
            self.necessary(v)
        }
    }
}

func (self *_DCEState) propagate() {
    self.intrinsic = false

    /* Phase 2: follow the use-def edges until the worklist drains */
    for !self.work.Empty() {
        v := self.work.Pop().(Value)
        p, ok := self.defs[v]

        /* every referenced value must be defined somewhere in the function */
        if !ok {
            panic(&InvariantError {
                Func   : self.fn.Name,
                Value  : v,
                Reason : "value has no definition",
            })
        }

        /* provisional calls are upgraded, unmarked ones are marked */
        switch self.mark[p] {
            case _M_necessary   : break
            case _M_provisional : self.necessary(p)
            case _M_unmarked    : self.necessary(p)
        }
    }
}

func (self *_DCEState) sweep() {
    for _, bb := range self.fn.Blocks {
        ins := make([]IrNode, 0, len(bb.Ins))

        /* Phase 3: keep only the necessary instructions, in order */
        for _, v := range bb.Ins {
            if self.mark[v] == _M_necessary {
                ins = append(ins, v)
            }
        }

        /* rebuild the basic block */
        bb.Ins = ins
    }
}
