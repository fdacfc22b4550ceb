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
    `strings`
)

type BasicBlock struct {
    Id   int
    Ins  []IrNode
    Pred []*BasicBlock
}

// Term returns the terminator of the block, or nil if the block is empty or
// does not end with one.
func (self *BasicBlock) Term() IrTerminator {
    if n := len(self.Ins); n == 0 {
        return nil
    } else if t, ok := self.Ins[n - 1].(IrTerminator); !ok {
        return nil
    } else {
        return t
    }
}

func (self *BasicBlock) Successors() []*BasicBlock {
    if t := self.Term(); t == nil {
        return nil
    } else {
        return t.Successors()
    }
}

func (self *BasicBlock) String() string {
    buf := make([]string, 0, len(self.Ins) + 1)
    buf = append(buf, fmt.Sprintf("bb_%d:", self.Id))

    /* dump every instruction */
    for _, ins := range self.Ins {
        buf = append(buf, "    " + ins.String())
    }

    /* join them together */
    return strings.Join(buf, "\n")
}

func (self *BasicBlock) addPred(p *BasicBlock) {
    for _, v := range self.Pred {
        if v == p {
            return
        }
    }
    self.Pred = append(self.Pred, p)
}
