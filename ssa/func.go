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

// Func is a function in SSA form. Blocks are kept in traversal order, the
// first one being the entry.
type Func struct {
    Name   string
    Blocks []*BasicBlock
}

func (self *Func) Entry() *BasicBlock {
    if len(self.Blocks) == 0 {
        return nil
    } else {
        return self.Blocks[0]
    }
}

func (self *Func) NumInstr() (n int) {
    for _, bb := range self.Blocks {
        n += len(bb.Ins)
    }
    return
}

func (self *Func) String() string {
    buf := make([]string, 0, len(self.Blocks))

    /* dump every block */
    for _, bb := range self.Blocks {
        buf = append(buf, bb.String())
    }

    /* join them together */
    return fmt.Sprintf(
        "func %s {\n%s\n}",
        self.Name,
        strings.Join(buf, "\n"),
    )
}
