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

import (
    `fmt`
    `sort`
)

// Verify checks that fn is well-formed enough for the optimizer: every value
// is defined exactly once, every operand refers to a defined value, phi nodes
// lead their block and only merge values from CFG predecessors, and
// terminators only appear at the end of a block.
func Verify(fn *Func) error {
    g := fn.Graph()
    defs := make(map[Value]int)
    blocks := make(map[*BasicBlock]bool, len(fn.Blocks))

    /* collect all the definitions */
    for _, bb := range fn.Blocks {
        blocks[bb] = true
        for _, v := range bb.Ins {
            if d, ok := v.(IrDefinitions); ok && d.Definition() != NoValue {
                if _, dup := defs[d.Definition()]; dup {
                    return verifyError(fn, bb, "%s is defined more than once", d.Definition())
                }
                defs[d.Definition()] = bb.Id
            }
        }
    }

    /* check every block */
    for _, bb := range fn.Blocks {
        if err := verifyBlock(fn, g, bb, defs, blocks); err != nil {
            return err
        }
    }

    /* all checks passed */
    return nil
}

func verifyBlock(fn *Func, g *CFG, bb *BasicBlock, defs map[Value]int, blocks map[*BasicBlock]bool) error {
    body := false
    last := len(bb.Ins) - 1

    /* check every instruction in order */
    for i, v := range bb.Ins {
        if _, ok := v.(IrTerminator); ok && i != last {
            return verifyError(fn, bb, "terminator %q is not the last instruction", v)
        }

        /* phi nodes must lead the block */
        if p, ok := v.(*IrPhi); !ok {
            body = true
        } else if body {
            return verifyError(fn, bb, "phi node %q follows a non-phi instruction", v)
        } else if err := verifyPhi(fn, g, bb, p, blocks); err != nil {
            return err
        }

        /* every referenced value must be defined */
        if u, ok := v.(IrUsages); ok {
            for _, r := range u.Usages() {
                if _, def := defs[r.V]; r.IsValue() && !def {
                    return verifyError(fn, bb, "%s used by %q is never defined", r.V, v)
                }
            }
        }
    }

    /* all checks passed */
    return nil
}

func verifyPhi(fn *Func, g *CFG, bb *BasicBlock, p *IrPhi, blocks map[*BasicBlock]bool) error {
    ids := make([]int, 0, len(p.V))
    preds := make(map[int]*BasicBlock, len(p.V))

    /* check in block order to make the error deterministic */
    for b := range p.V {
        ids = append(ids, b.Id)
        preds[b.Id] = b
    }

    /* every incoming edge must exist in the CFG */
    sort.Ints(ids)
    for _, id := range ids {
        if !blocks[preds[id]] {
            return verifyError(fn, bb, "phi node %q merges from bb_%d outside the function", p, id)
        } else if !g.HasEdge(id, bb.Id) {
            return verifyError(fn, bb, "phi node %q merges from bb_%d which is not a predecessor", p, id)
        }
    }

    /* all checks passed */
    return nil
}

func verifyError(fn *Func, bb *BasicBlock, format string, args ...interface{}) *VerifyError {
    return &VerifyError {
        Func   : fn.Name,
        Block  : bb.Id,
        Reason : fmt.Sprintf(format, args...),
    }
}
