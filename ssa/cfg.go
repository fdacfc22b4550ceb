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
    `gonum.org/v1/gonum/graph`
    `gonum.org/v1/gonum/graph/simple`
    `gonum.org/v1/gonum/graph/traverse`
)

// CFG is a directed graph view of the blocks of a function, keyed by block ID.
// Self loops are tracked separately since the underlying graph rejects them.
type CFG struct {
    *simple.DirectedGraph
    loops map[int64]bool
}

func (self *Func) Graph() *CFG {
    ret := &CFG {
        DirectedGraph : simple.NewDirectedGraph(),
        loops         : make(map[int64]bool),
    }

    /* add every block */
    for _, bb := range self.Blocks {
        if ret.Node(int64(bb.Id)) == nil {
            ret.AddNode(simple.Node(bb.Id))
        }
    }

    /* add every edge */
    for _, bb := range self.Blocks {
        for _, s := range bb.Successors() {
            if s.Id == bb.Id {
                ret.loops[int64(bb.Id)] = true
            } else {
                ret.SetEdge(ret.NewEdge(simple.Node(bb.Id), simple.Node(s.Id)))
            }
        }
    }

    /* all done */
    return ret
}

// HasEdge reports whether control may flow directly from block u to block v.
func (self *CFG) HasEdge(u int, v int) bool {
    if u == v {
        return self.loops[int64(u)]
    } else {
        return self.HasEdgeFromTo(int64(u), int64(v))
    }
}

// Unreachable returns the blocks that cannot be reached from the entry block,
// in block order.
func (self *Func) Unreachable() (ret []*BasicBlock) {
    var dfs traverse.DepthFirst
    var seen = make(map[int64]bool)

    /* an empty function has nothing to reach */
    if len(self.Blocks) == 0 {
        return nil
    }

    /* walk from the entry */
    g := self.Graph()
    dfs.Visit = func(n graph.Node) { seen[n.ID()] = true }
    dfs.Walk(g, simple.Node(self.Entry().Id), nil)

    /* collect the blocks never visited */
    for _, bb := range self.Blocks {
        if !seen[int64(bb.Id)] {
            ret = append(ret, bb)
        }
    }
    return
}
