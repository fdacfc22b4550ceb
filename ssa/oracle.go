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

// EffectOracle classifies callees. A const callee has no observable side
// effects, so a call to it may be deleted when its result is unused.
type EffectOracle interface {
    IsConst(fn *Callee) bool
}

// OracleFunc adapts an ordinary function to EffectOracle.
type OracleFunc func(fn *Callee) bool

func (self OracleFunc) IsConst(fn *Callee) bool {
    return self(fn)
}

// NoConst treats every callee as effectful.
var NoConst EffectOracle = OracleFunc(func(*Callee) bool { return false })

// ConstSet is an EffectOracle backed by a set of callee names.
type ConstSet struct {
    names map[string]struct{}
}

func NewConstSet(names ...string) *ConstSet {
    ret := &ConstSet{names: make(map[string]struct{}, len(names))}
    ret.Add(names...)
    return ret
}

func (self *ConstSet) Add(names ...string) {
    for _, v := range names {
        self.names[v] = struct{}{}
    }
}

func (self *ConstSet) IsConst(fn *Callee) bool {
    if self == nil || fn == nil {
        return false
    } else {
        _, ok := self.names[fn.Name]
        return ok
    }
}
