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

// Package deadinstr defines an Analyzer that reports Go expressions whose
// results are computed but never used.
package deadinstr

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"

	"github.com/cloudwego/ssadce/internal/frontend"
)

const Doc = `report values that are computed but never used

The deadinstr analyzer lowers every function into SSA form and runs dead
code elimination over it. Any side-effect free instruction that the pass
removes, and that corresponds to a source expression, is reported.`

var Analyzer = &analysis.Analyzer{
	Name:     "deadinstr",
	Doc:      Doc,
	Requires: []*analysis.Analyzer{buildssa.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (interface{}, error) {
	res := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)

	/* scan every source function, closures included */
	for _, fn := range res.SrcFuncs {
		if fn.Synthetic != "" {
			continue
		}
		for _, ins := range frontend.Lower(fn).Dead() {
			if ins.Pos().IsValid() {
				pass.Reportf(ins.Pos(), "result is never used: %s", ins)
			}
		}
	}
	return nil, nil
}
