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
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"

	"github.com/cloudwego/ssadce"
	ir "github.com/cloudwego/ssadce/ssa"
)

const source = `package p

func pure(a, b int) int {
	_ = a * b
	return a + b
}

func loop(n int) (s int) {
	for i := 0; i < n; i++ {
		s += i
	}
	return
}

func effects(m map[int]int, a, b int) int {
	m[a] = b
	_ = a / b
	_ = len(m)
	return m[b]
}

func closure(a int) func() int {
	return func() int { return a + 1 }
}

type pair struct {
	k int
	v interface{}
}

func shift(a, n int, u uint) int {
	_ = a << n
	_ = a >> n
	_ = a << u
	_ = a << 3
	return a
}

func compare(x, y interface{}, p, q pair, a, b int) bool {
	_ = x == y
	_ = p != q
	_ = a == b
	return true
}

func sized(n int) {
	_ = make(map[int]int, n)
	_ = make(map[int]int, 8)
}
`

func build(t *testing.T) *ssa.Package {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", source, 0)
	require.NoError(t, err)
	pkg := types.NewPackage("p", "")
	conf := &types.Config{Importer: importer.Default()}
	ret, _, err := ssautil.BuildPackage(conf, fset, pkg, []*ast.File{file}, ssa.SanityCheckFunctions)
	require.NoError(t, err)
	return ret
}

func TestLower_Verify(t *testing.T) {
	pkg := build(t)
	for _, name := range []string{"pure", "loop", "effects", "closure"} {
		fn := pkg.Func(name)
		low := Lower(fn)
		require.NoError(t, ssadce.Verify(low.Func), name)
		assert.Equal(t, low.Func.NumInstr(), len(low.Origin)+len(fn.Params)+len(fn.FreeVars), name)
	}
}

func TestLower_Phi(t *testing.T) {
	var phis int
	low := Lower(function(t, "loop"))
	for _, bb := range low.Func.Blocks {
		for _, v := range bb.Ins {
			if p, ok := v.(*ir.IrPhi); ok {
				phis++
				assert.Len(t, p.V, len(bb.Pred))
			}
		}
	}
	assert.NotZero(t, phis)
}

func TestLower_FreeVars(t *testing.T) {
	fn := function(t, "closure").AnonFuncs[0]
	low := Lower(fn)
	params := 0
	for _, v := range low.Func.Entry().Ins {
		if _, ok := v.(*ir.IrParam); ok {
			params++
		}
	}
	assert.Equal(t, len(fn.FreeVars), params)
}

func TestLowered_Dead(t *testing.T) {
	dead := Lower(function(t, "pure")).Dead()
	require.Len(t, dead, 1)
	op, ok := dead[0].(*ssa.BinOp)
	require.True(t, ok)
	assert.Equal(t, token.MUL, op.Op)
}

func TestLowered_DeadKeepsEffects(t *testing.T) {
	dead := Lower(function(t, "effects")).Dead()
	require.Len(t, dead, 1)
	call, ok := dead[0].(*ssa.Call)
	require.True(t, ok)
	assert.Equal(t, "len", callee(call.Common()))
}

func TestLowered_DeadLoop(t *testing.T) {
	assert.Empty(t, Lower(function(t, "loop")).Dead())
	assert.Empty(t, Lower(function(t, "closure")).Dead())
}

func TestOpname(t *testing.T) {
	var names []string
	for _, name := range []string{"effects", "shift", "compare", "sized"} {
		for _, bb := range function(t, name).Blocks {
			for _, v := range bb.Instrs {
				switch v.(type) {
				case *ssa.BinOp, *ssa.MakeMap:
					names = append(names, opname(v))
				}
			}
		}
	}
	assert.Equal(t, []string{
		"op:Div",
		"op:Shift", "op:Shift", "op:BinOp", "op:BinOp",
		"op:Compare", "op:Compare", "op:BinOp",
		"op:MakeMapSized", "op:MakeMap",
	}, names)
	for _, name := range []string{"op:Div", "op:Shift", "op:Compare", "op:MakeMapSized", "op:MultiConvert"} {
		assert.False(t, Oracle.IsConst(&ir.Callee{Name: name}), name)
	}
}

func TestLowered_DeadKeepsPanics(t *testing.T) {
	for _, name := range []string{"shift", "compare", "sized"} {
		var dead []string
		for _, v := range Lower(function(t, name)).Dead() {
			dead = append(dead, opname(v))
		}
		switch name {
		case "shift":
			assert.Equal(t, []string{"op:BinOp", "op:BinOp"}, dead, name)
		case "compare":
			assert.Equal(t, []string{"op:BinOp"}, dead, name)
		case "sized":
			assert.Equal(t, []string{"op:MakeMap"}, dead, name)
		}
	}
}

func function(t *testing.T, name string) *ssa.Function {
	fn := build(t).Func(name)
	require.NotNil(t, fn)
	return fn
}
