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
    `testing`

    `github.com/stretchr/testify/require`
)

func TestVerify_WellFormed(t *testing.T) {
    fn, _ := diamond()
    require.NoError(t, Verify(fn))
}

func TestVerify_DuplicateDefinition(t *testing.T) {
    p := CreateBuilder("f")
    bb := p.Block()
    v := p.Set(bb, Lit(1))
    p.Emit(bb, &IrSet{R: v, V: Lit(2)})
    p.Return(bb, Ref(v))
    err := Verify(p.Build())
    require.EqualError(t, err, "ssa: malformed function f at bb_0: %v1 is defined more than once")
}

func TestVerify_UndefinedOperand(t *testing.T) {
    p := CreateBuilder("f")
    bb := p.Block()
    p.Return(bb, Ref(3))
    err := Verify(p.Build())
    require.IsType(t, (*VerifyError)(nil), err)
    require.Contains(t, err.Error(), "%v3 used by \"ret {%v3}\" is never defined")
}

func TestVerify_MisplacedTerminator(t *testing.T) {
    p := CreateBuilder("f")
    b0, b1 := p.Block(), p.Block()
    p.Jump(b0, b1)
    p.Set(b0, Lit(1))
    p.Return(b1)
    err := Verify(p.Build())
    require.EqualError(t, err, "ssa: malformed function f at bb_0: terminator \"goto bb_1\" is not the last instruction")
}

func TestVerify_MisplacedPhi(t *testing.T) {
    p := CreateBuilder("f")
    b0, b1 := p.Block(), p.Block()
    p.Jump(b0, b1)
    p.Set(b1, Lit(1))
    p.Emit(b1, &IrPhi{R: p.NewValue(), V: map[*BasicBlock]Operand{b0: Lit(0)}})
    p.Return(b1)
    err := Verify(p.Build())
    require.EqualError(t, err, "ssa: malformed function f at bb_1: phi node \"%v2 = φ(bb_0: $0)\" follows a non-phi instruction")
}

func TestVerify_PhiFromNonPredecessor(t *testing.T) {
    p := CreateBuilder("f")
    b0, b1, b2 := p.Block(), p.Block(), p.Block()
    p.Jump(b0, b2)
    p.Return(b1)
    phi := p.Phi(b2)
    phi.V[b1] = Lit(1)
    p.Return(b2, Ref(phi.R))
    err := Verify(p.Build())
    require.EqualError(t, err, "ssa: malformed function f at bb_2: phi node \"%v1 = φ(bb_1: $1)\" merges from bb_1 which is not a predecessor")
}

func TestVerify_PhiFromForeignBlock(t *testing.T) {
    p := CreateBuilder("f")
    b0, b1 := p.Block(), p.Block()
    p.Jump(b0, b1)
    phi := p.Phi(b1)
    phi.V[&BasicBlock{Id: 7}] = Lit(1)
    p.Return(b1, Ref(phi.R))
    err := Verify(p.Build())
    require.EqualError(t, err, "ssa: malformed function f at bb_1: phi node \"%v1 = φ(bb_7: $1)\" merges from bb_7 outside the function")
}
