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
)

// InvariantError is the panic value raised when a function violates the SSA
// contract the optimizer relies on, such as an operand with no definition.
type InvariantError struct {
    Func   string
    Value  Value
    Reason string
}

func (self *InvariantError) Error() string {
    if self.Value == NoValue {
        return fmt.Sprintf("ssa: invariant violated in %s: %s", self.Func, self.Reason)
    } else {
        return fmt.Sprintf("ssa: invariant violated in %s: %s: %s", self.Func, self.Value, self.Reason)
    }
}

// VerifyError occures when a function fails verification.
type VerifyError struct {
    Func   string
    Block  int
    Reason string
}

func (self *VerifyError) Error() string {
    return fmt.Sprintf("ssa: malformed function %s at bb_%d: %s", self.Func, self.Block, self.Reason)
}
