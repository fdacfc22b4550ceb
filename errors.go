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

package ssadce

import (
	"fmt"
)

// PassError occures when the optimizer panics on one of the functions given
// to EliminateAll.
type PassError struct {
	Func   string
	Reason interface{}
}

func (self *PassError) Error() string {
	return fmt.Sprintf("ssadce: failed to optimize %s: %v", self.Func, self.Reason)
}

// Unwrap returns the original panic value if it is an error.
func (self *PassError) Unwrap() error {
	if err, ok := self.Reason.(error); ok {
		return err
	} else {
		return nil
	}
}
