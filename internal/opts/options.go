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

package opts

import (
	"github.com/cloudwego/ssadce/ssa"
)

type Options struct {
	Oracle     ssa.EffectOracle
	Verify     bool
	Trace      bool
	MaxWorkers int
}

// EffectOracle returns the configured oracle, falling back to treating every
// callee as effectful.
func (self *Options) EffectOracle() ssa.EffectOracle {
	if self.Oracle == nil {
		return ssa.NoConst
	} else {
		return self.Oracle
	}
}

func GetDefaultOptions() Options {
	return Options{
		Verify:     Verify,
		Trace:      Trace,
		MaxWorkers: MaxWorkers,
	}
}
