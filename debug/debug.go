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

package debug

import (
	"sync/atomic"

	"github.com/cloudwego/ssadce/internal/stats"
)

// A Stats records statistics about the dead code eliminator since the
// process started.
type Stats struct {
	Funcs   int
	Instrs  int
	Removed int
}

// GetStats returns statistics of the dead code eliminator.
func GetStats() Stats {
	return Stats{
		Funcs:   int(atomic.LoadUint64(&stats.FuncCount)),
		Instrs:  int(atomic.LoadUint64(&stats.InstrCount)),
		Removed: int(atomic.LoadUint64(&stats.RemovedCount)),
	}
}
