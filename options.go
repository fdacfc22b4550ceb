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
	"math"

	"github.com/cloudwego/ssadce/internal/opts"
	"github.com/cloudwego/ssadce/ssa"
)

// Option is the property setter function for opts.Options.
type Option func(*opts.Options)

// WithEffectOracle sets the oracle deciding which callees are const, that is,
// free of observable side effects.
//
// Calls to const callees are removed when their results are unused. Without
// an oracle every call is kept.
func WithEffectOracle(oracle ssa.EffectOracle) Option {
	return func(o *opts.Options) { o.Oracle = oracle }
}

// WithConstCallees is a shorthand for WithEffectOracle(ssa.NewConstSet(names...)).
func WithConstCallees(names ...string) Option {
	return WithEffectOracle(ssa.NewConstSet(names...))
}

// WithVerify makes the optimizer check every function with Verify before
// optimizing it, panicking on the first malformed one.
//
// This value can also be configured with the `SSADCE_VERIFY` environment
// variable.
func WithVerify(v bool) Option {
	return func(o *opts.Options) { o.Verify = v }
}

// WithTrace enables structured tracing of every optimized function.
//
// This value can also be configured with the `SSADCE_TRACE` environment
// variable.
func WithTrace(v bool) Option {
	return func(o *opts.Options) { o.Trace = v }
}

// WithMaxWorkers sets the number of goroutines EliminateAll uses.
//
// The default value of this option is "4", and can also be configured with
// the `SSADCE_MAX_WORKERS` environment variable.
func WithMaxWorkers(n int) Option {
	if n < 1 || n > math.MaxInt32 {
		panic(fmt.Sprintf("ssadce: invalid worker count: %d", n))
	} else {
		return func(o *opts.Options) { o.MaxWorkers = n }
	}
}

// SetVerify sets the default verification switch for all functions from now on.
//
// Returns the old opts.Verify value.
func SetVerify(v bool) bool {
	v, opts.Verify = opts.Verify, v
	return v
}

// SetTrace sets the default tracing switch for all functions from now on.
//
// Returns the old opts.Trace value.
func SetTrace(v bool) bool {
	v, opts.Trace = opts.Trace, v
	return v
}
