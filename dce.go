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

package ssadce

import (
	"fmt"
	"sync"

	"github.com/bytedance/gopkg/util/gopool"
	"github.com/nikandfor/errors"
	"github.com/nikandfor/tlog"

	"github.com/cloudwego/ssadce/internal/opts"
	"github.com/cloudwego/ssadce/internal/stats"
	"github.com/cloudwego/ssadce/ssa"
)

// Eliminate removes every instruction of fn whose result is provably unused,
// keeping returns, control transfers, stores and calls to callees that are
// not known to be const. fn is modified in place.
//
// fn must be in SSA form. A value referenced but never defined is a broken
// invariant and makes Eliminate panic with an *ssa.InvariantError.
func Eliminate(fn *ssa.Func, options ...Option) {
	o := opts.GetDefaultOptions()
	for _, f := range options {
		f(&o)
	}
	eliminate(fn, &o)
}

// EliminateAll runs Eliminate over every function concurrently, each with its
// own independent state. If any of them panics, EliminateAll panics with a
// *PassError naming the first failed function once all of them are done. A nil
// function makes it panic before any work starts.
func EliminateAll(fns []*ssa.Func, options ...Option) {
	var wg sync.WaitGroup
	var o = opts.GetDefaultOptions()

	/* apply the options */
	for _, f := range options {
		f(&o)
	}

	/* every function must exist before any of them is touched */
	for i, fn := range fns {
		if fn == nil {
			panic(fmt.Sprintf("ssadce: nil function at index %d", i))
		}
	}

	/* one slot per function, written only by its own task */
	rets := make([]interface{}, len(fns))
	pool := gopool.NewPool("ssadce", int32(o.MaxWorkers), gopool.NewConfig())

	/* optimize every function */
	for i, fn := range fns {
		i, fn := i, fn
		wg.Add(1)
		pool.Go(func() {
			defer wg.Done()
			defer func() { rets[i] = recover() }()
			eliminate(fn, &o)
		})
	}

	/* report the first failure, in input order */
	wg.Wait()
	for i, v := range rets {
		if v != nil {
			panic(&PassError{Func: fns[i].Name, Reason: v})
		}
	}
}

// Verify checks that fn satisfies the preconditions of Eliminate.
func Verify(fn *ssa.Func) error {
	if err := ssa.Verify(fn); err != nil {
		return errors.Wrap(err, "verify %v", fn.Name)
	} else {
		return nil
	}
}

func eliminate(fn *ssa.Func, o *opts.Options) {
	if o.Verify {
		if err := Verify(fn); err != nil {
			panic(err)
		}
	}

	/* run the pass */
	n := fn.NumInstr()
	if o.Trace {
		traced(fn, o)
	} else {
		ssa.DCE{Oracle: o.EffectOracle()}.Apply(fn)
	}

	/* update the statistics */
	stats.Record(n, fn.NumInstr())
}

func traced(fn *ssa.Func, o *opts.Options) {
	n := fn.NumInstr()
	tr := tlog.Start("dce", "func", fn.Name, "blocks", len(fn.Blocks), "instrs", n)
	defer tr.Finish()

	/* the pass leaves unreachable blocks alone */
	if bb := fn.Unreachable(); len(bb) != 0 {
		tr.Printw("unreachable blocks", "count", len(bb))
	}

	/* run the pass */
	ssa.DCE{Oracle: o.EffectOracle()}.Apply(fn)
	tr.Printw("swept", "instrs", fn.NumInstr(), "removed", n-fn.NumInstr())
}
