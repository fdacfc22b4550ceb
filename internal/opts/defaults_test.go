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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOrDefault(t *testing.T) {
	t.Setenv("SSADCE_TEST_WORKERS", "")
	require.Equal(t, 4, parseOrDefault("SSADCE_TEST_WORKERS", 4, 1))
	t.Setenv("SSADCE_TEST_WORKERS", "16")
	require.Equal(t, 16, parseOrDefault("SSADCE_TEST_WORKERS", 4, 1))
	t.Setenv("SSADCE_TEST_WORKERS", "2147483647")
	require.Equal(t, 2147483647, parseOrDefault("SSADCE_TEST_WORKERS", 4, 1))
	t.Setenv("SSADCE_TEST_WORKERS", "2147483648")
	require.PanicsWithValue(t, "ssadce: value too large for SSADCE_TEST_WORKERS", func() { parseOrDefault("SSADCE_TEST_WORKERS", 4, 1) })
	t.Setenv("SSADCE_TEST_WORKERS", "18446744073709551615")
	require.Panics(t, func() { parseOrDefault("SSADCE_TEST_WORKERS", 4, 1) })
	t.Setenv("SSADCE_TEST_WORKERS", "0")
	require.PanicsWithValue(t, "ssadce: value too small for SSADCE_TEST_WORKERS", func() { parseOrDefault("SSADCE_TEST_WORKERS", 4, 1) })
	t.Setenv("SSADCE_TEST_WORKERS", "lots")
	require.Panics(t, func() { parseOrDefault("SSADCE_TEST_WORKERS", 4, 1) })
}
