// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command simdmat inspects and exercises the matrix kernels.
//
// Usage:
//
//	simdmat info                              # dispatch level, CPU features, backends
//	simdmat run --op matmul --m 2 --n 2 --k 2 # multiply and print the result
//	simdmat verify                            # compare every backend against scalar
//	simdmat bench --backend wide --m 256      # throughput of one backend
//
// Environment:
//
//	HWY_NO_SIMD=1      force the scalar level
//	HWY_MAX_WIDTH=128  stay on 128-bit kernels on an AVX2 machine
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
