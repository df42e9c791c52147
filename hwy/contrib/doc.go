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

// Package contrib groups the kernels built on the hwy capability layer.
//
// # Subpackages
//
//   - matrix: dense float32 add, subtract, multiply and multiply-by-transpose,
//     dispatched at runtime to scalar, 128-bit or 256-bit kernels
//   - workerpool: persistent goroutine pool used to split products into
//     row bands
//
// # Matrix (hwy/contrib/matrix)
//
//	import "github.com/hwy-kernels/simdmat/hwy/contrib/matrix"
//
//	a := hwy.AlignedFloat32s(m*k, 32)
//	b := hwy.AlignedFloat32s(k*n, 32)
//	r := make([]float32, m*n)
//	matrix.MatMul(true, a, b, k, m, n, k, r)
//
// # Worker Pool (hwy/contrib/workerpool)
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	matrix.ParallelMatMul(pool, true, a, b, k, m, n, k, r)
package contrib
