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

package matrix

import "github.com/hwy-kernels/simdmat/hwy/contrib/workerpool"

// ParallelMatMul is MatMul with the rows of A split into bands across the
// pool's workers. It is a wrapper over the single-threaded kernels, not part
// of them: each band is an independent kernel call. Every output element is computed exactly as MatMul would
// compute it, so the result is bit-identical to MatMul on the same backend.
// A nil pool runs on the calling goroutine.
func ParallelMatMul(pool *workerpool.Pool, vectorize bool, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	ParallelMatMulWith(pool, Resolve(vectorize), a, b, w1, h1, w2, h2, r)
}

// ParallelMatMulWith is ParallelMatMul on an explicitly chosen backend.
func ParallelMatMulWith(pool *workerpool.Pool, backend Backend, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	must(ValidateMatMul(a, b, w1, h1, w2, h2, r))
	k := kernelsFor(opMatMul, backend)
	checkProductAlignment(opMatMul, backend, a, nil)

	b = b[:w2*h2]
	rows := func(start, end int) {
		k.matMul(a[start*w1:end*w1], b, r[start*w2:end*w2], w1, end-start, w2)
	}
	if pool == nil {
		rows(0, h1)
		return
	}
	pool.ParallelFor(h1, rows)
}

// ParallelMatMulTransposed is MatMulTransposed with the rows of A split into
// bands across the pool's workers. See ParallelMatMul.
func ParallelMatMulTransposed(pool *workerpool.Pool, vectorize bool, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	ParallelMatMulTransposedWith(pool, Resolve(vectorize), a, b, w1, h1, w2, h2, r)
}

// ParallelMatMulTransposedWith is ParallelMatMulTransposed on an explicitly
// chosen backend.
func ParallelMatMulTransposedWith(pool *workerpool.Pool, backend Backend, a, b []float32, w1, h1, w2, h2 int, r []float32) {
	must(ValidateMatMulTransposed(a, b, w1, h1, w2, h2, r))
	k := kernelsFor(opMatMulTransposed, backend)
	checkProductAlignment(opMatMulTransposed, backend, a, b)

	b = b[:w2*h2]
	rows := func(start, end int) {
		k.matMulT(a[start*w1:end*w1], b, r[start*h2:end*h2], w1, end-start, h2)
	}
	if pool == nil {
		rows(0, h1)
		return
	}
	pool.ParallelFor(h1, rows)
}
