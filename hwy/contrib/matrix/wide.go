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

import "github.com/hwy-kernels/simdmat/hwy"

// 256-bit backend: 8 float32 lanes per vector.
//
// The products require A (and, for the transposed form, B) to start on a
// 32-byte boundary; the staged column is always 64-byte aligned. The callers
// in dispatch.go enforce this once per call, since row bands handed out by
// ParallelMatMul start wherever the row falls.

const wideLanes = 8

func addWide(a, b, r []float32) {
	end := hwy.FullChunks(len(r), wideLanes)
	for i := 0; i < end; i += wideLanes {
		loadWide(a[i:]).Add(loadWide(b[i:])).StoreSlice(r[i:])
	}
	addScalar(a[end:], b[end:], r[end:])
}

func subWide(a, b, r []float32) {
	end := hwy.FullChunks(len(r), wideLanes)
	for i := 0; i < end; i += wideLanes {
		loadWide(a[i:]).Sub(loadWide(b[i:])).StoreSlice(r[i:])
	}
	subScalar(a[end:], b[end:], r[end:])
}

// dotWide returns the dot product of x and y (len(y) >= len(x)).
//
// Lanes are reduced as ((s0+s1)+(s2+s3)) + ((s4+s5)+(s6+s7)), then the
// remaining len(x)%8 products are added in order.
func dotWide(x, y []float32) float32 {
	n := len(x)
	y = y[:n]
	end := hwy.FullChunks(n, wideLanes)

	sum := zeroWide()
	for k := 0; k < end; k += wideLanes {
		sum = sum.Add(loadWide(x[k:]).Mul(loadWide(y[k:])))
	}
	return accumulateTail(reduceWide(sum), x, y, end)
}

func matMulWide(a, b, r []float32, w1, h1, w2 int) {
	matMulStaged(a, b, r, w1, h1, w2, dotWide)
}

func matMulTransposedWide(a, b, r []float32, w1, h1, h2 int) {
	matMulRows(a, b, r, w1, h1, h2, dotWide)
}
