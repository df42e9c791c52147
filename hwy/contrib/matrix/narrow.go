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

// 128-bit backend: 4 float32 lanes per vector. The dot product is unrolled
// twice, so each step of the inner loop consumes 8 elements.

const (
	narrowLanes = 4
	narrowStep  = 2 * narrowLanes
)

func addNarrow(a, b, r []float32) {
	end := hwy.FullChunks(len(r), narrowLanes)
	for i := 0; i < end; i += narrowLanes {
		loadNarrow(a[i:]).Add(loadNarrow(b[i:])).StoreSlice(r[i:])
	}
	addScalar(a[end:], b[end:], r[end:])
}

func subNarrow(a, b, r []float32) {
	end := hwy.FullChunks(len(r), narrowLanes)
	for i := 0; i < end; i += narrowLanes {
		loadNarrow(a[i:]).Sub(loadNarrow(b[i:])).StoreSlice(r[i:])
	}
	subScalar(a[end:], b[end:], r[end:])
}

// dotNarrow returns the dot product of x and y (len(y) >= len(x)).
//
// Lanes are accumulated with an unfused multiply then add, reduced as
// (s2+s3) + (s0+s1), and the remaining len(x)%8 products are added in order.
func dotNarrow(x, y []float32) float32 {
	n := len(x)
	y = y[:n]
	end := hwy.FullChunks(n, narrowStep)

	sum := zeroNarrow()
	for k := 0; k < end; k += narrowStep {
		sum = sum.Add(loadNarrow(x[k:]).Mul(loadNarrow(y[k:])))
		sum = sum.Add(loadNarrow(x[k+narrowLanes:]).Mul(loadNarrow(y[k+narrowLanes:])))
	}
	return accumulateTail(reduceNarrow(sum), x, y, end)
}

func matMulNarrow(a, b, r []float32, w1, h1, w2 int) {
	matMulStaged(a, b, r, w1, h1, w2, dotNarrow)
}

func matMulTransposedNarrow(a, b, r []float32, w1, h1, h2 int) {
	matMulRows(a, b, r, w1, h1, h2, dotNarrow)
}
