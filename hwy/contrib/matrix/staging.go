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

import (
	"sync"

	"github.com/hwy-kernels/simdmat/hwy"
)

// columnStage is scratch space holding one column of a row-major matrix
// contiguously, so the dot-product loop can use vector loads on it.
// The buffer starts on a hwy.VectorAlignment boundary.
type columnStage struct {
	buf []float32
}

// stagePool hands out staging buffers. Each buffer only grows, so a pooled
// buffer ends up sized for the largest inner dimension it has served.
var stagePool = sync.Pool{
	New: func() any { return new(columnStage) },
}

// getStage returns a staging buffer with room for n elements.
// Release it with putStage.
func getStage(n int) *columnStage {
	s := stagePool.Get().(*columnStage)
	if cap(s.buf) < n {
		s.buf = hwy.AlignedFloat32s(hwy.AlignedSize(n, 16), hwy.VectorAlignment)
	}
	return s
}

func putStage(s *columnStage) {
	stagePool.Put(s)
}

// load copies column col of b (rows rows, each stride elements long) into
// the stage and returns the contiguous copy.
func (s *columnStage) load(b []float32, col, rows, stride int) []float32 {
	dst := s.buf[:rows]
	for k := range dst {
		dst[k] = b[k*stride+col]
	}
	return dst
}

// dotFunc is a backend's dot product over two equally long rows.
type dotFunc func(x, y []float32) float32

// matMulStaged drives a vectorized R = A * B: for each column i of B it
// stages the column once, then takes its dot product with every row of A.
func matMulStaged(a, b, r []float32, w1, h1, w2 int, dot dotFunc) {
	stage := getStage(w1)
	defer putStage(stage)

	for i := range w2 {
		col := stage.load(b, i, w1, w2)
		for j := range h1 {
			r[j*w2+i] = dot(a[j*w1:(j+1)*w1], col)
		}
	}
}

// matMulRows drives a vectorized R = A * B^T. Both operands already expose
// contiguous rows of length w1, so no staging is needed.
func matMulRows(a, b, r []float32, w1, h1, h2 int, dot dotFunc) {
	for j := range h1 {
		aRow := a[j*w1 : (j+1)*w1]
		for i := range h2 {
			r[j*h2+i] = dot(aRow, b[i*w1:(i+1)*w1])
		}
	}
}
