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
	"math/rand"
	"testing"

	"github.com/hwy-kernels/simdmat/hwy"
)

var benchSizes = []int{16, 64, 256}

func BenchmarkAdd(b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(1))

	for _, size := range benchSizes {
		x := randomFloats(rng, size*size)
		y := randomFloats(rng, size*size)
		r := make([]float32, size*size)

		for _, backend := range supportedBackends() {
			b.Run(backend.String()+"/"+sizeStr(size, size), func(b *testing.B) {
				b.SetBytes(int64(3 * size * size * 4))
				for b.Loop() {
					AddWith(backend, x, y, size, size, r)
				}
			})
		}
	}
}

func BenchmarkMatMul(b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(2))

	for _, size := range benchSizes {
		x := randomFloats(rng, size*size)
		y := randomFloats(rng, size*size)
		r := make([]float32, size*size)
		flops := float64(2*size*size*size) / 1e9

		for _, backend := range supportedBackends() {
			b.Run(backend.String()+"/"+sizeStr(size, size), func(b *testing.B) {
				b.SetBytes(int64(3 * size * size * 4))
				for b.Loop() {
					MatMulWith(backend, x, y, size, size, size, size, r)
				}
				b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds(), "GFLOPS")
			})
		}
	}
}

func BenchmarkMatMulTransposed(b *testing.B) {
	b.Logf("Dispatch level: %s", hwy.CurrentName())
	rng := rand.New(rand.NewSource(3))

	for _, size := range benchSizes {
		x := randomFloats(rng, size*size)
		y := randomFloats(rng, size*size)
		r := make([]float32, size*size)
		flops := float64(2*size*size*size) / 1e9

		for _, backend := range supportedBackends() {
			b.Run(backend.String()+"/"+sizeStr(size, size), func(b *testing.B) {
				b.SetBytes(int64(3 * size * size * 4))
				for b.Loop() {
					MatMulTransposedWith(backend, x, y, size, size, size, size, r)
				}
				b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds(), "GFLOPS")
			})
		}
	}
}
