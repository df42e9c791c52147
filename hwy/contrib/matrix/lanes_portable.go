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

//go:build !amd64 || !goexperiment.simd

package matrix

// Portable lane types with the same method set as their archsimd
// counterparts. They keep the lane layout and reduction order of the native
// kernels, so the narrow and wide backends give identical results with or
// without GOEXPERIMENT=simd; only the speed differs.

type narrowVec [4]float32

type wideVec [8]float32

func loadNarrow(s []float32) narrowVec {
	return narrowVec(s[:4])
}

func zeroNarrow() narrowVec {
	return narrowVec{}
}

func (v narrowVec) Add(w narrowVec) narrowVec {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

func (v narrowVec) Sub(w narrowVec) narrowVec {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

func (v narrowVec) Mul(w narrowVec) narrowVec {
	for i := range v {
		v[i] = float32(v[i] * w[i])
	}
	return v
}

func (v narrowVec) StoreSlice(s []float32) {
	copy(s[:4], v[:])
}

// reduceNarrow sums the lanes as (s2+s3) + (s0+s1).
func reduceNarrow(v narrowVec) float32 {
	return (v[2] + v[3]) + (v[0] + v[1])
}

func loadWide(s []float32) wideVec {
	return wideVec(s[:8])
}

func zeroWide() wideVec {
	return wideVec{}
}

func (v wideVec) Add(w wideVec) wideVec {
	for i := range v {
		v[i] += w[i]
	}
	return v
}

func (v wideVec) Sub(w wideVec) wideVec {
	for i := range v {
		v[i] -= w[i]
	}
	return v
}

func (v wideVec) Mul(w wideVec) wideVec {
	for i := range v {
		v[i] = float32(v[i] * w[i])
	}
	return v
}

func (v wideVec) StoreSlice(s []float32) {
	copy(s[:8], v[:])
}

// reduceWide sums the lanes as ((s0+s1)+(s2+s3)) + ((s4+s5)+(s6+s7)).
func reduceWide(v wideVec) float32 {
	return ((v[0] + v[1]) + (v[2] + v[3])) + ((v[4] + v[5]) + (v[6] + v[7]))
}

func backendSupported(Backend) bool {
	return true
}
