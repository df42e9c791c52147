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

//go:build amd64 && goexperiment.simd

package matrix

import "simd/archsimd"

// Native lane types: the narrow and wide kernels compile to 128-bit and
// 256-bit AVX instructions.

type (
	narrowVec = archsimd.Float32x4
	wideVec   = archsimd.Float32x8
)

func loadNarrow(s []float32) narrowVec {
	return archsimd.LoadFloat32x4Slice(s)
}

// zeroNarrow returns the zero vector. BroadcastFloat32x4 needs AVX2, which
// the narrow backend may not have.
func zeroNarrow() narrowVec {
	return narrowVec{}
}

// reduceNarrow sums the lanes as (s2+s3) + (s0+s1).
func reduceNarrow(v narrowVec) float32 {
	hi := v.GetElem(2) + v.GetElem(3)
	lo := v.GetElem(0) + v.GetElem(1)
	return hi + lo
}

func loadWide(s []float32) wideVec {
	return archsimd.LoadFloat32x8Slice(s)
}

func zeroWide() wideVec {
	return wideVec{}
}

// reduceWide sums the lanes as ((s0+s1)+(s2+s3)) + ((s4+s5)+(s6+s7)).
func reduceWide(v wideVec) float32 {
	lo := v.GetLo()
	hi := v.GetHi()
	l := (lo.GetElem(0) + lo.GetElem(1)) + (lo.GetElem(2) + lo.GetElem(3))
	h := (hi.GetElem(0) + hi.GetElem(1)) + (hi.GetElem(2) + hi.GetElem(3))
	return l + h
}

func backendSupported(b Backend) bool {
	switch b {
	case BackendNarrow:
		return archsimd.X86.AVX()
	case BackendWide:
		return archsimd.X86.AVX2()
	default:
		return true
	}
}
