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

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

func init() {
	features = CPUFeatures{
		Arch:    "amd64",
		HasAVX:  cpu.X86.HasAVX,
		HasAVX2: cpu.X86.HasAVX2,
		HasFMA:  cpu.X86.HasFMA,
		HasSSE4: cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
	}

	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setLevel(DispatchScalar)
		return
	}

	setLevel(capLevel(detectCPUFeatures()))
}

func detectCPUFeatures() DispatchLevel {
	// archsimd emits VEX-encoded instructions, so even the 128-bit
	// kernels need AVX.
	switch {
	case archsimd.X86.AVX2():
		return DispatchAVX2
	case archsimd.X86.AVX():
		return DispatchSSE
	default:
		return DispatchScalar
	}
}

// HasVectorKernels reports whether this binary carries SIMD kernels.
func HasVectorKernels() bool {
	return true
}
