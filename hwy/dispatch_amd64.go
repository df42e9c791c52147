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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Fallback for when GOEXPERIMENT=simd is not enabled.
// The CPU is still inspected so Features() can report it, but no vector kernels
// are compiled in, so the level stays scalar.
// Build with GOEXPERIMENT=simd to get the SSE/AVX2 kernels.

func init() {
	features = CPUFeatures{
		Arch:    "amd64",
		HasAVX:  cpu.X86.HasAVX,
		HasAVX2: cpu.X86.HasAVX2,
		HasFMA:  cpu.X86.HasFMA,
		HasSSE4: cpu.X86.HasSSE41 || cpu.X86.HasSSE42,
	}
	setLevel(DispatchScalar)
}

// HasVectorKernels reports whether this binary carries SIMD kernels.
func HasVectorKernels() bool {
	return false
}
