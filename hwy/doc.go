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

// Package hwy reports which SIMD instruction set the kernels in this module
// may use, and provides the small memory and tail-loop helpers they share.
//
// The level is resolved once at startup from the host CPU (via
// golang.org/x/sys/cpu and, with GOEXPERIMENT=simd, simd/archsimd) and from
// what was compiled into the binary:
//
//	fmt.Println(hwy.CurrentName()) // "avx2", "sse" or "scalar"
//
// Environment overrides:
//   - HWY_NO_SIMD=1 forces the scalar level.
//   - HWY_MAX_WIDTH=128 keeps an AVX2 host on the 128-bit kernels.
//
// Buffers handed to the 256-bit kernels must start on a 32-byte boundary;
// AlignedFloat32s allocates such buffers.
package hwy
