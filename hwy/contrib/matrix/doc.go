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

// Package matrix provides dense float32 matrix kernels: elementwise add and
// subtract, matrix multiplication, and multiplication by a matrix stored
// transposed.
//
// Every operation has three interchangeable backends:
//   - BackendScalar: portable Go, the reference semantics
//   - BackendNarrow: 128-bit vectors, 4 lanes
//   - BackendWide: 256-bit vectors, 8 lanes
//
// Matrices are flat row-major []float32 slices with their width and height
// passed alongside. The caller owns every buffer; the kernels never retain
// them.
//
// Example usage:
//
//	// R = A * B where A is 3 wide and 2 high, B is 4 wide and 3 high.
//	a := hwy.AlignedFloat32s(3*2, 32)
//	b := make([]float32, 4*3)
//	r := make([]float32, 4*2)
//	matrix.MatMul(true, a, b, 3, 2, 4, 3, r)
//
// With vectorize set to true, a call runs on the widest backend that has
// native kernels on this host (see Preferred), and on the scalar backend
// otherwise. Native kernels need an amd64 build with GOEXPERIMENT=simd; the
// HWY_NO_SIMD and HWY_MAX_WIDTH environment variables described in package
// hwy narrow the choice further.
//
// Contract violations (nil buffers, non-positive or mismatched dimensions,
// short or overlapping buffers, misaligned operands on the wide backend)
// panic with a *PreconditionError before any buffer is read or written.
// Use the Validate functions to check a call up front.
//
// Calls keep no state between them apart from a pool of scratch buffers, so
// calls on disjoint buffers may run concurrently. Each kernel call is single
// threaded.
//
// ParallelMatMul and ParallelMatMulTransposed are convenience wrappers
// outside that kernel contract: they split one product into row bands, run
// each band as an ordinary single-threaded kernel call on a workerpool.Pool,
// and add no threading inside the kernels themselves.
package matrix
