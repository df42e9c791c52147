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

package hwy

// FullChunks returns how many leading elements of an n-element buffer are
// covered by whole steps of the given size. The remaining n-FullChunks(n, step)
// elements form the tail that must be handled with scalar code.
//
// step must be a power of two.
//
// Example:
//
//	end := hwy.FullChunks(len(a), 8)
//	for i := 0; i < end; i += 8 {
//	    // vector body
//	}
//	for i := end; i < len(a); i++ {
//	    // scalar tail
//	}
func FullChunks(n, step int) int {
	if n <= 0 {
		return 0
	}
	return n &^ (step - 1)
}

// AlignedSize rounds up size to the next multiple of lanes.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return ((size + lanes - 1) / lanes) * lanes
}
