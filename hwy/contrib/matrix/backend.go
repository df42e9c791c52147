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
	"fmt"
	"strings"

	"github.com/hwy-kernels/simdmat/hwy"
)

// Backend identifies one of the interchangeable kernel implementations.
type Backend int

const (
	// BackendScalar is the portable reference implementation.
	BackendScalar Backend = iota

	// BackendNarrow uses 128-bit vectors (4 float32 lanes).
	BackendNarrow

	// BackendWide uses 256-bit vectors (8 float32 lanes). Its directly
	// loaded operands must start on a 32-byte boundary.
	BackendWide

	numBackends
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendScalar:
		return "scalar"
	case BackendNarrow:
		return "narrow"
	case BackendWide:
		return "wide"
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// Lanes returns the number of float32 values one step of the backend covers.
func (b Backend) Lanes() int {
	switch b {
	case BackendNarrow:
		return 4
	case BackendWide:
		return 8
	default:
		return 1
	}
}

// ParseBackend maps a name to a Backend. Besides the names returned by
// String, the instruction set names "sse", "neon" and "avx2" are accepted.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "novec":
		return BackendScalar, nil
	case "narrow", "sse", "neon":
		return BackendNarrow, nil
	case "wide", "avx2", "avx":
		return BackendWide, nil
	}
	return 0, fmt.Errorf("%w: unknown backend %q", ErrUnsupportedBackend, name)
}

// Backends returns every backend in order of increasing width.
func Backends() []Backend {
	return []Backend{BackendScalar, BackendNarrow, BackendWide}
}

// kernelSet is one backend's implementation of the four operations.
// Inputs have been validated and sliced to their exact lengths.
type kernelSet struct {
	add     func(a, b, r []float32)
	sub     func(a, b, r []float32)
	matMul  func(a, b, r []float32, w1, h1, w2 int)
	matMulT func(a, b, r []float32, w1, h1, h2 int)
}

var kernels = [numBackends]kernelSet{
	BackendScalar: {
		add:     addScalar,
		sub:     subScalar,
		matMul:  matMulScalar,
		matMulT: matMulTransposedScalar,
	},
	BackendNarrow: {
		add:     addNarrow,
		sub:     subNarrow,
		matMul:  matMulNarrow,
		matMulT: matMulTransposedNarrow,
	},
	BackendWide: {
		add:     addWide,
		sub:     subWide,
		matMul:  matMulWide,
		matMulT: matMulTransposedWide,
	},
}

// preferred is the backend used when a caller asks for vectorization.
// It is resolved once from the hwy dispatch level.
var preferred = backendForLevel(hwy.CurrentLevel())

// backendForLevel picks the backend whose lane count matches the level's
// registers.
func backendForLevel(level hwy.DispatchLevel) Backend {
	for _, b := range []Backend{BackendWide, BackendNarrow} {
		if b.Lanes() == level.Lanes32() {
			return b
		}
	}
	return BackendScalar
}

// Preferred returns the backend a vectorized call runs on: the widest
// backend that has native kernels in this binary and on this CPU, or
// BackendScalar when there is none.
func Preferred() Backend {
	return preferred
}

// Resolve returns the backend a call with the given vectorize flag runs on.
func Resolve(vectorize bool) Backend {
	if vectorize {
		return preferred
	}
	return BackendScalar
}

// Available returns the backends vectorized dispatch may choose from on this
// host, in order of increasing width. BackendScalar is always present.
func Available() []Backend {
	out := []Backend{BackendScalar}
	for b := BackendNarrow; b <= preferred; b++ {
		out = append(out, b)
	}
	return out
}

// Supported reports whether b can run in this process when selected
// explicitly. Builds without native kernels run the vector backends as
// portable Go with the same lane layout, so every backend is supported there.
func Supported(b Backend) bool {
	if b < 0 || b >= numBackends {
		return false
	}
	return backendSupported(b)
}

func kernelsFor(op string, b Backend) *kernelSet {
	if !Supported(b) {
		panic(precondition(op, ErrUnsupportedBackend, "%s cannot run on %s", b, hwy.Features()))
	}
	return &kernels[b]
}
