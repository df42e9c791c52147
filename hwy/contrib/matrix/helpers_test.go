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
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hwy-kernels/simdmat/hwy"
)

// approx accepts the reassociation differences between backends.
var approx = cmpopts.EquateApprox(1e-4, 1e-4)

// aligned returns a 32-byte aligned copy of vals, usable on every backend.
func aligned(vals ...float32) []float32 {
	s := hwy.AlignedFloat32s(len(vals), 32)
	copy(s, vals)
	return s
}

// randomInts fills a new aligned buffer with integers in [-4, 4]; every
// product and partial sum of such values is exact in float32.
func randomInts(rng *rand.Rand, n int) []float32 {
	s := hwy.AlignedFloat32s(n, 32)
	for i := range s {
		s[i] = float32(rng.Intn(9) - 4)
	}
	return s
}

// randomFloats fills a new aligned buffer with values in [-1, 1).
func randomFloats(rng *rand.Rand, n int) []float32 {
	s := hwy.AlignedFloat32s(n, 32)
	for i := range s {
		s[i] = rng.Float32()*2 - 1
	}
	return s
}

// identity returns an n x n identity matrix.
func identity(n int) []float32 {
	s := hwy.AlignedFloat32s(n*n, 32)
	for i := range n {
		s[i*n+i] = 1
	}
	return s
}

// filled returns a buffer of n copies of v.
func filled(n int, v float32) []float32 {
	s := hwy.AlignedFloat32s(n, 32)
	for i := range s {
		s[i] = v
	}
	return s
}

// supportedBackends returns the backends that can run in this process.
func supportedBackends() []Backend {
	var out []Backend
	for _, b := range Backends() {
		if Supported(b) {
			out = append(out, b)
		}
	}
	return out
}

// withPreferred swaps the backend used by vectorized calls for one test.
func withPreferred(t *testing.T, b Backend) {
	t.Helper()
	old := preferred
	preferred = b
	t.Cleanup(func() { preferred = old })
}

// capturePanic runs fn and returns the error it panicked with, or nil.
func capturePanic(fn func()) (err error) {
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				e = fmt.Errorf("non-error panic: %v", p)
			}
			err = e
		}
	}()
	fn()
	return nil
}

// expectPrecondition asserts that fn panics with a *PreconditionError
// wrapping sentinel.
func expectPrecondition(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	err := capturePanic(fn)
	if err == nil {
		t.Fatalf("expected panic wrapping %v, got none", sentinel)
	}
	var pe *PreconditionError
	if !errors.As(err, &pe) {
		t.Fatalf("panic value %v (%T) is not a *PreconditionError", err, err)
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("panic %v does not wrap %v", err, sentinel)
	}
}

func diffExact(want, got []float32) string {
	return cmp.Diff(want, got)
}

func diffApprox(want, got []float32) string {
	return cmp.Diff(want, got, approx)
}

func sizeStr(w, h int) string {
	return fmt.Sprintf("%dx%d", w, h)
}
