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

import (
	"os"
	"strconv"
)

// DispatchLevel represents the SIMD instruction set the kernels may use.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE indicates 128-bit vectors on x86-64 (4 float32 lanes).
	DispatchSSE

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD, 8 float32 lanes).
	DispatchAVX2
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE:
		return "sse"
	case DispatchAVX2:
		return "avx2"
	default:
		return "unknown"
	}
}

// Width returns the register width in bytes for the level.
// Scalar reports 16 so lane arithmetic stays well defined.
func (d DispatchLevel) Width() int {
	if d == DispatchAVX2 {
		return 32
	}
	return 16
}

// Lanes32 returns the number of float32 lanes in one register, or 1 for scalar.
func (d DispatchLevel) Lanes32() int {
	switch d {
	case DispatchSSE:
		return 4
	case DispatchAVX2:
		return 8
	default:
		return 1
	}
}

// IsWide reports whether the level uses 256-bit registers.
func (d DispatchLevel) IsWide() bool {
	return d == DispatchAVX2
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the SIMD instruction set kernels in this binary may use.
//
// This is the intersection of what the CPU supports and what was compiled in:
// a CPU with AVX2 still reports DispatchScalar when the binary was built
// without GOEXPERIMENT=simd.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE/NEON, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "sse", "scalar".
func CurrentName() string {
	return currentName
}

func setLevel(level DispatchLevel) {
	currentLevel = level
	currentWidth = level.Width()
	currentName = level.String()
}

// capLevel applies the HWY_MAX_WIDTH override to a detected level.
func capLevel(level DispatchLevel) DispatchLevel {
	if maxBits, ok := MaxWidthEnv(); ok && maxBits < 256 && level.IsWide() {
		if maxBits < 128 {
			return DispatchScalar
		}
		return DispatchSSE
	}
	return level
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, kernels use the scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxWidthEnv returns the register width cap in bits from HWY_MAX_WIDTH.
// HWY_MAX_WIDTH=128 keeps an AVX2 machine on the 128-bit kernels.
func MaxWidthEnv() (int, bool) {
	val := os.Getenv("HWY_MAX_WIDTH")
	if val == "" {
		return 0, false
	}
	bits, err := strconv.Atoi(val)
	if err != nil || bits <= 0 {
		return 0, false
	}
	return bits, true
}
