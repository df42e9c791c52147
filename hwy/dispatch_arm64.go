//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// ARM64 (AArch64) always has NEON (ASIMD) available; it's part of the
	// ARMv8-A base architecture. We record it, but the matrix kernels have no
	// NEON build yet, so the dispatch level stays scalar.
	features = CPUFeatures{
		Arch:     "arm64",
		HasASIMD: cpu.ARM64.HasASIMD,
		HasSVE:   cpu.ARM64.HasSVE,
	}
	setLevel(DispatchScalar)
}

// HasVectorKernels reports whether this binary carries SIMD kernels.
func HasVectorKernels() bool {
	return false
}
