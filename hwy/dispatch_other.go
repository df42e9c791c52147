//go:build !amd64 && !arm64

package hwy

import "runtime"

func init() {
	// Non-amd64 architectures fall back to scalar mode.
	features = CPUFeatures{Arch: runtime.GOARCH}
	setLevel(DispatchScalar)
}

// HasVectorKernels reports whether this binary carries SIMD kernels.
func HasVectorKernels() bool {
	return false
}
