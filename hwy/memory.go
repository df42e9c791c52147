package hwy

import "unsafe"

// VectorAlignment is the byte alignment used for scratch buffers that are fed
// to vector loads. It covers a full cache line and every register width in use.
const VectorAlignment = 64

const float32Size = int(unsafe.Sizeof(float32(0)))

// AlignedFloat32s allocates a zeroed slice of n float32s whose first element
// sits on an align-byte boundary. align must be a power of two and a multiple
// of 4.
//
// The Go allocator only guarantees 8- or 16-byte alignment for most size
// classes, so this over-allocates by up to align bytes and re-slices.
//
// Example:
//
//	a := hwy.AlignedFloat32s(m*k, 32) // satisfies the 256-bit kernels
func AlignedFloat32s(n, align int) []float32 {
	if align <= 0 || align&(align-1) != 0 || align%float32Size != 0 {
		panic("hwy: alignment must be a positive power of two multiple of 4")
	}
	if n <= 0 {
		return []float32{}
	}
	pad := align / float32Size
	buf := make([]float32, n+pad)
	off := AlignOffset(buf, align)
	return buf[off : off+n : off+n]
}

// AlignOffset returns how many elements must be skipped from the start of s
// to reach the next align-byte boundary. Zero means s is already aligned.
func AlignOffset(s []float32, align int) int {
	if len(s) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	mis := int(addr & uintptr(align-1))
	if mis == 0 {
		return 0
	}
	return (align - mis) / float32Size
}

// IsAlignedPtr reports whether the first element of s sits on an align-byte
// boundary. Empty slices are considered aligned.
func IsAlignedPtr(s []float32, align int) bool {
	return AlignOffset(s, align) == 0
}
