package hwy

import "strings"

// CPUFeatures is a snapshot of the instruction set extensions the host
// reports, independent of which kernels were compiled in.
type CPUFeatures struct {
	Arch string

	// x86-64
	HasSSE4 bool
	HasAVX  bool
	HasAVX2 bool
	HasFMA  bool

	// arm64
	HasASIMD bool
	HasSVE   bool
}

// features is filled in by init() in dispatch_*.go files.
var features CPUFeatures

// Features returns the host CPU feature snapshot taken at startup.
func Features() CPUFeatures {
	return features
}

// String lists the detected extensions, e.g. "amd64: sse4 avx avx2 fma".
func (f CPUFeatures) String() string {
	var names []string
	for _, flag := range []struct {
		name string
		on   bool
	}{
		{"sse4", f.HasSSE4},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"fma", f.HasFMA},
		{"asimd", f.HasASIMD},
		{"sve", f.HasSVE},
	} {
		if flag.on {
			names = append(names, flag.name)
		}
	}
	if len(names) == 0 {
		return f.Arch + ": none"
	}
	return f.Arch + ": " + strings.Join(names, " ")
}
