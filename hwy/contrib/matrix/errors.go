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
)

// Sentinel errors wrapped by *PreconditionError. Use errors.Is to classify.
var (
	// ErrNilBuffer means one of the input or output buffers was nil.
	ErrNilBuffer = errors.New("nil buffer")

	// ErrShape means a dimension was not positive, the inner dimensions
	// did not match, or a buffer was shorter than its declared shape.
	ErrShape = errors.New("shape mismatch")

	// ErrOverlap means the output buffer overlaps an input in a way the
	// operation does not allow.
	ErrOverlap = errors.New("overlapping buffers")

	// ErrMisaligned means a buffer handed to the 256-bit backend does not
	// start on a 32-byte boundary.
	ErrMisaligned = errors.New("misaligned buffer")

	// ErrUnsupportedBackend means the requested backend cannot run in
	// this process.
	ErrUnsupportedBackend = errors.New("unsupported backend")
)

// PreconditionError describes a violated call contract.
//
// The kernels panic with a *PreconditionError before touching any buffer;
// the Validate functions return the same value as an ordinary error.
type PreconditionError struct {
	Op  string // operation, e.g. "matrix.MatMul"
	Msg string // what was wrong
	Err error  // one of the sentinel errors above
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Msg)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func precondition(op string, sentinel error, format string, args ...any) *PreconditionError {
	return &PreconditionError{Op: op, Msg: fmt.Sprintf(format, args...), Err: sentinel}
}
