// Copyright (C) 2026 The go-textnbt Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textnbt

import (
	"errors"
	"fmt"
)

// Centralized sentinel causes. StructuralFault wraps one of these so
// callers can distinguish failure modes with errors.Is without
// depending on formatted message text. SinkWriteFailure wraps the
// sink's own error instead.
var (
	// ErrRootNotCompound indicates the value handed to Encode did not
	// resolve to a Compound tag.
	ErrRootNotCompound = errors.New("textnbt: root value is not a compound")
	// ErrDepthExceeded indicates the tree nests deeper than the
	// encoder's configured maximum depth.
	ErrDepthExceeded = errors.New("textnbt: maximum nesting depth exceeded")
	// ErrLengthOverflow indicates a string or array payload is longer
	// than its wire length field can represent.
	ErrLengthOverflow = errors.New("textnbt: payload length exceeds wire length field")
	// ErrHeterogeneousList indicates a List was constructed with
	// elements that do not match its declared element kind.
	ErrHeterogeneousList = errors.New("textnbt: list element kind mismatch")
	// ErrUnknownKind indicates a Kind value outside the closed set of
	// thirteen defined tag kinds.
	ErrUnknownKind = errors.New("textnbt: unknown tag kind")
)

// StructuralFault reports a fatal invariant violation: a tree shape
// the format cannot represent, rather than an I/O failure. Per §7 it
// aborts the encode; there is no partial-state recovery.
type StructuralFault struct {
	cause error
	note  string
}

func newStructuralFault(cause error, note string) *StructuralFault {
	return &StructuralFault{cause: cause, note: note}
}

// Error implements error.
func (f *StructuralFault) Error() string {
	if f.note == "" {
		return fmt.Sprintf("textnbt: structural fault: %v", f.cause)
	}
	return fmt.Sprintf("textnbt: structural fault: %v (%s)", f.cause, f.note)
}

// Unwrap exposes the sentinel cause for errors.Is/errors.As.
func (f *StructuralFault) Unwrap() error { return f.cause }

// SinkWriteFailure reports that the output sink returned an I/O
// error. It is never retried; the caller must discard the buffer.
type SinkWriteFailure struct {
	cause error
}

func newSinkWriteFailure(cause error) *SinkWriteFailure {
	return &SinkWriteFailure{cause: cause}
}

// Error implements error.
func (f *SinkWriteFailure) Error() string {
	return fmt.Sprintf("textnbt: sink write failure: %v", f.cause)
}

// Unwrap exposes the underlying sink error for errors.Is/errors.As.
func (f *SinkWriteFailure) Unwrap() error { return f.cause }
