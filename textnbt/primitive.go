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
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cybergarage/go-safecast/safecast"
)

// This file is the primitive writer: a thin layer over an append-only
// io.Writer sink. Every function here appends exactly the bytes its
// name promises and wraps any sink error as SinkWriteFailure. None of
// them know about tags, keys, or recursion — that belongs to encoder_impl.go.

func putU8(w io.Writer, b byte) error {
	if _, err := w.Write([]byte{b}); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}

func putI8(w io.Writer, v int8) error {
	return putU8(w, byte(v))
}

func putU16BE(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}

func putI16BE(w io.Writer, v int16) error {
	return putU16BE(w, uint16(v))
}

func putU32BE(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}

func putI32BE(w io.Writer, v int32) error {
	return putU32BE(w, uint32(v))
}

func putU64BE(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}

func putI64BE(w io.Writer, v int64) error {
	return putU64BE(w, uint64(v))
}

func putF32BE(w io.Writer, v float32) error {
	// NaN bit patterns are preserved verbatim: Float32bits is a
	// reinterpret, never a canonicalization.
	return putU32BE(w, math.Float32bits(v))
}

func putF64BE(w io.Writer, v float64) error {
	return putU64BE(w, math.Float64bits(v))
}

// putU16Length writes n as a big-endian u16, failing with a
// StructuralFault (not a silent truncation) if n does not fit. This
// resolves the distilled spec's open question about oversize length
// fields: they are a precondition violation, not a cast.
func putU16Length(w io.Writer, n int) error {
	var v uint16
	if err := safecast.ToUint16(n, &v); err != nil {
		return newStructuralFault(ErrLengthOverflow, fmt.Sprintf("string length %d exceeds u16", n))
	}
	return putU16BE(w, v)
}

// putI32Length writes n as a big-endian i32, failing with a
// StructuralFault if n does not fit or would require a negative length.
func putI32Length(w io.Writer, n int) error {
	if n < 0 {
		return newStructuralFault(ErrLengthOverflow, fmt.Sprintf("array length %d is negative", n))
	}
	var v int32
	if err := safecast.ToInt32(n, &v); err != nil {
		return newStructuralFault(ErrLengthOverflow, fmt.Sprintf("array length %d exceeds i32", n))
	}
	return putI32BE(w, v)
}

// putU16LenPrefixed writes a u16 big-endian length followed by b.
func putU16LenPrefixed(w io.Writer, b []byte) error {
	if err := putU16Length(w, len(b)); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}

// putI32LenPrefixed writes an i32 big-endian length followed by b.
func putI32LenPrefixed(w io.Writer, b []byte) error {
	if err := putI32Length(w, len(b)); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return newSinkWriteFailure(err)
	}
	return nil
}
