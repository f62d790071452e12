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
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestPrimitivesBigEndian(t *testing.T) {
	var buf bytes.Buffer

	if err := putI16BE(&buf, -1); err != nil {
		t.Fatalf("putI16BE: %v", err)
	}
	if err := putI32BE(&buf, -1); err != nil {
		t.Fatalf("putI32BE: %v", err)
	}
	if err := putI64BE(&buf, 0x0102030405060708); err != nil {
		t.Fatalf("putI64BE: %v", err)
	}

	want := []byte{
		0xFF, 0xFF,
		0xFF, 0xFF, 0xFF, 0xFF,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %X, want %X", buf.Bytes(), want)
	}
}

func TestPutF32BEPreservesNaNBits(t *testing.T) {
	var buf bytes.Buffer
	nan := math.Float32frombits(0x7FC00001)
	if err := putF32BE(&buf, nan); err != nil {
		t.Fatalf("putF32BE: %v", err)
	}
	want := []byte{0x7F, 0xC0, 0x00, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %X, want %X", buf.Bytes(), want)
	}
}

func TestPutU16LenPrefixedEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := putU16LenPrefixed(&buf, nil); err != nil {
		t.Fatalf("putU16LenPrefixed: %v", err)
	}
	want := []byte{0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %X, want %X", buf.Bytes(), want)
	}
}

func TestPutI32LenPrefixedEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := putI32LenPrefixed(&buf, nil); err != nil {
		t.Fatalf("putI32LenPrefixed: %v", err)
	}
	want := []byte{0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %X, want %X", buf.Bytes(), want)
	}
}

func TestPutU16LengthOverflow(t *testing.T) {
	var buf bytes.Buffer
	err := putU16Length(&buf, 65536)
	if !errors.Is(err, ErrLengthOverflow) {
		t.Fatalf("expected ErrLengthOverflow, got %v", err)
	}
}

func TestPutU16LengthMaxBoundary(t *testing.T) {
	var buf bytes.Buffer
	if err := putU16Length(&buf, 65535); err != nil {
		t.Fatalf("putU16Length at boundary: %v", err)
	}
	want := []byte{0xFF, 0xFF}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got %X, want %X", buf.Bytes(), want)
	}
}

func TestPrimitiveSinkFailurePropagates(t *testing.T) {
	failing := &failingWriter{failAfter: 0}
	if err := putU8(failing, 1); err == nil {
		t.Fatalf("expected error from failing sink")
	} else {
		var fail *SinkWriteFailure
		if !errors.As(err, &fail) {
			t.Fatalf("expected *SinkWriteFailure, got %T", err)
		}
	}
}
