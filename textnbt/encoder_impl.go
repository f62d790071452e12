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
	"encoding/hex"
	"fmt"
	"io"

	"github.com/cybergarage/go-logger/log"
)

// encoderImpl is the concrete implementation of Encoder. It holds no
// state beyond the sink and the depth guard: there is nothing to
// carry between one call to Encode and the next.
type encoderImpl struct {
	w        io.Writer
	maxDepth int
}

var _ Encoder = (*encoderImpl)(nil)

// NewEncoder creates an Encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) Encoder {
	e := &encoderImpl{
		w:        w,
		maxDepth: defaultMaxDepth,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode implements Encoder. It writes the network form: the
// Compound tag id 0x0A followed by the compound body, with no name
// field — the named ("file form") root is not supported.
func (e *encoderImpl) Encode(component Tag) error {
	if component == nil || component.Kind() != KindCompound {
		kind := "nil"
		if component != nil {
			kind = component.Kind().String()
		}
		err := newStructuralFault(ErrRootNotCompound, kind)
		log.Errorf("textnbt: encode failed: %v", err)
		return err
	}

	if err := putU8(e.w, byte(KindCompound)); err != nil {
		log.Errorf("textnbt: encode failed: %v", err)
		return err
	}

	root := component.(*Compound)
	if err := e.writeCompound(root, 1); err != nil {
		log.Errorf("textnbt: encode failed: %v", err)
		return err
	}

	return nil
}

// writeCompound writes each entry of c in iteration order, then a
// single End terminator. The outer tag id for c itself is the
// caller's responsibility (either Encode for the root, or writePayload
// for a nested compound).
func (e *encoderImpl) writeCompound(c *Compound, depth int) error {
	if depth > e.maxDepth {
		return newStructuralFault(ErrDepthExceeded, fmt.Sprintf("compound at depth %d", depth))
	}
	for _, entry := range c.Entries() {
		if err := putU8(e.w, byte(entry.Value.Kind())); err != nil {
			return err
		}
		if err := putU16LenPrefixed(e.w, entry.Key); err != nil {
			return err
		}
		if err := e.writePayload(entry.Value, depth); err != nil {
			return err
		}
	}
	return putU8(e.w, byte(KindEnd))
}

// writePayload dispatches on t's Kind and writes its payload only: no
// tag id byte, no key. Those are written by the caller (writeCompound
// for named entries, writeList for list elements — which writes
// neither, since list elements carry no id or key at all).
func (e *encoderImpl) writePayload(t Tag, depth int) error {
	switch t.Kind() {
	case KindByte:
		return putI8(e.w, int8(t.(byteTag)))
	case KindShort:
		return putI16BE(e.w, int16(t.(shortTag)))
	case KindInt:
		return putI32BE(e.w, int32(t.(intTag)))
	case KindLong:
		return putI64BE(e.w, int64(t.(longTag)))
	case KindFloat:
		return putF32BE(e.w, float32(t.(floatTag)))
	case KindDouble:
		return putF64BE(e.w, float64(t.(doubleTag)))
	case KindByteArray:
		return putI32LenPrefixed(e.w, []byte(t.(byteArrayTag)))
	case KindString:
		return putU16LenPrefixed(e.w, MUTF8(t.(stringTag)))
	case KindIntArray:
		return e.writeIntArray([]int32(t.(intArrayTag)))
	case KindLongArray:
		return e.writeLongArray([]int64(t.(longArrayTag)))
	case KindCompound:
		return e.writeCompound(t.(*Compound), depth+1)
	case KindList:
		return e.writeList(t.(*List), depth+1)
	default:
		return newStructuralFault(ErrUnknownKind, t.Kind().String())
	}
}

func (e *encoderImpl) writeIntArray(v []int32) error {
	if err := putI32Length(e.w, len(v)); err != nil {
		return err
	}
	for _, n := range v {
		if err := putI32BE(e.w, n); err != nil {
			return err
		}
	}
	return nil
}

func (e *encoderImpl) writeLongArray(v []int64) error {
	if err := putI32Length(e.w, len(v)); err != nil {
		return err
	}
	for _, n := range v {
		if err := putI64BE(e.w, n); err != nil {
			return err
		}
	}
	return nil
}

// writeList performs the homogeneous-sequence contract: element-kind
// byte, i32 count, then each element's payload via writePayload — no
// per-element tag byte and no key, since every element shares the
// list's declared kind. An empty list always emits element kind End
// and count 0, regardless of the list's declared kind.
func (e *encoderImpl) writeList(l *List, depth int) error {
	if depth > e.maxDepth {
		return newStructuralFault(ErrDepthExceeded, fmt.Sprintf("list at depth %d", depth))
	}
	elements := l.Elements()
	if len(elements) == 0 {
		if err := putU8(e.w, byte(KindEnd)); err != nil {
			return err
		}
		return putI32BE(e.w, 0)
	}
	if err := putU8(e.w, byte(l.ElementKind())); err != nil {
		return err
	}
	if err := putI32Length(e.w, len(elements)); err != nil {
		return err
	}
	for _, el := range elements {
		if err := e.writePayload(el, depth); err != nil {
			return err
		}
	}
	return nil
}

// debugHexPreview renders up to n leading bytes of b as hex, for the
// debug log line emitted by EncodeTextComponent.
func debugHexPreview(b []byte, n int) string {
	if len(b) > n {
		b = b[:n]
	}
	return hex.EncodeToString(b)
}
