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

// Kind is the one-byte tag identifier that precedes every named
// compound entry and selects the payload encoder. The numeric value
// of a Kind constant is itself the wire identifier; there is no
// separate id lookup table.
type Kind uint8

// The closed set of tag kinds. Every value other than End carries a
// payload; End is only ever emitted as a compound terminator or as
// the element-kind byte of an empty List.
const (
	KindEnd       Kind = 0x00 // sentinel; no payload
	KindByte      Kind = 0x01 // signed 8-bit integer
	KindShort     Kind = 0x02 // signed 16-bit integer, big-endian
	KindInt       Kind = 0x03 // signed 32-bit integer, big-endian
	KindLong      Kind = 0x04 // signed 64-bit integer, big-endian
	KindFloat     Kind = 0x05 // IEEE-754 32-bit, big-endian bits
	KindDouble    Kind = 0x06 // IEEE-754 64-bit, big-endian bits
	KindByteArray Kind = 0x07 // i32 length, then that many raw bytes
	KindString    Kind = 0x08 // u16 length, then that many MUTF8 bytes
	KindList      Kind = 0x09 // homogeneous sequence
	KindCompound  Kind = 0x0A // named entries, terminated by End
	KindIntArray  Kind = 0x0B // i32 length, then that many i32
	KindLongArray Kind = 0x0C // i32 length, then that many i64
)

var kindNames = map[Kind]string{
	KindEnd:       "End",
	KindByte:      "Byte",
	KindShort:     "Short",
	KindInt:       "Int",
	KindLong:      "Long",
	KindFloat:     "Float",
	KindDouble:    "Double",
	KindByteArray: "ByteArray",
	KindString:    "String",
	KindList:      "List",
	KindCompound:  "Compound",
	KindIntArray:  "IntArray",
	KindLongArray: "LongArray",
}

// String returns a human-readable name for k, for logging and debugging.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// valid reports whether k is one of the thirteen defined kinds.
func (k Kind) valid() bool {
	_, ok := kindNames[k]
	return ok
}
