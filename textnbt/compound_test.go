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

import "testing"

func TestCompoundPutPreservesInsertionOrder(t *testing.T) {
	c := NewCompound().
		Put(MUTF8("z"), Byte(1)).
		Put(MUTF8("a"), Byte(2)).
		Put(MUTF8("m"), Byte(3))

	entries := c.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len() = %d, want 3", len(entries))
	}
	wantKeys := []string{"z", "a", "m"}
	for i, e := range entries {
		if e.Key.String() != wantKeys[i] {
			t.Errorf("entries[%d].Key = %q, want %q", i, e.Key.String(), wantKeys[i])
		}
	}
}

func TestCompoundPutIsChainable(t *testing.T) {
	c := NewCompound()
	ret := c.Put(MUTF8("k"), Byte(1))
	if ret != c {
		t.Fatalf("Put should return the same *Compound for chaining")
	}
}

func TestCompoundPutAllowsDuplicateKeys(t *testing.T) {
	c := NewCompound().Put(MUTF8("k"), Byte(1)).Put(MUTF8("k"), Byte(2))
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (duplicate keys are not deduplicated)", c.Len())
	}
}

func TestCompoundKind(t *testing.T) {
	c := NewCompound()
	if c.Kind() != KindCompound {
		t.Fatalf("Kind() = %s, want Compound", c.Kind())
	}
}

func TestEmptyCompoundLen(t *testing.T) {
	c := NewCompound()
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	if len(c.Entries()) != 0 {
		t.Fatalf("Entries() should be empty")
	}
}
