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

// Entry is one named member of a Compound: a key plus the tag it holds.
type Entry struct {
	Key   MUTF8
	Value Tag
}

// Compound is an ordered, heterogeneous collection of named entries,
// terminated on the wire by a single End byte. Iteration order on
// encode matches insertion order (§3 "Compound").
type Compound struct {
	entries []Entry
}

var _ Tag = (*Compound)(nil)

// NewCompound creates an empty Compound ready for Put.
func NewCompound() *Compound {
	return &Compound{entries: nil}
}

// Kind implements Tag.
func (c *Compound) Kind() Kind { return KindCompound }

// Put appends a named entry and returns the receiver, so calls can be
// chained when building a tree.
func (c *Compound) Put(key MUTF8, value Tag) *Compound {
	c.entries = append(c.entries, Entry{Key: key, Value: value})
	return c
}

// Len returns the number of entries currently in the compound.
func (c *Compound) Len() int { return len(c.entries) }

// Entries returns the compound's entries in insertion order. The
// returned slice must not be mutated by the caller.
func (c *Compound) Entries() []Entry { return c.entries }
