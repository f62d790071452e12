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

// List is a homogeneous, ordered sequence. It declares a single
// element Kind once; every element must share it. The two
// representations the wire format otherwise needs — one List
// sub-variant per element kind, or a single (kind, elements) pair —
// are isomorphic, and this type picks the latter so the homogeneity
// invariant is enforced by the constructor rather than by the type
// system fanning out into thirteen List-of-X types.
type List struct {
	elementKind Kind
	elements    []Tag
}

var _ Tag = (*List)(nil)

// NewList creates a List declared to hold elements of kind, validating
// that every supplied element actually has that kind. An empty List
// may declare any kind (including End); it always serializes with
// element kind End regardless of what it declares, per the canonical
// empty-list encoding.
func NewList(kind Kind, elements ...Tag) (*List, error) {
	if !kind.valid() {
		return nil, newStructuralFault(ErrUnknownKind, kind.String())
	}
	for _, e := range elements {
		if e.Kind() != kind {
			return nil, newStructuralFault(ErrHeterogeneousList, e.Kind().String())
		}
	}
	return &List{elementKind: kind, elements: elements}, nil
}

// EmptyList creates the canonical empty list.
func EmptyList() *List { return &List{elementKind: KindEnd, elements: nil} }

// Kind implements Tag.
func (l *List) Kind() Kind { return KindList }

// ElementKind returns the list's declared element kind.
func (l *List) ElementKind() Kind { return l.elementKind }

// Elements returns the list's elements in order. The returned slice
// must not be mutated by the caller.
func (l *List) Elements() []Tag { return l.elements }
