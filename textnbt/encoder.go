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

// Encoder writes the network form of a tagged binary tree: a
// Compound tag with no name, as required by the wire protocol this
// package serializes for. There is no decode counterpart — this
// package is write-only.
type Encoder interface {
	// Encode writes component's network form to the encoder's sink.
	// component must resolve to a Compound or Encode fails with a
	// StructuralFault wrapping ErrRootNotCompound.
	Encode(component Tag) error
}

// Option configures an Encoder at construction time.
type Option func(*encoderImpl)

// WithMaxDepth overrides the default maximum nesting depth (512).
// Encode fails with a StructuralFault wrapping ErrDepthExceeded once
// the tree nests past this many Compound/List levels.
func WithMaxDepth(depth int) Option {
	return func(e *encoderImpl) {
		e.maxDepth = depth
	}
}

const defaultMaxDepth = 512
