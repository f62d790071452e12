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

	"github.com/cybergarage/go-logger/log"
)

// EncodeTextComponent is the package's public surface: given a
// fully-resolved text-component tree (component must be a Compound),
// it returns the network form's bytes. Translation, SNBT parsing, and
// command dispatch are the caller's responsibility; this function
// only serializes an already-built tree.
func EncodeTextComponent(component Tag, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf, opts...)
	if err := enc.Encode(component); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	log.Debugf("textnbt: encoded text component (len=%d): %s", len(out), debugHexPreview(out, 50))
	return out, nil
}
