/*
 * datacenter - segmented binary container reader
 *
 * Copyright Quay Corp contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package datacenter

// ExtensionDescriptor is one entry of the element-extension table. Its
// bytes are opaque to this package: the reader only ever validates that
// a non-zero ext_index falls within this table and never consults a
// descriptor's contents. An ext_index of 0 is accepted without a bounds
// check, so it passes even when the table is empty. The diag package
// may render Raw for tooling but never interprets it.
type ExtensionDescriptor struct {
	Raw []byte
}

// ExtensionTable is the ordered table of element-extension descriptors.
// Only its length is consulted by the materializer.
type ExtensionTable struct {
	entries []ExtensionDescriptor
}

// NewExtensionTable builds an ExtensionTable over entries in on-disk
// order.
func NewExtensionTable(entries []ExtensionDescriptor) *ExtensionTable {
	return &ExtensionTable{entries: entries}
}

// Len returns the number of extension descriptors.
func (t *ExtensionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// At returns the descriptor at index i. Callers must bounds-check
// against Len first.
func (t *ExtensionTable) At(i int) ExtensionDescriptor {
	return t.entries[i]
}
