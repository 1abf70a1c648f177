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

// LoaderInput is the concrete Go shape of the external loader
// contract: an already-decompressed, fully-resident byte image plus the
// side tables a loader hands the core. Everything here is produced by a
// collaborator out of this package's scope (decompression, file IO);
// this package only ever reads it.
type LoaderInput struct {
	// ElementSegments backs the element heap: 16-byte stride records.
	ElementSegments []Segment

	// AttributeSegments backs the attribute heap: 8-byte stride
	// records.
	AttributeSegments []Segment

	// Names is the name table in on-disk order (see NewNameTable).
	Names []string

	// Values maps a string attribute's resolved Address to its text.
	Values map[Address]string

	// Extensions is the element-extension table in on-disk order.
	// The materializer consults only its length; descriptor contents
	// are handed back unread by Element.Extension.
	Extensions []ExtensionDescriptor
}

const (
	elementRecordStride   = 16
	attributeRecordStride = 8
)

// New builds a DataCenter over the tables and segments in input and
// materializes its root Element.
func New(input LoaderInput) (*DataCenter, error) {
	for i, seg := range input.ElementSegments {
		if seg.Stride != elementRecordStride {
			return nil, NewStructuralError("element segment %d has stride %d, want %d", i, seg.Stride, elementRecordStride)
		}
	}
	for i, seg := range input.AttributeSegments {
		if seg.Stride != attributeRecordStride {
			return nil, NewStructuralError("attribute segment %d has stride %d, want %d", i, seg.Stride, attributeRecordStride)
		}
	}

	dc := &DataCenter{
		elements:   NewHeap("element", input.ElementSegments),
		attributes: NewHeap("attribute", input.AttributeSegments),
		names:      NewNameTable(input.Names),
		values:     NewValueTable(input.Values),
		extensions: NewExtensionTable(input.Extensions),
	}

	root, err := dc.materializeRoot()
	if err != nil {
		return nil, err
	}
	dc.root = root

	return dc, nil
}

// materializeRoot builds the container's root: the dummy root when
// there is no name table, otherwise the real element at Address(0,0)
// read under the lock.
func (dc *DataCenter) materializeRoot() (*Element, error) {
	if dc.names.Len() == 0 {
		return newDummyRoot(dc), nil
	}

	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return newElement(dc, Parent{center: dc}, ZeroAddress)
}
