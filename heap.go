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

// Segment is one fixed-stride run of records within a heap: Data holds
// Count*Stride bytes back to back, record r occupying
// Data[r*Stride : (r+1)*Stride].
type Segment struct {
	Data   []byte
	Stride int
	Count  uint16
}

// Heap is a named kind's full set of segments (element heap, attribute
// heap, name heap, or value heap — though name and value heaps are
// addressed by index/address directly rather than through Heap; see
// nametable.go and valuetable.go).
type Heap struct {
	kind     string
	segments []Segment
}

// NewHeap constructs a Heap of the given kind (used only in error
// messages) over the given segments.
func NewHeap(kind string, segments []Segment) *Heap {
	return &Heap{kind: kind, segments: segments}
}

// readerAt returns a Cursor positioned at the first byte of the record
// addressed by addr, failing with OutOfBoundsError if either index is
// out of range.
func (h *Heap) readerAt(addr Address) (*Cursor, error) {
	if int(addr.Segment) >= len(h.segments) {
		return nil, NewOutOfBoundsError(h.kind, addr)
	}

	seg := h.segments[addr.Segment]
	if addr.Element >= seg.Count {
		return nil, NewOutOfBoundsError(h.kind, addr)
	}

	start := int(addr.Element) * seg.Stride
	end := start + seg.Stride
	return &Cursor{buf: seg.Data[start:end], pos: 0}, nil
}
