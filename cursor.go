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

import "encoding/binary"

// Cursor reads little-endian primitives out of a single record's bytes,
// advancing its position. Records are packed with no padding, so every
// read is byte-wise rather than a reinterpret-cast of the underlying
// buffer.
type Cursor struct {
	buf []byte
	pos int
}

// ReadUint16 reads a little-endian u16 and advances the cursor.
func (c *Cursor) ReadUint16() uint16 {
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v
}

// ReadUint32 reads a little-endian u32 and advances the cursor.
func (c *Cursor) ReadUint32() uint32 {
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v
}

// ReadInt32 reads a little-endian i32 and advances the cursor.
func (c *Cursor) ReadInt32() int32 {
	return int32(c.ReadUint32())
}

// ReadAddress reads an Address: segment index first, then element
// index, each a little-endian u16.
func (c *Cursor) ReadAddress() Address {
	return Address{Segment: c.ReadUint16(), Element: c.ReadUint16()}
}

// Rewind moves the cursor back n bytes. Used to re-read a just-consumed
// 4-byte primitive field as an Address, for a string-typed attribute
// realizer (a string attribute's u32 primitive is reinterpreted as an
// Address without a second heap read).
func (c *Cursor) Rewind(n int) {
	c.pos -= n
}
