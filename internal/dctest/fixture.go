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

// Package dctest hand-assembles the exact on-disk byte layout of
// element and attribute records (packed little-endian, no padding) so
// tests can build a container without going through a writer.
//
// This package is test-only. It is not a writer/serializer for the
// container format; it only produces the byte shapes this module's
// own tests need.
package dctest

import (
	"encoding/binary"

	"github.com/quaycorp/datacenter"
)

// ElementSpec describes one element record to encode.
type ElementSpec struct {
	NameIndexPlusOne uint16
	ExtIndex         uint16
	Flags            uint16
	AttrCount        uint16
	AttrBase         datacenter.Address
	ChildCount       uint16
	ChildBase        datacenter.Address
}

// AttributeSpec describes one attribute record to encode.
type AttributeSpec struct {
	NameIndexPlusOne uint16
	TypeCode         uint16
	ExtCode          uint16
	Primitive        uint32
}

// EncodeElement packs spec into a 16-byte element record.
func EncodeElement(spec ElementSpec) []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint16(buf[0:], spec.NameIndexPlusOne)
	binary.LittleEndian.PutUint16(buf[2:], (spec.ExtIndex<<4)|(spec.Flags&0xF))
	binary.LittleEndian.PutUint16(buf[4:], spec.AttrCount)
	binary.LittleEndian.PutUint16(buf[6:], spec.ChildCount)
	binary.LittleEndian.PutUint16(buf[8:], spec.AttrBase.Segment)
	binary.LittleEndian.PutUint16(buf[10:], spec.AttrBase.Element)
	binary.LittleEndian.PutUint16(buf[12:], spec.ChildBase.Segment)
	binary.LittleEndian.PutUint16(buf[14:], spec.ChildBase.Element)
	return buf
}

// EncodeAttribute packs spec into an 8-byte attribute record.
func EncodeAttribute(spec AttributeSpec) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint16(buf[0:], spec.NameIndexPlusOne)
	binary.LittleEndian.PutUint16(buf[2:], (spec.ExtCode<<2)|(spec.TypeCode&0x3))
	binary.LittleEndian.PutUint32(buf[4:], spec.Primitive)
	return buf
}

// EncodeAddressAttribute packs an attribute whose primitive is an
// Address (used for string-typed attributes, whose primitive is a
// value-table Address rather than a numeric literal).
func EncodeAddressAttribute(nameIndexPlusOne uint16, typeCode uint16, addr datacenter.Address) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint16(buf[0:], nameIndexPlusOne)
	binary.LittleEndian.PutUint16(buf[2:], typeCode&0x3)
	binary.LittleEndian.PutUint16(buf[4:], addr.Segment)
	binary.LittleEndian.PutUint16(buf[6:], addr.Element)
	return buf
}

// Segment builds a single-segment datacenter.Segment out of
// back-to-back fixed-stride records.
func Segment(stride int, records ...[]byte) datacenter.Segment {
	buf := make([]byte, 0, stride*len(records))
	for _, r := range records {
		if len(r) != stride {
			panic("dctest: record does not match segment stride")
		}
		buf = append(buf, r...)
	}
	return datacenter.Segment{Data: buf, Stride: stride, Count: uint16(len(records))}
}

// Builder incrementally assembles a datacenter.LoaderInput from
// higher-level Go values, so a test can describe a small tree without
// hand-computing every byte offset.
type Builder struct {
	names       []string
	values      map[datacenter.Address]string
	elementRecs [][]byte
	attrRecs    [][]byte
	extensions  []datacenter.ExtensionDescriptor
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{values: make(map[datacenter.Address]string)}
}

// Name interns name and returns its 1-based on-disk
// name_index_plus_one.
func (b *Builder) Name(name string) uint16 {
	b.names = append(b.names, name)
	return uint16(len(b.names))
}

// Value stores s at addr in the value table for later string-attribute
// lookups.
func (b *Builder) Value(addr datacenter.Address, s string) {
	b.values[addr] = s
}

// Extension appends a descriptor and returns its index.
func (b *Builder) Extension(raw []byte) uint16 {
	b.extensions = append(b.extensions, datacenter.ExtensionDescriptor{Raw: raw})
	return uint16(len(b.extensions) - 1)
}

// PutElement writes an element record at the given element-heap index
// within segment 0 (tests in this module never need more than one
// segment per heap; multi-segment behavior is covered directly by
// heap_test.go against literal Segment values).
func (b *Builder) PutElement(index int, spec ElementSpec) {
	b.growElements(index)
	b.elementRecs[index] = EncodeElement(spec)
}

// PutAttribute writes an attribute record at the given attribute-heap
// index within segment 0.
func (b *Builder) PutAttribute(index int, rec []byte) {
	b.growAttrs(index)
	b.attrRecs[index] = rec
}

func (b *Builder) growElements(upTo int) {
	for len(b.elementRecs) <= upTo {
		b.elementRecs = append(b.elementRecs, EncodeElement(ElementSpec{}))
	}
}

func (b *Builder) growAttrs(upTo int) {
	for len(b.attrRecs) <= upTo {
		b.attrRecs = append(b.attrRecs, EncodeAttribute(AttributeSpec{}))
	}
}

// Build assembles the accumulated records into a LoaderInput.
func (b *Builder) Build() datacenter.LoaderInput {
	input := datacenter.LoaderInput{
		Names:      b.names,
		Values:     b.values,
		Extensions: b.extensions,
	}
	if len(b.elementRecs) > 0 {
		input.ElementSegments = []datacenter.Segment{Segment(16, b.elementRecs...)}
	}
	if len(b.attrRecs) > 0 {
		input.AttributeSegments = []datacenter.Segment{Segment(8, b.attrRecs...)}
	}
	return input
}
