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

// Package diag produces read-only, serializable snapshots of a
// materialized element tree for external tooling, in the idiom of the
// teacher's array_dump.go / map_dump.go / map_debug.go: a walk of
// already-loaded structure into a plain value, not a parser and not a
// writer back to the container's on-disk form.
package diag

import (
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/quaycorp/datacenter"
)

// Node is a read-only snapshot of one Element: its name, its
// attributes (by name, in a CBOR-stable representation), its
// extension descriptor's raw bytes (truncated per
// datacenter.SetMaxDiagnosticDescriptorBytes, never interpreted), and
// its children in the same order Element.Children returned them.
type Node struct {
	Name       string      `cbor:"name"`
	Attributes []Attribute `cbor:"attributes"`
	Extension  []byte      `cbor:"extension,omitempty"`
	Children   []*Node     `cbor:"children,omitempty"`
}

// Attribute is one name/value pair in a Node's Attributes list. Kept
// as a list rather than a map; Snapshot fills it in ascending name
// order, so the CBOR encoding of the list is deterministic.
type Attribute struct {
	Name  string      `cbor:"name"`
	Kind  string      `cbor:"kind"`
	Value interface{} `cbor:"value"`
}

var encMode, decMode = mustCodecModes()

func mustCodecModes() (cbor.EncMode, cbor.DecMode) {
	enc, err := cbor.EncOptions{Sort: cbor.SortCoreDeterministic}.EncMode()
	if err != nil {
		panic(err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return enc, dec
}

// Snapshot walks e (and, recursively, its children) into a Node tree.
// It realizes every attribute and child along the way, so it performs
// the same reads (and can fail the same way) as calling Attributes and
// Children directly on every descendant of e.
func Snapshot(e *datacenter.Element) (*Node, error) {
	attrs, err := e.Attributes()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(attrs))
	for n := range attrs {
		names = append(names, n)
	}
	sort.Strings(names)

	out := &Node{Name: e.Name(), Attributes: make([]Attribute, 0, len(names))}

	for _, n := range names {
		out.Attributes = append(out.Attributes, toAttribute(n, attrs[n]))
	}

	if ext := e.Extension(); len(ext.Raw) > 0 {
		out.Extension = truncate(ext.Raw)
	}

	kids, err := e.Children()
	if err != nil {
		return nil, err
	}
	for _, k := range kids {
		child, err := Snapshot(k)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}

	return out, nil
}

func toAttribute(name string, v datacenter.TypedValue) Attribute {
	if i, ok := v.Int32(); ok {
		return Attribute{Name: name, Kind: "int32", Value: i}
	}
	if f, ok := v.Single(); ok {
		return Attribute{Name: name, Kind: "single", Value: f}
	}
	if b, ok := v.Boolean(); ok {
		return Attribute{Name: name, Kind: "boolean", Value: b}
	}
	if s, ok := v.String(); ok {
		return Attribute{Name: name, Kind: "string", Value: s}
	}
	return Attribute{Name: name, Kind: "null", Value: nil}
}

func truncate(b []byte) []byte {
	limit := datacenter.MaxDiagnosticDescriptorBytes()
	if len(b) <= limit {
		return b
	}
	return b[:limit]
}

// Encode renders a Node tree as canonical CBOR.
func Encode(n *Node) ([]byte, error) {
	return encMode.Marshal(n)
}

// Decode parses canonical CBOR produced by Encode back into a Node
// tree.
func Decode(data []byte) (*Node, error) {
	var n Node
	if err := decMode.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
