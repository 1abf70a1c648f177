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

// dummyRootName is the name a DataCenter's root reports when the
// container carries no name table at all.
const dummyRootName = "__root__"

// Parent is an Element's weak up-reference: either the DataCenter (this
// Element is the root) or another Element (this Element is a child).
// Modeled as a tagged pair rather than an interface so navigation code
// never needs a type switch, and so neither variant owns the Element it
// points to, never an owning one.
type Parent struct {
	center *DataCenter
	node   *Element
}

// IsRoot reports whether this Parent is the DataCenter boundary rather
// than another Element.
func (p Parent) IsRoot() bool {
	return p.center != nil
}

// Element is a materialized node of the container's tree: a name, a
// lazily realized attribute mapping, and a lazily realized ordered list
// of children. Elements are exclusively owned by their parent's
// children slice (or by the DataCenter, for the root) and carry only a
// weak reference back up the tree, so there is no ownership cycle for
// the garbage collector to break.
type Element struct {
	dc     *DataCenter
	parent Parent
	addr   Address

	// header fields, filled in by newElement. A placeholder Element
	// (name == nil, placeholder == true) has none of the fields after
	// the name index parsed; see newElement.
	name        *string
	placeholder bool
	dummy       bool
	extIndex    uint16
	attrCount   uint16
	attrBase    Address
	childCount  uint16
	childBase   Address

	attributes lazyCell[map[string]TypedValue]
	children   lazyCell[[]*Element]
}

// newDummyRoot builds the synthetic root returned when a DataCenter's
// name table is empty.
func newDummyRoot(dc *DataCenter) *Element {
	name := dummyRootName
	e := &Element{dc: dc, parent: Parent{center: dc}, addr: ZeroAddress, name: &name, dummy: true}
	e.attributes.done, e.attributes.value = true, map[string]TypedValue{}
	e.children.done, e.children.value = true, nil
	return e
}

// newElement materializes the element record at addr: it reads the
// name index, extension word, attribute count/base, and child
// count/base in order, validating the name index and extension index
// against their tables (the counts and bases are recorded unchecked
// and only dereferenced by the realizers). parent is the
// weak up-reference to record on the result. The read lock must
// already be held by the caller for the duration of this call (one
// element header is one critical section).
func newElement(dc *DataCenter, parent Parent, addr Address) (*Element, error) {
	cur, err := dc.elements.readerAt(addr)
	if err != nil {
		return nil, err
	}

	nameIndexPlusOne := cur.ReadUint16()
	if nameIndexPlusOne == 0 {
		return &Element{dc: dc, parent: parent, addr: addr, placeholder: true}, nil
	}

	nameIdx := int(nameIndexPlusOne) - 1
	if nameIdx >= dc.names.Len() {
		return nil, NewStructuralError("element at %s has out-of-range name index %d", addr, nameIdx)
	}
	name := dc.names.By(nameIdx)

	extWord := cur.ReadUint16()
	flags, extIndex := decodeExtensionWord(extWord)
	if flags != 0 {
		return nil, NewStructuralError("element at %s has non-zero extension flags 0x%x", addr, flags)
	}
	if extIndex != 0 && int(extIndex) >= dc.extensions.Len() {
		return nil, NewStructuralError("element at %s has out-of-range extension index %d", addr, extIndex)
	}

	attrCount := cur.ReadUint16()
	childCount := cur.ReadUint16()
	attrBase := cur.ReadAddress()
	childBase := cur.ReadAddress()

	return &Element{
		dc:         dc,
		parent:     parent,
		addr:       addr,
		name:       &name,
		extIndex:   extIndex,
		attrCount:  attrCount,
		attrBase:   attrBase,
		childCount: childCount,
		childBase:  childBase,
	}, nil
}

// Name returns the element's interned name. Placeholders are never
// surfaced to callers (they're filtered by the children realizer), so
// Name never observes an unset name in practice.
func (e *Element) Name() string {
	if e.name == nil {
		return ""
	}
	return *e.name
}

// Parent returns the element's parent, or the zero Parent (IsRoot
// false, no node) only for a value that isn't reachable from a
// DataCenter at all — which never happens for an Element obtained
// through this package's API.
func (e *Element) Parent() Parent {
	return e.parent
}

// Extension returns the element's extension descriptor, looked up by
// the ext_index validated during materialization. The dummy root (no
// backing record), a placeholder, and an element whose ext_index is
// the "no extension" sentinel 0 with an empty extension table all
// return the zero descriptor.
func (e *Element) Extension() ExtensionDescriptor {
	if e.placeholder || e.dummy || e.dc.extensions.Len() == 0 {
		return ExtensionDescriptor{}
	}
	return e.dc.extensions.At(int(e.extIndex))
}
