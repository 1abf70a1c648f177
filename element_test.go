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

package datacenter_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quaycorp/datacenter"
	"github.com/quaycorp/datacenter/internal/dctest"
)

// Scenario 1: dummy root.
func TestDummyRootWhenNameTableEmpty(t *testing.T) {
	dc, err := datacenter.New(datacenter.LoaderInput{})
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)
	require.Equal(t, "__root__", root.Name())

	attrs, err := root.Attributes()
	require.NoError(t, err)
	require.Empty(t, attrs)

	kids, err := root.Children()
	require.NoError(t, err)
	require.Empty(t, kids)
}

// Scenario 2: placeholder filtering.
func TestPlaceholderChildrenAreFiltered(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	childName := b.Name("child")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		ChildCount:       3,
		ChildBase:        datacenter.Address{Segment: 0, Element: 1},
	})
	b.PutElement(1, dctest.ElementSpec{NameIndexPlusOne: childName})
	b.PutElement(2, dctest.ElementSpec{NameIndexPlusOne: 0}) // placeholder
	b.PutElement(3, dctest.ElementSpec{NameIndexPlusOne: childName})

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	kids, err := root.Children()
	require.NoError(t, err)
	require.Len(t, kids, 2)
	for _, k := range kids {
		require.Equal(t, "child", k.Name())
	}
}

// Scenario 3: attribute types.
func TestAttributeTypesDecode(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	nAttr := b.Name("n")
	bAttr := b.Name("b")
	fAttr := b.Name("f")
	sAttr := b.Name("s")

	valueAddr := datacenter.Address{Segment: 0, Element: 0}
	b.Value(valueAddr, "hi")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		AttrCount:        4,
		AttrBase:         datacenter.Address{Segment: 0, Element: 0},
	})
	b.PutAttribute(0, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: nAttr, TypeCode: 1, ExtCode: 0, Primitive: 42}))
	b.PutAttribute(1, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: bAttr, TypeCode: 1, ExtCode: 1, Primitive: 1}))
	b.PutAttribute(2, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: fAttr, TypeCode: 2, ExtCode: 0, Primitive: math.Float32bits(3.5)}))
	b.PutAttribute(3, dctest.EncodeAddressAttribute(sAttr, 3, valueAddr))

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	n, err := root.Attr("n")
	require.NoError(t, err)
	iv, ok := n.Int32()
	require.True(t, ok)
	require.Equal(t, int32(42), iv)

	bv, err := root.Attr("b")
	require.NoError(t, err)
	boolVal, ok := bv.Boolean()
	require.True(t, ok)
	require.True(t, boolVal)

	fv, err := root.Attr("f")
	require.NoError(t, err)
	f32, ok := fv.Single()
	require.True(t, ok)
	require.Equal(t, float32(3.5), f32)

	sv, err := root.Attr("s")
	require.NoError(t, err)
	s, ok := sv.String()
	require.True(t, ok)
	require.Equal(t, "hi", s)
}

// Scenario 4: duplicate attribute name.
func TestDuplicateAttributeNameIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	nAttr := b.Name("n")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		AttrCount:        2,
		AttrBase:         datacenter.Address{Segment: 0, Element: 0},
	})
	b.PutAttribute(0, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: nAttr, TypeCode: 1, Primitive: 1}))
	b.PutAttribute(1, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: nAttr, TypeCode: 1, Primitive: 2}))

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	_, err = root.Attributes()
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}

// Scenario 5: bad type code.
func TestBadAttributeTypeCodeIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	nAttr := b.Name("n")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		AttrCount:        1,
		AttrBase:         datacenter.Address{Segment: 0, Element: 0},
	})
	b.PutAttribute(0, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: nAttr, TypeCode: 0, Primitive: 1}))

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	_, err = root.Attributes()
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}

// Scenario 6: non-zero flags.
func TestNonZeroExtensionFlagsIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")

	b.PutElement(0, dctest.ElementSpec{NameIndexPlusOne: rootName, Flags: 1})

	_, err := datacenter.New(b.Build())
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}

// Scenario 7: AttrOrDefault.
func TestAttrOrDefault(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	fAttr := b.Name("f")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		AttrCount:        1,
		AttrBase:         datacenter.Address{Segment: 0, Element: 0},
	})
	b.PutAttribute(0, dctest.EncodeAttribute(dctest.AttributeSpec{NameIndexPlusOne: fAttr, TypeCode: 2, Primitive: math.Float32bits(9)}))

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	missing, err := root.AttrOrDefault("missing", float32(3.5))
	require.NoError(t, err)
	f, ok := missing.Single()
	require.True(t, ok)
	require.Equal(t, float32(3.5), f)

	present, err := root.AttrOrDefault("f", float32(3.5))
	require.NoError(t, err)
	f, ok = present.Single()
	require.True(t, ok)
	require.Equal(t, float32(9), f)
}

func TestAttrOrDefaultRejectsUnsupportedFallbackType(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	b.PutElement(0, dctest.ElementSpec{NameIndexPlusOne: rootName})

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	_, err = root.AttrOrDefault("x", 42) // int, not int32/float32/bool/string
	require.Error(t, err)
	var ia *datacenter.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
}

func TestAttrMissingReturnsNull(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	b.PutElement(0, dctest.ElementSpec{NameIndexPlusOne: rootName})

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	v, err := root.Attr("missing")
	require.NoError(t, err)
	require.Equal(t, datacenter.KindNull, v.Kind)
}

func TestStringAttributeMissingValueIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	sAttr := b.Name("s")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		AttrCount:        1,
		AttrBase:         datacenter.Address{Segment: 0, Element: 0},
	})
	// Never registered in the value table.
	b.PutAttribute(0, dctest.EncodeAddressAttribute(sAttr, 3, datacenter.Address{Segment: 9, Element: 9}))

	dc, err := datacenter.New(b.Build())
	require.NoError(t, err)
	defer dc.Close()

	root, err := dc.Root()
	require.NoError(t, err)

	_, err = root.Attributes()
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}

func TestOutOfRangeNameIndexIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	b.Name("root")
	// name index 5 doesn't exist.
	b.PutElement(0, dctest.ElementSpec{NameIndexPlusOne: 6})

	_, err := datacenter.New(b.Build())
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}

func TestOutOfRangeExtensionIndexIsStructuralError(t *testing.T) {
	b := dctest.NewBuilder()
	rootName := b.Name("root")
	b.PutElement(0, dctest.ElementSpec{NameIndexPlusOne: rootName, ExtIndex: 3})

	_, err := datacenter.New(b.Build())
	require.Error(t, err)
	var se *datacenter.StructuralError
	require.ErrorAs(t, err, &se)
}
