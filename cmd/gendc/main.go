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

// Command gendc builds a synthetic container in memory and walks it,
// encoding a CBOR diagnostic dump and printing the dump's size, the
// root's name and its child count. It exists to exercise the reader end
// to end against synthetic data rather than a real on-disk container;
// it is a development harness, not a production loader frontend.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quaycorp/datacenter"
	"github.com/quaycorp/datacenter/diag"
	"github.com/quaycorp/datacenter/internal/dctest"
)

func main() {
	var width int
	flag.IntVar(&width, "width", 3, "number of children under the synthetic root")
	flag.Parse()

	dc, err := buildSyntheticDataCenter(width)
	if err != nil {
		fmt.Fprintln(os.Stderr, "build:", err)
		os.Exit(1)
	}
	defer dc.Close()

	root, err := dc.Root()
	if err != nil {
		fmt.Fprintln(os.Stderr, "root:", err)
		os.Exit(1)
	}

	snap, err := diag.Snapshot(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}

	out, err := diag.Encode(snap)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}

	fmt.Printf("%d bytes of CBOR, root %q with %d children\n", len(out), snap.Name, len(snap.Children))
}

// buildSyntheticDataCenter assembles a root element with width children,
// each carrying an Int32 attribute "n" and a String attribute "s".
func buildSyntheticDataCenter(width int) (*datacenter.DataCenter, error) {
	b := dctest.NewBuilder()

	rootName := b.Name("root")
	childName := b.Name("child")
	nAttr := b.Name("n")
	sAttr := b.Name("s")

	valueAddr := datacenter.Address{Segment: 0, Element: 0}
	b.Value(valueAddr, "hello")

	b.PutElement(0, dctest.ElementSpec{
		NameIndexPlusOne: rootName,
		ChildCount:       uint16(width),
		ChildBase:        datacenter.Address{Segment: 0, Element: 1},
	})

	for i := 0; i < width; i++ {
		b.PutElement(i+1, dctest.ElementSpec{
			NameIndexPlusOne: childName,
			AttrCount:        2,
			AttrBase:         datacenter.Address{Segment: 0, Element: uint16(i * 2)},
		})
		b.PutAttribute(i*2, dctest.EncodeAttribute(dctest.AttributeSpec{
			NameIndexPlusOne: nAttr,
			TypeCode:         1,
			Primitive:        uint32(i),
		}))
		b.PutAttribute(i*2+1, dctest.EncodeAddressAttribute(sAttr, 3, valueAddr))
	}

	return datacenter.New(b.Build())
}
