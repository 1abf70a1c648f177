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

import "fmt"

// Address is a two-part locator into a segmented heap: a segment index
// and the index of a record within that segment. The zero value is the
// sentinel "no address" used for the dummy root and for a placeholder's
// unused attribute/child bases.
type Address struct {
	Segment uint16
	Element uint16
}

// ZeroAddress is the sentinel marking "no address".
var ZeroAddress = Address{}

// IsZero reports whether addr is the sentinel address.
func (addr Address) IsZero() bool {
	return addr == ZeroAddress
}

func (addr Address) String() string {
	return fmt.Sprintf("(%d,%d)", addr.Segment, addr.Element)
}

// plus returns the address offset by n elements within the same
// segment. Used to walk an attribute or child run starting at a base
// address.
func (addr Address) plus(n uint16) Address {
	return Address{Segment: addr.Segment, Element: addr.Element + n}
}
