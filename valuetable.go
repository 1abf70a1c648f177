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

// ValueTable is the interned string-value heap: every string-typed
// attribute's primitive, reinterpreted as an Address, resolves to an
// entry here.
type ValueTable struct {
	byAddress map[Address]string
}

// NewValueTable builds a ValueTable from a caller-supplied
// Address-to-string mapping (see LoaderInput.Values).
func NewValueTable(entries map[Address]string) *ValueTable {
	return &ValueTable{byAddress: entries}
}

// Lookup returns the string stored at addr, and whether it was present.
func (v *ValueTable) Lookup(addr Address) (string, bool) {
	if v == nil {
		return "", false
	}
	s, ok := v.byAddress[addr]
	return s, ok
}
