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

import "github.com/fxamacker/circlehash"

// nameTableHashSeed seeds the CircleHash64 digest used to bucket names
// for reverse lookup. Fixed rather than random: two NameTables built
// from the same on-disk name heap must bucket identically.
const nameTableHashSeed = uint64(0x6461746168617368) // "datahash"

// NameTable is the container's interned name heap: an ordered table of
// strings, 1-indexed on disk (on-disk index 0 is reserved to mean
// "placeholder") and 0-indexed internally, so By(0) is the name whose
// on-disk name_index_plus_one is 1. It also offers a reverse lookup by
// name.
//
// The reverse index is a Go map from CircleHash64 digest to the
// indices of the names with that digest, rather than a map keyed by
// the name itself: digests are computed once at load time, and a
// reverse lookup hashes the query and compares strings within its
// bucket.
type NameTable struct {
	names   []string
	hashes  []uint64
	buckets map[uint64][]int // digest -> indices into names/hashes
}

// NewNameTable builds a NameTable over names in on-disk order. names[i]
// corresponds to external index i (so name_index_plus_one on disk is
// i+1); index 0 in the returned table therefore corresponds to on-disk
// name_index_plus_one == 1, since on-disk index 0 is reserved to mean
// "no name".
func NewNameTable(names []string) *NameTable {
	t := &NameTable{
		names:   names,
		hashes:  make([]uint64, len(names)),
		buckets: make(map[uint64][]int, len(names)),
	}
	for i, n := range names {
		h := circlehash.Hash64String(n, nameTableHashSeed)
		t.hashes[i] = h
		t.buckets[h] = append(t.buckets[h], i)
	}
	return t
}

// Len returns the number of interned names.
func (t *NameTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// By returns the name at internal index i. The caller (the element
// materializer) is responsible for bounds-checking against Len before
// calling; By panics on an out-of-range index because every call site
// has already validated the index and turned an out-of-range condition
// into a StructuralError.
func (t *NameTable) By(i int) string {
	return t.names[i]
}

// Find returns the internal index of name, and whether it was found,
// using the hash-bucketed reverse index.
func (t *NameTable) Find(name string) (int, bool) {
	if t == nil {
		return 0, false
	}
	h := circlehash.Hash64String(name, nameTableHashSeed)
	for _, i := range t.buckets[h] {
		if t.names[i] == name {
			return i, true
		}
	}
	return 0, false
}
