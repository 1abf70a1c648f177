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

// ElementIterator yields Elements one at a time. Next returns (nil,
// nil) once the sequence is exhausted, and (nil, err) if realizing the
// next step failed. An ElementIterator is finite and not restartable:
// once exhausted (or failed) it stays that way.
type ElementIterator interface {
	Next() (*Element, error)
}

// NameFilter selects which elements a filtered iterator yields.
type NameFilter struct {
	single string
	set    map[string]struct{}
	isSet  bool
}

// ByName builds a NameFilter matching a single name. name must be
// non-nil: passing a null/none name to a navigation
// query is an input error, not an empty result.
func ByName(name *string) (NameFilter, error) {
	if name == nil {
		return NameFilter{}, NewInvalidArgumentError("name filter requires a non-nil name")
	}
	return NameFilter{single: *name}, nil
}

// ByNames builds a NameFilter matching any name in names. names must be
// non-nil, for the same reason as ByName.
func ByNames(names []string) (NameFilter, error) {
	if names == nil {
		return NameFilter{}, NewInvalidArgumentError("name-set filter requires a non-nil name set")
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return NameFilter{set: set, isSet: true}, nil
}

func (f NameFilter) matches(name string) bool {
	if f.isSet {
		_, ok := f.set[name]
		return ok
	}
	return name == f.single
}

type sliceIterator struct {
	elems []*Element
	pos   int
}

func (it *sliceIterator) Next() (*Element, error) {
	if it.pos >= len(it.elems) {
		return nil, nil
	}
	e := it.elems[it.pos]
	it.pos++
	return e, nil
}

type filteredIterator struct {
	inner  ElementIterator
	filter NameFilter
}

func (it *filteredIterator) Next() (*Element, error) {
	for {
		e, err := it.inner.Next()
		if err != nil || e == nil {
			return e, err
		}
		if it.filter.matches(e.Name()) {
			return e, nil
		}
	}
}

// Ancestors walks the parent chain from e up to (but excluding) the
// DataCenter boundary, excluding e itself.
func (e *Element) Ancestors() ElementIterator {
	var chain []*Element
	cur := e
	for !cur.parent.IsRoot() {
		cur = cur.parent.node
		chain = append(chain, cur)
	}
	return &sliceIterator{elems: chain}
}

// AncestorsNamed is Ancestors filtered to a single name. A nil name is
// an InvalidArgumentError.
func (e *Element) AncestorsNamed(name *string) (ElementIterator, error) {
	f, err := ByName(name)
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: e.Ancestors(), filter: f}, nil
}

// AncestorsNamedAny is Ancestors filtered to a set of names. A nil
// names slice is an InvalidArgumentError.
func (e *Element) AncestorsNamedAny(names []string) (ElementIterator, error) {
	f, err := ByNames(names)
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: e.Ancestors(), filter: f}, nil
}

// Siblings returns the parent's children excluding e by identity. For
// the root, there is no parent, so Siblings is empty.
func (e *Element) Siblings() (ElementIterator, error) {
	if e.parent.IsRoot() {
		return &sliceIterator{}, nil
	}
	kids, err := e.parent.node.Children()
	if err != nil {
		return nil, err
	}
	out := make([]*Element, 0, len(kids))
	for _, k := range kids {
		if k != e {
			out = append(out, k)
		}
	}
	return &sliceIterator{elems: out}, nil
}

// SiblingsNamed is Siblings filtered to a single name. A nil name is an
// InvalidArgumentError.
func (e *Element) SiblingsNamed(name *string) (ElementIterator, error) {
	f, err := ByName(name)
	if err != nil {
		return nil, err
	}
	inner, err := e.Siblings()
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: inner, filter: f}, nil
}

// SiblingsNamedAny is Siblings filtered to a set of names. A nil names
// slice is an InvalidArgumentError.
func (e *Element) SiblingsNamedAny(names []string) (ElementIterator, error) {
	f, err := ByNames(names)
	if err != nil {
		return nil, err
	}
	inner, err := e.Siblings()
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: inner, filter: f}, nil
}

// descendantsIterator performs a breadth-first walk rooted at (but
// excluding) root, realizing each level's children lazily as the walk
// reaches it.
type descendantsIterator struct {
	queue []*Element
	err   error
}

func (it *descendantsIterator) Next() (*Element, error) {
	if it.err != nil {
		return nil, it.err
	}
	if len(it.queue) == 0 {
		return nil, nil
	}

	e := it.queue[0]
	it.queue = it.queue[1:]

	kids, err := e.Children()
	if err != nil {
		it.err = err
		return nil, err
	}
	it.queue = append(it.queue, kids...)

	return e, nil
}

// Descendants visits every element reachable from e (excluding e
// itself) exactly once, in breadth-first order.
func (e *Element) Descendants() (ElementIterator, error) {
	kids, err := e.Children()
	if err != nil {
		return nil, err
	}
	queue := make([]*Element, len(kids))
	copy(queue, kids)
	return &descendantsIterator{queue: queue}, nil
}

// DescendantsNamed is Descendants filtered to a single name. A nil name
// is an InvalidArgumentError.
func (e *Element) DescendantsNamed(name *string) (ElementIterator, error) {
	f, err := ByName(name)
	if err != nil {
		return nil, err
	}
	inner, err := e.Descendants()
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: inner, filter: f}, nil
}

// DescendantsNamedAny is Descendants filtered to a set of names. A nil
// names slice is an InvalidArgumentError.
func (e *Element) DescendantsNamedAny(names []string) (ElementIterator, error) {
	f, err := ByNames(names)
	if err != nil {
		return nil, err
	}
	inner, err := e.Descendants()
	if err != nil {
		return nil, err
	}
	return &filteredIterator{inner: inner, filter: f}, nil
}
