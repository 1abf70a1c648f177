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

import "sync"

// DataCenter owns the four heaps and tables that back a loaded
// container, plus the advisory lock and frozen flag.
//
// DataCenter has no separate "dispose" step for Elements: Elements are
// ordinary Go values with no finalizer and are collected once
// unreachable. Only the DataCenter itself is closed.
type DataCenter struct {
	mu     sync.RWMutex
	closed bool
	frozen bool

	elements   *Heap
	attributes *Heap
	names      *NameTable
	values     *ValueTable
	extensions *ExtensionTable

	root *Element
}

// checkOpen returns UseAfterDisposeError if the DataCenter has been
// closed. Every public Element/DataCenter operation that touches the
// heaps calls this first.
func (dc *DataCenter) checkOpen() error {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	if dc.closed {
		return NewUseAfterDisposeError("read")
	}
	return nil
}

// Root returns the container's root Element, materialized once at
// construction time. If the container carries no name table at all,
// Root returns the synthetic dummy root named "__root__" with no
// attributes and no children.
func (dc *DataCenter) Root() (*Element, error) {
	if err := dc.checkOpen(); err != nil {
		return nil, err
	}
	return dc.root, nil
}

// Freeze sets the frozen flag: Close will subsequently fail with
// FrozenViolationError. Freeze never fails and may be called any
// number of times.
func (dc *DataCenter) Freeze() {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.frozen = true
}

// Frozen reports whether Freeze has been called.
func (dc *DataCenter) Frozen() bool {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.frozen
}

// Close tears down the DataCenter, releasing its heaps and tables.
// Close fails with FrozenViolationError if the DataCenter is frozen,
// and with UseAfterDisposeError if it has already been closed.
func (dc *DataCenter) Close() error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	if dc.closed {
		return NewUseAfterDisposeError("close")
	}
	if dc.frozen {
		return NewFrozenViolationError()
	}

	dc.closed = true
	dc.elements = nil
	dc.attributes = nil
	dc.names = nil
	dc.values = nil
	dc.extensions = nil
	dc.root = nil
	return nil
}
