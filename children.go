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

// Children realizes (once, memoized) and returns the element's ordered
// child list with placeholders filtered out. Each child's own header
// read re-acquires the read lock, so
// realizing N children performs N independent locked reads rather than
// one read covering the whole run.
func (e *Element) Children() ([]*Element, error) {
	if err := e.dc.checkOpen(); err != nil {
		return nil, err
	}
	return e.children.get(func() ([]*Element, error) {
		return e.realizeChildren()
	})
}

func (e *Element) realizeChildren() ([]*Element, error) {
	out := make([]*Element, 0, e.childCount)

	for i := uint16(0); i < e.childCount; i++ {
		addr := e.childBase.plus(i)

		e.dc.mu.RLock()
		child, err := newElement(e.dc, Parent{node: e}, addr)
		e.dc.mu.RUnlock()

		if err != nil {
			return nil, err
		}
		if child.placeholder {
			continue
		}
		out = append(out, child)
	}

	return out, nil
}
