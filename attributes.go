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

// Attributes realizes (once, memoized) and returns the element's name
// -> TypedValue mapping.
func (e *Element) Attributes() (map[string]TypedValue, error) {
	if err := e.dc.checkOpen(); err != nil {
		return nil, err
	}
	return e.attributes.get(func() (map[string]TypedValue, error) {
		return e.realizeAttributes()
	})
}

func (e *Element) realizeAttributes() (map[string]TypedValue, error) {
	e.dc.mu.RLock()
	defer e.dc.mu.RUnlock()

	out := make(map[string]TypedValue, e.attrCount)

	for i := uint16(0); i < e.attrCount; i++ {
		addr := e.attrBase.plus(i)
		cur, err := e.dc.attributes.readerAt(addr)
		if err != nil {
			return nil, err
		}

		nameIndexPlusOne := cur.ReadUint16()
		if int(nameIndexPlusOne)-1 >= e.dc.names.Len() || nameIndexPlusOne == 0 {
			return nil, NewStructuralError("attribute at %s has out-of-range name index %d", addr, int(nameIndexPlusOne)-1)
		}
		name := e.dc.names.By(int(nameIndexPlusOne) - 1)

		typeWord := cur.ReadUint16()
		code, extCode := decodeTypeWord(typeWord)

		primitive := cur.ReadUint32()

		var stringAddr Address
		if code == typeCodeString {
			cur.Rewind(4)
			stringAddr = cur.ReadAddress()
		}

		value, err := decodeAttributeValue(code, extCode, primitive, stringAddr, e.dc.values)
		if err != nil {
			return nil, err
		}

		if _, dup := out[name]; dup {
			return nil, NewStructuralError("element at %s has duplicate attribute name %q", e.addr, name)
		}
		out[name] = value
	}

	return out, nil
}

// Attr returns the named attribute's value, or NullValue if absent.
func (e *Element) Attr(name string) (TypedValue, error) {
	attrs, err := e.Attributes()
	if err != nil {
		return TypedValue{}, err
	}
	if v, ok := attrs[name]; ok {
		return v, nil
	}
	return NullValue, nil
}

// AttrOrDefault returns the named attribute's value, or a TypedValue
// synthesized from fallback if the attribute is absent. fallback must
// be an int32, float32, bool, or string; any other type is an
// InvalidArgumentError. Stored values are returned verbatim (floats are
// bit-preserved, NaNs are never canonicalized); fallback is only
// consulted when the attribute is missing.
func (e *Element) AttrOrDefault(name string, fallback interface{}) (TypedValue, error) {
	attrs, err := e.Attributes()
	if err != nil {
		return TypedValue{}, err
	}
	if v, ok := attrs[name]; ok {
		return v, nil
	}
	return asFallback(fallback)
}
