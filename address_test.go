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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZeroAddressIsZero(t *testing.T) {
	require.True(t, ZeroAddress.IsZero())
	require.True(t, Address{}.IsZero())
	require.False(t, Address{Segment: 1}.IsZero())
	require.False(t, Address{Element: 1}.IsZero())
}

func TestAddressPlus(t *testing.T) {
	base := Address{Segment: 2, Element: 5}
	require.Equal(t, Address{Segment: 2, Element: 5}, base.plus(0))
	require.Equal(t, Address{Segment: 2, Element: 8}, base.plus(3))
}

func TestAddressString(t *testing.T) {
	require.Equal(t, "(2,5)", Address{Segment: 2, Element: 5}.String())
}
