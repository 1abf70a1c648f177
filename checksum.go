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

import "github.com/zeebo/blake3"

// VerifyChecksum hashes image with BLAKE3 and compares it to want,
// returning a ChecksumMismatchError on mismatch and nil on a match.
//
// This is an opt-in pre-flight check, not schema validation: a
// whole-image content digest is coarser than structural validation and
// orthogonal to it — nothing in this package calls VerifyChecksum on
// the caller's behalf. A loader that already knows the expected digest
// (e.g.
// recovered alongside the image during decompression) can call this
// before handing the image to New.
func VerifyChecksum(image []byte, want [32]byte) error {
	got := blake3.Sum256(image)
	if got != want {
		return NewChecksumMismatchError(got, want)
	}
	return nil
}
