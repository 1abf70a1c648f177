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

// maxDiagnosticDescriptorBytes caps how many bytes of an
// ExtensionDescriptor's opaque payload diag.Snapshot will render before
// truncating, so a malformed or oversized descriptor can't blow up a
// diagnostic dump.
var maxDiagnosticDescriptorBytes = 256

// SetMaxDiagnosticDescriptorBytes overrides the diagnostic descriptor
// truncation limit and returns the previous value.
func SetMaxDiagnosticDescriptorBytes(n int) int {
	prev := maxDiagnosticDescriptorBytes
	maxDiagnosticDescriptorBytes = n
	return prev
}

// MaxDiagnosticDescriptorBytes returns the current diagnostic
// descriptor truncation limit.
func MaxDiagnosticDescriptorBytes() int {
	return maxDiagnosticDescriptorBytes
}
