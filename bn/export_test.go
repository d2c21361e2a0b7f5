// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

var (
	BitLen32 = bitLen32
	BitLen64 = bitLen64
)

// SetAllocator replaces the word allocator until the returned function is called.
func SetAllocator(f func(n int) ([]Word, error)) (restore func()) {
	old := allocWords
	allocWords = f
	return func() { allocWords = old }
}
