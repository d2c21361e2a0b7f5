// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

import "github.com/microsoft/go-crypto-bignum/internal/subtle"

// MinimalWidth returns the width z would have after Trim.
// It leaks the number of leading zero words, nothing about the others.
func (z *BigInt) MinimalWidth() int {
	w := z.used
	for w > 0 && subtle.IsZero(uint(z.d[w-1])) == 1 {
		w--
	}
	return w
}

// Trim drops leading zero words from z, restoring canonical form.
// A value trimmed to 0 is made non-negative. Static values are canonical
// from construction and are left alone.
func (z *BigInt) Trim() {
	if z.storage == storageStatic {
		return
	}
	z.used = z.MinimalWidth()
	if z.used == 0 {
		z.neg = false
	}
}
