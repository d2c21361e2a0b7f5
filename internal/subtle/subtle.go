// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package subtle implements word-sized helpers whose running time does not
// depend on the values they operate on.
package subtle

import "math/bits"

// IsNonZero returns 1 if x != 0 and 0 otherwise.
func IsNonZero(x uint) uint {
	// For any x != 0, either the MSB of x or the MSB of -x is set.
	return (x | -x) >> (bits.UintSize - 1)
}

// IsZero returns 1 if x == 0 and 0 otherwise.
func IsZero(x uint) uint {
	return 1 ^ IsNonZero(x)
}

// OrAll returns the bitwise OR of every element of a.
// Every element is read, whatever its value.
func OrAll[W ~uint](a []W) W {
	var acc W
	for _, w := range a {
		acc |= w
	}
	return acc
}
