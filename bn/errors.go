// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

import "errors"

var (
	// ErrAllocation is returned when a word buffer could not be allocated.
	// The receiving BigInt is left unchanged.
	ErrAllocation = errors.New("bn: allocation failure")
	// ErrTooLarge is returned when a width exceeds MaxWords or when a value
	// does not fit in the requested number of words.
	ErrTooLarge = errors.New("bn: bignum too long")
	// ErrImmutableStorage is returned when growing or writing a BigInt
	// backed by static storage.
	ErrImmutableStorage = errors.New("bn: expand on static bignum data")
	// ErrNegative is returned by unsigned-only operations given a negative value.
	ErrNegative = errors.New("bn: negative number")
)
