// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

import (
	"fmt"

	"github.com/microsoft/go-crypto-bignum/internal/subtle"
)

// allocWords returns a zeroed buffer of n words.
var allocWords = func(n int) ([]Word, error) {
	return make([]Word, n), nil
}

// EnsureCapacity grows z so that it can hold at least words words without
// changing its value. It does nothing if z is already large enough.
// On failure z is unchanged.
func (z *BigInt) EnsureCapacity(words int) error {
	z.mustBeLive()
	if words <= len(z.d) {
		return nil
	}
	if words > MaxWords {
		return ErrTooLarge
	}
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	d, err := allocWords(words)
	if err != nil {
		return fmt.Errorf("%w: %d words: %v", ErrAllocation, words, err)
	}
	if len(d) < words {
		return fmt.Errorf("%w: %d words: short buffer", ErrAllocation, words)
	}
	d = d[:words:words]
	copy(d, z.d[:z.used])
	// The old buffer may hold secret limbs.
	clear(z.d)
	z.d = d
	return nil
}

// Expand is like EnsureCapacity but takes a size in bits.
func (z *BigInt) Expand(bits int) error {
	if bits > maxInt-(WordBits-1) {
		return ErrTooLarge
	}
	return z.EnsureCapacity((bits + WordBits - 1) / WordBits)
}

const maxInt = int(^uint(0) >> 1)

// Resize sets the width of z to exactly words words. Growing zero-fills the
// new words and does not trim them. Shrinking is only allowed when every
// dropped word is zero; otherwise Resize returns ErrTooLarge and z is
// unchanged.
func (z *BigInt) Resize(words int) error {
	if words < 0 {
		panic("bn: negative width")
	}
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	if z.used <= words {
		if err := z.EnsureCapacity(words); err != nil {
			return err
		}
		clear(z.d[z.used:words])
		z.used = words
		return nil
	}
	if !z.FitsInWords(words) {
		return ErrTooLarge
	}
	z.used = words
	return nil
}

// FitsInWords reports whether every word of z at index n or above is zero.
// All such words are read regardless of their values.
func (z *BigInt) FitsInWords(n int) bool {
	if n < 0 {
		n = 0
	}
	if n >= z.used {
		return true
	}
	return subtle.IsZero(uint(subtle.OrAll(z.d[n:z.used]))) == 1
}
