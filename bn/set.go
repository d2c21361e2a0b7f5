// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

// SetZero sets z to 0 without touching its buffer.
func (z *BigInt) SetZero() {
	z.mustBeMutable()
	z.used = 0
	z.neg = false
}

// SetOne sets z to 1.
func (z *BigInt) SetOne() error {
	return z.SetWord(1)
}

// SetWord sets z to w.
func (z *BigInt) SetWord(w Word) error {
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	if w == 0 {
		z.SetZero()
		return nil
	}
	if err := z.EnsureCapacity(1); err != nil {
		return err
	}
	z.neg = false
	z.d[0] = w
	z.used = 1
	return nil
}

// SetUint64 sets z to v.
func (z *BigInt) SetUint64(v uint64) error {
	if WordBits == 64 || v <= uint64(^Word(0)) {
		return z.SetWord(Word(v))
	}
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	if err := z.EnsureCapacity(2); err != nil {
		return err
	}
	z.neg = false
	z.d[0] = Word(v)
	z.d[1] = Word(v >> 32)
	z.used = 2
	return nil
}

// SetWords sets z to the unsigned magnitude in words, least significant word
// first. words may alias z's own buffer.
func (z *BigInt) SetWords(words []Word) error {
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	if err := z.EnsureCapacity(len(words)); err != nil {
		return err
	}
	copy(z.d, words)
	z.used = len(words)
	z.Trim()
	z.neg = false
	return nil
}

// CopyWords writes the magnitude of z into out, zero-padding above its width.
// It fails with ErrNegative if z is negative and with ErrTooLarge if z does
// not fit in len(out) words. out is only written on success.
func (z *BigInt) CopyWords(out []Word) error {
	if z.neg {
		return ErrNegative
	}
	width := z.used
	if width > len(out) {
		if !z.FitsInWords(len(out)) {
			return ErrTooLarge
		}
		width = len(out)
	}
	clear(out)
	copy(out, z.d[:width])
	return nil
}

// Word returns the magnitude of z and reports whether it fits in a Word.
func (z *BigInt) Word() (Word, bool) {
	switch z.used {
	case 0:
		return 0, true
	case 1:
		return z.d[0], true
	}
	return 0, false
}

// Uint64 returns the magnitude of z and reports whether it fits in a uint64.
func (z *BigInt) Uint64() (uint64, bool) {
	switch {
	case z.used == 0:
		return 0, true
	case z.used == 1:
		return uint64(z.d[0]), true
	case WordBits == 32 && z.used == 2:
		return uint64(z.d[1])<<32 | uint64(z.d[0]), true
	}
	return 0, false
}

// IsNegative reports whether z is negative.
func (z *BigInt) IsNegative() bool {
	return z.neg
}

// SetNegative sets the sign of z. The sign of 0 is always non-negative.
func (z *BigInt) SetNegative(neg bool) {
	z.mustBeMutable()
	z.neg = neg && z.used != 0
}
