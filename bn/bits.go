// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

// BitLen returns the number of bits needed to represent the magnitude of z.
// BitLen(0) is 0.
func (z *BigInt) BitLen() int {
	w := z.MinimalWidth()
	if w == 0 {
		return 0
	}
	return (w-1)*WordBits + BitLenWord(z.d[w-1])
}

// ByteLen returns the number of bytes needed to represent the magnitude of z.
func (z *BigInt) ByteLen() int {
	return (z.BitLen() + 7) / 8
}

// BitLenWord returns the minimum number of bits needed to represent w.
//
// BitLen is often called on RSA prime factors, whose bit lengths are public
// but whose bits below the top one are secret, so the count runs in time
// independent of w. math/bits.Len is not used: its portable fallback
// indexes a table with the value.
func BitLenWord(w Word) int {
	if WordBits == 32 {
		return bitLen32(uint32(w))
	}
	return bitLen64(uint64(w))
}

func bitLen64(l uint64) int {
	n := (l | -l) >> 63
	for _, s := range [...]uint{32, 16, 8, 4, 2, 1} {
		x := l >> s
		// mask is all ones iff x != 0.
		mask := -((-x) >> 63)
		n += uint64(s) & mask
		l ^= (x ^ l) & mask
	}
	return int(n)
}

func bitLen32(l uint32) int {
	n := (l | -l) >> 31
	for _, s := range [...]uint{16, 8, 4, 2, 1} {
		x := l >> s
		mask := -((-x) >> 31)
		n += uint32(s) & mask
		l ^= (x ^ l) & mask
	}
	return int(n)
}
