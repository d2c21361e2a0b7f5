// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn_test

import (
	"math/bits"
	"testing"
	"testing/quick"

	"github.com/microsoft/go-crypto-bignum/bn"
)

func TestBitLenWordBoundaries(t *testing.T) {
	maxWord := ^bn.Word(0)
	tests := []struct {
		w    bn.Word
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{0x80, 8},
		{maxWord >> 1, bn.WordBits - 1},
		{maxWord>>1 + 1, bn.WordBits},
		{maxWord, bn.WordBits},
	}
	for _, tt := range tests {
		if got := bn.BitLenWord(tt.w); got != tt.want {
			t.Errorf("BitLenWord(%#x) = %d, want %d", tt.w, got, tt.want)
		}
	}
}

func TestBitLen64(t *testing.T) {
	for i := 0; i < 64; i++ {
		for _, v := range []uint64{1 << i, 1<<i | 1, (1<<i - 1) | 1<<i} {
			if got := bn.BitLen64(v); got != i+1 {
				t.Fatalf("bitLen64(%#x) = %d, want %d", v, got, i+1)
			}
		}
	}
	f := func(v uint64) bool { return bn.BitLen64(v) == bits.Len64(v) }
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestBitLen32(t *testing.T) {
	if got := bn.BitLen32(0); got != 0 {
		t.Fatalf("bitLen32(0) = %d, want 0", got)
	}
	for i := 0; i < 32; i++ {
		for _, v := range []uint32{1 << i, 1<<i | 1, (1<<i - 1) | 1<<i} {
			if got := bn.BitLen32(v); got != i+1 {
				t.Fatalf("bitLen32(%#x) = %d, want %d", v, got, i+1)
			}
		}
	}
	f := func(v uint32) bool { return bn.BitLen32(v) == bits.Len32(v) }
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestBitLen(t *testing.T) {
	tests := []struct {
		name  string
		words []bn.Word
		bits  int
		bytes int
	}{
		{"zero", nil, 0, 0},
		{"one", []bn.Word{1}, 1, 1},
		{"byte", []bn.Word{0xff}, 8, 1},
		{"ninebits", []bn.Word{0x100}, 9, 2},
		{"twowords", []bn.Word{0, 1}, bn.WordBits + 1, bn.WordBytes + 1},
		{"fullwords", []bn.Word{^bn.Word(0), ^bn.Word(0)}, 2 * bn.WordBits, 2 * bn.WordBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := bn.New()
			if err := z.SetWords(tt.words); err != nil {
				t.Fatalf("SetWords: %v", err)
			}
			if got := z.BitLen(); got != tt.bits {
				t.Errorf("BitLen() = %d, want %d", got, tt.bits)
			}
			if got := z.ByteLen(); got != tt.bytes {
				t.Errorf("ByteLen() = %d, want %d", got, tt.bytes)
			}
		})
	}
}

func TestBitLenIgnoresLeadingZeroWords(t *testing.T) {
	z := bn.New()
	if err := z.SetWord(5); err != nil {
		t.Fatal(err)
	}
	if err := z.Resize(4); err != nil {
		t.Fatal(err)
	}
	if z.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", z.Len())
	}
	if got := z.BitLen(); got != 3 {
		t.Errorf("BitLen() = %d, want 3", got)
	}
}

func TestSetWordZeroBitLen(t *testing.T) {
	var z bn.BigInt
	if err := z.SetWord(0); err != nil {
		t.Fatal(err)
	}
	if got := z.BitLen(); got != 0 {
		t.Errorf("BitLen() = %d, want 0", got)
	}
	if got := z.ByteLen(); got != 0 {
		t.Errorf("ByteLen() = %d, want 0", got)
	}
}
