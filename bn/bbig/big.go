// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package bbig converts between bn.BigInt and math/big.
package bbig

import (
	"math/big"
	"unsafe"

	"github.com/microsoft/go-crypto-bignum/bn"
)

// Enc returns a new bn.BigInt holding a copy of b.
func Enc(b *big.Int) (*bn.BigInt, error) {
	if b == nil {
		return nil, nil
	}
	z := bn.New()
	x := b.Bits()
	if len(x) == 0 {
		return z, nil
	}
	if err := z.SetWords(unsafe.Slice((*bn.Word)(&x[0]), len(x))); err != nil {
		z.Free()
		return nil, err
	}
	z.SetNegative(b.Sign() < 0)
	return z, nil
}

// Dec returns a new big.Int holding a copy of b.
func Dec(b *bn.BigInt) *big.Int {
	if b == nil {
		return nil
	}
	w := b.Words()
	if len(w) == 0 {
		return new(big.Int)
	}
	x := make([]big.Word, len(w))
	copy(x, unsafe.Slice((*big.Word)(&w[0]), len(w)))
	r := new(big.Int).SetBits(x)
	if b.IsNegative() {
		r.Neg(r)
	}
	return r
}
