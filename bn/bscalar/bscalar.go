// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package bscalar converts between bn.BigInt and the 256-bit scalar and field
// element types of the secp256k1 and edwards25519 implementations.
//
// Values are exported through a fixed-width buffer of 256 bits, so a BigInt
// wider than that fails with bn.ErrTooLarge and a negative one with
// bn.ErrNegative. Values in range of the buffer but not reduced modulo the
// target's modulus also fail with bn.ErrTooLarge rather than being reduced.
package bscalar

import (
	"filippo.io/edwards25519"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/microsoft/go-crypto-bignum/bn"
)

const (
	scalarSize  = 32
	scalarWords = scalarSize / bn.WordBytes
)

// ToModNScalar returns x as a scalar modulo the secp256k1 group order.
func ToModNScalar(x *bn.BigInt) (*secp256k1.ModNScalar, error) {
	var b [scalarSize]byte
	if err := putBigEndian(&b, x); err != nil {
		return nil, err
	}
	defer clear(b[:])
	s := new(secp256k1.ModNScalar)
	if overflow := s.SetByteSlice(b[:]); overflow {
		s.Zero()
		return nil, bn.ErrTooLarge
	}
	return s, nil
}

// FromModNScalar sets z to the value of s.
func FromModNScalar(z *bn.BigInt, s *secp256k1.ModNScalar) error {
	var b [scalarSize]byte
	s.PutBytes(&b)
	defer clear(b[:])
	return setBigEndian(z, &b)
}

// ToFieldVal returns x as an element of the secp256k1 base field.
func ToFieldVal(x *bn.BigInt) (*secp256k1.FieldVal, error) {
	var b [scalarSize]byte
	if err := putBigEndian(&b, x); err != nil {
		return nil, err
	}
	defer clear(b[:])
	f := new(secp256k1.FieldVal)
	if overflow := f.SetByteSlice(b[:]); overflow {
		f.Zero()
		return nil, bn.ErrTooLarge
	}
	return f, nil
}

// FromFieldVal sets z to the value of f, which is normalized first.
func FromFieldVal(z *bn.BigInt, f *secp256k1.FieldVal) error {
	var n secp256k1.FieldVal
	n.Set(f).Normalize()
	var b [scalarSize]byte
	n.PutBytes(&b)
	defer clear(b[:])
	return setBigEndian(z, &b)
}

// ToEdwardsScalar returns x as a scalar modulo the edwards25519 group order.
func ToEdwardsScalar(x *bn.BigInt) (*edwards25519.Scalar, error) {
	var b [scalarSize]byte
	if err := putLittleEndian(&b, x); err != nil {
		return nil, err
	}
	defer clear(b[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		return nil, bn.ErrTooLarge
	}
	return s, nil
}

// FromEdwardsScalar sets z to the value of s.
func FromEdwardsScalar(z *bn.BigInt, s *edwards25519.Scalar) error {
	var b [scalarSize]byte
	copy(b[:], s.Bytes())
	defer clear(b[:])
	return setLittleEndian(z, &b)
}

func putLittleEndian(b *[scalarSize]byte, x *bn.BigInt) error {
	var words [scalarWords]bn.Word
	defer clear(words[:])
	if err := x.CopyWords(words[:]); err != nil {
		return err
	}
	for i, w := range words {
		for j := 0; j < bn.WordBytes; j++ {
			b[i*bn.WordBytes+j] = byte(w >> (8 * j))
		}
	}
	return nil
}

func putBigEndian(b *[scalarSize]byte, x *bn.BigInt) error {
	if err := putLittleEndian(b, x); err != nil {
		return err
	}
	reverse(b)
	return nil
}

func setLittleEndian(z *bn.BigInt, b *[scalarSize]byte) error {
	var words [scalarWords]bn.Word
	defer clear(words[:])
	for i := range words {
		for j := 0; j < bn.WordBytes; j++ {
			words[i] |= bn.Word(b[i*bn.WordBytes+j]) << (8 * j)
		}
	}
	return z.SetWords(words[:])
}

func setBigEndian(z *bn.BigInt, b *[scalarSize]byte) error {
	le := *b
	defer clear(le[:])
	reverse(&le)
	return setLittleEndian(z, &le)
}

func reverse(b *[scalarSize]byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
