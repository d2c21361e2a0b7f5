// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

// Package bn implements the storage layer of an arbitrary-precision integer
// used by cryptographic arithmetic: a signed magnitude held as little-endian
// machine words, the buffer backing it, and the canonical form every
// arithmetic routine relies on.
//
// A BigInt is a plain mutable value. It is not safe for concurrent mutation;
// the caller owns it exclusively. The only exception is the constant returned
// by One, which is immutable and may be read from any number of goroutines.
package bn

import "math/bits"

// A Word is a single limb of a magnitude.
type Word uint

const (
	// WordBits is the width of a Word in bits.
	WordBits = bits.UintSize
	// WordBytes is the width of a Word in bytes.
	WordBytes = WordBits / 8
	// MaxWords is the largest capacity a BigInt may grow to. It keeps the
	// byte size of a buffer, multiplied by small constants elsewhere, within a
	// signed 32-bit integer.
	MaxWords = (1<<31 - 1) / (4 * WordBits)
)

// storage records who owns the word buffer.
type storage uint8

const (
	storageHeap   storage = iota // allocated by this package, may be grown and released
	storageStatic                // supplied by the caller, never written or reallocated
)

// handle records who owns the BigInt value itself.
type handle uint8

const (
	handleEmbedded handle = iota // declared by the caller, reusable after Free
	handleHeap                   // returned by New or Dup
	handleReleased               // a heap handle after Free; writes panic
)

// A BigInt is a signed integer of arbitrary size.
//
// The magnitude is d[:used], least significant word first. Outside of this
// package's own mutating methods, used is canonical: either zero, or
// d[used-1] is non-zero. The zero value is never negative.
//
// The zero value of BigInt is ready to use and represents 0.
type BigInt struct {
	d       []Word // len(d) is the capacity
	used    int
	neg     bool
	storage storage
	handle  handle
}

// New returns a heap-allocated BigInt set to 0.
func New() *BigInt {
	return &BigInt{handle: handleHeap}
}

// Init resets a caller-owned BigInt to 0 with no backing buffer.
func (z *BigInt) Init() {
	if z == &one {
		panic("bn: Init of the shared constant")
	}
	*z = BigInt{}
}

// NewStatic returns a BigInt backed directly by words, without copying.
// words must not be modified afterwards. The result is trimmed to canonical
// form and any attempt to grow or write it fails with ErrImmutableStorage.
func NewStatic(words []Word) *BigInt {
	z := &BigInt{
		d:       words[:len(words):len(words)],
		used:    len(words),
		storage: storageStatic,
		handle:  handleHeap,
	}
	z.used = z.MinimalWidth()
	return z
}

var (
	oneWords = [1]Word{1}
	one      = BigInt{
		d:       oneWords[:],
		used:    1,
		storage: storageStatic,
		handle:  handleEmbedded,
	}
)

// One returns the shared constant 1. It is backed by static storage and must
// only be read; every mutating method rejects it.
func One() *BigInt {
	return &one
}

// Free releases z's word buffer. Static buffers are detached, never written.
// A caller-owned BigInt is left as a valid 0. A BigInt from New or Dup reads
// as 0 afterwards, but any attempt to write it panics.
func (z *BigInt) Free() {
	if z == nil {
		return
	}
	if z == &one {
		panic("bn: Free of the shared constant")
	}
	if z.handle != handleEmbedded {
		*z = BigInt{handle: handleReleased}
		return
	}
	z.Init()
}

// ClearFree is like Free but first zeroes z's heap words, for values that
// held secret material.
func (z *BigInt) ClearFree() {
	if z == nil {
		return
	}
	if z == &one {
		panic("bn: Free of the shared constant")
	}
	if z.storage == storageHeap {
		clear(z.d)
	}
	z.Free()
}

// Clear zeroes all of z's allocated words and sets z to 0, keeping its
// capacity.
func (z *BigInt) Clear() {
	z.mustBeMutable()
	clear(z.d)
	z.used = 0
	z.neg = false
}

// Dup returns a new heap BigInt holding a deep copy of src.
func Dup(src *BigInt) (*BigInt, error) {
	if src == nil {
		return nil, nil
	}
	z := New()
	if err := z.Copy(src); err != nil {
		z.Free()
		return nil, err
	}
	return z, nil
}

// Copy sets z to a deep copy of src, growing z as needed. Copy is a no-op
// when z and src are the same BigInt.
func (z *BigInt) Copy(src *BigInt) error {
	if z == src {
		return nil
	}
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	if err := z.EnsureCapacity(src.used); err != nil {
		return err
	}
	copy(z.d, src.d[:src.used])
	z.used = src.used
	z.neg = src.neg
	return nil
}

// Len returns the number of words in z's magnitude.
func (z *BigInt) Len() int {
	return z.used
}

// Cap returns the number of words allocated for z.
func (z *BigInt) Cap() int {
	return len(z.d)
}

// Words returns z's magnitude, least significant word first.
// The result aliases z and must not be modified.
func (z *BigInt) Words() []Word {
	return z.d[:z.used:z.used]
}

// IsZero reports whether z is 0.
func (z *BigInt) IsZero() bool {
	return z.used == 0
}

// IsOne reports whether z is 1.
func (z *BigInt) IsOne() bool {
	return z.used == 1 && z.d[0] == 1 && !z.neg
}

func (z *BigInt) mustBeMutable() {
	if z.storage == storageStatic {
		panic(ErrImmutableStorage.Error())
	}
	z.mustBeLive()
}

func (z *BigInt) mustBeLive() {
	if z.handle == handleReleased {
		panic("bn: use of a released BigInt")
	}
}
