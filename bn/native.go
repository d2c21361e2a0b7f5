// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

package bn

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// nativeEndian is the byte order of a Word in memory.
var nativeEndian binary.ByteOrder = binary.LittleEndian

func init() {
	if cpu.IsBigEndian {
		nativeEndian = binary.BigEndian
	}
}

// CopyNativeBytes is like CopyWords but writes the fixed-width word array as
// bytes: word i occupies out[i*WordBytes:(i+1)*WordBytes] in the platform's
// byte order. len(out) must be a multiple of WordBytes.
func (z *BigInt) CopyNativeBytes(out []byte) error {
	if len(out)%WordBytes != 0 {
		panic("bn: buffer length is not a multiple of the word size")
	}
	words := make([]Word, len(out)/WordBytes)
	if err := z.CopyWords(words); err != nil {
		return err
	}
	for i, w := range words {
		putWord(out[i*WordBytes:], w)
	}
	clear(words)
	return nil
}

// SetNativeBytes sets z to the unsigned magnitude held in b, laid out as
// written by CopyNativeBytes. len(b) must be a multiple of WordBytes.
func (z *BigInt) SetNativeBytes(b []byte) error {
	if len(b)%WordBytes != 0 {
		panic("bn: buffer length is not a multiple of the word size")
	}
	if z.storage == storageStatic {
		return ErrImmutableStorage
	}
	n := len(b) / WordBytes
	if err := z.EnsureCapacity(n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		z.d[i] = getWord(b[i*WordBytes:])
	}
	z.used = n
	z.Trim()
	z.neg = false
	return nil
}

func putWord(b []byte, w Word) {
	if WordBits == 32 {
		nativeEndian.PutUint32(b, uint32(w))
		return
	}
	nativeEndian.PutUint64(b, uint64(w))
}

func getWord(b []byte) Word {
	if WordBits == 32 {
		return Word(nativeEndian.Uint32(b))
	}
	return Word(nativeEndian.Uint64(b))
}
