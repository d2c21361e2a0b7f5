// Copyright (c) Microsoft Corporation.
// Licensed under the MIT License.

//go:build 386 || arm || mips || mipsle
// +build 386 arm mips mipsle

package bn_test

import (
	"testing"

	"github.com/microsoft/go-crypto-bignum/bn"
)

func TestSetUint64TwoWords(t *testing.T) {
	z := bn.New()
	if err := z.SetUint64(0x1_0000_0001); err != nil {
		t.Fatal(err)
	}
	if z.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", z.Len())
	}
	checkWords(t, z, 1, 1)
	if got := z.BitLen(); got != 33 {
		t.Errorf("BitLen() = %d, want 33", got)
	}
}
