// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites b with zeros. runtime.KeepAlive stops the compiler
// from eliding the writes to a buffer it believes is dead
// (https://github.com/golang/go/issues/33325).
func ZeroizeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// ZeroizeBigInt overwrites the limbs of i with zeros and resets it to zero.
// Best effort: arithmetic performed before the call may have left copies of
// the value in buffers owned by the runtime; the primary backing array is
// cleared here.
func ZeroizeBigInt(i *big.Int) {
	if i == nil {
		return
	}
	words := i.Bits()
	for j := range words {
		words[j] = 0
	}
	runtime.KeepAlive(words)
	i.SetInt64(0)
}
