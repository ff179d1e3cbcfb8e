// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"math/big"
)

// RejectionSample implements the sampling logic for converting a SHA512/256
// hash to a value between 0-q. The hash is interpreted as a big-endian
// integer and fully reduced mod q; a truncation-based mapping would not be
// interoperable with this one.
func RejectionSample(q *big.Int, eHash *big.Int) *big.Int { // e' = eHash
	e := eHash.Mod(eHash, q)
	return e
}
