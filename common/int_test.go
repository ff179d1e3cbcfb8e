// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/dlog-proof/common"
)

func TestModInt(t *testing.T) {
	q := big.NewInt(97)
	mi := common.ModInt(q)

	assert.Equal(t, int64(2), mi.Add(big.NewInt(50), big.NewInt(49)).Int64())
	assert.Equal(t, int64(96), mi.Sub(big.NewInt(1), big.NewInt(2)).Int64())
	assert.Equal(t, int64(3), mi.Mul(big.NewInt(10), big.NewInt(10)).Int64())
}

func TestModIntDoesNotMutateArgs(t *testing.T) {
	q := big.NewInt(97)
	x, y := big.NewInt(50), big.NewInt(49)
	common.ModInt(q).Add(x, y)

	assert.Equal(t, int64(50), x.Int64())
	assert.Equal(t, int64(49), y.Int64())
	assert.Equal(t, int64(97), q.Int64())
}
