// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

const (
	mustGetRandomIntMaxBits = 5000
)

// MustGetRandomInt panics if it is unable to gather entropy from the given
// reader or when `bits` is <= 0.
func MustGetRandomInt(rnd io.Reader, bits int) *big.Int {
	if bits <= 0 || mustGetRandomIntMaxBits < bits {
		panic(fmt.Errorf("MustGetRandomInt: bits should be positive, non-zero and less than %d", mustGetRandomIntMaxBits))
	}
	// Max random value e.g. 2^256 - 1
	max := new(big.Int)
	max = max.Exp(two, big.NewInt(int64(bits)), nil).Sub(max, one)

	// Generate cryptographically strong pseudo-random int between 0 - max
	n, err := rand.Int(rnd, max)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomInt!"))
	}
	return n
}

// GetRandomPositiveInt generates a cryptographically strong uniform random
// integer in [1, lessThan). Unlike MustGetRandomInt it reports entropy
// failures as an error rather than panicking.
func GetRandomPositiveInt(rnd io.Reader, lessThan *big.Int) (*big.Int, error) {
	if lessThan == nil || one.Cmp(lessThan) != -1 {
		return nil, errors.New("GetRandomPositiveInt: the upper bound should be an integer greater than one")
	}
	var try *big.Int
	for {
		var err error
		try, err = rand.Int(rnd, lessThan)
		if err != nil {
			return nil, errors.Wrap(err, "rand.Int failure in GetRandomPositiveInt")
		}
		if zero.Cmp(try) == -1 {
			break
		}
	}
	return try, nil
}

// GetRandomPrimeInt generates a prime of the given bit length, or nil when
// the reader fails.
func GetRandomPrimeInt(rnd io.Reader, bits int) *big.Int {
	if bits <= 0 {
		return nil
	}
	try, err := rand.Prime(rnd, bits)
	if err != nil ||
		try.Cmp(zero) == 0 {
		return nil
	}
	return try
}
