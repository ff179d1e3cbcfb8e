// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"bytes"
	"crypto/elliptic"
	"math/big"

	"github.com/agl/ed25519/edwards25519"
	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/pkg/errors"
)

const edwardsEncodedLen = 32

// EncodedBytesToBigInt interprets a little-endian 32-byte encoding as a big int.
func EncodedBytesToBigInt(s *[32]byte) *big.Int {
	// Use a copy so we don't screw up our original
	// memory.
	sCopy := new([32]byte)
	for i := 0; i < 32; i++ {
		sCopy[i] = s[i]
	}
	reverse(sCopy)

	bi := new(big.Int).SetBytes(sCopy[:])

	return bi
}

// BigIntToEncodedBytes converts a big integer into its corresponding
// 32 byte little endian representation.
func BigIntToEncodedBytes(a *big.Int) *[32]byte {
	s := new([32]byte)
	if a == nil {
		return s
	}

	// Caveat: a can be longer than 32 bytes.
	s = copyBytes(a.Bytes())

	// Reverse the byte string --> little endian after
	// encoding.
	reverse(s)

	return s
}

func copyBytes(aB []byte) *[32]byte {
	if aB == nil {
		return nil
	}
	s := new([32]byte)

	// If we have a short byte string, expand
	// it so that it's long enough.
	aBLen := len(aB)
	if aBLen < 32 {
		diff := 32 - aBLen
		for i := 0; i < diff; i++ {
			aB = append([]byte{0x00}, aB...)
		}
	}

	for i := 0; i < 32; i++ {
		s[i] = aB[i]
	}

	return s
}

// EcPointToEncodedBytes returns the canonical 32-byte ed25519 encoding of the
// affine point (x, y): the y-coordinate in little endian with the sign of x
// folded into the most significant bit.
func EcPointToEncodedBytes(x *big.Int, y *big.Int) *[32]byte {
	s := BigIntToEncodedBytes(y)
	xB := BigIntToEncodedBytes(x)
	xFE := new(edwards25519.FieldElement)
	edwards25519.FeFromBytes(xFE, xB)
	isNegative := edwards25519.FeIsNegative(xFE) == 1

	if isNegative {
		s[31] |= (1 << 7)
	} else {
		s[31] &^= (1 << 7)
	}

	return s
}

// DecodeGroupElementToECPoint parses the canonical 32-byte ed25519 point
// encoding on to the given curve instance. Encodings that do not round-trip
// to identical bytes and points outside the prime-order subgroup are
// rejected.
func DecodeGroupElementToECPoint(curve elliptic.Curve, bz []byte) (*ECPoint, error) {
	if len(bz) != edwardsEncodedLen {
		return nil, errors.Errorf("DecodeGroupElementToECPoint: want %d bytes, got %d", edwardsEncodedLen, len(bz))
	}
	pk, err := edwards.ParsePubKey(bz)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeGroupElementToECPoint")
	}
	if !bytes.Equal(EcPointToEncodedBytes(pk.X, pk.Y)[:], bz) {
		return nil, errors.New("DecodeGroupElementToECPoint: non-canonical point encoding")
	}
	pt, err := NewECPoint(curve, pk.X, pk.Y)
	if err != nil {
		return nil, err
	}
	if !isInPrimeSubGroup(pt) {
		return nil, errors.New("DecodeGroupElementToECPoint: point is not in the prime-order subgroup")
	}
	return pt, nil
}

// isInPrimeSubGroup multiplies by the group order; only elements of the
// prime-order subgroup land on the identity (0, 1).
func isInPrimeSubGroup(p *ECPoint) bool {
	n := p.curve.Params().N
	sx, sy := p.curve.ScalarMult(p.coords[0], p.coords[1], n.Bytes())
	return sx.Sign() == 0 && sy.Cmp(big.NewInt(1)) == 0
}

func reverse(s *[32]byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
