// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/decred/dcrd/dcrec/edwards/v2"
	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/dlog-proof/common"
)

func TestSerializeCompressedRoundTrip(t *testing.T) {
	type args struct {
		curve elliptic.Curve
	}
	tests := []struct {
		name    string
		args    args
		wantLen int
	}{{
		name:    "round-trips a random secp256k1 point through the 33-byte SEC1 form",
		args:    args{btcec.S256()},
		wantLen: 33,
	}, {
		name:    "round-trips a random P-256 point through the 33-byte SEC1 form",
		args:    args{elliptic.P256()},
		wantLen: 33,
	}, {
		name:    "round-trips a random ed25519 point through the 32-byte encoding",
		args:    args{edwards.Edwards()},
		wantLen: 32,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, err := common.GetRandomPositiveInt(rand.Reader, tt.args.curve.Params().N)
			if !assert.NoError(t, err) {
				return
			}
			pt := ScalarBaseMult(tt.args.curve, k)

			bz, err := pt.SerializeCompressed()
			if !assert.NoError(t, err) {
				return
			}
			assert.Len(t, bz, tt.wantLen)

			ptLen, err := CompressedPointLength(tt.args.curve)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantLen, ptLen)

			pt2, err := DecompressPoint(tt.args.curve, bz)
			if !assert.NoError(t, err) {
				return
			}
			assert.True(t, pt.Equals(pt2))
			assert.True(t, SameCurve(tt.args.curve, pt2.Curve()))
			// the decoded point carries the instance handed to DecompressPoint
			assert.Same(t, tt.args.curve, pt2.Curve())
		})
	}
}

func TestSerializeCompressedUnregisteredCurve(t *testing.T) {
	pt := NewECPointNoCurveCheck(elliptic.P384(), elliptic.P384().Params().Gx, elliptic.P384().Params().Gy)
	_, err := pt.SerializeCompressed()
	assert.Error(t, err)

	_, err = DecompressPoint(elliptic.P384(), make([]byte, 49))
	assert.Error(t, err)

	_, err = CompressedPointLength(elliptic.P384())
	assert.Error(t, err)
}

func TestDecompressPointRejectsBadInput(t *testing.T) {
	curve := btcec.S256()
	k, err := common.GetRandomPositiveInt(rand.Reader, curve.Params().N)
	assert.NoError(t, err)
	bz, err := ScalarBaseMult(curve, k).SerializeCompressed()
	assert.NoError(t, err)

	// wrong length
	_, err = DecompressPoint(curve, bz[:32])
	assert.Error(t, err)
	_, err = DecompressPoint(curve, append(append([]byte{}, bz...), 0x00))
	assert.Error(t, err)
	_, err = DecompressPoint(curve, nil)
	assert.Error(t, err)

	// uncompressed prefix
	bad := make([]byte, len(bz))
	copy(bad, bz)
	bad[0] = 0x04
	_, err = DecompressPoint(curve, bad)
	assert.Error(t, err)

	// flipping x bytes produces an x with no curve point about half the
	// time; at least one of these must be rejected
	rejected := false
	for i := 1; i < len(bz); i++ {
		copy(bad, bz)
		bad[i] ^= 0xff
		if _, err := DecompressPoint(curve, bad); err != nil {
			rejected = true
			break
		}
	}
	assert.True(t, rejected)
}

func TestDecodeGroupElementRejectsNonSubGroup(t *testing.T) {
	// 32 zero bytes encode the order-4 point (sqrt(-1), 0)
	_, err := DecodeGroupElementToECPoint(edwards.Edwards(), make([]byte, 32))
	assert.Error(t, err)
}

func TestDecodeGroupElementRejectsNonCanonical(t *testing.T) {
	// little-endian encoding of y = p+1, an alias of y = 2
	nonCanonical := make([]byte, 32)
	for i := range nonCanonical {
		nonCanonical[i] = 0xff
	}
	nonCanonical[0] = 0xee
	nonCanonical[31] = 0x7f
	_, err := DecodeGroupElementToECPoint(edwards.Edwards(), nonCanonical)
	assert.Error(t, err)
}

func TestEdwardsSubGroupMembership(t *testing.T) {
	k, err := common.GetRandomPositiveInt(rand.Reader, edwards.Edwards().Params().N)
	assert.NoError(t, err)
	pt := ScalarBaseMult(edwards.Edwards(), k)
	assert.True(t, isInPrimeSubGroup(pt))
}

func TestEncodedBytesRoundTrip(t *testing.T) {
	k := common.MustGetRandomInt(rand.Reader, 256)
	enc := BigIntToEncodedBytes(k)
	back := EncodedBytesToBigInt(enc)
	assert.Zero(t, k.Cmp(back))
}
