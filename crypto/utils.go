// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"bytes"
	"crypto/elliptic"

	"github.com/btcsuite/btcd/btcec"
	"github.com/pkg/errors"
)

// SerializeCompressed returns the canonical fixed-length compressed encoding
// of p: 33-byte SEC1 form for the short Weierstrass curves, the 32-byte
// encoding with the x sign bit folded into the top byte for ed25519.
func (p *ECPoint) SerializeCompressed() ([]byte, error) {
	if !p.ValidateBasic() {
		return nil, errors.New("SerializeCompressed: invalid point")
	}
	name, ok := GetCurveName(p.curve)
	if !ok {
		return nil, errors.New("SerializeCompressed: curve is not registered")
	}
	switch name {
	case Secp256k1:
		pub := btcec.PublicKey{Curve: p.curve, X: p.X(), Y: p.Y()}
		return pub.SerializeCompressed(), nil
	case Nist256p1:
		return elliptic.MarshalCompressed(p.curve, p.X(), p.Y()), nil
	case Ed25519:
		return EcPointToEncodedBytes(p.X(), p.Y())[:], nil
	default:
		return nil, errors.Errorf("SerializeCompressed: no compressed form for curve %s", name)
	}
}

// DecompressPoint parses the canonical compressed encoding produced by
// SerializeCompressed. Wrong-length input, off-curve points and encodings
// that are not the canonical form of the decoded point are rejected.
func DecompressPoint(curve elliptic.Curve, bz []byte) (*ECPoint, error) {
	name, ok := GetCurveName(curve)
	if !ok {
		return nil, errors.New("DecompressPoint: curve is not registered")
	}
	ptLen, err := CompressedPointLength(curve)
	if err != nil {
		return nil, err
	}
	if len(bz) != ptLen {
		return nil, errors.Errorf("DecompressPoint: want %d bytes, got %d", ptLen, len(bz))
	}
	switch name {
	case Secp256k1:
		if bz[0] != 0x02 && bz[0] != 0x03 {
			return nil, errors.Errorf("DecompressPoint: unknown prefix byte %#x", bz[0])
		}
		pk, err := btcec.ParsePubKey(bz, btcec.S256())
		if err != nil {
			return nil, errors.Wrap(err, "DecompressPoint")
		}
		if !bytes.Equal(pk.SerializeCompressed(), bz) {
			return nil, errors.New("DecompressPoint: non-canonical point encoding")
		}
		return NewECPoint(curve, pk.X, pk.Y)
	case Nist256p1:
		x, y := elliptic.UnmarshalCompressed(curve, bz)
		if x == nil {
			return nil, errors.New("DecompressPoint: invalid point encoding")
		}
		return NewECPoint(curve, x, y)
	case Ed25519:
		return DecodeGroupElementToECPoint(curve, bz)
	default:
		return nil, errors.Errorf("DecompressPoint: no compressed form for curve %s", name)
	}
}

// CompressedPointLength returns the byte length of the canonical compressed
// point encoding on the given curve.
func CompressedPointLength(curve elliptic.Curve) (int, error) {
	name, ok := GetCurveName(curve)
	if !ok {
		return 0, errors.New("CompressedPointLength: curve is not registered")
	}
	if name == Ed25519 {
		return edwardsEncodedLen, nil
	}
	return 1 + (curve.Params().BitSize+7)/8, nil
}
