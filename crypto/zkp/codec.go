// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package zkp

import (
	"crypto/elliptic"
	"encoding/hex"
	"encoding/json"
	"math/big"

	"github.com/btcsuite/btcutil/base58"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/binance-chain/dlog-proof/crypto"
)

type dlogProofJSON struct {
	Curve string `json:"curve"`
	T     string `json:"t"`
	E     string `json:"e"`
	S     string `json:"s"`
}

// Bytes packs the proof as C(T) || E || S, with C the canonical compressed
// point encoding and E, S fixed-width big-endian scalars. The curve is not
// part of the blob; the decoder is told which curve to expect.
func (pf *DLogProof) Bytes() ([]byte, error) {
	if !pf.ValidateBasic() {
		return nil, errors.New("Bytes() called on an invalid proof")
	}
	q := pf.T.Curve().Params().N
	tBz, err := pf.T.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	eBz, err := padScalar(q, pf.E)
	if err != nil {
		return nil, err
	}
	sBz, err := padScalar(q, pf.S)
	if err != nil {
		return nil, err
	}
	bz := make([]byte, 0, len(tBz)+len(eBz)+len(sBz))
	bz = append(bz, tBz...)
	bz = append(bz, eBz...)
	bz = append(bz, sBz...)
	return bz, nil
}

// NewDLogProofFromBytes parses a proof produced by Bytes on the given curve.
func NewDLogProofFromBytes(curve elliptic.Curve, bz []byte) (*DLogProof, error) {
	if curve == nil {
		return nil, errors.Wrap(ErrProofDecode, "nil curve")
	}
	ptLen, err := crypto.CompressedPointLength(curve)
	if err != nil {
		return nil, errors.Wrap(ErrProofDecode, err.Error())
	}
	q := curve.Params().N
	sLen := scalarLen(q)
	if len(bz) != ptLen+2*sLen {
		return nil, errors.Wrapf(ErrProofDecode, "the proof must be %d bytes, got %d", ptLen+2*sLen, len(bz))
	}
	t, err := crypto.DecompressPoint(curve, bz[:ptLen])
	if err != nil {
		return nil, errors.Wrap(ErrProofDecode, err.Error())
	}
	e, err := parseScalar(q, bz[ptLen:ptLen+sLen])
	if err != nil {
		return nil, errors.Wrap(ErrProofDecode, err.Error())
	}
	s, err := parseScalar(q, bz[ptLen+sLen:])
	if err != nil {
		return nil, errors.Wrap(ErrProofDecode, err.Error())
	}
	return &DLogProof{T: t, E: e, S: s}, nil
}

// EncodeCompact returns the base58 form of the packed proof for transports
// that cannot carry raw bytes.
func (pf *DLogProof) EncodeCompact() (string, error) {
	bz, err := pf.Bytes()
	if err != nil {
		return "", err
	}
	return base58.Encode(bz), nil
}

// NewDLogProofFromCompact parses a base58 proof produced by EncodeCompact.
func NewDLogProofFromCompact(curve elliptic.Curve, in string) (*DLogProof, error) {
	bz := base58.Decode(in)
	if len(bz) == 0 {
		return nil, errors.Wrap(ErrProofDecode, "not a base58 string")
	}
	return NewDLogProofFromBytes(curve, bz)
}

// MarshalJSON encodes the proof with its curve name and lowercase hex parts.
func (pf *DLogProof) MarshalJSON() ([]byte, error) {
	if !pf.ValidateBasic() {
		return nil, errors.New("MarshalJSON() called on an invalid proof")
	}
	name, ok := crypto.GetCurveName(pf.T.Curve())
	if !ok {
		return nil, errors.New("the curve of the proof is not registered")
	}
	q := pf.T.Curve().Params().N
	tBz, err := pf.T.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	eBz, err := padScalar(q, pf.E)
	if err != nil {
		return nil, err
	}
	sBz, err := padScalar(q, pf.S)
	if err != nil {
		return nil, err
	}
	return json.Marshal(&dlogProofJSON{
		Curve: string(name),
		T:     hex.EncodeToString(tBz),
		E:     hex.EncodeToString(eBz),
		S:     hex.EncodeToString(sBz),
	})
}

// UnmarshalJSON decodes a proof encoded by MarshalJSON. Field errors are
// collected so a bad payload reports every offending field at once.
func (pf *DLogProof) UnmarshalJSON(bz []byte) error {
	var in dlogProofJSON
	if err := json.Unmarshal(bz, &in); err != nil {
		return errors.Wrap(ErrProofDecode, err.Error())
	}
	curve, ok := crypto.GetCurveByName(crypto.CurveName(in.Curve))
	if !ok {
		return errors.Wrapf(ErrProofDecode, "unknown curve %q", in.Curve)
	}
	q := curve.Params().N

	var merr *multierror.Error
	t, err := decodeHexPoint(curve, in.T)
	if err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "field t"))
	}
	e, err := decodeHexScalar(q, in.E)
	if err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "field e"))
	}
	s, err := decodeHexScalar(q, in.S)
	if err != nil {
		merr = multierror.Append(merr, errors.Wrap(err, "field s"))
	}
	if merr.ErrorOrNil() != nil {
		return multierror.Append(ErrProofDecode, merr.Errors...)
	}
	pf.T, pf.E, pf.S = t, e, s
	return nil
}

func decodeHexPoint(curve elliptic.Curve, in string) (*crypto.ECPoint, error) {
	bz, err := hex.DecodeString(in)
	if err != nil {
		return nil, err
	}
	return crypto.DecompressPoint(curve, bz)
}

func decodeHexScalar(q *big.Int, in string) (*big.Int, error) {
	bz, err := hex.DecodeString(in)
	if err != nil {
		return nil, err
	}
	return parseScalar(q, bz)
}

// parseScalar decodes a fixed-width big-endian scalar in [0, q-1].
func parseScalar(q *big.Int, bz []byte) (*big.Int, error) {
	if len(bz) != scalarLen(q) {
		return nil, errors.Errorf("the scalar must be %d bytes, got %d", scalarLen(q), len(bz))
	}
	v := new(big.Int).SetBytes(bz)
	if v.Cmp(q) != -1 {
		return nil, errors.New("the scalar is not reduced mod the group order")
	}
	return v, nil
}

func padScalar(q, v *big.Int) ([]byte, error) {
	if v.Sign() == -1 || v.Cmp(q) != -1 {
		return nil, errors.New("the scalar is not reduced mod the group order")
	}
	return v.FillBytes(make([]byte, scalarLen(q))), nil
}

func scalarLen(q *big.Int) int {
	return (q.BitLen() + 7) / 8
}
