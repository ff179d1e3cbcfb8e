// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package zkp implements a non-interactive Schnorr ZK proof of knowledge of
// the discrete logarithm of a point on a prime-order elliptic curve group.
//
// The Fiat-Shamir transcript is bound to a session label and a party index,
// so a proof produced in one context never verifies in another. Proofs are
// stateless values; it is safe to create and verify them concurrently.
package zkp

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/binance-chain/dlog-proof/common"
	"github.com/binance-chain/dlog-proof/crypto"
)

type (
	// Schnorr ZK proof of knowledge of x such that X = g^x.
	// T is the nonce commitment g^r, E the Fiat-Shamir challenge and S the
	// response r + E*x mod n.
	DLogProof struct {
		T *crypto.ECPoint
		E *big.Int
		S *big.Int
	}
)

// NewDLogProof constructs a Schnorr ZK proof of knowledge of the discrete
// logarithm x of X, drawing the proof nonce from rnd. The transcript is bound
// to the given session label and party index. The caller keeps ownership of
// x; the nonce is cleared before returning.
func NewDLogProof(rnd io.Reader, session []byte, pid uint64, x *big.Int, X *crypto.ECPoint) (*DLogProof, error) {
	if err := validateWitness(x, X); err != nil {
		return nil, err
	}
	q := X.Curve().Params().N
	r, err := common.GetRandomPositiveInt(rnd, q)
	if err != nil {
		return nil, errors.Wrap(ErrRandomnessUnavailable, err.Error())
	}
	defer common.ZeroizeBigInt(r)
	return newProof(session, pid, x, r, X)
}

// NewDLogProofGivenNonce constructs the proof with a caller-supplied nonce r
// in [1, n-1]. The caller keeps ownership of r and must never use the same
// nonce for two different transcripts; doing so reveals the witness.
func NewDLogProofGivenNonce(session []byte, pid uint64, x, r *big.Int, X *crypto.ECPoint) (*DLogProof, error) {
	if err := validateWitness(x, X); err != nil {
		return nil, err
	}
	q := X.Curve().Params().N
	if r == nil || r.Sign() != 1 || r.Cmp(q) != -1 {
		return nil, errors.Wrap(ErrInvalidWitness, "the nonce must be in [1, n-1]")
	}
	return newProof(session, pid, x, r, X)
}

func newProof(session []byte, pid uint64, x, r *big.Int, X *crypto.ECPoint) (*DLogProof, error) {
	curve := X.Curve()
	q := curve.Params().N

	// 1. commit to the nonce
	t := crypto.ScalarBaseMult(curve, r)

	// 2. derive the challenge from the transcript
	e, err := computeChallenge(session, pid, X, t)
	if err != nil {
		return nil, err
	}

	// 3. respond with s = r + e*x mod q
	ex := new(big.Int).Mul(e, x)
	defer common.ZeroizeBigInt(ex)
	s := common.ModInt(q).Add(r, ex)

	return &DLogProof{T: t, E: e, S: s}, nil
}

// Verify checks the proof against the public point X under the same session
// label and party index the prover used. The challenge is recomputed from
// the transcript and compared before the group equation, so a proof with any
// altered field is rejected up front.
func (pf *DLogProof) Verify(session []byte, pid uint64, X *crypto.ECPoint) bool {
	if pf == nil || !pf.ValidateBasic() {
		return false
	}
	if X == nil || !X.ValidateBasic() {
		return false
	}
	curve := X.Curve()
	if _, ok := crypto.GetCurveName(curve); !ok {
		return false
	}
	if !crypto.SameCurve(curve, pf.T.Curve()) {
		return false
	}
	q := curve.Params().N
	if pf.E.Sign() == -1 || pf.E.Cmp(q) != -1 {
		return false
	}
	if pf.S.Sign() == -1 || pf.S.Cmp(q) != -1 {
		return false
	}

	// 1. recompute the challenge and require a match with the stored one
	e, err := computeChallenge(session, pid, X, pf.T)
	if err != nil {
		return false
	}
	if e.Cmp(pf.E) != 0 {
		return false
	}

	// 2. check sG == t + eX
	sG := crypto.ScalarBaseMult(curve, pf.S)
	eX := X.ScalarMult(e)
	tXe, err := pf.T.Add(eX)
	if err != nil {
		return false
	}
	return sG.Equals(tXe)
}

// ValidateBasic reports whether all proof parts are present.
func (pf *DLogProof) ValidateBasic() bool {
	return pf != nil &&
		pf.E != nil &&
		pf.S != nil &&
		pf.T != nil &&
		pf.T.ValidateBasic()
}

// Equals reports whether two proofs carry the same commitment, challenge
// and response.
func (pf *DLogProof) Equals(other *DLogProof) bool {
	if !pf.ValidateBasic() || !other.ValidateBasic() {
		return false
	}
	return pf.T.Equals(other.T) &&
		pf.E.Cmp(other.E) == 0 &&
		pf.S.Cmp(other.S) == 0
}

// computeChallenge derives the Fiat-Shamir challenge for the transcript
// (session, pid, g, X, t). Points enter the hash in their canonical
// compressed encoding and the party index as 8 little-endian bytes; the
// digest is read as a big-endian integer and reduced mod the group order.
func computeChallenge(session []byte, pid uint64, X, t *crypto.ECPoint) (*big.Int, error) {
	curve := X.Curve()
	ecParams := curve.Params()
	g := crypto.NewECPointNoCurveCheck(curve, ecParams.Gx, ecParams.Gy) // already on the curve.

	gBz, err := g.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	XBz, err := X.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	tBz, err := t.SerializeCompressed()
	if err != nil {
		return nil, err
	}
	var pidBz [8]byte
	binary.LittleEndian.PutUint64(pidBz[:], pid)

	eHash := common.SHA512_256_TAGGED(session, pidBz[:], gBz, XBz, tBz)
	return common.RejectionSample(ecParams.N, new(big.Int).SetBytes(eHash)), nil
}

// validateWitness rejects witnesses outside [1, n-1], unregistered curves
// and public points that are not the image of the witness.
func validateWitness(x *big.Int, X *crypto.ECPoint) error {
	if x == nil || X == nil || !X.ValidateBasic() {
		return errors.Wrap(ErrInvalidWitness, "received nil or invalid value(s)")
	}
	if _, ok := crypto.GetCurveName(X.Curve()); !ok {
		return errors.Wrap(ErrInvalidWitness, "the curve of X is not registered")
	}
	q := X.Curve().Params().N
	if x.Sign() != 1 || x.Cmp(q) != -1 {
		return errors.Wrap(ErrInvalidWitness, "the witness must be in [1, n-1]")
	}
	if !crypto.ScalarBaseMult(X.Curve(), x).Equals(X) {
		return errors.Wrap(ErrInvalidWitness, "X is not the public image of the witness")
	}
	return nil
}
