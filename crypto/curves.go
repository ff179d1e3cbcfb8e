// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package crypto

import (
	"crypto/elliptic"
	"errors"
	"sync"

	s256k1 "github.com/btcsuite/btcd/btcec"
	"github.com/decred/dcrd/dcrec/edwards/v2"
)

type CurveName string

const (
	Secp256k1 CurveName = "secp256k1"
	Nist256p1 CurveName = "nist256p1" // a.k.a secp256r1
	Ed25519   CurveName = "ed25519"
)

var (
	ec elliptic.Curve

	registryMtx sync.RWMutex
	registry    = map[CurveName]elliptic.Curve{
		Secp256k1: s256k1.S256(),
		Nist256p1: elliptic.P256(),
		Ed25519:   edwards.Edwards(),
	}
)

// Init default curve (secp256k1)
func init() {
	ec = s256k1.S256()
}

// RegisterCurve lets external packages register their own curves under a
// name used during deserialization. Safe for concurrent use.
func RegisterCurve(name CurveName, curve elliptic.Curve) {
	registryMtx.Lock()
	defer registryMtx.Unlock()
	registry[name] = curve
}

func GetCurveByName(name CurveName) (elliptic.Curve, bool) {
	registryMtx.RLock()
	defer registryMtx.RUnlock()
	if val, ok := registry[name]; ok {
		return val, true
	}
	return nil, false
}

// GetCurveName returns the name a curve is registered under. Curves are
// matched by their parameters rather than by instance; edwards.Edwards
// allocates a new instance on every call.
func GetCurveName(curve elliptic.Curve) (CurveName, bool) {
	registryMtx.RLock()
	defer registryMtx.RUnlock()
	for name, c := range registry {
		if SameCurve(c, curve) {
			return name, true
		}
	}
	return "", false
}

// SameCurve returns true when both arguments describe the same curve.
// Instances are compared by their parameters, the btcec and stdlib params
// structs for one curve differ by pointer.
func SameCurve(lhs, rhs elliptic.Curve) bool {
	if lhs == rhs {
		return true
	}
	if lhs == nil || rhs == nil {
		return false
	}
	lp, rp := lhs.Params(), rhs.Params()
	return lp.P.Cmp(rp.P) == 0 &&
		lp.N.Cmp(rp.N) == 0 &&
		lp.Gx.Cmp(rp.Gx) == 0 &&
		lp.Gy.Cmp(rp.Gy) == 0
}

// EC returns the package default curve, secp256k1 unless SetCurve replaced it
func EC() elliptic.Curve {
	registryMtx.RLock()
	defer registryMtx.RUnlock()
	return ec
}

// SetCurve replaces the default curve returned by EC
func SetCurve(curve elliptic.Curve) {
	if curve == nil {
		panic(errors.New("SetCurve received a nil curve"))
	}
	registryMtx.Lock()
	defer registryMtx.Unlock()
	ec = curve
}
