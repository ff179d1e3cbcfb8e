// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package zkp

import "errors"

// Errors returned by the prover and the proof codecs. Test for them with
// errors.Is; returned errors usually carry additional context on top.
var (
	// ErrInvalidWitness is returned when the witness scalar or its public
	// point fail the prover's begin-of-use checks.
	ErrInvalidWitness = errors.New("invalid witness")

	// ErrRandomnessUnavailable is returned when the proof nonce cannot be
	// drawn from the supplied entropy source.
	ErrRandomnessUnavailable = errors.New("the secure random source is unavailable")

	// ErrProofDecode is returned when a serialized proof is malformed,
	// truncated or not in canonical form.
	ErrProofDecode = errors.New("malformed or non-canonical proof encoding")
)
