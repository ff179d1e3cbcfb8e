// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common_test

import (
	"bytes"
	"crypto/rand"
	"math/big"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binance-chain/dlog-proof/common"
)

func TestSHA512_256(t *testing.T) {
	values := make([][]byte, 0, 11)
	for i := 0; i < 11; i++ {
		values = append(values, common.MustGetRandomInt(rand.Reader, 256).Bytes())
	}
	result1 := common.SHA512_256(values...)

	values[10] = common.MustGetRandomInt(rand.Reader, 256).Bytes()
	result2 := common.SHA512_256(values...)
	assert.False(t, bytes.Equal(result1, result2))
	assert.Len(t, result1, 32)
}

func TestSHA512_256Framing(t *testing.T) {
	// the block count prefix and per-input delimiters must keep differently
	// split inputs apart
	h := common.SHA512_256([]byte("ab"), []byte("cd"))
	assert.False(t, bytes.Equal(h, common.SHA512_256([]byte("abcd"))))
	assert.False(t, bytes.Equal(h, common.SHA512_256([]byte("a"), []byte("bcd"))))
	assert.False(t, bytes.Equal(h, common.SHA512_256([]byte("ab"), []byte("cd"), []byte{})))
}

func TestSHA512_256TAGGED(t *testing.T) {
	in := [][]byte{[]byte("transcript body")}
	h1 := common.SHA512_256_TAGGED([]byte("session-1"), in...)
	h2 := common.SHA512_256_TAGGED([]byte("session-2"), in...)
	h3 := common.SHA512_256_TAGGED([]byte("session-1"), in...)

	assert.Equal(t, h1, h3)
	assert.False(t, bytes.Equal(h1, h2))
	assert.False(t, bytes.Equal(h1, common.SHA512_256(in...)))
	assert.Len(t, h1, 32)
}

func TestRejectionSample(t *testing.T) {
	curveQ := common.GetRandomPrimeInt(rand.Reader, 256)
	randomQ := common.MustGetRandomInt(rand.Reader, 64)
	hash := new(big.Int).SetBytes(common.SHA512_256([]byte("123")))
	rs1 := common.RejectionSample(curveQ, new(big.Int).Set(hash))
	rs2 := common.RejectionSample(randomQ, new(big.Int).Set(hash))
	rs3 := common.RejectionSample(common.MustGetRandomInt(rand.Reader, 64), new(big.Int).Set(hash))
	type args struct {
		q     *big.Int
		eHash *big.Int
	}
	tests := []struct {
		name       string
		args       args
		want       *big.Int
		wantBitLen int
		notEqual   bool
	}{{
		name:       "happy path with curve order",
		args:       args{curveQ, hash},
		want:       rs1,
		wantBitLen: 256,
	}, {
		name:       "happy path with random 64-bit int",
		args:       args{randomQ, hash},
		want:       rs2,
		wantBitLen: 64,
	}, {
		name:       "inequality with different input",
		args:       args{randomQ, hash},
		want:       rs3,
		wantBitLen: 64,
		notEqual:   true,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := common.RejectionSample(tt.args.q, new(big.Int).Set(tt.args.eHash))
			if !tt.notEqual && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RejectionSample() = %v, want %v", got, tt.want)
			}
			if tt.notEqual && reflect.DeepEqual(got, tt.want) {
				t.Errorf("RejectionSample() = %v, want a different value", got)
			}
			if tt.wantBitLen < got.BitLen() { // leading zeros not counted
				t.Errorf("RejectionSample() = bitlen %d, want %d", got.BitLen(), tt.wantBitLen)
			}
		})
	}
}
