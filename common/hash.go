// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/sha512"
	"encoding/binary"
)

const (
	hashInputDelimiter = byte('$')
)

// SHA512_256 uses SHA-512/256 on the input byte slices.
// The number of inputs and a delimiter after each input are folded into the
// pre-image, so the framing of the inputs is unambiguous.
func SHA512_256(in ...[]byte) []byte {
	var data []byte
	state := sha512.New512_256()
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzSize := 0
	// prevent hash collisions with this prefix containing the block count
	inLenBz := make([]byte, 64/8)
	// converting between int and uint64 doesn't change the sign bit, but it may be interpreted differently
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	for _, bz := range in {
		bzSize += len(bz)
	}
	data = make([]byte, 0, len(inLenBz)+bzSize+inLen)
	data = append(data, inLenBz...)
	for _, bz := range in {
		data = append(data, bz...)
		data = append(data, hashInputDelimiter) // safety delimiter
	}
	// n < len(data) or an error will never happen.
	// see: https://golang.org/pkg/hash/#Hash and https://github.com/golang/go/wiki/Hashing#the-hashhash-interface
	if _, err := state.Write(data); err != nil {
		Logger.Errorf("SHA512_256 Write() failed: %v", err)
		return nil
	}
	return state.Sum(nil)
}

// SHA512_256_TAGGED uses SHA-512/256 on the input byte slices, prefixed with
// the hash of the tag written twice in the manner of BIP-340. The tag binds
// the digest to one protocol context, so transcripts of different sessions
// never collide.
func SHA512_256_TAGGED(tag []byte, in ...[]byte) []byte {
	tagBz := SHA512_256(tag)
	var data []byte
	state := sha512.New512_256()
	inLen := len(in)
	if inLen == 0 {
		return nil
	}
	bzSize := 0
	// prevent hash collisions with this prefix containing the block count
	inLenBz := make([]byte, 64/8)
	binary.LittleEndian.PutUint64(inLenBz, uint64(inLen))
	for _, bz := range in {
		bzSize += len(bz)
	}
	data = make([]byte, 0, len(tagBz)*2+len(inLenBz)+bzSize+inLen)
	data = append(data, tagBz...)
	data = append(data, tagBz...)
	data = append(data, inLenBz...)
	for _, bz := range in {
		data = append(data, bz...)
		data = append(data, hashInputDelimiter) // safety delimiter
	}
	if _, err := state.Write(data); err != nil {
		Logger.Errorf("SHA512_256_TAGGED Write() failed: %v", err)
		return nil
	}
	return state.Sum(nil)
}
