// Copyright 2025 The go-siphash Authors
// This file is part of the go-siphash library.
//
// The go-siphash library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-siphash library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-siphash library. If not, see <http://www.gnu.org/licenses/>.

// Package siphash implements SipHash, the keyed pseudorandom function of
// Aumasson and Bernstein, for 64-bit and 128-bit output tags.
//
// SipHash is a MAC for short inputs: it takes a secret 128-bit key and an
// arbitrary message and produces a tag that is infeasible to predict without
// the key. It is the usual choice for hash-flooding-resistant hash tables
// and cheap packet authentication. It is not a general-purpose cryptographic
// hash: with a known key, collisions are easy to find.
//
// The package computes SipHash-c-d for any round counts c >= 1, d >= 1.
// The plain functions Hash, Hash128, Sum64 and Sum128 compute the canonical
// SipHash-2-4; other parameterizations go through Config.
package siphash

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// KeySize is the size of a SipHash key in bytes.
	KeySize = 16
	// BlockSize is the size of a message block in bytes.
	BlockSize = 8
	// Size is the size of a 64-bit tag in bytes.
	Size = 8
	// Size128 is the size of a 128-bit tag in bytes.
	Size128 = 16
)

// ErrKeySize is returned when a byte-slice key is not exactly 16 bytes.
// Short keys are never padded: a wrong-sized key is a caller bug, and
// silently coercing it would authenticate under a key the caller never chose.
var ErrKeySize = errors.New("siphash: key must be exactly 16 bytes")

// ConfigError reports an invalid construction parameter. It is returned
// before any message byte is processed.
type ConfigError struct {
	Param string
	Value int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("siphash: invalid %s round count %d (minimum 1)", e.Param, e.Value)
}

// Config selects the SipHash-c-d parameterization. The zero value selects
// the canonical SipHash-2-4. Round counts below 1 are rejected; they are not
// a weaker variant, they are a different (and broken) function.
type Config struct {
	CRounds int // compression rounds per message block
	DRounds int // finalization rounds
}

func (cfg Config) withDefaults() Config {
	if cfg.CRounds == 0 {
		cfg.CRounds = 2
	}
	if cfg.DRounds == 0 {
		cfg.DRounds = 4
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.CRounds < 1 {
		return &ConfigError{Param: "compression", Value: cfg.CRounds}
	}
	if cfg.DRounds < 1 {
		return &ConfigError{Param: "finalization", Value: cfg.DRounds}
	}
	return nil
}

// KeyFromBytes splits a 16-byte key into the two 64-bit halves k0 and k1,
// interpreting each half little-endian as the reference implementation does.
func KeyFromBytes(key []byte) (k0, k1 uint64, err error) {
	if len(key) != KeySize {
		return 0, 0, ErrKeySize
	}
	k0 = binary.LittleEndian.Uint64(key[0:8])
	k1 = binary.LittleEndian.Uint64(key[8:16])
	return k0, k1, nil
}

// Hash computes the 64-bit SipHash-2-4 tag of msg under the key (k0, k1).
func Hash(k0, k1 uint64, msg []byte) uint64 {
	return hash64(k0, k1, msg, 2, 4)
}

// Hash128 computes the 128-bit SipHash-2-4 tag of msg under the key (k0, k1).
// The two returned words are the first and second output word; serialize each
// little-endian, first word first, for interchange.
//
// The 128-bit variant is a different function from the 64-bit one (v1 is
// additionally XORed with 0xee during initialization), so the first word is
// not the 64-bit tag.
func Hash128(k0, k1 uint64, msg []byte) (uint64, uint64) {
	return hash128(k0, k1, msg, 2, 4)
}

// Sum64 computes the 64-bit SipHash-2-4 tag of msg under a 16-byte key.
func Sum64(key, msg []byte) (uint64, error) {
	k0, k1, err := KeyFromBytes(key)
	if err != nil {
		return 0, err
	}
	return Hash(k0, k1, msg), nil
}

// Sum128 computes the 128-bit SipHash-2-4 tag of msg under a 16-byte key,
// serialized as 16 little-endian bytes.
func Sum128(key, msg []byte) ([Size128]byte, error) {
	var tag [Size128]byte
	k0, k1, err := KeyFromBytes(key)
	if err != nil {
		return tag, err
	}
	h0, h1 := Hash128(k0, k1, msg)
	binary.LittleEndian.PutUint64(tag[0:8], h0)
	binary.LittleEndian.PutUint64(tag[8:16], h1)
	return tag, nil
}

// Hash computes the 64-bit SipHash-c-d tag of msg under the key (k0, k1).
func (cfg Config) Hash(k0, k1 uint64, msg []byte) (uint64, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	return hash64(k0, k1, msg, cfg.CRounds, cfg.DRounds), nil
}

// Hash128 computes the 128-bit SipHash-c-d tag of msg under the key (k0, k1).
func (cfg Config) Hash128(k0, k1 uint64, msg []byte) (uint64, uint64, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return 0, 0, err
	}
	h0, h1 := hash128(k0, k1, msg, cfg.CRounds, cfg.DRounds)
	return h0, h1, nil
}

func hash64(k0, k1 uint64, msg []byte, c, d int) uint64 {
	v := initState(k0, k1, false)
	absorbBlocks(&v, msg, c)
	absorb(&v, lastWord(msg, len(msg)), c)
	return finalize64(&v, d)
}

func hash128(k0, k1 uint64, msg []byte, c, d int) (uint64, uint64) {
	v := initState(k0, k1, true)
	absorbBlocks(&v, msg, c)
	absorb(&v, lastWord(msg, len(msg)), c)
	return finalize128(&v, d)
}

// lastWord builds the length-padded final message word from the trailing
// partial block of msg (possibly empty). total is the full message length;
// its low byte lands in the top byte of the word. The word always exists,
// even for an empty message.
func lastWord(msg []byte, total int) uint64 {
	var block [BlockSize]byte
	copy(block[:], msg[total-total%BlockSize:])
	block[BlockSize-1] = byte(total)
	return binary.LittleEndian.Uint64(block[:])
}
