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

package siphash

import (
	"encoding/binary"
	"hash"
)

// digest is an incremental SipHash computation. It buffers up to one partial
// block between writes; Sum finalizes a copy of the state, so a digest can
// keep absorbing after a Sum. Not safe for concurrent use; distinct digests
// are fully independent.
type digest struct {
	v    [4]uint64       // running state
	iv   [4]uint64       // key-derived initial state, for Reset
	buf  [BlockSize]byte // pending partial block
	off  int             // valid bytes in buf
	n    int             // total message bytes absorbed
	cr   int             // compression rounds
	fr   int             // finalization rounds
	wide bool            // 128-bit output
}

// New64 returns a hash.Hash64 computing the 64-bit SipHash-2-4 tag under a
// 16-byte key. The error is ErrKeySize for any other key length.
func New64(key []byte) (hash.Hash64, error) {
	return newDigest(Config{}, key, false)
}

// New128 returns a hash.Hash computing the 128-bit SipHash-2-4 tag under a
// 16-byte key. Sum appends the 16-byte little-endian serialization.
func New128(key []byte) (hash.Hash, error) {
	return newDigest(Config{}, key, true)
}

// NewConfigured returns a hash.Hash64 computing the 64-bit SipHash-c-d tag
// for the given round configuration.
func NewConfigured(cfg Config, key []byte) (hash.Hash64, error) {
	return newDigest(cfg, key, false)
}

// NewConfigured128 returns a hash.Hash computing the 128-bit SipHash-c-d tag
// for the given round configuration.
func NewConfigured128(cfg Config, key []byte) (hash.Hash, error) {
	return newDigest(cfg, key, true)
}

func newDigest(cfg Config, key []byte, wide bool) (*digest, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	k0, k1, err := KeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	d := &digest{
		iv:   initState(k0, k1, wide),
		cr:   cfg.CRounds,
		fr:   cfg.DRounds,
		wide: wide,
	}
	d.Reset()
	return d, nil
}

func (d *digest) Size() int {
	if d.wide {
		return Size128
	}
	return Size
}

func (d *digest) BlockSize() int { return BlockSize }

// Reset restores the key-derived initial state, discarding all absorbed data.
func (d *digest) Reset() {
	d.v = d.iv
	d.off = 0
	d.n = 0
}

// Write absorbs p into the state. It never fails.
func (d *digest) Write(p []byte) (int, error) {
	written := len(p)
	d.n += written

	if d.off > 0 {
		take := BlockSize - d.off
		if take > len(p) {
			take = len(p)
		}
		copy(d.buf[d.off:], p[:take])
		d.off += take
		p = p[take:]
		if d.off < BlockSize {
			return written, nil
		}
		absorb(&d.v, binary.LittleEndian.Uint64(d.buf[:]), d.cr)
		d.off = 0
	}

	tail := len(p) % BlockSize
	absorbBlocks(&d.v, p[:len(p)-tail], d.cr)
	copy(d.buf[:], p[len(p)-tail:])
	d.off = tail
	return written, nil
}

// Sum64 finalizes a copy of the state and returns the 64-bit tag. For a
// 128-bit digest it returns the first output word.
func (d *digest) Sum64() uint64 {
	v := d.v
	absorb(&v, d.pendingWord(), d.cr)
	if d.wide {
		h0, _ := finalize128(&v, d.fr)
		return h0
	}
	return finalize64(&v, d.fr)
}

// Sum appends the little-endian serialization of the tag to b. The digest
// state is unchanged.
func (d *digest) Sum(b []byte) []byte {
	v := d.v
	absorb(&v, d.pendingWord(), d.cr)
	if !d.wide {
		var out [Size]byte
		binary.LittleEndian.PutUint64(out[:], finalize64(&v, d.fr))
		return append(b, out[:]...)
	}
	h0, h1 := finalize128(&v, d.fr)
	var out [Size128]byte
	binary.LittleEndian.PutUint64(out[0:8], h0)
	binary.LittleEndian.PutUint64(out[8:16], h1)
	return append(b, out[:]...)
}

// pendingWord builds the length-padded final word from the buffered partial
// block without disturbing the buffer.
func (d *digest) pendingWord() uint64 {
	var block [BlockSize]byte
	copy(block[:], d.buf[:d.off])
	block[BlockSize-1] = byte(d.n)
	return binary.LittleEndian.Uint64(block[:])
}
