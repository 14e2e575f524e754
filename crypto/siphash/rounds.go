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
	"math/bits"
)

// Initialization constants, the little-endian words of the ASCII string
// "somepseudorandomlygeneratedbytes".
const (
	iv0 = 0x736f6d6570736575 // "somepseu"
	iv1 = 0x646f72616e646f6d // "dorandom"
	iv2 = 0x6c7967656e657261 // "lygenera"
	iv3 = 0x7465646279746573 // "tedbytes"
)

// initState derives the four state words from the key. The 128-bit output
// variant flips v1 with 0xee; together with the 0xdd finalization mask this
// is the only difference between the two variants.
func initState(k0, k1 uint64, wide bool) [4]uint64 {
	v := [4]uint64{k0 ^ iv0, k1 ^ iv1, k0 ^ iv2, k1 ^ iv3}
	if wide {
		v[1] ^= 0xee
	}
	return v
}

// sipRound is the SipHash round function. The add/rotate/xor sequence and
// the rotation distances 13, 16, 21, 17 and the two 32-bit lane swaps are
// fixed by the definition of the function; any change yields a different,
// non-interoperable hash.
func sipRound(v *[4]uint64) {
	v[0] += v[1]
	v[1] = bits.RotateLeft64(v[1], 13)
	v[1] ^= v[0]
	v[0] = bits.RotateLeft64(v[0], 32)

	v[2] += v[3]
	v[3] = bits.RotateLeft64(v[3], 16)
	v[3] ^= v[2]

	v[0] += v[3]
	v[3] = bits.RotateLeft64(v[3], 21)
	v[3] ^= v[0]

	v[2] += v[1]
	v[1] = bits.RotateLeft64(v[1], 17)
	v[1] ^= v[2]
	v[2] = bits.RotateLeft64(v[2], 32)
}

// absorb folds one message word into the state with c compression rounds.
// Every word, including the length-padded final one, is absorbed the same way.
func absorb(v *[4]uint64, m uint64, c int) {
	v[3] ^= m
	for i := 0; i < c; i++ {
		sipRound(v)
	}
	v[0] ^= m
}

// absorbBlocks absorbs all full 8-byte words of msg, leaving any trailing
// partial block untouched.
func absorbBlocks(v *[4]uint64, msg []byte, c int) {
	for len(msg) >= BlockSize {
		absorb(v, binary.LittleEndian.Uint64(msg), c)
		msg = msg[BlockSize:]
	}
}

// finalize64 runs the d finalization rounds and collapses the state into the
// 64-bit tag. The state is consumed.
func finalize64(v *[4]uint64, d int) uint64 {
	v[2] ^= 0xff
	for i := 0; i < d; i++ {
		sipRound(v)
	}
	return v[0] ^ v[1] ^ v[2] ^ v[3]
}

// finalize128 produces the two words of the 128-bit tag. The wide variant
// marks finalization with 0xee instead of 0xff; the second word comes from d
// further rounds after flipping v1 with 0xdd. These masks are fixed by the
// reference implementation and its published vectors.
func finalize128(v *[4]uint64, d int) (uint64, uint64) {
	v[2] ^= 0xee
	for i := 0; i < d; i++ {
		sipRound(v)
	}
	h0 := v[0] ^ v[1] ^ v[2] ^ v[3]
	v[1] ^= 0xdd
	for i := 0; i < d; i++ {
		sipRound(v)
	}
	return h0, v[0] ^ v[1] ^ v[2] ^ v[3]
}
