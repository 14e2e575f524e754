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

// Package hexutil implements hex encoding with an optional 0x prefix.
// It is how keys, messages and tags travel as text on the tool surface:
// byte slices are fixed even-length hex, quantities are uint64 hex numbers.
package hexutil

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrEmptyString = errors.New("empty hex string")
	ErrSyntax      = errors.New("invalid hex")
	ErrOddLength   = errors.New("hex string has odd length")
	ErrEmptyNumber = errors.New("hex number has no digits")
	ErrUint64Range = errors.New("hex number does not fit into 64 bits")
)

// Decode decodes a hex string into bytes. The 0x prefix is accepted but not
// required; an empty payload decodes to an empty slice.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	dec, err := hex.DecodeString(strip0x(input))
	if err != nil {
		return nil, mapError(err)
	}
	return dec, nil
}

// MustDecode decodes a hex string. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// DecodeFixed decodes a hex string that must describe exactly size bytes.
// A wrong-sized payload is reported with both lengths; it is never padded
// or truncated to fit.
func DecodeFixed(input string, size int) ([]byte, error) {
	dec, err := Decode(input)
	if err != nil {
		return nil, err
	}
	if len(dec) != size {
		return nil, fmt.Errorf("hex data describes %d bytes, need exactly %d", len(dec), size)
	}
	return dec, nil
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// DecodeUint64 decodes a hex string as a 64-bit quantity.
func DecodeUint64(input string) (uint64, error) {
	if len(input) == 0 {
		return 0, ErrEmptyString
	}
	raw := strip0x(input)
	if len(raw) == 0 {
		return 0, ErrEmptyNumber
	}
	dec, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return 0, mapError(err)
	}
	return dec, nil
}

// EncodeUint64 encodes i as a hex string with 0x prefix.
func EncodeUint64(i uint64) string {
	enc := make([]byte, 2, 10)
	copy(enc, "0x")
	return string(strconv.AppendUint(enc, i, 16))
}

func strip0x(input string) string {
	if len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X') {
		return input[2:]
	}
	return input
}

func mapError(err error) error {
	if err, ok := err.(*strconv.NumError); ok {
		switch err.Err {
		case strconv.ErrRange:
			return ErrUint64Range
		case strconv.ErrSyntax:
			return ErrSyntax
		}
	}
	var invalid hex.InvalidByteError
	if errors.As(err, &invalid) {
		return ErrSyntax
	}
	if errors.Is(err, hex.ErrLength) {
		return ErrOddLength
	}
	return err
}
