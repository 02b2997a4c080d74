// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"errors"
	"math"
)

// helper error modes
var (
	ErrBufferExhausted       = errors.New("encode buffer exhausted")
	ErrCapacityExceeded      = errors.New("output capacity exceeded")
	ErrIndefiniteLength      = errors.New("indefinite length encoding is not supported")
	ErrIntegerTooWide        = errors.New("integer wider than 4 bytes")
	ErrInvalidFormat         = errors.New("invalid format string")
	ErrInvalidLength         = errors.New("invalid length")
	ErrInvalidOID            = errors.New("invalid object identifier")
	ErrLengthExceedsCapacity = errors.New("length exceeds capacity")
	ErrLengthMismatch        = errors.New("nested length disagrees with enclosing length")
	ErrLengthTooLarge        = errors.New("length too large")
	ErrMalformedVarint       = errors.New("malformed base 128 integer")
	ErrPendingRestore        = errors.New("terminated string not restored")
	ErrStringTooLong         = errors.New("octet string too long")
	ErrTruncatedInput        = errors.New("truncated input")
	ErrUnexpectedTag         = errors.New("unexpected tag")
	ErrUnsupportedPduType    = errors.New("unsupported PDU type")
	ErrUnsupportedValueType  = errors.New("unsupported value type")
	ErrZeroLenInteger        = errors.New("zero length integer")
)

const (
	// MaxEncodedLength is the largest content length WriteLength emits.
	// Two length bytes follow the 0x82 prefix at most.
	MaxEncodedLength = 0xFFFF

	// MaxStringLength is the largest octet string WriteOctetString accepts.
	MaxStringLength = 0xFFFF

	// maxVarintLen is the most bytes a base 128 uint32 occupies.
	maxVarintLen = 5

	// maxLengthBytes is the most long form length bytes ReadLength accepts.
	maxLengthBytes = 4

	// maxIntegerLen is the most INTEGER content bytes, enough for a uint32.
	maxIntegerLen = 4
)

// -- helper functions (mostly) in alphabetical order --------------------------

// base128Len returns the number of bytes n occupies in base 128 form.
func base128Len(n uint32) int {
	l := 1
	for n >>= 7; n > 0; n >>= 7 {
		l++
	}
	return l
}

// lengthLen returns the number of bytes the BER length field for n occupies.
func lengthLen(n int) int {
	switch {
	case n < 0x80:
		return 1
	case n <= 0xFF:
		return 2
	default:
		return 3
	}
}

// parseBase128Uint32 parses a base-128 encoded unsigned integer from the given
// offset in the given byte slice. Returns the value and the new offset.
func parseBase128Uint32(bytes []byte, initOffset int) (uint32, int, error) {
	var ret uint64
	offset := initOffset
	for offset < len(bytes) {
		if offset-initOffset == maxVarintLen {
			return 0, 0, ErrMalformedVarint
		}
		b := bytes[offset]
		offset++
		ret = (ret << 7) | uint64(b&0x7f)
		if ret > math.MaxUint32 {
			return 0, 0, ErrMalformedVarint
		}
		if b&0x80 == 0 {
			return uint32(ret), offset, nil
		}
	}
	if offset-initOffset == maxVarintLen {
		return 0, 0, ErrMalformedVarint
	}
	return 0, 0, ErrTruncatedInput
}

// parseUint32 treats the given bytes as a big-endian, unsigned integer and
// returns the result.
func parseUint32(bytes []byte) (uint32, error) {
	switch {
	case len(bytes) == 0:
		// X.690 8.3.1: the contents octets shall consist of one or more octets.
		return 0, ErrZeroLenInteger
	case len(bytes) > maxIntegerLen:
		return 0, ErrIntegerTooWide
	}
	var ret uint32
	for _, b := range bytes {
		ret = ret<<8 | uint32(b)
	}
	return ret, nil
}

// uint32Len returns the number of INTEGER content bytes for v. Zero still
// takes one byte.
func uint32Len(v uint32) int {
	l := 1
	for v >>= 8; v > 0; v >>= 8 {
		l++
	}
	return l
}
