// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testsOID = []struct {
	oid       string
	goodBytes []byte
}{
	{"1.3.6.1.2.1.1.7.0", []byte{0x06, 0x08, 0x2b, 0x06, 0x01, 0x02, 0x01, 0x01, 0x07, 0x00}},
	{"1.3.6.1.4.1.26609.2.1.1.2.0", []byte{0x06, 0x0d, 0x2b, 0x06, 0x01, 0x04, 0x01, 0x81, 0xcf, 0x71, 0x02, 0x01, 0x01, 0x02, 0x00}},
	{"1.3.6.1.4.1.318.1.1.4.4.2.1.3.5", []byte{0x06, 0x0f, 0x2b, 0x06, 0x01, 0x04, 0x01, 0x82, 0x3e, 0x01, 0x01, 0x04, 0x04, 0x02, 0x01, 0x03, 0x05}},
	{"0.0", []byte{0x06, 0x01, 0x00}},
	{"0.39", []byte{0x06, 0x01, 0x27}},
	{"1.0", []byte{0x06, 0x01, 0x28}},
	{"2.0", []byte{0x06, 0x01, 0x50}},
	{"2.999.3", []byte{0x06, 0x03, 0x88, 0x37, 0x03}},
	{"1.3.4294967294", []byte{0x06, 0x06, 0x2b, 0x8f, 0xff, 0xff, 0xff, 0x7e}},
}

func TestWriteOID(t *testing.T) {
	for _, test := range testsOID {
		t.Run(test.oid, func(t *testing.T) {
			e := NewEncoder(make([]byte, 64))
			require.NoError(t, e.WriteOID(MustParseOID(test.oid)))
			assert.Equal(t, test.goodBytes, e.Bytes())
		})
	}
}

func TestReadOID(t *testing.T) {
	for _, test := range testsOID {
		t.Run(test.oid, func(t *testing.T) {
			d := NewDecoder(test.goodBytes)
			oid, err := d.ReadOID(MaxOIDLength)
			require.NoError(t, err)
			assert.Equal(t, test.oid, oid.String())
			assert.Zero(t, d.Remaining())
		})
	}
}

func TestReadOIDInto(t *testing.T) {
	in := testsOID[0].goodBytes
	dst := make([]uint32, 10)
	n, err := NewDecoder(in).ReadOIDInto(dst)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, []uint32{1, 3, 6, 1, 2, 1, 1, 7, 0, OIDEnd}, dst)
	assert.True(t, OID(dst).Equal(MustParseOID("1.3.6.1.2.1.1.7.0")))

	// Nine arcs need room for ten.
	d := NewDecoder(in)
	_, err = d.ReadOIDInto(make([]uint32, 9))
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = NewDecoder(in).ReadOIDInto(make([]uint32, 1))
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestReadOIDIntoSmallDst(t *testing.T) {
	for _, size := range []int{0, 1, 2} {
		d := NewDecoder(testsOID[3].goodBytes) // "0.0", two arcs
		_, err := d.ReadOIDInto(make([]uint32, size))
		require.ErrorIs(t, err, ErrCapacityExceeded, "size %d", size)
		assert.NotContains(t, err.Error(), "-1")
		assert.Zero(t, d.Offset(), "size %d", size)
	}

	dst := make([]uint32, 3)
	n, err := NewDecoder(testsOID[3].goodBytes).ReadOIDInto(dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []uint32{0, 0, OIDEnd}, dst)
}

func TestReadOIDErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		err  error
	}{
		{"empty", []byte{0x06, 0x00}, ErrInvalidOID},
		{"varint past end", []byte{0x06, 0x02, 0x2b, 0x81, 0x01}, ErrMalformedVarint},
		{"terminator arc", []byte{0x06, 0x06, 0x2b, 0x8f, 0xff, 0xff, 0xff, 0x7f}, ErrInvalidOID},
		{"too long varint", []byte{0x06, 0x07, 0x2b, 0x81, 0x80, 0x80, 0x80, 0x80, 0x00}, ErrMalformedVarint},
		{"truncated", []byte{0x06, 0x05, 0x2b, 0x06}, ErrTruncatedInput},
		{"wrong tag", []byte{0x04, 0x01, 0x2b}, ErrUnexpectedTag},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewDecoder(test.in).ReadOID(MaxOIDLength)
			assert.ErrorIs(t, err, test.err)
		})
	}

	_, err := NewDecoder(testsOID[0].goodBytes).ReadOID(4)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestParseOID(t *testing.T) {
	oid, err := ParseOID(".1.3.6.1.2.1.1.1.0")
	require.NoError(t, err)
	assert.Equal(t, OID{1, 3, 6, 1, 2, 1, 1, 1, 0}, oid)

	for _, bad := range []string{"", "1", "1.x", "3.1", "1.40", "1.3.4294967295", "1..3"} {
		_, err := ParseOID(bad)
		assert.ErrorIs(t, err, ErrInvalidOID, bad)
	}
	assert.Panics(t, func() { MustParseOID("1") })
}

func TestWriteOIDInvalid(t *testing.T) {
	e := NewEncoder(make([]byte, 64))
	for _, oid := range []OID{nil, {1}, {3, 1}, {0, 40}, {1, OIDEnd, 2}, make(OID, MaxOIDLength+1)} {
		assert.ErrorIs(t, e.WriteOID(oid), ErrInvalidOID, "%v", []uint32(oid))
	}
	assert.Zero(t, e.Len())
}

func TestOIDString(t *testing.T) {
	assert.Equal(t, "1.3.6", OID{1, 3, 6, OIDEnd, 9}.String())
	assert.Equal(t, "", OID{}.String())
}
