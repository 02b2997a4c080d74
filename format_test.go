// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintf(t *testing.T) {
	e := NewEncoder(make([]byte, 1024))
	require.NoError(t, e.Printf("%u%u%s", 64, 103, "testing_strings_123"))

	want := []byte{
		0x02, 0x01, 0x40,
		0x02, 0x01, 0x67,
		0x04, 0x13,
		't', 'e', 's', 't', 'i', 'n', 'g', '_',
		's', 't', 'r', 'i', 'n', 'g', 's', '_',
		'1', '2', '3',
	}
	if diff := cmp.Diff(want, e.Bytes()); diff != "" {
		t.Fatalf("Printf mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintfScanf(t *testing.T) {
	e := NewEncoder(make([]byte, 64))
	require.NoError(t, e.Printf("%n%u%s%s", uint32(0xcafe), []byte{1, 2}, "community"))

	var (
		u    uint32
		raw  []byte
		comm string
	)
	d := NewDecoder(e.Bytes())
	require.NoError(t, d.Scanf("%n%u%s%ms", &u, &raw, &comm))
	assert.Equal(t, uint32(0xcafe), u)
	assert.Equal(t, []byte{1, 2}, raw)
	assert.Equal(t, "community", comm)
	assert.Zero(t, d.Remaining())

	var alt string
	require.NoError(t, NewDecoder([]byte{0x04, 0x01, 'x'}).Scanf("%as", &alt))
	assert.Equal(t, "x", alt)
}

func TestPrintfInvalid(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{"odd length", "%u%", []any{1}},
		{"not a verb", "u%", []any{1}},
		{"unknown verb", "%x", []any{1}},
		{"missing arg", "%u%u", []any{1}},
		{"unused arg", "%u", []any{1, 2}},
		{"negative", "%u", []any{-1}},
		{"too wide", "%u", []any{uint64(1) << 32}},
		{"string as int", "%u", []any{"1"}},
		{"int as string", "%s", []any{1}},
		{"scan verb", "%ms", []any{"x"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			e := NewEncoder(make([]byte, 64))
			assert.ErrorIs(t, e.Printf(test.format, test.args...), ErrInvalidFormat)
			// Nothing is written for a bad format
			assert.Zero(t, e.Len())
		})
	}
}

func TestScanfInvalid(t *testing.T) {
	var u uint32
	var b []byte
	var s string
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{"dangling percent", "%", []any{}},
		{"m without s", "%mu", []any{&u}},
		{"unknown verb", "%x", []any{&u}},
		{"wrong pointer", "%u", []any{&s}},
		{"borrowed into string", "%s", []any{&s}},
		{"alloc into bytes", "%ms", []any{&b}},
		{"missing arg", "%u", nil},
		{"unused arg", "%n", []any{&u}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewDecoder([]byte{0x02, 0x01, 0x01})
			assert.ErrorIs(t, d.Scanf(test.format, test.args...), ErrInvalidFormat)
			assert.Zero(t, d.Offset())
		})
	}
}

func TestScanfDecodeError(t *testing.T) {
	var u uint32
	d := NewDecoder([]byte{0x05, 0x00})
	err := d.Scanf("%u", &u)
	assert.ErrorIs(t, err, ErrUnexpectedTag)
}
