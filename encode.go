// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import "fmt"

// Encoder writes BER values backward into a caller-owned buffer. The first
// value written ends up last in memory, so nested TLVs are built innermost
// first and each enclosing length is known by the time its header is
// written.
//
// The zero Encoder has no room; use NewEncoder.
type Encoder struct {
	buf []byte
	pos int
}

// NewEncoder returns an Encoder whose cursor sits at the end of buf.
func NewEncoder(buf []byte) *Encoder {
	return &Encoder{buf: buf, pos: len(buf)}
}

// Reset moves the cursor back to the end of the buffer.
func (e *Encoder) Reset() {
	e.pos = len(e.buf)
}

// Offset is the index of the first encoded byte.
func (e *Encoder) Offset() int {
	return e.pos
}

// Len is the number of bytes encoded so far.
func (e *Encoder) Len() int {
	return len(e.buf) - e.pos
}

// Available is the number of free bytes left below the cursor.
func (e *Encoder) Available() int {
	return e.pos
}

// Bytes returns the encoded region. It aliases the caller's buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf[e.pos:]
}

func (e *Encoder) writeByte(b byte) error {
	if e.pos == 0 {
		return ErrBufferExhausted
	}
	e.pos--
	e.buf[e.pos] = b
	return nil
}

// reserve claims n bytes below the cursor and returns them.
func (e *Encoder) reserve(n int) ([]byte, error) {
	if n > e.pos {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferExhausted, n, e.pos)
	}
	e.pos -= n
	return e.buf[e.pos : e.pos+n], nil
}

// WriteVarint writes v in base 128. The least significant group is written
// first, at the highest address, without a continuation bit.
func (e *Encoder) WriteVarint(v uint32) error {
	out, err := e.reserve(base128Len(v))
	if err != nil {
		return err
	}
	i := len(out) - 1
	out[i] = byte(v & 0x7f)
	for v >>= 7; v > 0; v >>= 7 {
		i--
		out[i] = byte(v&0x7f) | 0x80
	}
	return nil
}

// WriteLength writes a BER length field. Lengths below 128 use the short
// form, anything up to MaxEncodedLength the long form.
func (e *Encoder) WriteLength(length int) error {
	switch {
	case length < 0:
		return fmt.Errorf("%w: %d", ErrInvalidLength, length)
	case length > MaxEncodedLength:
		return fmt.Errorf("%w: %d", ErrLengthTooLarge, length)
	}
	out, err := e.reserve(lengthLen(length))
	if err != nil {
		return err
	}
	switch len(out) {
	case 1:
		out[0] = byte(length)
	case 2:
		out[0] = 0x81
		out[1] = byte(length)
	default:
		out[0] = 0x82
		out[1] = byte(length >> 8)
		out[2] = byte(length)
	}
	return nil
}

// WriteHeader writes the tag and length of a value whose contentLen bytes
// have already been written.
func (e *Encoder) WriteHeader(tag byte, contentLen int) error {
	if err := e.WriteLength(contentLen); err != nil {
		return err
	}
	return e.writeByte(tag)
}

// wrap writes the header of a constructed value that started when the
// encoder held mark bytes.
func (e *Encoder) wrap(tag byte, mark int) error {
	return e.WriteHeader(tag, e.Len()-mark)
}

// WriteInt writes an INTEGER holding the minimal big-endian bytes of v.
func (e *Encoder) WriteInt(v uint32) error {
	n := uint32Len(v)
	out, err := e.reserve(n)
	if err != nil {
		return err
	}
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return e.WriteHeader(byte(Integer), n)
}

// WriteOctetString writes an OCTET STRING holding b.
func (e *Encoder) WriteOctetString(b []byte) error {
	if len(b) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(b))
	}
	out, err := e.reserve(len(b))
	if err != nil {
		return err
	}
	copy(out, b)
	return e.WriteHeader(byte(OctetString), len(b))
}

// WriteString writes an OCTET STRING holding s.
func (e *Encoder) WriteString(s string) error {
	if len(s) > MaxStringLength {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	out, err := e.reserve(len(s))
	if err != nil {
		return err
	}
	copy(out, s)
	return e.WriteHeader(byte(OctetString), len(s))
}

// WriteNull writes the two byte NULL value.
func (e *Encoder) WriteNull() error {
	out, err := e.reserve(2)
	if err != nil {
		return err
	}
	out[0] = byte(Null)
	out[1] = 0x00
	return nil
}
