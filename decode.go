// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import "fmt"

// Decoder reads BER values forward from a byte slice. Every read checks the
// end of the slice; nothing past len(buf) is ever touched.
type Decoder struct {
	buf     []byte
	pos     int
	pending *TerminatedString
}

// NewDecoder returns a Decoder positioned at the start of buf.
func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Offset is the index of the next unread byte.
func (d *Decoder) Offset() int {
	return d.pos
}

// Remaining is the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Peek returns the next byte without consuming it.
func (d *Decoder) Peek() (byte, error) {
	if err := d.ready(1); err != nil {
		return 0, err
	}
	return d.buf[d.pos], nil
}

func (d *Decoder) ready(n int) error {
	if d.pending != nil {
		return ErrPendingRestore
	}
	if n > d.Remaining() {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedInput, n, d.pos, d.Remaining())
	}
	return nil
}

func (d *Decoder) readByte() (byte, error) {
	if err := d.ready(1); err != nil {
		return 0, err
	}
	b := d.buf[d.pos]
	d.pos++
	return b, nil
}

// next consumes n bytes and returns them. The slice aliases the input.
func (d *Decoder) next(n int) ([]byte, error) {
	if err := d.ready(n); err != nil {
		return nil, err
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// ReadVarint reads a base 128 unsigned integer.
func (d *Decoder) ReadVarint() (uint32, error) {
	if d.pending != nil {
		return 0, ErrPendingRestore
	}
	v, offset, err := parseBase128Uint32(d.buf, d.pos)
	if err != nil {
		return 0, fmt.Errorf("varint at offset %d: %w", d.pos, err)
	}
	d.pos = offset
	return v, nil
}

// ReadLength reads a BER length field. The length is not checked against the
// remaining input; that is up to whoever consumes the content.
func (d *Decoder) ReadLength() (int, error) {
	first, err := d.readByte()
	if err != nil {
		return 0, err
	}
	if first&0x80 == 0 {
		return int(first), nil
	}
	numOctets := int(first & 0x7f)
	switch {
	case numOctets == 0:
		// Indefinite length encoding is prohibited in SNMP (RFC 3417 section 8).
		return 0, ErrIndefiniteLength
	case numOctets > maxLengthBytes:
		return 0, fmt.Errorf("%w: %d length bytes", ErrLengthTooLarge, numOctets)
	}
	octets, err := d.next(numOctets)
	if err != nil {
		return 0, err
	}
	var length uint64
	for _, b := range octets {
		length = length<<8 | uint64(b)
	}
	if length > uint64(maxInt) {
		return 0, fmt.Errorf("%w: %d", ErrLengthTooLarge, length)
	}
	return int(length), nil
}

const maxInt = int(^uint(0) >> 1)

// ReadHeader reads a tag and length.
func (d *Decoder) ReadHeader() (byte, int, error) {
	tag, err := d.readByte()
	if err != nil {
		return 0, 0, err
	}
	length, err := d.ReadLength()
	if err != nil {
		return 0, 0, err
	}
	return tag, length, nil
}

// expect reads a header and checks its tag. The returned length is known to
// fit in the remaining input.
func (d *Decoder) expect(want Asn1BER) (int, error) {
	start := d.pos
	tag, length, err := d.ReadHeader()
	if err != nil {
		return 0, err
	}
	if Asn1BER(tag) != want {
		d.pos = start
		return 0, fmt.Errorf("%w: got %#x, want %s", ErrUnexpectedTag, tag, want)
	}
	if length > d.Remaining() {
		return 0, fmt.Errorf("%w: %s length %d, have %d", ErrTruncatedInput, want, length, d.Remaining())
	}
	return length, nil
}

// ReadInt reads an INTEGER of up to 4 content bytes.
func (d *Decoder) ReadInt() (uint32, error) {
	length, err := d.expect(Integer)
	if err != nil {
		return 0, err
	}
	content, err := d.next(length)
	if err != nil {
		return 0, err
	}
	v, err := parseUint32(content)
	if err != nil {
		return 0, fmt.Errorf("integer at offset %d: %w", d.pos-length, err)
	}
	return v, nil
}

// ReadOctetString reads an OCTET STRING without copying. The returned slice
// aliases the input and is only valid while the input is unchanged.
func (d *Decoder) ReadOctetString() ([]byte, error) {
	length, err := d.expect(OctetString)
	if err != nil {
		return nil, err
	}
	return d.next(length)
}

// ReadOctetStringInto copies an OCTET STRING into dst and returns its length.
func (d *Decoder) ReadOctetStringInto(dst []byte) (int, error) {
	start := d.pos
	length, err := d.expect(OctetString)
	if err != nil {
		return 0, err
	}
	if length > len(dst) {
		d.pos = start
		return 0, fmt.Errorf("%w: string of %d bytes, room for %d", ErrLengthExceedsCapacity, length, len(dst))
	}
	content, err := d.next(length)
	if err != nil {
		return 0, err
	}
	return copy(dst, content), nil
}

// ReadStringAlloc reads an OCTET STRING into a newly allocated string.
func (d *Decoder) ReadStringAlloc() (string, error) {
	content, err := d.ReadOctetString()
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TerminatedString is an OCTET STRING made NUL terminated in place. The byte
// following the content was overwritten with 0; Restore puts it back.
type TerminatedString struct {
	// Bytes holds the content followed by the NUL terminator.
	Bytes []byte

	d     *Decoder
	saved byte
}

// String returns the content without the terminator.
func (t *TerminatedString) String() string {
	return string(t.Bytes[:len(t.Bytes)-1])
}

// Saved returns the original value of the overwritten byte.
func (t *TerminatedString) Saved() byte {
	return t.saved
}

// Restore writes the saved byte back and lets the decoder continue.
func (t *TerminatedString) Restore() {
	if t.d == nil {
		return
	}
	t.Bytes[len(t.Bytes)-1] = t.saved
	t.d.pending = nil
	t.d = nil
}

// ReadTerminatedString reads an OCTET STRING and NUL terminates it in place,
// overwriting the first byte after the content. The decoder refuses further
// reads until Restore is called on the result.
func (d *Decoder) ReadTerminatedString() (*TerminatedString, error) {
	start := d.pos
	length, err := d.expect(OctetString)
	if err != nil {
		return nil, err
	}
	end := d.pos + length
	if end >= len(d.buf) {
		d.pos = start
		return nil, fmt.Errorf("%w: no byte after string at offset %d to terminate it", ErrTruncatedInput, end)
	}
	t := &TerminatedString{
		Bytes: d.buf[d.pos : end+1],
		d:     d,
		saved: d.buf[end],
	}
	d.buf[end] = 0
	d.pos = end
	d.pending = t
	return t, nil
}

// ReadNull reads a NULL value.
func (d *Decoder) ReadNull() error {
	length, err := d.expect(Null)
	if err != nil {
		return err
	}
	if length != 0 {
		return fmt.Errorf("%w: NULL with length %d", ErrLengthMismatch, length)
	}
	return nil
}
