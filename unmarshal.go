// Copyright 2012 Andreas Louca, 2013 Sonia Hamilton. All rights reserved.  Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package cber

import "fmt"

// -- Unmarshalling Logic ------------------------------------------------------

// budget is the number of bytes left in one level of TLV nesting.
type budget struct {
	name string
	left int
}

// take charges n consumed bytes, failing instead of going negative.
func (b *budget) take(n int) error {
	if n > b.left {
		return fmt.Errorf("%w: %s has %d bytes left, %d consumed", ErrLengthMismatch, b.name, b.left, n)
	}
	b.left -= n
	return nil
}

// read runs f and charges whatever it consumed from d.
func (b *budget) read(d *Decoder, f func() error) error {
	start := d.pos
	if err := f(); err != nil {
		return err
	}
	return b.take(d.pos - start)
}

// header reads a tag and length, charging the header bytes. The declared
// length must not exceed what is left.
func (b *budget) header(d *Decoder) (byte, int, error) {
	var tag byte
	var length int
	err := b.read(d, func() (err error) {
		tag, length, err = d.ReadHeader()
		return err
	})
	if err != nil {
		return 0, 0, err
	}
	if length > b.left {
		return 0, 0, fmt.Errorf("%w: %#x declares %d bytes, %s has %d left", ErrLengthMismatch, tag, length, b.name, b.left)
	}
	return tag, length, nil
}

// unmarshal decodes one message from buf into response, filling at most
// len(varbinds) varbinds. It returns the number of bytes the message took.
func (x *Codec) unmarshal(buf []byte, response *SnmpPacket, varbinds []VarBind) (int, error) {
	d := NewDecoder(buf)

	// First bytes should be 0x30
	tag, length, err := d.ReadHeader()
	if err != nil {
		return 0, fmt.Errorf("unable to parse message header: %w", err)
	}
	if Asn1BER(tag) != Sequence {
		return 0, fmt.Errorf("%w: invalid packet header %#x", ErrUnexpectedTag, tag)
	}
	if length > d.Remaining() {
		return 0, fmt.Errorf("%w: message declares %d bytes, got %d", ErrTruncatedInput, length, d.Remaining())
	}
	total := d.pos + length
	// Nothing below reads past the declared message.
	d.buf = buf[:total]
	x.Logger.Printf("Packet sanity verified, we got all the bytes (%d)", total)

	msg := &budget{name: "message", left: length}

	// Parse SNMP Version
	err = msg.read(d, func() error {
		version, err := d.ReadInt()
		response.Version = SnmpVersion(version)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("unable to parse SNMP packet version: %w", err)
	}
	x.Logger.Printf("Parsed version %d", response.Version)

	// Parse community
	err = msg.read(d, func() (err error) {
		response.Community, err = d.ReadStringAlloc()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("unable to parse community: %w", err)
	}
	x.Logger.Printf("Parsed community %s", response.Community)

	n, err := x.unmarshalPDU(d, msg, response, varbinds)
	if err != nil {
		return 0, err
	}
	response.Variables = varbinds[:n]

	if msg.left != 0 {
		return 0, fmt.Errorf("%w: %d bytes after the PDU", ErrLengthMismatch, msg.left)
	}
	return total, nil
}

func (x *Codec) unmarshalPDU(d *Decoder, msg *budget, response *SnmpPacket, varbinds []VarBind) (int, error) {
	tag, pduLength, err := msg.header(d)
	if err != nil {
		return 0, fmt.Errorf("unable to parse PDU header: %w", err)
	}
	response.PDUType = PDUType(tag)
	if !response.PDUType.Supported() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedPduType, response.PDUType)
	}
	if pduLength != msg.left {
		return 0, fmt.Errorf("%w: %s declares %d bytes, message has %d left", ErrLengthMismatch, response.PDUType, pduLength, msg.left)
	}
	x.Logger.Printf("UnmarshalPayload Meet PDUType %#x. Offset %v", tag, d.pos)

	pdu := &budget{name: "pdu", left: pduLength}
	fields := []struct {
		name string
		dst  *uint32
	}{
		{"request id", &response.RequestID},
		{"error-status", &response.Error},
		{"error index", &response.ErrorIndex},
	}
	for _, field := range fields {
		err = pdu.read(d, func() (err error) {
			*field.dst, err = d.ReadInt()
			return err
		})
		if err != nil {
			return 0, fmt.Errorf("unable to parse %s: %w", field.name, err)
		}
	}
	x.Logger.Printf("requestID: %d, errorStatus: %d, errorIndex: %d", response.RequestID, response.Error, response.ErrorIndex)

	n, err := x.unmarshalVBL(d, pdu, varbinds)
	if err != nil {
		return 0, err
	}
	return n, msg.take(pduLength)
}

// unmarshal a Varbind list
func (x *Codec) unmarshalVBL(d *Decoder, pdu *budget, varbinds []VarBind) (int, error) {
	tag, vblLength, err := pdu.header(d)
	if err != nil {
		return 0, fmt.Errorf("unable to parse varbind list header: %w", err)
	}
	if Asn1BER(tag) != Sequence {
		return 0, fmt.Errorf("%w: expected a sequence when unmarshalling a VBL, got %#x", ErrUnexpectedTag, tag)
	}
	if vblLength != pdu.left {
		return 0, fmt.Errorf("%w: varbind list declares %d bytes, pdu has %d left", ErrLengthMismatch, vblLength, pdu.left)
	}
	x.Logger.Printf("vblLength: %d", vblLength)

	vbl := &budget{name: "varbind list", left: vblLength}
	n := 0
	for vbl.left > 0 {
		if n == len(varbinds) {
			return 0, fmt.Errorf("%w: more than %d varbinds", ErrCapacityExceeded, len(varbinds))
		}
		if err := x.unmarshalVarbind(d, vbl, &varbinds[n]); err != nil {
			return 0, fmt.Errorf("varbind %d: %w", n, err)
		}
		if x.Logger.Enabled() {
			x.Logger.Printf("Parsed varbind %d: %s", n, varbinds[n])
		}
		n++
	}
	return n, pdu.take(vblLength)
}

func (x *Codec) unmarshalVarbind(d *Decoder, vbl *budget, vb *VarBind) error {
	tag, vbLength, err := vbl.header(d)
	if err != nil {
		return err
	}
	if Asn1BER(tag) != Sequence {
		return fmt.Errorf("%w: expected a sequence when unmarshalling a VB, got %#x", ErrUnexpectedTag, tag)
	}

	seq := &budget{name: "varbind", left: vbLength}
	err = seq.read(d, func() (err error) {
		vb.Name, err = d.ReadOID(x.maxOIDLength())
		return err
	})
	if err != nil {
		return fmt.Errorf("unable to parse OID: %w", err)
	}
	err = seq.read(d, func() (err error) {
		vb.Value, err = d.ReadValue()
		return err
	})
	if err != nil {
		return fmt.Errorf("unable to parse value of %s: %w", vb.Name, err)
	}
	if seq.left != 0 {
		return fmt.Errorf("%w: %d bytes after the value of %s", ErrLengthMismatch, seq.left, vb.Name)
	}
	return vbl.take(vbLength)
}
