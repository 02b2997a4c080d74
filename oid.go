// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// OID is an object identifier, one uint32 per arc. An OIDEnd arc, if
// present, terminates it.
type OID []uint32

const (
	// OIDEnd terminates an arc sequence. It is never a valid arc.
	OIDEnd uint32 = 0xFFFFFFFF

	// MaxOIDLength is the most arcs an OID may have.
	MaxOIDLength = 128
)

// ParseOID parses the dotted form, eg "1.3.6.1.2.1.1.1.0". A leading dot is
// allowed.
func ParseOID(s string) (OID, error) {
	s = strings.TrimPrefix(s, ".")
	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > MaxOIDLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOID, s)
	}
	oid := make(OID, len(parts))
	for i, part := range parts {
		arc, err := strconv.ParseUint(part, 10, 32)
		if err != nil || uint32(arc) == OIDEnd {
			return nil, fmt.Errorf("%w: arc %d of %q", ErrInvalidOID, i, s)
		}
		oid[i] = uint32(arc)
	}
	if err := oid.validate(); err != nil {
		return nil, err
	}
	return oid, nil
}

// MustParseOID is ParseOID for constants; it panics on error.
func MustParseOID(s string) OID {
	oid, err := ParseOID(s)
	if err != nil {
		panic(err)
	}
	return oid
}

// arcs returns the OID up to, not including, the first OIDEnd.
func (o OID) arcs() OID {
	for i, arc := range o {
		if arc == OIDEnd {
			return o[:i]
		}
	}
	return o
}

func (o OID) String() string {
	arcs := o.arcs()
	// Worst case ten digits and a dot per arc
	out := make([]byte, 0, len(arcs)*11)
	for i, arc := range arcs {
		if i > 0 {
			out = append(out, '.')
		}
		out = strconv.AppendUint(out, uint64(arc), 10)
	}
	return string(out)
}

// Equal reports whether o and p have the same arcs.
func (o OID) Equal(p OID) bool {
	a, b := o.arcs(), p.arcs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// validate checks the X.690 rules for the first two arcs, which share one
// sub-identifier.
func (o OID) validate() error {
	arcs := o.arcs()
	switch {
	case len(arcs) < 2:
		return fmt.Errorf("%w: %d arcs", ErrInvalidOID, len(arcs))
	case len(arcs) > MaxOIDLength:
		return fmt.Errorf("%w: %d arcs", ErrInvalidOID, len(arcs))
	case arcs[0] > 2:
		return fmt.Errorf("%w: first arc %d", ErrInvalidOID, arcs[0])
	case arcs[0] < 2 && arcs[1] > 39:
		return fmt.Errorf("%w: second arc %d under %d", ErrInvalidOID, arcs[1], arcs[0])
	case arcs[1] > OIDEnd-1-80:
		return fmt.Errorf("%w: second arc %d", ErrInvalidOID, arcs[1])
	}
	return nil
}

// WriteOID writes oid as an OBJECT IDENTIFIER. Arcs are written last to
// third, then the first two packed as arc0*40+arc1.
func (e *Encoder) WriteOID(oid OID) error {
	if err := oid.validate(); err != nil {
		return err
	}
	arcs := oid.arcs()
	mark := e.Len()
	for i := len(arcs) - 1; i >= 2; i-- {
		if err := e.WriteVarint(arcs[i]); err != nil {
			return err
		}
	}
	if err := e.WriteVarint(arcs[0]*40 + arcs[1]); err != nil {
		return err
	}
	return e.wrap(byte(ObjectIdentifier), mark)
}

// readOID decodes an OBJECT IDENTIFIER, handing each arc to emit. At most
// capacity arcs are accepted.
func (d *Decoder) readOID(capacity int, emit func(uint32)) (int, error) {
	length, err := d.expect(ObjectIdentifier)
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, fmt.Errorf("%w: empty", ErrInvalidOID)
	}
	if capacity < 2 {
		return 0, fmt.Errorf("%w: room for %d arcs", ErrCapacityExceeded, capacity)
	}
	content := d.buf[d.pos : d.pos+length]

	first, offset, err := parseBase128Uint32(content, 0)
	if err != nil {
		return 0, oidVarintError(err)
	}
	// X.690 8.19.4: arc0 is 0 or 1 only when the first sub-identifier is
	// under 80; everything above belongs to arc0 = 2.
	switch {
	case first < 40:
		emit(0)
		emit(first)
	case first < 80:
		emit(1)
		emit(first - 40)
	default:
		emit(2)
		emit(first - 80)
	}
	n := 2
	for offset < len(content) {
		if n == capacity {
			return 0, fmt.Errorf("%w: more than %d arcs", ErrCapacityExceeded, capacity)
		}
		var arc uint32
		arc, offset, err = parseBase128Uint32(content, offset)
		if err != nil {
			return 0, oidVarintError(err)
		}
		if arc == OIDEnd {
			return 0, fmt.Errorf("%w: arc %d is the terminator value", ErrInvalidOID, n)
		}
		emit(arc)
		n++
	}
	d.pos += length
	return n, nil
}

// oidVarintError reports a varint cut short by the OID length as malformed;
// the bytes after it belong to something else.
func oidVarintError(err error) error {
	if errors.Is(err, ErrTruncatedInput) {
		return fmt.Errorf("%w: sub-identifier runs past OID end", ErrMalformedVarint)
	}
	return err
}

// ReadOID reads an OBJECT IDENTIFIER of at most maxArcs arcs.
func (d *Decoder) ReadOID(maxArcs int) (OID, error) {
	oid := make(OID, 0, max(0, min(maxArcs, 16)))
	if _, err := d.readOID(maxArcs, func(arc uint32) { oid = append(oid, arc) }); err != nil {
		return nil, err
	}
	return oid, nil
}

// ReadOIDInto reads an OBJECT IDENTIFIER into dst, terminating it with
// OIDEnd, and returns the number of arcs. dst must have room for the arcs
// and the terminator.
func (d *Decoder) ReadOIDInto(dst []uint32) (int, error) {
	// two arcs and the terminator at least
	if len(dst) < 3 {
		return 0, fmt.Errorf("%w: room for %d values, need at least 3", ErrCapacityExceeded, len(dst))
	}
	i := 0
	n, err := d.readOID(len(dst)-1, func(arc uint32) { dst[i] = arc; i++ })
	if err != nil {
		return 0, err
	}
	dst[n] = OIDEnd
	return n, nil
}
