// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"fmt"
	"strconv"
)

// Value is one tagged primitive: an INTEGER, OCTET STRING or NULL.
type Value struct {
	// Type is Integer, OctetString or Null.
	Type Asn1BER

	// Int holds the value of an Integer.
	Int uint32

	// Bytes holds the content of an OctetString. Decoded values borrow
	// the decode buffer.
	Bytes []byte
}

// IntegerValue returns an Integer Value.
func IntegerValue(v uint32) Value {
	return Value{Type: Integer, Int: v}
}

// OctetStringValue returns an OctetString Value holding b.
func OctetStringValue(b []byte) Value {
	return Value{Type: OctetString, Bytes: b}
}

// StringValue returns an OctetString Value holding s.
func StringValue(s string) Value {
	return Value{Type: OctetString, Bytes: []byte(s)}
}

// NullValue returns a Null Value.
func NullValue() Value {
	return Value{Type: Null}
}

func (v Value) String() string {
	switch v.Type {
	case Integer:
		return strconv.FormatUint(uint64(v.Int), 10)
	case OctetString:
		return strconv.Quote(string(v.Bytes))
	case Null:
		return "NULL"
	default:
		return fmt.Sprintf("%s(?)", v.Type)
	}
}

// WriteValue writes a single tagged value.
func (e *Encoder) WriteValue(v Value) error {
	switch v.Type {
	case Integer:
		return e.WriteInt(v.Int)
	case OctetString:
		return e.WriteOctetString(v.Bytes)
	case Null:
		return e.WriteNull()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedValueType, v.Type)
	}
}

// WriteData writes values back to back, with no enclosing SEQUENCE, so that
// they read back in slice order. Since the encoder grows backward the last
// value is written first.
func (e *Encoder) WriteData(values []Value) error {
	for i := len(values) - 1; i >= 0; i-- {
		if err := e.WriteValue(values[i]); err != nil {
			return fmt.Errorf("value %d: %w", i, err)
		}
	}
	return nil
}

// ReadValue reads a single tagged value, dispatching on its tag.
func (d *Decoder) ReadValue() (Value, error) {
	tag, err := d.Peek()
	if err != nil {
		return Value{}, err
	}
	switch Asn1BER(tag) {
	case Integer:
		i, err := d.ReadInt()
		return IntegerValue(i), err
	case OctetString:
		b, err := d.ReadOctetString()
		return OctetStringValue(b), err
	case Null:
		return NullValue(), d.ReadNull()
	default:
		return Value{}, fmt.Errorf("%w: tag %#x at offset %d", ErrUnsupportedValueType, tag, d.pos)
	}
}

// ReadData reads n back to back values.
func (d *Decoder) ReadData(n int) ([]Value, error) {
	values := make([]Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.ReadValue()
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		values = append(values, v)
	}
	return values, nil
}
