// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"fmt"
	"math"
)

/*
	Format strings are a run of verbs with nothing in between:

	%u	INTEGER, one unsigned argument (*uint32 when scanning)
	%s	OCTET STRING, one string or []byte argument (*[]byte when scanning,
		the result borrows the input)
	%ms	OCTET STRING scanned into a *string copy, also spelled %as
	%n	NULL, no argument

	The two letter %ms/%as verbs are scan only.
*/

// ParseFormat turns a format string and its arguments into the values it
// describes, in format order. Nothing is encoded.
func ParseFormat(format string, args ...any) ([]Value, error) {
	if len(format)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %q", ErrInvalidFormat, format)
	}
	values := make([]Value, 0, len(format)/2)
	argi := 0
	nextArg := func(verb byte) (any, error) {
		if argi == len(args) {
			return nil, fmt.Errorf("%w: missing argument for %%%c", ErrInvalidFormat, verb)
		}
		argi++
		return args[argi-1], nil
	}
	for i := 0; i < len(format); i += 2 {
		if format[i] != '%' {
			return nil, fmt.Errorf("%w: %q at %d is not a verb", ErrInvalidFormat, format[i:i+2], i)
		}
		switch verb := format[i+1]; verb {
		case 'u':
			arg, err := nextArg(verb)
			if err != nil {
				return nil, err
			}
			u, ok := toUint32(arg)
			if !ok {
				return nil, fmt.Errorf("%w: %%u takes an unsigned 32 bit value, got %T(%v)", ErrInvalidFormat, arg, arg)
			}
			values = append(values, IntegerValue(u))
		case 's':
			arg, err := nextArg(verb)
			if err != nil {
				return nil, err
			}
			switch s := arg.(type) {
			case string:
				values = append(values, StringValue(s))
			case []byte:
				values = append(values, OctetStringValue(s))
			default:
				return nil, fmt.Errorf("%w: %%s takes a string or []byte, got %T", ErrInvalidFormat, arg)
			}
		case 'n':
			values = append(values, NullValue())
		default:
			return nil, fmt.Errorf("%w: unknown verb %%%c", ErrInvalidFormat, verb)
		}
	}
	if argi != len(args) {
		return nil, fmt.Errorf("%w: %d unused arguments", ErrInvalidFormat, len(args)-argi)
	}
	return values, nil
}

func toUint32(arg any) (uint32, bool) {
	switch v := arg.(type) {
	case uint32:
		return v, true
	case uint8:
		return uint32(v), true
	case uint16:
		return uint32(v), true
	case uint:
		return uint32(v), v <= math.MaxUint32
	case uint64:
		return uint32(v), v <= math.MaxUint32
	case int:
		return uint32(v), v >= 0 && uint64(v) <= math.MaxUint32
	case int64:
		return uint32(v), v >= 0 && v <= math.MaxUint32
	default:
		return 0, false
	}
}

// Printf encodes the values described by format and args. The whole format
// is checked before anything is written; the values then read back in
// format order.
func (e *Encoder) Printf(format string, args ...any) error {
	values, err := ParseFormat(format, args...)
	if err != nil {
		return err
	}
	return e.WriteData(values)
}

type scanVerb struct {
	verb byte // 'u', 's', 'm' (allocating string) or 'n'
	arg  any
}

func parseScanFormat(format string, args []any) ([]scanVerb, error) {
	var verbs []scanVerb
	argi := 0
	for i := 0; i < len(format); {
		if format[i] != '%' || i+1 == len(format) {
			return nil, fmt.Errorf("%w: %q at %d is not a verb", ErrInvalidFormat, format[i:], i)
		}
		verb := format[i+1]
		i += 2
		if verb == 'm' || verb == 'a' {
			if i == len(format) || format[i] != 's' {
				return nil, fmt.Errorf("%w: %%%c must be followed by s", ErrInvalidFormat, verb)
			}
			verb = 'm'
			i++
		}
		sv := scanVerb{verb: verb}
		if verb != 'n' {
			if argi == len(args) {
				return nil, fmt.Errorf("%w: missing argument for verb %d", ErrInvalidFormat, len(verbs))
			}
			sv.arg = args[argi]
			argi++
		}
		var ok bool
		switch verb {
		case 'u':
			_, ok = sv.arg.(*uint32)
		case 's':
			_, ok = sv.arg.(*[]byte)
		case 'm':
			_, ok = sv.arg.(*string)
		case 'n':
			ok = true
		default:
			return nil, fmt.Errorf("%w: unknown verb %%%c", ErrInvalidFormat, verb)
		}
		if !ok {
			return nil, fmt.Errorf("%w: verb %d cannot scan into %T", ErrInvalidFormat, len(verbs), sv.arg)
		}
		verbs = append(verbs, sv)
	}
	if argi != len(args) {
		return nil, fmt.Errorf("%w: %d unused arguments", ErrInvalidFormat, len(args)-argi)
	}
	return verbs, nil
}

// Scanf decodes values in format order into the pointers in args.
func (d *Decoder) Scanf(format string, args ...any) error {
	verbs, err := parseScanFormat(format, args)
	if err != nil {
		return err
	}
	for i, sv := range verbs {
		switch sv.verb {
		case 'u':
			*sv.arg.(*uint32), err = d.ReadInt()
		case 's':
			*sv.arg.(*[]byte), err = d.ReadOctetString()
		case 'm':
			*sv.arg.(*string), err = d.ReadStringAlloc()
		case 'n':
			err = d.ReadNull()
		}
		if err != nil {
			return fmt.Errorf("verb %d: %w", i, err)
		}
	}
	return nil
}
