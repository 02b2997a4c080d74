// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	opMarshal   = "marshal"
	opUnmarshal = "unmarshal"
)

// Metrics counts codec traffic. A nil *Metrics records nothing.
type Metrics struct {
	messages *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

// NewMetrics creates the codec counters and registers them with reg, if
// reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cber_messages_total",
			Help: "Total SNMP messages marshalled or unmarshalled.",
		}, []string{"op", "pdu"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cber_bytes_total",
			Help: "Total bytes of SNMP messages marshalled or unmarshalled.",
		}, []string{"op"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cber_errors_total",
			Help: "Total failed marshal or unmarshal calls, by cause.",
		}, []string{"op", "kind"}),
	}
	if reg != nil {
		reg.MustRegister(m.messages, m.bytes, m.errors)
	}
	return m
}

func (m *Metrics) observe(op string, pdu PDUType, n int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.errors.WithLabelValues(op, errorKind(err)).Inc()
		return
	}
	m.messages.WithLabelValues(op, pdu.String()).Inc()
	m.bytes.WithLabelValues(op).Add(float64(n))
}

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrBufferExhausted, "buffer_exhausted"},
	{ErrCapacityExceeded, "capacity_exceeded"},
	{ErrIndefiniteLength, "indefinite_length"},
	{ErrIntegerTooWide, "integer_too_wide"},
	{ErrInvalidLength, "invalid_length"},
	{ErrInvalidOID, "invalid_oid"},
	{ErrLengthExceedsCapacity, "length_exceeds_capacity"},
	{ErrLengthMismatch, "length_mismatch"},
	{ErrLengthTooLarge, "length_too_large"},
	{ErrMalformedVarint, "malformed_varint"},
	{ErrStringTooLong, "string_too_long"},
	{ErrTruncatedInput, "truncated_input"},
	{ErrUnexpectedTag, "unexpected_tag"},
	{ErrUnsupportedPduType, "unsupported_pdu_type"},
	{ErrUnsupportedValueType, "unsupported_value_type"},
	{ErrZeroLenInteger, "zero_length_integer"},
}

// errorKind maps err to a low cardinality label.
func errorKind(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "other"
}
