// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := &Codec{Metrics: m}

	in := privateGetBytes()
	res, err := c.Unmarshal(in)
	require.NoError(t, err)
	_, err = c.Marshal(make([]byte, 64), res)
	require.NoError(t, err)
	_, err = c.Unmarshal(in[:10])
	require.Error(t, err)
	_, err = c.Marshal(make([]byte, 8), res)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.messages.WithLabelValues(opUnmarshal, "GetRequest")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.messages.WithLabelValues(opMarshal, "GetRequest")))
	assert.Equal(t, float64(len(in)), testutil.ToFloat64(m.bytes.WithLabelValues(opUnmarshal)))
	assert.Equal(t, float64(len(in)), testutil.ToFloat64(m.bytes.WithLabelValues(opMarshal)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(opUnmarshal, "truncated_input")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(opMarshal, "buffer_exhausted")))

	n, err := testutil.GatherAndCount(reg, "cber_messages_total", "cber_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestMetricsNil(t *testing.T) {
	var m *Metrics
	m.observe(opMarshal, GetRequest, 10, nil)

	// Registration is optional.
	NewMetrics(nil).observe(opUnmarshal, GetResponse, 10, ErrTruncatedInput)
}

func TestErrorKind(t *testing.T) {
	for _, k := range errorKinds {
		assert.Equal(t, k.kind, errorKind(fmt.Errorf("wrapped: %w", k.err)))
	}
	assert.Equal(t, "other", errorKind(fmt.Errorf("boom")))
}
