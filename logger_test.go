// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build !cber_nodebug

package cber

//go:generate mockgen -source=logger.go -destination=mocks_test.go -package=cber

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerUnmarshal(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := NewMockLoggerInterface(ctrl)

	gomock.InOrder(
		logger.EXPECT().Printf("Parsed version %d", Version1),
		logger.EXPECT().Printf("Parsed community %s", "private"),
	)
	logger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()

	c := &Codec{Logger: NewLogger(logger)}
	res, err := c.Unmarshal(privateGetBytes())
	require.NoError(t, err)
	assert.True(t, res.Logger.Enabled())
}

func TestLoggerMarshalUsesPacketLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	codecLogger := NewMockLoggerInterface(ctrl)
	packetLogger := NewMockLoggerInterface(ctrl)

	// Only the packet's own logger hears about the marshal.
	packetLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).MinTimes(1)

	p := testsEnmarshal[1].packet()
	p.Logger = NewLogger(packetLogger)
	c := &Codec{Logger: NewLogger(codecLogger)}
	_, err := c.Marshal(make([]byte, 128), p)
	require.NoError(t, err)
}

func TestLoggerDisabled(t *testing.T) {
	var l Logger
	assert.False(t, l.Enabled())
	l.Printf("dropped %d", 1)
	l.Print("dropped")
}
