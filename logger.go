// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

package cber

// LoggerInterface is used for debugging. Both Print and Printf have the same
// interfaces as Package Log in the std library, so a *log.Logger satisfies
// it. For verbose logging to stdout:
//
//	cber.Default.Logger = cber.NewLogger(log.New(os.Stdout, "", 0))
type LoggerInterface interface {
	Print(v ...any)
	Printf(format string, v ...any)
}

// Logger wraps a LoggerInterface. The zero Logger discards everything.
type Logger struct {
	logger LoggerInterface
}

// NewLogger returns a Logger forwarding to logger.
func NewLogger(logger LoggerInterface) Logger {
	return Logger{
		logger: logger,
	}
}
