// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build cber_nodebug

package cber

func (l *Logger) Print(v ...any) {}

func (l *Logger) Printf(format string, v ...any) {}

// Enabled always returns false; logging is compiled out.
func (l *Logger) Enabled() bool {
	return false
}
