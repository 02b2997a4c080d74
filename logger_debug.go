// Copyright 2012 The GoSNMP Authors. All rights reserved.  Use of this
// source code is governed by a BSD-style license that can be found in the
// LICENSE file.

//go:build !cber_nodebug

package cber

func (l *Logger) Print(v ...any) {
	if l.logger != nil {
		l.logger.Print(v...)
	}
}

func (l *Logger) Printf(format string, v ...any) {
	if l.logger != nil {
		l.logger.Printf(format, v...)
	}
}

// Enabled reports whether a LoggerInterface is attached. Check it before
// formatting arguments that cost something to build.
func (l *Logger) Enabled() bool {
	return l.logger != nil
}
