// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stagerr implements the typed error kinds raised by the staggered
// grid distribution engine's set-up algorithm.
package stagerr

import "github.com/cpmech/gosl/utl"

// Kind classifies why set-up failed.
type Kind int

// error kinds
const (
	ArgOutOfRange Kind = iota // negative count, partition mismatch, bad rank grid
	SupUnsupported            // boundary/stencil tag not in the closed set, mesh too small for width
	IntOverflow               // global dof count G exceeds the 32-bit index range
	Plib                      // internal invariant violated; a bug, not a user error
)

// String returns a short tag for the error kind, used in messages and tests.
func (k Kind) String() string {
	switch k {
	case ArgOutOfRange:
		return "ArgOutOfRange"
	case SupUnsupported:
		return "SupUnsupported"
	case IntOverflow:
		return "IntOverflow"
	case Plib:
		return "Plib"
	}
	return "Unknown"
}

// Error is the concrete error type carried by every failing set-up check.
type Error struct {
	Kind Kind
	Msg  string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Err builds a *Error of the given kind with a formatted message.
func Err(kind Kind, format string, a ...interface{}) error {
	return &Error{Kind: kind, Msg: utl.Sf(format, a...)}
}

// Panic raises an internal invariant violation. Used only for Plib: bugs
// the set-up algorithm itself is expected never to trigger on valid input.
func Panic(format string, a ...interface{}) {
	utl.Panic(format, a...)
}

// KindOf extracts the Kind from err, returning Plib if err is not one of
// ours (an unexpected error is treated as an internal bug).
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return Plib
}
