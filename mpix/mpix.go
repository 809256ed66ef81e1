// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mpix wraps gosl/mpi with the SPMD bootstrap and collective
// failure-propagation conventions the staggered grid engine needs: rank and
// size queries, and an all-reduce "anyone failed?" vote so a
// geometry error detected on one rank aborts set-up on every rank instead of
// leaving the others blocked on a later collective.
package mpix

import (
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

// Comm is the thinnest possible view of a communicator: its rank and size.
// The real communicator is always gosl/mpi's implicit world communicator;
// Comm exists so Distribution carries its MPI context explicitly rather
// than reading mpi's package-level state from deep inside set-up.
type Comm struct {
	Rank int
	Size int
}

// World returns the world communicator, or a single-rank Comm when MPI is
// not running (it does not start MPI). Mirrors fem.Start's "am I
// distributed" bootstrap.
func World() Comm {
	if !mpi.IsOn() {
		return Comm{Rank: 0, Size: 1}
	}
	return Comm{Rank: mpi.Rank(), Size: mpi.Size()}
}

// Distributed reports whether this communicator spans more than one rank.
func (c Comm) Distributed() bool { return c.Size > 1 }

// Root reports whether this rank is rank 0.
func (c Comm) Root() bool { return c.Rank == 0 }

// AllOK runs a collective vote on whether err is nil on every rank. It
// returns true only if every rank passed a nil error. Grounded on
// fem.errorhandler.go's Stop: a per-rank "I want to stop" flag all-reduced
// with max, so a single failing rank is enough to abort everywhere.
func (c Comm) AllOK(err error) bool {
	if !c.Distributed() {
		return err == nil
	}
	mine := 0
	if err != nil {
		mine = 1
	}
	send := make([]int, c.Size)
	recv := make([]int, c.Size)
	send[c.Rank] = mine
	mpi.IntAllReduceMax(recv, send)
	for _, stop := range recv {
		if stop > 0 {
			return false
		}
	}
	return true
}

// AllSumFloats all-reduce-sums data in place across every rank, used to
// combine a replicated global vector's disjoint per-rank contributions
// after a reverse scatter.
func (c Comm) AllSumFloats(data []float64) {
	if !c.Distributed() {
		return
	}
	recv := make([]float64, len(data))
	mpi.DblAllReduceSum(recv, data)
	copy(data, recv)
}

// BroadcastInt broadcasts an int from root to every rank. Set-up does not
// call it: ChooseRankGrid computes the same rank grid on every rank from
// the same inputs with no communication.
func (c Comm) BroadcastInt(v int) int {
	if !c.Distributed() {
		return v
	}
	buf := []int{v}
	mpi.BcastFromRoot(buf)
	return buf[0]
}

// Fatalf reports a fatal, non-recoverable condition detected collectively
// during set-up. Mirrors fem.errorhandler.go's PanicOrNot.
func (c Comm) Fatalf(format string, a ...interface{}) {
	msg := utl.Sf(format, a...)
	if c.Root() {
		utl.PfRed("ERROR: %s\n", msg)
	}
	panic(msg)
}
