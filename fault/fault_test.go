// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/pokemart-inc/pokemartd/fault"
)

var (
	ErrBidOne       = fault.BidError("bid one")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrPausedOne    = fault.PausedError("paused one")
	ErrRejectedOne  = fault.RejectedError("rejected one")
	ErrStateOne     = fault.StateError("state one")
	ErrTransportOne = fault.TransportError("transport one")
)

// test that each error class is only detected by its own predicate
func TestClassification(t *testing.T) {
	errorList := []struct {
		err       error
		invalid   bool
		notFound  bool
		paused    bool
		bid       bool
		state     bool
		rejected  bool
		transport bool
	}{
		{ErrInvalidOne, true, false, false, false, false, false, false},
		{ErrInvalidTwo, true, false, false, false, false, false, false},
		{ErrNotFoundOne, false, true, false, false, false, false, false},
		{ErrPausedOne, false, false, true, false, false, false, false},
		{ErrBidOne, false, false, false, true, false, false, false},
		{ErrStateOne, false, false, false, false, true, false, false},
		{ErrRejectedOne, false, false, false, false, false, true, false},
		{ErrTransportOne, false, false, false, false, false, false, true},
	}

	for i, item := range errorList {
		if fault.IsErrInvalid(item.err) != item.invalid {
			t.Errorf("%d: invalid classification failed for: %v", i, item.err)
		}
		if fault.IsErrNotFound(item.err) != item.notFound {
			t.Errorf("%d: not found classification failed for: %v", i, item.err)
		}
		if fault.IsErrPaused(item.err) != item.paused {
			t.Errorf("%d: paused classification failed for: %v", i, item.err)
		}
		if fault.IsErrBid(item.err) != item.bid {
			t.Errorf("%d: bid classification failed for: %v", i, item.err)
		}
		if fault.IsErrState(item.err) != item.state {
			t.Errorf("%d: state classification failed for: %v", i, item.err)
		}
		if fault.IsErrRejected(item.err) != item.rejected {
			t.Errorf("%d: rejected classification failed for: %v", i, item.err)
		}
		if fault.IsErrTransport(item.err) != item.transport {
			t.Errorf("%d: transport classification failed for: %v", i, item.err)
		}
	}
}

func TestSpecificErrors(t *testing.T) {
	if !fault.IsErrState(fault.ErrAlreadyCommitted) {
		t.Errorf("already committed must be a state error")
	}
	if !fault.IsErrBid(fault.ErrBidTooLow) {
		t.Errorf("bid too low must be a bid error")
	}
	if !fault.IsErrPaused(fault.ErrPaused) {
		t.Errorf("paused must be a paused error")
	}
	if fault.ErrBidTooLow.Error() == "" {
		t.Errorf("error text must not be empty")
	}
}
