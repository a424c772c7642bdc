// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package auction

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/counter"
	"github.com/pokemart-inc/pokemartd/ledger"
)

// automatic close loop
type sweeper struct {
	log      *logger.L
	ledger   ledger.Ledger
	interval time.Duration

	passes   counter.Counter
	closes   counter.Counter
	failures counter.Counter
}

// sweep loop
//
// one pass runs immediately so a restart does not leave expired
// auctions hanging for a full period
func (state *sweeper) Run(args interface{}, shutdown <-chan struct{}) {

	log := state.log
	log.Info("starting…")

	state.pass()

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-time.After(state.interval):
			state.pass()
		}
	}

	log.Info("stopped")
}

// close every expired auction, swallowing per-token failures
//
// the pause gate is deliberately not consulted: while the ledger is
// paused it refuses the close and the refusal lands in the failure
// count like any other
func (state *sweeper) pass() {

	state.passes.Increment()

	views, err := loadAuctions(state.ledger, state.log)
	if nil != err {
		state.log.Errorf("sweep enumeration error: %s", err)
		state.failures.Increment()
		return
	}

	now := time.Now().Unix()
	for _, view := range views {
		if view.Ended || now < view.EndTime {
			continue
		}
		err := state.ledger.EndAuction(view.TokenId)
		if nil != err {
			state.log.Warnf("close token: %d  error: %s", view.TokenId, err)
			state.failures.Increment()
			continue
		}
		state.log.Infof("closed auction: %d", view.TokenId)
		state.closes.Increment()
	}
}

// SweepStatistics - cumulative sweep counters
func SweepStatistics() (passes uint64, closes uint64, failures uint64) {
	globalData.RLock()
	defer globalData.RUnlock()

	return globalData.sweep.passes.Uint64(),
		globalData.sweep.closes.Uint64(),
		globalData.sweep.failures.Uint64()
}
