// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate

import (
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/ledger"
)

// the memoised flag is only kept for a short while so an
// administrative pause on the ledger shows up promptly
const (
	pausedKey         = "paused"
	defaultExpiration = 5 * time.Second
	cleanupInterval   = 1 * time.Minute
)

var globalData struct {
	sync.RWMutex
	log    *logger.L
	ledger ledger.Ledger
	memo   *cache.Cache

	// set once during initialise
	initialised bool
}

// set up the pause gate
func Initialise(l ledger.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("gate")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.memo = cache.New(defaultExpiration, cleanupInterval)

	// all data initialised
	globalData.initialised = true

	return nil
}

// shutdown the pause gate
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.Lock()
	globalData.memo.Flush()
	globalData.initialised = false
	globalData.Unlock()

	return nil
}

// IsPaused - report whether the ledger is currently paused
//
// the flag is read from the ledger at most once per expiry window;
// callers that need an immediate answer call Refresh first
func IsPaused() (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.ErrNotInitialised
	}

	if flag, found := globalData.memo.Get(pausedKey); found {
		return flag.(bool), nil
	}

	paused, err := globalData.ledger.IsPaused()
	if nil != err {
		globalData.log.Errorf("paused read error: %s", err)
		return false, err
	}

	globalData.memo.Set(pausedKey, paused, cache.DefaultExpiration)
	return paused, nil
}

// Refresh - drop the memoised flag so the next read hits the ledger
func Refresh() {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return
	}
	globalData.memo.Delete(pausedKey)
}

// Require - fail fast when the ledger is paused
//
// every mutating operation calls this before touching the ledger
func Require() error {
	paused, err := IsPaused()
	if nil != err {
		return err
	}
	if paused {
		return fault.ErrPaused
	}
	return nil
}

// Pause - administrative pause, rejected by the ledger unless the
// caller is the collection owner
func Pause() error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	err := globalData.ledger.Pause()
	if nil != err {
		return err
	}
	globalData.log.Warn("ledger paused")
	globalData.memo.Set(pausedKey, true, cache.DefaultExpiration)
	return nil
}

// Unpause - administrative unpause, owner only
func Unpause() error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	err := globalData.ledger.Unpause()
	if nil != err {
		return err
	}
	globalData.log.Warn("ledger unpaused")
	globalData.memo.Set(pausedKey, false, cache.DefaultExpiration)
	return nil
}
