// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mint - commit-reveal minting against the ledger
//
// an identity is either without a commitment or holding exactly one
// unrevealed commitment; the ledger's stored hash is the only record
// of which, nothing is assumed locally before the ledger confirms
package mint

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/busy"
	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/gate"
	"github.com/pokemart-inc/pokemartd/ledger"
)

var globalData struct {
	sync.RWMutex
	log      *logger.L
	ledger   ledger.Ledger
	identity ledger.Address
	busy     *busy.Flags

	// set once during initialise
	initialised bool
}

// set up the mint coordinator
func Initialise(l ledger.Ledger, identity ledger.Address) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if err := identity.Validate(); nil != err {
		return err
	}

	globalData.log = logger.New("mint")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.identity = identity
	globalData.busy = busy.New()

	globalData.initialised = true

	return nil
}

// shutdown the mint coordinator
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// field checks shared by commit and reveal
func validate(name string, species string, secret string) error {
	if "" == name {
		return fault.ErrRequiredName
	}
	if "" == species {
		return fault.ErrRequiredSpecies
	}
	if "" == secret {
		return fault.ErrRequiredSecret
	}
	return nil
}

// Commit - submit a commitment for a future mint
//
// the digest binds all four fields; the same four values must be
// presented to Reveal or the ledger will refuse the mint
func Commit(name string, species string, level uint64, secret string) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if err := validate(name, species, secret); nil != err {
		return err
	}
	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(string(globalData.identity)); nil != err {
		return err
	}
	defer globalData.busy.Release(string(globalData.identity))

	stored, err := globalData.ledger.MintCommits(globalData.identity)
	if nil != err {
		return err
	}
	if !stored.IsZero() {
		return fault.ErrAlreadyCommitted
	}

	digest := ledger.CommitmentDigest(name, species, level, secret)
	globalData.log.Infof("commit: %s", digest)

	return globalData.ledger.CommitMint(digest)
}

// Reveal - present the committed plaintext and mint the token
//
// returns the id of the minted token, taken from the transfer
// confirmation whose origin is the zero address
func Reveal(name string, species string, level uint64, secret string) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	if err := validate(name, species, secret); nil != err {
		return 0, err
	}
	if err := gate.Require(); nil != err {
		return 0, err
	}

	if err := globalData.busy.Acquire(string(globalData.identity)); nil != err {
		return 0, err
	}
	defer globalData.busy.Release(string(globalData.identity))

	stored, err := globalData.ledger.MintCommits(globalData.identity)
	if nil != err {
		return 0, err
	}
	if stored.IsZero() {
		return 0, fault.ErrNoActiveCommit
	}

	events, err := globalData.ledger.RevealAndMint(name, species, level, secret)
	if nil != err {
		return 0, err
	}

	tokenId, ok := mintedToken(events, globalData.identity)
	if !ok {
		// the ledger confirmed but sent no usable confirmation event
		globalData.log.Errorf("reveal confirmed without mint event: %v", events)
		return 0, fault.ErrTokenNotFound
	}

	globalData.log.Infof("minted token: %d", tokenId)
	return tokenId, nil
}

// pick the mint destined for the revealer out of the confirmations
func mintedToken(events []ledger.TransferEvent, identity ledger.Address) (uint64, bool) {
	for _, e := range events {
		if e.IsMint() && e.To.Equal(identity) {
			return e.TokenId, true
		}
	}
	return 0, false
}

// Cancel - withdraw the pending commitment
func Cancel() error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(string(globalData.identity)); nil != err {
		return err
	}
	defer globalData.busy.Release(string(globalData.identity))

	stored, err := globalData.ledger.MintCommits(globalData.identity)
	if nil != err {
		return err
	}
	if stored.IsZero() {
		return fault.ErrNoActiveCommit
	}

	return globalData.ledger.CancelCommit()
}

// IsBusy - report whether a mint operation is currently in flight for
// the configured identity
func IsBusy() bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return globalData.busy.IsBusy(string(globalData.identity))
}

// HasCommit - report whether a commitment is pending for the
// configured identity
func HasCommit() (bool, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false, fault.ErrNotInitialised
	}

	stored, err := globalData.ledger.MintCommits(globalData.identity)
	if nil != err {
		return false, err
	}
	return !stored.IsZero(), nil
}

// MintDirect - privileged single-step mint, collection owner only
func MintDirect(to ledger.Address, name string, species string, level uint64) (uint64, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return 0, fault.ErrNotInitialised
	}

	if "" == name {
		return 0, fault.ErrRequiredName
	}
	if "" == species {
		return 0, fault.ErrRequiredSpecies
	}
	if err := to.Validate(); nil != err {
		return 0, err
	}
	if err := gate.Require(); nil != err {
		return 0, err
	}

	owner, err := globalData.ledger.Owner()
	if nil != err {
		return 0, err
	}
	if !owner.Equal(globalData.identity) {
		return 0, fault.ErrNotLedgerOwner
	}

	if err := globalData.busy.Acquire(string(globalData.identity)); nil != err {
		return 0, err
	}
	defer globalData.busy.Release(string(globalData.identity))

	events, err := globalData.ledger.MintPokemon(to, name, species, level)
	if nil != err {
		return 0, err
	}

	tokenId, ok := mintedToken(events, to)
	if !ok {
		globalData.log.Errorf("mint confirmed without mint event: %v", events)
		return 0, fault.ErrTokenNotFound
	}
	return tokenId, nil
}
