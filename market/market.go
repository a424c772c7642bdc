// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - fixed-price listings and plain transfers
//
// every mutation is a thin envelope around one or two ledger calls;
// the ledger's listing records are the only state, reads are done
// fresh each time
package market

import (
	"strconv"
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

// set up the listing manager
func Initialise(l ledger.Ledger, identity ledger.Address) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if err := identity.Validate(); nil != err {
		return err
	}

	globalData.log = logger.New("market")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.identity = identity
	globalData.busy = busy.New()

	globalData.initialised = true

	return nil
}

// shutdown the listing manager
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

func tokenKey(tokenId uint64) string {
	return strconv.FormatUint(tokenId, 10)
}

// IsBusy - report whether a market operation on the token is
// currently in flight
func IsBusy(tokenId uint64) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return globalData.busy.IsBusy(tokenKey(tokenId))
}

// List - put a token up for sale at a fixed price
//
// the marketplace needs a spending grant on the collection before it
// can move the token to a buyer; when the grant is missing it is
// submitted first and must confirm before the listing is sent
func List(tokenId uint64, price uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if 0 == tokenId {
		return fault.ErrInvalidTokenId
	}
	if 0 == price {
		return fault.ErrInvalidPrice
	}
	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(tokenKey(tokenId)); nil != err {
		return err
	}
	defer globalData.busy.Release(tokenKey(tokenId))

	owner, err := globalData.ledger.OwnerOf(tokenId)
	if nil != err {
		return err
	}
	if !owner.Equal(globalData.identity) {
		return fault.ErrNotTokenOwner
	}

	marketplace, err := globalData.ledger.Marketplace()
	if nil != err {
		return err
	}

	granted, err := globalData.ledger.IsApprovedForAll(globalData.identity, marketplace)
	if nil != err {
		return err
	}
	if !granted {
		globalData.log.Infof("granting marketplace approval: %s", marketplace)
		err = globalData.ledger.SetApprovalForAll(marketplace, true)
		if nil != err {
			return err
		}
	}

	globalData.log.Infof("list token: %d  price: %d", tokenId, price)
	return globalData.ledger.ListFixedPrice(tokenId, price)
}

// Buy - purchase a listed token at its exact asking price
//
// the expected price guards against buying into a listing that was
// replaced between the read and the purchase
func Buy(tokenId uint64, price uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(tokenKey(tokenId)); nil != err {
		return err
	}
	defer globalData.busy.Release(tokenKey(tokenId))

	listing, err := globalData.ledger.FixedListingOf(tokenId)
	if nil != err {
		return err
	}
	if nil == listing || !listing.Active {
		return fault.ErrTokenNotListed
	}
	if price != listing.Price {
		return fault.ErrInvalidPrice
	}

	globalData.log.Infof("buy token: %d  price: %d", tokenId, listing.Price)
	return globalData.ledger.BuyFixedPrice(tokenId, listing.Price)
}

// Delist - withdraw a fixed-price listing, seller only
func Delist(tokenId uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(tokenKey(tokenId)); nil != err {
		return err
	}
	defer globalData.busy.Release(tokenKey(tokenId))

	listing, err := globalData.ledger.FixedListingOf(tokenId)
	if nil != err {
		return err
	}
	if nil == listing || !listing.Active {
		return fault.ErrTokenNotListed
	}

	globalData.log.Infof("delist token: %d", tokenId)
	return globalData.ledger.DelistFixedPrice(tokenId)
}

// Transfer - hand a token to another address
func Transfer(to ledger.Address, tokenId uint64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if err := to.Validate(); nil != err {
		return err
	}
	if err := gate.Require(); nil != err {
		return err
	}

	if err := globalData.busy.Acquire(tokenKey(tokenId)); nil != err {
		return err
	}
	defer globalData.busy.Release(tokenKey(tokenId))

	owner, err := globalData.ledger.OwnerOf(tokenId)
	if nil != err {
		return err
	}
	if !owner.Equal(globalData.identity) {
		return fault.ErrNotTokenOwner
	}

	globalData.log.Infof("transfer token: %d  to: %s", tokenId, to)
	return globalData.ledger.Transfer(to, tokenId)
}

// Listing - a live fixed-price listing
type Listing struct {
	TokenId uint64
	Seller  ledger.Address
	Price   uint64
}

// Listings - every active fixed-price listing
//
// a listing that vanishes between the enumeration and the detail
// read is simply absent from the result
func Listings() ([]Listing, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	tokenIds, err := globalData.ledger.ActiveFixedListings()
	if nil != err {
		return nil, err
	}

	listings := make([]Listing, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		listing, err := globalData.ledger.FixedListingOf(tokenId)
		if nil != err || nil == listing || !listing.Active {
			continue
		}
		listings = append(listings, Listing{
			TokenId: tokenId,
			Seller:  listing.Seller,
			Price:   listing.Price,
		})
	}
	return listings, nil
}
