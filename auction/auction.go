// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package auction - time-boxed auctions and their automatic close
//
// the ledger decides every race: the coordinator only avoids the
// calls it can already see are pointless (a bid below the minimum, a
// close of an auction that is marked ended) and a background sweep
// drives expired auctions to their close
package auction

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/background"
	"github.com/pokemart-inc/pokemartd/busy"
	"github.com/pokemart-inc/pokemartd/coin"
	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/gate"
	"github.com/pokemart-inc/pokemartd/ledger"
)

const (
	// period of the automatic close sweep
	defaultSweepInterval = 30 * time.Second

	// a later bid must exceed the current highest by this much
	bidIncrement = coin.UnitsPerCoin / 100 // 0.01 coin
)

var globalData struct {
	sync.RWMutex
	log      *logger.L
	ledger   ledger.Ledger
	identity ledger.Address
	busy     *busy.Flags

	sweep      sweeper
	background *background.T

	// set once during initialise
	initialised bool
}

// set up the auction coordinator and start the close sweep
//
// a zero interval selects the default sweep period; a negative
// interval disables the sweep entirely, for short-lived callers that
// only submit one operation
func Initialise(l ledger.Ledger, identity ledger.Address, interval time.Duration) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	if err := identity.Validate(); nil != err {
		return err
	}
	if 0 == interval {
		interval = defaultSweepInterval
	}

	globalData.log = logger.New("auction")
	globalData.log.Info("starting…")

	globalData.ledger = l
	globalData.identity = identity
	globalData.busy = busy.New()

	globalData.initialised = true

	// start background processes
	processes := background.Processes{}
	globalData.sweep = sweeper{}
	if interval > 0 {
		globalData.sweep = sweeper{
			log:      logger.New("sweep"),
			ledger:   l,
			interval: interval,
		}
		processes = append(processes, &globalData.sweep)
	}
	globalData.background = background.Start(processes, nil)

	return nil
}

// shutdown the auction coordinator
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	return nil
}

func tokenKey(tokenId uint64) string {
	return strconv.FormatUint(tokenId, 10)
}

// IsBusy - report whether an auction operation on the token is
// currently in flight
func IsBusy(tokenId uint64) bool {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return false
	}
	return globalData.busy.IsBusy(tokenKey(tokenId))
}

// View - one auction assembled for display
type View struct {
	TokenId       uint64
	Name          string
	Species       string
	Level         uint64
	Seller        ledger.Address
	StartPrice    uint64
	HighestBid    uint64
	HighestBidder ledger.Address
	EndTime       int64
	Ended         bool
}

// MinimumBid - the smallest acceptable next bid
func (v View) MinimumBid() uint64 {
	if v.HighestBid > 0 {
		return v.HighestBid + bidIncrement
	}
	return v.StartPrice
}

// LoadAuctions - every auction in the collection, open and closed
//
// read-only; a token whose reads fail is left out of the result
func LoadAuctions() ([]View, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}
	return loadAuctions(globalData.ledger, globalData.log)
}

func loadAuctions(l ledger.Ledger, log *logger.L) ([]View, error) {

	total, err := l.TotalSupply()
	if nil != err {
		return nil, err
	}

	views := make([]View, 0, 8)
	var m sync.Mutex
	var wg sync.WaitGroup

	for index := uint64(0); index < total; index += 1 {
		wg.Add(1)
		go func(index uint64) {
			defer wg.Done()

			view, ok := fetchAuction(l, log, index)
			if !ok {
				return
			}
			m.Lock()
			views = append(views, view)
			m.Unlock()
		}(index)
	}
	wg.Wait()

	sort.Slice(views, func(i, j int) bool {
		return views[i].TokenId < views[j].TokenId
	})
	return views, nil
}

// read one collection index, false when it is not under auction or a
// read fails
func fetchAuction(l ledger.Ledger, log *logger.L, index uint64) (View, bool) {

	tokenId, err := l.TokenByIndex(index)
	if nil != err {
		log.Warnf("skip index: %d  error: %s", index, err)
		return View{}, false
	}

	listing, err := l.ListingTypeOf(tokenId)
	if nil != err || ledger.ListingAuction != listing {
		return View{}, false
	}

	auction, err := l.AuctionOf(tokenId)
	if nil != err || nil == auction {
		return View{}, false
	}

	name, species, level, err := l.PokemonDetails(tokenId)
	if nil != err {
		log.Warnf("skip token: %d  error: %s", tokenId, err)
		return View{}, false
	}

	return View{
		TokenId:       tokenId,
		Name:          name,
		Species:       species,
		Level:         level,
		Seller:        auction.Seller,
		StartPrice:    auction.StartPrice,
		HighestBid:    auction.HighestBid,
		HighestBidder: auction.HighestBidder,
		EndTime:       auction.EndTime,
		Ended:         auction.Ended,
	}, true
}

// CreateAuction - open an auction on an owned token
//
// the marketplace needs a spending grant before it can move the token
// to the winner; a missing grant is submitted and confirmed before
// the auction listing goes out
func CreateAuction(tokenId uint64, startPrice uint64, duration int64) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	if 0 == tokenId {
		return fault.ErrInvalidTokenId
	}
	if 0 == startPrice {
		return fault.ErrInvalidPrice
	}
	if duration <= 0 {
		return fault.ErrInvalidDuration
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
		globalData.log.Infof("granting token approval: %d", tokenId)
		err = globalData.ledger.Approve(marketplace, tokenId)
		if nil != err {
			return err
		}
	}

	globalData.log.Infof("auction token: %d  start: %d  duration: %d", tokenId, startPrice, duration)
	return globalData.ledger.ListAuction(tokenId, startPrice, duration)
}

// PlaceBid - bid on an open auction
//
// a bid below the minimum is refused locally, the ledger is not
// called at all
func PlaceBid(tokenId uint64, amount uint64) error {
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

	auction, err := globalData.ledger.AuctionOf(tokenId)
	if nil != err {
		return err
	}
	if nil == auction {
		return fault.ErrTokenNotUnderAuction
	}
	if auction.Ended {
		return fault.ErrAuctionEnded
	}

	minimum := auction.StartPrice
	if auction.HighestBid > 0 {
		minimum = auction.HighestBid + bidIncrement
	}
	if amount < minimum {
		return fault.ErrBidTooLow
	}

	globalData.log.Infof("bid token: %d  amount: %d", tokenId, amount)
	return globalData.ledger.PlaceBid(tokenId, amount)
}

// EndAuction - close an auction whose time has run out
func EndAuction(tokenId uint64) error {
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

	auction, err := globalData.ledger.AuctionOf(tokenId)
	if nil != err {
		return err
	}
	if nil == auction {
		return fault.ErrTokenNotUnderAuction
	}
	if auction.Ended {
		return fault.ErrAuctionEnded
	}

	globalData.log.Infof("end auction: %d", tokenId)
	return globalData.ledger.EndAuction(tokenId)
}
