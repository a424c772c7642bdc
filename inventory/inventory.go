// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inventory - read-only enumeration of the token collection
//
// the collection is walked index by index and each token's details
// are fetched concurrently; a token whose reads fail is simply absent
// from the result, a partial view is better than no view
package inventory

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/ledger"
)

const (
	// concurrent per-token reads
	fanOut = 8

	// ledger read budget
	readsPerSecond = 50
	readBurst      = 20
)

// Item - one token with its current market state
type Item struct {
	Token   ledger.Token
	Listing ledger.ListingType
}

// Scanner - walks the collection on demand
type Scanner struct {
	log     *logger.L
	ledger  ledger.Ledger
	limiter *rate.Limiter
}

// NewScanner - create a scanner over a ledger
func NewScanner(l ledger.Ledger) *Scanner {
	return &Scanner{
		log:     logger.New("inventory"),
		ledger:  l,
		limiter: rate.NewLimiter(readsPerSecond, readBurst),
	}
}

// pace a single ledger read
func (s *Scanner) limit() {
	r := s.limiter.Reserve()
	if !r.OK() {
		return
	}
	time.Sleep(r.Delay())
}

// Scan - enumerate every token in the collection
//
// only the enumeration itself can fail; individual token read
// failures are logged and the token left out
func (s *Scanner) Scan() ([]Item, error) {

	s.limit()
	total, err := s.ledger.TotalSupply()
	if nil != err {
		return nil, err
	}

	items := make([]Item, 0, total)
	var m sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, fanOut)

	for index := uint64(0); index < total; index += 1 {
		wg.Add(1)
		sem <- struct{}{}
		go func(index uint64) {
			defer wg.Done()
			defer func() { <-sem }()

			item, err := s.fetch(index)
			if nil != err {
				s.log.Warnf("skip index: %d  error: %s", index, err)
				return
			}
			m.Lock()
			items = append(items, item)
			m.Unlock()
		}(index)
	}
	wg.Wait()

	sort.Slice(items, func(i, j int) bool {
		return items[i].Token.Id < items[j].Token.Id
	})
	return items, nil
}

// read everything about the token at one collection index
func (s *Scanner) fetch(index uint64) (Item, error) {

	s.limit()
	tokenId, err := s.ledger.TokenByIndex(index)
	if nil != err {
		return Item{}, err
	}

	s.limit()
	owner, err := s.ledger.OwnerOf(tokenId)
	if nil != err {
		return Item{}, err
	}

	s.limit()
	name, species, level, err := s.ledger.PokemonDetails(tokenId)
	if nil != err {
		return Item{}, err
	}

	s.limit()
	listing, err := s.ledger.ListingTypeOf(tokenId)
	if nil != err {
		return Item{}, err
	}

	return Item{
		Token: ledger.Token{
			Id:      tokenId,
			Owner:   owner,
			Name:    name,
			Species: species,
			Level:   level,
		},
		Listing: listing,
	}, nil
}

// Owned - the subset of the collection held by one address
func (s *Scanner) Owned(addr ledger.Address) ([]Item, error) {
	all, err := s.Scan()
	if nil != err {
		return nil, err
	}

	owned := make([]Item, 0, len(all))
	for _, item := range all {
		if item.Token.Owner.Equal(addr) {
			owned = append(owned, item)
		}
	}
	return owned, nil
}
