// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stubledger

import (
	"sort"

	"github.com/pokemart-inc/pokemartd/ledger"
)

// ---- marketplace reads ----

// ListingTypeOf - marketplace state of a token
//
// fixed listing and auction are mutually exclusive by construction:
// every listing mutation below refuses a token that already holds the
// other state
func (p *Pokedex) ListingTypeOf(tokenId uint64) (ledger.ListingType, error) {
	p.RLock()
	defer p.RUnlock()
	if _, ok := p.tokens[tokenId]; !ok {
		return ledger.ListingNone, errUnknownToken
	}
	if listing, ok := p.fixed[tokenId]; ok && listing.Active {
		return ledger.ListingFixed, nil
	}
	if _, ok := p.auctions[tokenId]; ok {
		return ledger.ListingAuction, nil
	}
	return ledger.ListingNone, nil
}

// FixedListingOf - fixed listing record of a token
func (p *Pokedex) FixedListingOf(tokenId uint64) (*ledger.FixedListing, error) {
	p.RLock()
	defer p.RUnlock()
	listing, ok := p.fixed[tokenId]
	if !ok {
		return nil, errNotListed
	}
	copied := *listing
	return &copied, nil
}

// AuctionOf - auction record of a token
func (p *Pokedex) AuctionOf(tokenId uint64) (*ledger.Auction, error) {
	p.RLock()
	defer p.RUnlock()
	auction, ok := p.auctions[tokenId]
	if !ok {
		return nil, errNotAuction
	}
	copied := *auction
	return &copied, nil
}

// ActiveFixedListings - ascending token ids with an active fixed listing
func (p *Pokedex) ActiveFixedListings() []uint64 {
	p.RLock()
	defer p.RUnlock()
	ids := make([]uint64, 0, len(p.fixed))
	for id, listing := range p.fixed {
		if listing.Active {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i int, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ---- marketplace mutations ----

// ListFixedPrice - create a fixed listing
func (p *Pokedex) ListFixedPrice(caller ledger.Address, tokenId uint64, price uint64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	token, ok := p.tokens[tokenId]
	if !ok {
		return errUnknownToken
	}
	if !token.Owner.Equal(caller) {
		return errNotOwner
	}
	if 0 == price {
		return errZeroPrice
	}
	if !p.marketplaceAuthorized(caller, tokenId) {
		return errNotAuthorized
	}
	if listing, ok := p.fixed[tokenId]; ok && listing.Active {
		return errAlreadyListed
	}
	if _, ok := p.auctions[tokenId]; ok {
		return errAlreadyListed
	}
	p.fixed[tokenId] = &ledger.FixedListing{
		TokenId: tokenId,
		Seller:  caller,
		Price:   price,
		Active:  true,
	}
	return nil
}

// BuyFixedPrice - purchase at the exact listed price
func (p *Pokedex) BuyFixedPrice(caller ledger.Address, tokenId uint64, payment uint64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	listing, ok := p.fixed[tokenId]
	if !ok || !listing.Active {
		return errNotListed
	}
	if payment != listing.Price {
		return errWrongPayment
	}
	token := p.tokens[tokenId]
	from := token.Owner
	token.Owner = caller
	listing.Active = false
	p.appendEvent(from, caller, tokenId)
	return nil
}

// DelistFixedPrice - seller removes the listing
func (p *Pokedex) DelistFixedPrice(caller ledger.Address, tokenId uint64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	listing, ok := p.fixed[tokenId]
	if !ok || !listing.Active {
		return errNotListed
	}
	if !listing.Seller.Equal(caller) {
		return errNotSeller
	}
	listing.Active = false
	return nil
}

// ListAuction - open a time-boxed auction
func (p *Pokedex) ListAuction(caller ledger.Address, tokenId uint64, startPrice uint64, duration int64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	token, ok := p.tokens[tokenId]
	if !ok {
		return errUnknownToken
	}
	if !token.Owner.Equal(caller) {
		return errNotOwner
	}
	if 0 == startPrice {
		return errZeroPrice
	}
	if duration <= 0 {
		return errZeroDuration
	}
	if !p.marketplaceAuthorized(caller, tokenId) {
		return errNotAuthorized
	}
	if listing, ok := p.fixed[tokenId]; ok && listing.Active {
		return errAlreadyListed
	}
	if _, ok := p.auctions[tokenId]; ok {
		return errAlreadyListed
	}
	p.auctions[tokenId] = &ledger.Auction{
		TokenId:    tokenId,
		Seller:     caller,
		StartPrice: startPrice,
		EndTime:    p.Now().Unix() + duration,
	}
	return nil
}

// PlaceBid - strictly increasing payment-bearing bid
func (p *Pokedex) PlaceBid(caller ledger.Address, tokenId uint64, payment uint64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	auction, ok := p.auctions[tokenId]
	if !ok {
		return errNotAuction
	}
	if auction.Ended || p.Now().Unix() >= auction.EndTime {
		return errAuctionOver
	}
	if auction.Seller.Equal(caller) {
		return errSellerBid
	}
	if payment < auction.StartPrice {
		return errBidBelowStart
	}
	if 0 != auction.HighestBid && payment <= auction.HighestBid {
		return errBidNotHigher
	}
	auction.HighestBid = payment
	auction.HighestBidder = caller
	return nil
}

// EndAuction - close an expired auction and settle ownership
//
// ended is monotone: a closed auction rejects every further mutation
func (p *Pokedex) EndAuction(caller ledger.Address, tokenId uint64) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	auction, ok := p.auctions[tokenId]
	if !ok {
		return errNotAuction
	}
	if auction.Ended {
		return errAuctionOver
	}
	if p.Now().Unix() < auction.EndTime {
		return errAuctionRunning
	}
	// the record stays behind with ended set so later reads still see
	// the closed auction; close is irreversible
	auction.Ended = true
	if !auction.HighestBidder.IsZero() {
		token := p.tokens[tokenId]
		from := token.Owner
		token.Owner = auction.HighestBidder
		p.appendEvent(from, auction.HighestBidder, tokenId)
	}
	return nil
}
