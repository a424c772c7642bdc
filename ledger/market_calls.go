// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// ListingTypeReply - marketplace state of a token
type ListingTypeReply struct {
	ListingType int `json:"listingType"`
}

// FixedListingReply - fixed listing record
type FixedListingReply struct {
	Listing FixedListing `json:"listing"`
}

// AuctionReply - auction record
type AuctionReply struct {
	Auction Auction `json:"auction"`
}

// ActiveFixedListingsReply - ids of tokens currently listed at a fixed price
type ActiveFixedListingsReply struct {
	TokenIds []uint64 `json:"tokenIds"`
}

// ListFixedPriceArguments - create a fixed listing
type ListFixedPriceArguments struct {
	Caller  Address `json:"caller"`
	TokenId uint64  `json:"tokenId"`
	Price   uint64  `json:"price"`
}

// BuyFixedPriceArguments - payment-bearing purchase
type BuyFixedPriceArguments struct {
	Caller  Address `json:"caller"`
	TokenId uint64  `json:"tokenId"`
	Payment uint64  `json:"payment"`
}

// DelistArguments - remove a fixed listing
type DelistArguments struct {
	Caller  Address `json:"caller"`
	TokenId uint64  `json:"tokenId"`
}

// ListAuctionArguments - create an auction
type ListAuctionArguments struct {
	Caller     Address `json:"caller"`
	TokenId    uint64  `json:"tokenId"`
	StartPrice uint64  `json:"startPrice"`
	Duration   int64   `json:"duration"` // seconds
}

// PlaceBidArguments - payment-bearing bid
type PlaceBidArguments struct {
	Caller  Address `json:"caller"`
	TokenId uint64  `json:"tokenId"`
	Payment uint64  `json:"payment"`
}

// EndAuctionArguments - close an auction
type EndAuctionArguments struct {
	Caller  Address `json:"caller"`
	TokenId uint64  `json:"tokenId"`
}

// ListingTypeOf - marketplace state of a token
func (c *Client) ListingTypeOf(tokenId uint64) (ListingType, error) {
	var reply ListingTypeReply
	arguments := TokenArguments{TokenId: tokenId}
	if err := c.call("Market.ListingTypeOf", &arguments, &reply); nil != err {
		return ListingNone, err
	}
	return ListingType(reply.ListingType), nil
}

// FixedListingOf - fixed listing record of a token
func (c *Client) FixedListingOf(tokenId uint64) (*FixedListing, error) {
	var reply FixedListingReply
	arguments := TokenArguments{TokenId: tokenId}
	if err := c.call("Market.FixedListing", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply.Listing, nil
}

// AuctionOf - auction record of a token
func (c *Client) AuctionOf(tokenId uint64) (*Auction, error) {
	var reply AuctionReply
	arguments := TokenArguments{TokenId: tokenId}
	if err := c.call("Market.Auction", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply.Auction, nil
}

// ActiveFixedListings - ids of tokens currently listed at a fixed price
func (c *Client) ActiveFixedListings() ([]uint64, error) {
	var reply ActiveFixedListingsReply
	if err := c.call("Market.ActiveFixedListings", struct{}{}, &reply); nil != err {
		return nil, err
	}
	return reply.TokenIds, nil
}

// ListFixedPrice - create a fixed listing for a token
func (c *Client) ListFixedPrice(tokenId uint64, price uint64) error {
	arguments := ListFixedPriceArguments{
		Caller:  c.identity,
		TokenId: tokenId,
		Price:   price,
	}
	return c.call("Market.ListFixedPrice", &arguments, &struct{}{})
}

// BuyFixedPrice - buy a listed token at its exact price
func (c *Client) BuyFixedPrice(tokenId uint64, payment uint64) error {
	arguments := BuyFixedPriceArguments{
		Caller:  c.identity,
		TokenId: tokenId,
		Payment: payment,
	}
	return c.call("Market.BuyFixedPrice", &arguments, &struct{}{})
}

// DelistFixedPrice - remove the caller's fixed listing
func (c *Client) DelistFixedPrice(tokenId uint64) error {
	arguments := DelistArguments{
		Caller:  c.identity,
		TokenId: tokenId,
	}
	return c.call("Market.DelistFixedPrice", &arguments, &struct{}{})
}

// ListAuction - create an auction for a token
func (c *Client) ListAuction(tokenId uint64, startPrice uint64, duration int64) error {
	arguments := ListAuctionArguments{
		Caller:     c.identity,
		TokenId:    tokenId,
		StartPrice: startPrice,
		Duration:   duration,
	}
	return c.call("Market.ListAuction", &arguments, &struct{}{})
}

// PlaceBid - payment-bearing bid on an auction
func (c *Client) PlaceBid(tokenId uint64, payment uint64) error {
	arguments := PlaceBidArguments{
		Caller:  c.identity,
		TokenId: tokenId,
		Payment: payment,
	}
	return c.call("Market.PlaceBid", &arguments, &struct{}{})
}

// EndAuction - close an auction whose end time has elapsed
func (c *Client) EndAuction(tokenId uint64) error {
	arguments := EndAuctionArguments{
		Caller:  c.identity,
		TokenId: tokenId,
	}
	return c.call("Market.EndAuction", &arguments, &struct{}{})
}
