// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/coin"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/market"
)

func runList(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}
	price, err := coin.FromDecimalString(c.String("price"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if m.verbose {
		fmt.Fprintf(m.e, "tokenId: %d\n", tokenId)
		fmt.Fprintf(m.e, "price: %s\n", coin.ToDecimalString(price))
	}

	if err := market.List(tokenId, price); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"price":   coin.ToDecimalString(price),
		"listed":  true,
	})
}

func runBuy(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}
	price, err := coin.FromDecimalString(c.String("price"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := market.Buy(tokenId, price); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"paid":    coin.ToDecimalString(price),
	})
}

func runDelist(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := market.Delist(tokenId); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId":  tokenId,
		"delisted": true,
	})
}

func runTransfer(c *cli.Context) error {

	m := mustMetadata(c)

	receiver := ledger.Address(c.String("receiver"))
	if err := receiver.Validate(); nil != err {
		return err
	}
	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := market.Transfer(receiver, tokenId); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"owner":   receiver,
	})
}

// listing rendered with a decimal price
type listingReply struct {
	TokenId uint64         `json:"tokenId"`
	Seller  ledger.Address `json:"seller"`
	Price   string         `json:"price"`
}

func runListings(c *cli.Context) error {

	m := mustMetadata(c)

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	listings, err := market.Listings()
	if nil != err {
		return err
	}

	replies := make([]listingReply, len(listings))
	for i, listing := range listings {
		replies[i] = listingReply{
			TokenId: listing.TokenId,
			Seller:  listing.Seller,
			Price:   coin.ToDecimalString(listing.Price),
		}
	}
	return printJson(m.w, replies)
}
