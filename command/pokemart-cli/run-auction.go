// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/auction"
	"github.com/pokemart-inc/pokemartd/coin"
	"github.com/pokemart-inc/pokemartd/ledger"
)

// auction rendered with decimal amounts and a readable end time
type auctionReply struct {
	TokenId       uint64         `json:"tokenId"`
	Name          string         `json:"name"`
	Species       string         `json:"species"`
	Level         uint64         `json:"level"`
	Seller        ledger.Address `json:"seller"`
	StartPrice    string         `json:"startPrice"`
	HighestBid    string         `json:"highestBid"`
	HighestBidder ledger.Address `json:"highestBidder"`
	MinimumBid    string         `json:"minimumBid"`
	EndTime       string         `json:"endTime"`
	Ended         bool           `json:"ended"`
}

func runAuctions(c *cli.Context) error {

	m := mustMetadata(c)

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	views, err := auction.LoadAuctions()
	if nil != err {
		return err
	}

	replies := make([]auctionReply, len(views))
	for i, view := range views {
		replies[i] = auctionReply{
			TokenId:       view.TokenId,
			Name:          view.Name,
			Species:       view.Species,
			Level:         view.Level,
			Seller:        view.Seller,
			StartPrice:    coin.ToDecimalString(view.StartPrice),
			HighestBid:    coin.ToDecimalString(view.HighestBid),
			HighestBidder: view.HighestBidder,
			MinimumBid:    coin.ToDecimalString(view.MinimumBid()),
			EndTime:       time.Unix(view.EndTime, 0).UTC().Format(time.RFC3339),
			Ended:         view.Ended,
		}
	}
	return printJson(m.w, replies)
}

func runCreateAuction(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}
	startPrice, err := coin.FromDecimalString(c.String("price"))
	if nil != err {
		return err
	}
	duration, err := checkDuration(c.String("duration"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := auction.CreateAuction(tokenId, startPrice, duration); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId":    tokenId,
		"startPrice": coin.ToDecimalString(startPrice),
		"duration":   duration,
	})
}

func runBid(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}
	amount, err := coin.FromDecimalString(c.String("amount"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := auction.PlaceBid(tokenId, amount); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"bid":     coin.ToDecimalString(amount),
	})
}

func runEndAuction(c *cli.Context) error {

	m := mustMetadata(c)

	tokenId, err := checkTokenId(c.String("tokenId"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := auction.EndAuction(tokenId); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"ended":   true,
	})
}
