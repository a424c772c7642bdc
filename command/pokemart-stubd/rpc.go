// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/listener"

	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/stubledger"
)

// NoArguments - placeholder for calls without parameters
type NoArguments struct{}

// NoReply - placeholder for calls without results
type NoReply struct{}

// Pokemon - token side of the wire contract
type Pokemon struct {
	pokedex *stubledger.Pokedex
}

// Market - marketplace side of the wire contract
type Market struct {
	pokedex *stubledger.Pokedex
}

func (t *Pokemon) TotalSupply(arguments *NoArguments, reply *ledger.TotalSupplyReply) error {
	reply.Count = t.pokedex.TotalSupply()
	return nil
}

func (t *Pokemon) TokenByIndex(arguments *ledger.TokenByIndexArguments, reply *ledger.TokenByIndexReply) error {
	tokenId, err := t.pokedex.TokenByIndex(arguments.Index)
	if nil != err {
		return err
	}
	reply.TokenId = tokenId
	return nil
}

func (t *Pokemon) OwnerOf(arguments *ledger.TokenArguments, reply *ledger.OwnerOfReply) error {
	owner, err := t.pokedex.OwnerOf(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Owner = owner
	return nil
}

func (t *Pokemon) Details(arguments *ledger.TokenArguments, reply *ledger.DetailsReply) error {
	name, species, level, err := t.pokedex.Details(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Name = name
	reply.Species = species
	reply.Level = level
	return nil
}

func (t *Pokemon) Paused(arguments *NoArguments, reply *ledger.PausedReply) error {
	reply.Paused = t.pokedex.IsPaused()
	return nil
}

func (t *Pokemon) Owner(arguments *NoArguments, reply *ledger.AddressReply) error {
	reply.Address = t.pokedex.Owner()
	return nil
}

func (t *Pokemon) Pause(arguments *ledger.CallerArguments, reply *NoReply) error {
	return t.pokedex.Pause(arguments.Caller)
}

func (t *Pokemon) Unpause(arguments *ledger.CallerArguments, reply *NoReply) error {
	return t.pokedex.Unpause(arguments.Caller)
}

func (t *Pokemon) MintCommits(arguments *ledger.MintCommitsArguments, reply *ledger.MintCommitsReply) error {
	reply.Hash = t.pokedex.MintCommits(arguments.Address)
	return nil
}

func (t *Pokemon) CommitMint(arguments *ledger.CommitMintArguments, reply *NoReply) error {
	return t.pokedex.CommitMint(arguments.Caller, arguments.Hash)
}

func (t *Pokemon) RevealAndMint(arguments *ledger.RevealArguments, reply *ledger.MintReply) error {
	events, err := t.pokedex.RevealAndMint(arguments.Caller, arguments.Name, arguments.Species, arguments.Level, arguments.Secret)
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

func (t *Pokemon) CancelCommit(arguments *ledger.CallerArguments, reply *NoReply) error {
	return t.pokedex.CancelCommit(arguments.Caller)
}

func (t *Pokemon) MintPokemon(arguments *ledger.MintPokemonArguments, reply *ledger.MintReply) error {
	events, err := t.pokedex.MintPokemon(arguments.Caller, arguments.To, arguments.Name, arguments.Species, arguments.Level)
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}

func (t *Pokemon) Transfer(arguments *ledger.TransferArguments, reply *NoReply) error {
	return t.pokedex.Transfer(arguments.Caller, arguments.To, arguments.TokenId)
}

func (t *Pokemon) TransferLog(arguments *NoArguments, reply *ledger.TransferLogReply) error {
	reply.Events = t.pokedex.TransferLog()
	return nil
}

func (t *Pokemon) IsApprovedForAll(arguments *ledger.ApprovalForAllArguments, reply *ledger.ApprovedReply) error {
	reply.Approved = t.pokedex.IsApprovedForAll(arguments.Owner, arguments.Operator)
	return nil
}

func (t *Pokemon) SetApprovalForAll(arguments *ledger.SetApprovalForAllArguments, reply *NoReply) error {
	return t.pokedex.SetApprovalForAll(arguments.Caller, arguments.Operator, arguments.Approved)
}

func (t *Pokemon) Approve(arguments *ledger.ApproveArguments, reply *NoReply) error {
	return t.pokedex.Approve(arguments.Caller, arguments.Operator, arguments.TokenId)
}

func (t *Market) Address(arguments *NoArguments, reply *ledger.AddressReply) error {
	reply.Address = t.pokedex.Marketplace()
	return nil
}

func (t *Market) ListingTypeOf(arguments *ledger.TokenArguments, reply *ledger.ListingTypeReply) error {
	listingType, err := t.pokedex.ListingTypeOf(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.ListingType = int(listingType)
	return nil
}

func (t *Market) FixedListing(arguments *ledger.TokenArguments, reply *ledger.FixedListingReply) error {
	listing, err := t.pokedex.FixedListingOf(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Listing = *listing
	return nil
}

func (t *Market) Auction(arguments *ledger.TokenArguments, reply *ledger.AuctionReply) error {
	auction, err := t.pokedex.AuctionOf(arguments.TokenId)
	if nil != err {
		return err
	}
	reply.Auction = *auction
	return nil
}

func (t *Market) ActiveFixedListings(arguments *NoArguments, reply *ledger.ActiveFixedListingsReply) error {
	reply.TokenIds = t.pokedex.ActiveFixedListings()
	return nil
}

func (t *Market) ListFixedPrice(arguments *ledger.ListFixedPriceArguments, reply *NoReply) error {
	return t.pokedex.ListFixedPrice(arguments.Caller, arguments.TokenId, arguments.Price)
}

func (t *Market) BuyFixedPrice(arguments *ledger.BuyFixedPriceArguments, reply *NoReply) error {
	return t.pokedex.BuyFixedPrice(arguments.Caller, arguments.TokenId, arguments.Payment)
}

func (t *Market) DelistFixedPrice(arguments *ledger.DelistArguments, reply *NoReply) error {
	return t.pokedex.DelistFixedPrice(arguments.Caller, arguments.TokenId)
}

func (t *Market) ListAuction(arguments *ledger.ListAuctionArguments, reply *NoReply) error {
	return t.pokedex.ListAuction(arguments.Caller, arguments.TokenId, arguments.StartPrice, arguments.Duration)
}

func (t *Market) PlaceBid(arguments *ledger.PlaceBidArguments, reply *NoReply) error {
	return t.pokedex.PlaceBid(arguments.Caller, arguments.TokenId, arguments.Payment)
}

func (t *Market) EndAuction(arguments *ledger.EndAuctionArguments, reply *NoReply) error {
	return t.pokedex.EndAuction(arguments.Caller, arguments.TokenId)
}

// listener callback serving the wire contract on one connection
func rpcCallback(conn *listener.ClientConnection, argument interface{}) {

	pokedex := argument.(*stubledger.Pokedex)

	server := rpc.NewServer()
	server.Register(&Pokemon{pokedex: pokedex})
	server.Register(&Market{pokedex: pokedex})

	codec := jsonrpc.NewServerCodec(conn)
	defer codec.Close()
	server.ServeCodec(codec)
}
