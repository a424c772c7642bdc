// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stubledger

import (
	"github.com/pokemart-inc/pokemartd/ledger"
)

// session - a fixed-identity view satisfying ledger.Ledger
type session struct {
	pokedex  *Pokedex
	identity ledger.Address
}

// LedgerFor - the pokedex as seen by one account
//
// gives tests and the stub daemon the same typed surface the real
// JSON-RPC client exposes
func (p *Pokedex) LedgerFor(identity ledger.Address) ledger.Ledger {
	return &session{
		pokedex:  p,
		identity: identity,
	}
}

func (s *session) TotalSupply() (uint64, error) {
	return s.pokedex.TotalSupply(), nil
}

func (s *session) TokenByIndex(index uint64) (uint64, error) {
	return s.pokedex.TokenByIndex(index)
}

func (s *session) OwnerOf(tokenId uint64) (ledger.Address, error) {
	return s.pokedex.OwnerOf(tokenId)
}

func (s *session) PokemonDetails(tokenId uint64) (string, string, uint64, error) {
	return s.pokedex.Details(tokenId)
}

func (s *session) IsPaused() (bool, error) {
	return s.pokedex.IsPaused(), nil
}

func (s *session) Owner() (ledger.Address, error) {
	return s.pokedex.Owner(), nil
}

func (s *session) Marketplace() (ledger.Address, error) {
	return s.pokedex.Marketplace(), nil
}

func (s *session) Pause() error {
	return s.pokedex.Pause(s.identity)
}

func (s *session) Unpause() error {
	return s.pokedex.Unpause(s.identity)
}

func (s *session) MintCommits(addr ledger.Address) (ledger.Digest, error) {
	return s.pokedex.MintCommits(addr), nil
}

func (s *session) CommitMint(digest ledger.Digest) error {
	return s.pokedex.CommitMint(s.identity, digest)
}

func (s *session) RevealAndMint(name string, species string, level uint64, secret string) ([]ledger.TransferEvent, error) {
	return s.pokedex.RevealAndMint(s.identity, name, species, level, secret)
}

func (s *session) CancelCommit() error {
	return s.pokedex.CancelCommit(s.identity)
}

func (s *session) MintPokemon(to ledger.Address, name string, species string, level uint64) ([]ledger.TransferEvent, error) {
	return s.pokedex.MintPokemon(s.identity, to, name, species, level)
}

func (s *session) Transfer(to ledger.Address, tokenId uint64) error {
	return s.pokedex.Transfer(s.identity, to, tokenId)
}

func (s *session) TransferLog() ([]ledger.TransferEvent, error) {
	return s.pokedex.TransferLog(), nil
}

func (s *session) IsApprovedForAll(owner ledger.Address, operator ledger.Address) (bool, error) {
	return s.pokedex.IsApprovedForAll(owner, operator), nil
}

func (s *session) SetApprovalForAll(operator ledger.Address, approved bool) error {
	return s.pokedex.SetApprovalForAll(s.identity, operator, approved)
}

func (s *session) Approve(operator ledger.Address, tokenId uint64) error {
	return s.pokedex.Approve(s.identity, operator, tokenId)
}

func (s *session) ListingTypeOf(tokenId uint64) (ledger.ListingType, error) {
	return s.pokedex.ListingTypeOf(tokenId)
}

func (s *session) FixedListingOf(tokenId uint64) (*ledger.FixedListing, error) {
	return s.pokedex.FixedListingOf(tokenId)
}

func (s *session) AuctionOf(tokenId uint64) (*ledger.Auction, error) {
	return s.pokedex.AuctionOf(tokenId)
}

func (s *session) ActiveFixedListings() ([]uint64, error) {
	return s.pokedex.ActiveFixedListings(), nil
}

func (s *session) ListFixedPrice(tokenId uint64, price uint64) error {
	return s.pokedex.ListFixedPrice(s.identity, tokenId, price)
}

func (s *session) BuyFixedPrice(tokenId uint64, payment uint64) error {
	return s.pokedex.BuyFixedPrice(s.identity, tokenId, payment)
}

func (s *session) DelistFixedPrice(tokenId uint64) error {
	return s.pokedex.DelistFixedPrice(s.identity, tokenId)
}

func (s *session) ListAuction(tokenId uint64, startPrice uint64, duration int64) error {
	return s.pokedex.ListAuction(s.identity, tokenId, startPrice, duration)
}

func (s *session) PlaceBid(tokenId uint64, payment uint64) error {
	return s.pokedex.PlaceBid(s.identity, tokenId, payment)
}

func (s *session) EndAuction(tokenId uint64) error {
	return s.pokedex.EndAuction(s.identity, tokenId)
}
