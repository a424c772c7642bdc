// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// Ledger - the full fixed operation set of the external authority
//
// mutating operations block until the ledger confirms or rejects;
// a rejection is surfaced as fault.RejectedError, an unreachable ledger
// as fault.TransportError; neither is retried here
type Ledger interface {

	// token reads
	TotalSupply() (uint64, error)
	TokenByIndex(index uint64) (uint64, error)
	OwnerOf(tokenId uint64) (Address, error)
	PokemonDetails(tokenId uint64) (name string, species string, level uint64, err error)

	// global reads
	IsPaused() (bool, error)
	Owner() (Address, error)
	Marketplace() (Address, error)

	// administrative mutations
	Pause() error
	Unpause() error

	// commit-reveal minting
	MintCommits(addr Address) (Digest, error)
	CommitMint(digest Digest) error
	RevealAndMint(name string, species string, level uint64, secret string) ([]TransferEvent, error)
	CancelCommit() error
	MintPokemon(to Address, name string, species string, level uint64) ([]TransferEvent, error)

	// ownership
	Transfer(to Address, tokenId uint64) error
	TransferLog() ([]TransferEvent, error)

	// spending authorization
	IsApprovedForAll(owner Address, operator Address) (bool, error)
	SetApprovalForAll(operator Address, approved bool) error
	Approve(operator Address, tokenId uint64) error

	// marketplace reads
	ListingTypeOf(tokenId uint64) (ListingType, error)
	FixedListingOf(tokenId uint64) (*FixedListing, error)
	AuctionOf(tokenId uint64) (*Auction, error)
	ActiveFixedListings() ([]uint64, error)

	// marketplace mutations
	ListFixedPrice(tokenId uint64, price uint64) error
	BuyFixedPrice(tokenId uint64, payment uint64) error
	DelistFixedPrice(tokenId uint64) error
	ListAuction(tokenId uint64, startPrice uint64, duration int64) error
	PlaceBid(tokenId uint64, payment uint64) error
	EndAuction(tokenId uint64) error
}
