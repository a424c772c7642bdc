// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stubledger

import (
	"strings"
	"sync"
	"time"

	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/ledger"
)

// rejection texts mirror the authority's revert reasons
var (
	errPaused          = fault.RejectedError("Pausable: paused")
	errNotOwner        = fault.RejectedError("You are not the owner of this Pokemon")
	errNotLedgerOwner  = fault.RejectedError("Ownable: caller is not the owner")
	errPendingCommit   = fault.RejectedError("You already have a pending commit.")
	errNoCommit        = fault.RejectedError("No commit to reveal.")
	errCommitMismatch  = fault.RejectedError("Reveal does not match commit.")
	errUnknownToken    = fault.RejectedError("ERC721: invalid token ID")
	errNotAuthorized   = fault.RejectedError("Marketplace not approved for this token")
	errAlreadyListed   = fault.RejectedError("Token is already listed")
	errNotListed       = fault.RejectedError("Token is not listed")
	errNotAuction      = fault.RejectedError("Token is not under auction")
	errZeroPrice       = fault.RejectedError("Price must be above zero")
	errAuctionOver     = fault.RejectedError("Auction already ended")
	errAuctionRunning  = fault.RejectedError("Auction not yet ended")
	errBidBelowStart   = fault.RejectedError("Bid below start price")
	errBidNotHigher    = fault.RejectedError("Bid not higher than current highest")
	errWrongPayment    = fault.RejectedError("Incorrect payment amount")
	errNotSeller       = fault.RejectedError("Only the seller can delist")
	errZeroDuration    = fault.RejectedError("Duration must be above zero")
	errSellerBid       = fault.RejectedError("Seller cannot bid")
)

// Pokedex - the whole authority state behind one lock
//
// Now is replaceable so auction expiry can be driven by tests
type Pokedex struct {
	sync.RWMutex

	Now func() time.Time

	owner       ledger.Address
	marketplace ledger.Address
	paused      bool
	nextId      uint64

	tokens       map[uint64]*ledger.Token
	tokenIndex   []uint64 // ascending allocation order
	commits      map[string]ledger.Digest
	fixed        map[uint64]*ledger.FixedListing
	auctions     map[uint64]*ledger.Auction
	approvals    map[string]bool           // owner‖operator, collection-wide
	tokenGrants  map[uint64]ledger.Address // single token approvals
	transferLog  []ledger.TransferEvent
	notify       func(ledger.TransferEvent)
}

// New - create an empty authority owned by the given account
func New(owner ledger.Address, marketplace ledger.Address) *Pokedex {
	return &Pokedex{
		Now:         time.Now,
		owner:       owner,
		marketplace: marketplace,
		tokens:      make(map[uint64]*ledger.Token),
		commits:     make(map[string]ledger.Digest),
		fixed:       make(map[uint64]*ledger.FixedListing),
		auctions:    make(map[uint64]*ledger.Auction),
		approvals:   make(map[string]bool),
		tokenGrants: make(map[uint64]ledger.Address),
	}
}

// SetNotifier - receive every transfer event as it is appended
//
// called with the pokedex lock held, so the notifier must not call back
func (p *Pokedex) SetNotifier(f func(ledger.TransferEvent)) {
	p.Lock()
	p.notify = f
	p.Unlock()
}

func addressKey(a ledger.Address) string {
	return strings.ToLower(string(a))
}

func approvalKey(owner ledger.Address, operator ledger.Address) string {
	return addressKey(owner) + "‖" + addressKey(operator)
}

// append one event to the log and fan out, lock already held
func (p *Pokedex) appendEvent(from ledger.Address, to ledger.Address, tokenId uint64) {
	event := ledger.TransferEvent{
		From:    from,
		To:      to,
		TokenId: tokenId,
	}
	p.transferLog = append(p.transferLog, event)
	if nil != p.notify {
		p.notify(event)
	}
}

// mint one token, lock already held
func (p *Pokedex) mint(to ledger.Address, name string, species string, level uint64) uint64 {
	p.nextId += 1
	id := p.nextId
	p.tokens[id] = &ledger.Token{
		Id:      id,
		Owner:   to,
		Name:    name,
		Species: species,
		Level:   level,
	}
	p.tokenIndex = append(p.tokenIndex, id)
	p.appendEvent(ledger.ZeroAddress, to, id)
	return id
}

// ---- global reads ----

// TotalSupply - number of minted tokens
func (p *Pokedex) TotalSupply() uint64 {
	p.RLock()
	defer p.RUnlock()
	return uint64(len(p.tokenIndex))
}

// TokenByIndex - token id at an enumeration index
func (p *Pokedex) TokenByIndex(index uint64) (uint64, error) {
	p.RLock()
	defer p.RUnlock()
	if index >= uint64(len(p.tokenIndex)) {
		return 0, errUnknownToken
	}
	return p.tokenIndex[index], nil
}

// OwnerOf - current owner of a token
func (p *Pokedex) OwnerOf(tokenId uint64) (ledger.Address, error) {
	p.RLock()
	defer p.RUnlock()
	token, ok := p.tokens[tokenId]
	if !ok {
		return "", errUnknownToken
	}
	return token.Owner, nil
}

// Details - descriptor fields of a token
func (p *Pokedex) Details(tokenId uint64) (string, string, uint64, error) {
	p.RLock()
	defer p.RUnlock()
	token, ok := p.tokens[tokenId]
	if !ok {
		return "", "", 0, errUnknownToken
	}
	return token.Name, token.Species, token.Level, nil
}

// IsPaused - the pause flag
func (p *Pokedex) IsPaused() bool {
	p.RLock()
	defer p.RUnlock()
	return p.paused
}

// Owner - administrative identity
func (p *Pokedex) Owner() ledger.Address {
	p.RLock()
	defer p.RUnlock()
	return p.owner
}

// Marketplace - the operator account sellers must authorize
func (p *Pokedex) Marketplace() ledger.Address {
	p.RLock()
	defer p.RUnlock()
	return p.marketplace
}

// TransferLog - copy of the whole append-only log
func (p *Pokedex) TransferLog() []ledger.TransferEvent {
	p.RLock()
	defer p.RUnlock()
	log := make([]ledger.TransferEvent, len(p.transferLog))
	copy(log, p.transferLog)
	return log
}

// ---- administrative mutations ----

// Pause - set the pause flag, owner only
func (p *Pokedex) Pause(caller ledger.Address) error {
	p.Lock()
	defer p.Unlock()
	if !caller.Equal(p.owner) {
		return errNotLedgerOwner
	}
	p.paused = true
	return nil
}

// Unpause - clear the pause flag, owner only
func (p *Pokedex) Unpause(caller ledger.Address) error {
	p.Lock()
	defer p.Unlock()
	if !caller.Equal(p.owner) {
		return errNotLedgerOwner
	}
	p.paused = false
	return nil
}

// ---- commit-reveal minting ----

// MintCommits - stored commitment digest, zero when none
func (p *Pokedex) MintCommits(addr ledger.Address) ledger.Digest {
	p.RLock()
	defer p.RUnlock()
	return p.commits[addressKey(addr)]
}

// CommitMint - store a commitment for the caller
func (p *Pokedex) CommitMint(caller ledger.Address, digest ledger.Digest) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	if !p.commits[addressKey(caller)].IsZero() {
		return errPendingCommit
	}
	p.commits[addressKey(caller)] = digest
	return nil
}

// RevealAndMint - verify the digest, mint and clear the commitment
func (p *Pokedex) RevealAndMint(caller ledger.Address, name string, species string, level uint64, secret string) ([]ledger.TransferEvent, error) {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return nil, errPaused
	}
	stored := p.commits[addressKey(caller)]
	if stored.IsZero() {
		return nil, errNoCommit
	}
	if ledger.CommitmentDigest(name, species, level, secret) != stored {
		return nil, errCommitMismatch
	}
	delete(p.commits, addressKey(caller))
	id := p.mint(caller, name, species, level)
	return []ledger.TransferEvent{{From: ledger.ZeroAddress, To: caller, TokenId: id}}, nil
}

// CancelCommit - discard the caller's pending commitment
func (p *Pokedex) CancelCommit(caller ledger.Address) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	if p.commits[addressKey(caller)].IsZero() {
		return errNoCommit
	}
	delete(p.commits, addressKey(caller))
	return nil
}

// MintPokemon - privileged direct mint, owner only
func (p *Pokedex) MintPokemon(caller ledger.Address, to ledger.Address, name string, species string, level uint64) ([]ledger.TransferEvent, error) {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return nil, errPaused
	}
	if !caller.Equal(p.owner) {
		return nil, errNotLedgerOwner
	}
	id := p.mint(to, name, species, level)
	return []ledger.TransferEvent{{From: ledger.ZeroAddress, To: to, TokenId: id}}, nil
}

// ---- ownership ----

// Transfer - move a token between accounts
func (p *Pokedex) Transfer(caller ledger.Address, to ledger.Address, tokenId uint64) error {
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
	from := token.Owner
	token.Owner = to
	p.appendEvent(from, to, tokenId)
	return nil
}

// ---- spending authorization ----

// IsApprovedForAll - collection-wide approval state
func (p *Pokedex) IsApprovedForAll(owner ledger.Address, operator ledger.Address) bool {
	p.RLock()
	defer p.RUnlock()
	return p.approvals[approvalKey(owner, operator)]
}

// SetApprovalForAll - grant or revoke a collection-wide approval
func (p *Pokedex) SetApprovalForAll(caller ledger.Address, operator ledger.Address, approved bool) error {
	p.Lock()
	defer p.Unlock()
	if p.paused {
		return errPaused
	}
	p.approvals[approvalKey(caller, operator)] = approved
	return nil
}

// Approve - grant a single token approval
func (p *Pokedex) Approve(caller ledger.Address, operator ledger.Address, tokenId uint64) error {
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
	p.tokenGrants[tokenId] = operator
	return nil
}

// marketplace authorization check, lock already held
func (p *Pokedex) marketplaceAuthorized(owner ledger.Address, tokenId uint64) bool {
	if p.approvals[approvalKey(owner, p.marketplace)] {
		return true
	}
	return p.tokenGrants[tokenId].Equal(p.marketplace)
}
