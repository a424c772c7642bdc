// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stubledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/stubledger"
)

const (
	admin       = ledger.Address("0x00000000000000000000000000000000000000a1")
	alice       = ledger.Address("0x00000000000000000000000000000000000000b2")
	bob         = ledger.Address("0x00000000000000000000000000000000000000c3")
	marketplace = ledger.Address("0x00000000000000000000000000000000000000d4")
)

// controllable clock
type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func (c *clock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newPokedex() (*stubledger.Pokedex, *clock) {
	c := &clock{now: time.Unix(1700000000, 0)}
	p := stubledger.New(admin, marketplace)
	p.Now = c.Now
	return p, c
}

func TestCommitRevealMint(t *testing.T) {
	p, _ := newPokedex()

	digest := ledger.CommitmentDigest("Charmander", "Fire", 8, "ash")
	require.NoError(t, p.CommitMint(alice, digest))
	assert.Equal(t, digest, p.MintCommits(alice), "stored commitment mismatch")

	// a second commit must fail while one is pending
	err := p.CommitMint(alice, digest)
	assert.True(t, fault.IsErrRejected(err), "double commit must be rejected")

	// a wrong secret must be rejected and leave the commitment intact
	_, err = p.RevealAndMint(alice, "Charmander", "Fire", 8, "misty")
	assert.True(t, fault.IsErrRejected(err), "bad reveal must be rejected")
	assert.Equal(t, digest, p.MintCommits(alice), "commitment must survive a bad reveal")

	events, err := p.RevealAndMint(alice, "Charmander", "Fire", 8, "ash")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].IsMint(), "reveal must produce a mint event")
	assert.Equal(t, alice, events[0].To)

	owner, err := p.OwnerOf(events[0].TokenId)
	require.NoError(t, err)
	assert.Equal(t, alice, owner)

	// commitment cleared, a new commit succeeds
	assert.True(t, p.MintCommits(alice).IsZero(), "commitment must be cleared by reveal")
	assert.NoError(t, p.CommitMint(alice, digest))
}

func TestCancelCommit(t *testing.T) {
	p, _ := newPokedex()

	digest := ledger.CommitmentDigest("Gastly", "Ghost", 3, "trick")
	require.NoError(t, p.CommitMint(alice, digest))
	require.NoError(t, p.CancelCommit(alice))
	assert.True(t, p.MintCommits(alice).IsZero())

	err := p.CancelCommit(alice)
	assert.True(t, fault.IsErrRejected(err), "cancel without commit must be rejected")
}

func TestDirectMintOwnerOnly(t *testing.T) {
	p, _ := newPokedex()

	_, err := p.MintPokemon(alice, alice, "Pikachu", "Electric", 5)
	assert.True(t, fault.IsErrRejected(err), "direct mint must be owner only")

	events, err := p.MintPokemon(admin, alice, "Pikachu", "Electric", 5)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(1), events[0].TokenId, "ids allocate from 1")
}

func TestPauseBlocksMutations(t *testing.T) {
	p, _ := newPokedex()

	require.NoError(t, p.Pause(admin))
	assert.True(t, p.IsPaused())

	_, err := p.MintPokemon(admin, alice, "Bulbasaur", "Grass", 5)
	assert.True(t, fault.IsErrRejected(err))
	err = p.CommitMint(alice, ledger.CommitmentDigest("a", "b", 1, "s"))
	assert.True(t, fault.IsErrRejected(err))

	require.NoError(t, p.Unpause(admin))
	_, err = p.MintPokemon(admin, alice, "Bulbasaur", "Grass", 5)
	assert.NoError(t, err)

	// only the owner can pause
	err = p.Pause(alice)
	assert.True(t, fault.IsErrRejected(err))
}

func TestTransfer(t *testing.T) {
	p, _ := newPokedex()

	_, err := p.MintPokemon(admin, alice, "Squirtle", "Water", 6)
	require.NoError(t, err)

	err = p.Transfer(bob, alice, 1)
	assert.True(t, fault.IsErrRejected(err), "non-owner transfer must be rejected")

	require.NoError(t, p.Transfer(alice, bob, 1))
	owner, _ := p.OwnerOf(1)
	assert.Equal(t, bob, owner)

	log := p.TransferLog()
	require.Len(t, log, 2)
	assert.True(t, log[0].IsMint())
	assert.Equal(t, alice, log[1].From)
	assert.Equal(t, bob, log[1].To)
}

func TestFixedListingLifecycle(t *testing.T) {
	p, _ := newPokedex()

	_, err := p.MintPokemon(admin, alice, "Eevee", "Normal", 10)
	require.NoError(t, err)

	// listing requires marketplace authorization
	err = p.ListFixedPrice(alice, 1, 500)
	assert.True(t, fault.IsErrRejected(err), "unauthorized listing must be rejected")

	require.NoError(t, p.SetApprovalForAll(alice, marketplace, true))
	require.NoError(t, p.ListFixedPrice(alice, 1, 500))

	lt, err := p.ListingTypeOf(1)
	require.NoError(t, err)
	assert.Equal(t, ledger.ListingFixed, lt)

	// exclusivity: no auction while the fixed listing is active
	err = p.ListAuction(alice, 1, 100, 60)
	assert.True(t, fault.IsErrRejected(err), "listing types must be exclusive")

	// wrong payment rejected
	err = p.BuyFixedPrice(bob, 1, 499)
	assert.True(t, fault.IsErrRejected(err))

	require.NoError(t, p.BuyFixedPrice(bob, 1, 500))
	owner, _ := p.OwnerOf(1)
	assert.Equal(t, bob, owner)

	lt, _ = p.ListingTypeOf(1)
	assert.Equal(t, ledger.ListingNone, lt, "listing must deactivate on buy")
}

func TestDelistSellerOnly(t *testing.T) {
	p, _ := newPokedex()

	_, err := p.MintPokemon(admin, alice, "Eevee", "Normal", 10)
	require.NoError(t, err)
	require.NoError(t, p.SetApprovalForAll(alice, marketplace, true))
	require.NoError(t, p.ListFixedPrice(alice, 1, 500))

	err = p.DelistFixedPrice(bob, 1)
	assert.True(t, fault.IsErrRejected(err), "delist must be seller only")

	require.NoError(t, p.DelistFixedPrice(alice, 1))
	lt, _ := p.ListingTypeOf(1)
	assert.Equal(t, ledger.ListingNone, lt)
	assert.Equal(t, 0, len(p.ActiveFixedListings()))
}

func TestAuctionLifecycle(t *testing.T) {
	p, c := newPokedex()

	_, err := p.MintPokemon(admin, alice, "Dratini", "Dragon", 12)
	require.NoError(t, err)
	require.NoError(t, p.SetApprovalForAll(alice, marketplace, true))
	require.NoError(t, p.ListAuction(alice, 1, 100, 60))

	lt, _ := p.ListingTypeOf(1)
	assert.Equal(t, ledger.ListingAuction, lt)

	// below start price
	err = p.PlaceBid(bob, 1, 99)
	assert.True(t, fault.IsErrRejected(err))

	// seller may not bid
	err = p.PlaceBid(alice, 1, 100)
	assert.True(t, fault.IsErrRejected(err))

	require.NoError(t, p.PlaceBid(bob, 1, 100))

	// a bid must strictly increase
	err = p.PlaceBid(bob, 1, 100)
	assert.True(t, fault.IsErrRejected(err))
	require.NoError(t, p.PlaceBid(bob, 1, 102))

	// cannot end before expiry
	err = p.EndAuction(bob, 1)
	assert.True(t, fault.IsErrRejected(err))

	c.advance(61 * time.Second)

	// no late bids
	err = p.PlaceBid(bob, 1, 200)
	assert.True(t, fault.IsErrRejected(err))

	require.NoError(t, p.EndAuction(bob, 1))
	owner, _ := p.OwnerOf(1)
	assert.Equal(t, bob, owner, "winner must receive the token")

	auction, err := p.AuctionOf(1)
	require.NoError(t, err)
	assert.True(t, auction.Ended)

	// closed is absorbing
	err = p.EndAuction(bob, 1)
	assert.True(t, fault.IsErrRejected(err))
	err = p.PlaceBid(bob, 1, 500)
	assert.True(t, fault.IsErrRejected(err))
}

func TestAuctionWithoutBids(t *testing.T) {
	p, c := newPokedex()

	_, err := p.MintPokemon(admin, alice, "Onix", "Rock", 14)
	require.NoError(t, err)
	require.NoError(t, p.SetApprovalForAll(alice, marketplace, true))
	require.NoError(t, p.ListAuction(alice, 1, 100, 30))

	c.advance(31 * time.Second)
	require.NoError(t, p.EndAuction(alice, 1))

	// no winner, the seller keeps the token and no transfer is logged
	owner, _ := p.OwnerOf(1)
	assert.Equal(t, alice, owner)
	assert.Len(t, p.TransferLog(), 1, "only the mint event must be present")
}

func TestNotifier(t *testing.T) {
	p, _ := newPokedex()

	var seen []ledger.TransferEvent
	p.SetNotifier(func(e ledger.TransferEvent) {
		seen = append(seen, e)
	})

	_, err := p.MintPokemon(admin, alice, "Mew", "Psychic", 50)
	require.NoError(t, err)
	require.NoError(t, p.Transfer(alice, bob, 1))

	require.Len(t, seen, 2)
	assert.True(t, seen[0].IsMint())
	assert.Equal(t, bob, seen[1].To)
}
