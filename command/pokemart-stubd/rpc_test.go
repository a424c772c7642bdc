// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

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

// run the full wire protocol over an in-process pipe: real client,
// real JSON-RPC codecs, real service dispatch
func newTestClient(t *testing.T, pokedex *stubledger.Pokedex, identity ledger.Address) *ledger.Client {
	t.Helper()

	serverConn, clientConn := net.Pipe()

	server := rpc.NewServer()
	server.Register(&Pokemon{pokedex: pokedex})
	server.Register(&Market{pokedex: pokedex})
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := ledger.NewClientConn(clientConn, identity)
	t.Cleanup(client.Close)

	return client
}

func TestWireTokenCalls(t *testing.T) {

	pokedex := stubledger.New(admin, marketplace)
	adminClient := newTestClient(t, pokedex, admin)
	aliceClient := newTestClient(t, pokedex, alice)

	owner, err := aliceClient.Owner()
	require.NoError(t, err)
	assert.True(t, admin.Equal(owner))

	count, err := aliceClient.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)

	events, err := adminClient.MintPokemon(alice, "Pikachu", "Electric", 25)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, uint64(1), events[0].TokenId)

	count, err = aliceClient.TotalSupply()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	tokenId, err := aliceClient.TokenByIndex(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), tokenId)

	tokenOwner, err := aliceClient.OwnerOf(1)
	require.NoError(t, err)
	assert.True(t, alice.Equal(tokenOwner))

	name, species, level, err := aliceClient.PokemonDetails(1)
	require.NoError(t, err)
	assert.Equal(t, "Pikachu", name)
	assert.Equal(t, "Electric", species)
	assert.Equal(t, uint64(25), level)

	// rejections travel back as opaque remote errors
	_, err = aliceClient.OwnerOf(42)
	require.Error(t, err)
	assert.True(t, fault.IsErrRejected(err))

	// the caller identity rides along with mutations
	err = aliceClient.Transfer(bob, 1)
	require.NoError(t, err)

	tokenOwner, err = aliceClient.OwnerOf(1)
	require.NoError(t, err)
	assert.True(t, bob.Equal(tokenOwner))

	log, err := aliceClient.TransferLog()
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.True(t, alice.Equal(log[1].From))
	assert.True(t, bob.Equal(log[1].To))
}

func TestWireCommitReveal(t *testing.T) {

	pokedex := stubledger.New(admin, marketplace)
	aliceClient := newTestClient(t, pokedex, alice)

	digest, err := aliceClient.MintCommits(alice)
	require.NoError(t, err)
	assert.True(t, digest.IsZero())

	commitment := ledger.CommitmentDigest("Squirtle", "Water", 7, "misty")
	err = aliceClient.CommitMint(commitment)
	require.NoError(t, err)

	digest, err = aliceClient.MintCommits(alice)
	require.NoError(t, err)
	assert.Equal(t, commitment, digest)

	// wrong secret is rejected by the authority
	_, err = aliceClient.RevealAndMint("Squirtle", "Water", 7, "brock")
	require.Error(t, err)
	assert.True(t, fault.IsErrRejected(err))

	events, err := aliceClient.RevealAndMint("Squirtle", "Water", 7, "misty")
	require.NoError(t, err)
	require.Len(t, events, 1)

	tokenOwner, err := aliceClient.OwnerOf(events[0].TokenId)
	require.NoError(t, err)
	assert.True(t, alice.Equal(tokenOwner))
}

func TestWirePause(t *testing.T) {

	pokedex := stubledger.New(admin, marketplace)
	adminClient := newTestClient(t, pokedex, admin)
	aliceClient := newTestClient(t, pokedex, alice)

	paused, err := aliceClient.IsPaused()
	require.NoError(t, err)
	assert.False(t, paused)

	// not the ledger owner
	err = aliceClient.Pause()
	require.Error(t, err)
	assert.True(t, fault.IsErrRejected(err))

	require.NoError(t, adminClient.Pause())

	paused, err = aliceClient.IsPaused()
	require.NoError(t, err)
	assert.True(t, paused)

	require.NoError(t, adminClient.Unpause())
}

func TestWireMarketCalls(t *testing.T) {

	pokedex := stubledger.New(admin, marketplace)
	adminClient := newTestClient(t, pokedex, admin)
	aliceClient := newTestClient(t, pokedex, alice)
	bobClient := newTestClient(t, pokedex, bob)

	_, err := adminClient.MintPokemon(alice, "Eevee", "Normal", 12)
	require.NoError(t, err)

	m, err := aliceClient.Marketplace()
	require.NoError(t, err)
	assert.True(t, marketplace.Equal(m))

	approved, err := aliceClient.IsApprovedForAll(alice, marketplace)
	require.NoError(t, err)
	assert.False(t, approved)

	require.NoError(t, aliceClient.SetApprovalForAll(marketplace, true))

	require.NoError(t, aliceClient.ListFixedPrice(1, 500))

	listingType, err := bobClient.ListingTypeOf(1)
	require.NoError(t, err)
	assert.Equal(t, ledger.ListingFixed, listingType)

	active, err := bobClient.ActiveFixedListings()
	require.NoError(t, err)
	assert.Equal(t, []uint64{1}, active)

	listing, err := bobClient.FixedListingOf(1)
	require.NoError(t, err)
	assert.True(t, alice.Equal(listing.Seller))
	assert.Equal(t, uint64(500), listing.Price)

	require.NoError(t, bobClient.BuyFixedPrice(1, 500))

	tokenOwner, err := bobClient.OwnerOf(1)
	require.NoError(t, err)
	assert.True(t, bob.Equal(tokenOwner))

	// auction round trip on a second token
	_, err = adminClient.MintPokemon(alice, "Vulpix", "Fire", 18)
	require.NoError(t, err)

	require.NoError(t, aliceClient.Approve(marketplace, 2))
	require.NoError(t, aliceClient.ListAuction(2, 1000, 600))

	auction, err := bobClient.AuctionOf(2)
	require.NoError(t, err)
	assert.True(t, alice.Equal(auction.Seller))
	assert.Equal(t, uint64(1000), auction.StartPrice)
	assert.False(t, auction.Ended)

	require.NoError(t, bobClient.PlaceBid(2, 1000))

	auction, err = bobClient.AuctionOf(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), auction.HighestBid)
	assert.True(t, bob.Equal(auction.HighestBidder))

	// still running
	err = bobClient.EndAuction(2)
	require.Error(t, err)
	assert.True(t, fault.IsErrRejected(err))
}
