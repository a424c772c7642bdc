// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package history_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemart-inc/pokemartd/history"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/storage"
	"github.com/pokemart-inc/pokemartd/stubledger"
)

const (
	testingDirName = "testing"

	admin       = ledger.Address("0x00000000000000000000000000000000000000a1")
	alice       = ledger.Address("0x00000000000000000000000000000000000000b2")
	bob         = ledger.Address("0x00000000000000000000000000000000000000c3")
	marketplace = ledger.Address("0x00000000000000000000000000000000000000d4")
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func TestReplay(t *testing.T) {
	database := filepath.Join(testingDirName, "replay.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	p := stubledger.New(admin, marketplace)
	_, err := p.MintPokemon(admin, alice, "Pikachu", "Electric", 12)
	require.NoError(t, err)
	_, err = p.MintPokemon(admin, alice, "Eevee", "Normal", 10)
	require.NoError(t, err)
	require.NoError(t, p.Transfer(alice, bob, 1))

	require.NoError(t, history.Initialise(p.LedgerFor(alice), ""))

	assert.Equal(t, uint64(3), history.Count())

	events, err := history.Events()
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.True(t, events[0].IsMint())
	assert.Equal(t, uint64(1), events[0].TokenId)
	assert.Equal(t, alice, events[2].From)
	assert.Equal(t, bob, events[2].To)

	chain, err := history.EventsForToken(1)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.True(t, chain[0].IsMint())
	assert.Equal(t, bob, chain[1].To)

	require.NoError(t, history.Finalise())

	// more activity while offline is picked up by the next replay
	require.NoError(t, p.Transfer(bob, alice, 1))
	require.NoError(t, history.Initialise(p.LedgerFor(alice), ""))
	defer func() { _ = history.Finalise() }()

	assert.Equal(t, uint64(4), history.Count())

	chain, err = history.EventsForToken(1)
	require.NoError(t, err)
	require.Len(t, chain, 3)
	assert.Equal(t, alice, chain[2].To)
}

func TestReplayRebuildAfterReset(t *testing.T) {
	database := filepath.Join(testingDirName, "rebuild.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	p := stubledger.New(admin, marketplace)
	_, err := p.MintPokemon(admin, alice, "Onix", "Rock", 14)
	require.NoError(t, err)
	_, err = p.MintPokemon(admin, alice, "Geodude", "Rock", 3)
	require.NoError(t, err)

	require.NoError(t, history.Initialise(p.LedgerFor(alice), ""))
	assert.Equal(t, uint64(2), history.Count())
	require.NoError(t, history.Finalise())

	// a fresh ledger with a shorter log forces a rebuild
	fresh := stubledger.New(admin, marketplace)
	_, err = fresh.MintPokemon(admin, bob, "Zubat", "Poison", 2)
	require.NoError(t, err)

	require.NoError(t, history.Initialise(fresh.LedgerFor(alice), ""))
	defer func() { _ = history.Finalise() }()

	events, err := history.Events()
	require.NoError(t, err)

	// only the fresh log remains
	require.Len(t, events, 1)
	assert.Equal(t, bob, events[0].To)
	assert.Equal(t, uint64(1), history.Count())
}

func TestLiveSubscription(t *testing.T) {
	database := filepath.Join(testingDirName, "live.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	p := stubledger.New(admin, marketplace)
	_, err := p.MintPokemon(admin, alice, "Pikachu", "Electric", 12)
	require.NoError(t, err)

	// socket playing the ledger's feed publisher
	pub, err := zmq.NewSocket(zmq.PUB)
	require.NoError(t, err)
	defer pub.Close()
	require.NoError(t, pub.Bind("inproc://history-test-feed"))

	require.NoError(t, history.Initialise(p.LedgerFor(alice), "inproc://history-test-feed"))
	defer func() { _ = history.Finalise() }()

	// replay happened before the feed delivered anything
	assert.Equal(t, uint64(1), history.Count())

	// allow the subscription to reach the feed socket
	time.Sleep(500 * time.Millisecond)

	// an unrelated topic never reaches the local record
	_, err = pub.SendMessage("listing", []byte(`{"tokenId":99}`))
	require.NoError(t, err)

	event := ledger.TransferEvent{From: alice, To: bob, TokenId: 1}
	data, err := json.Marshal(event)
	require.NoError(t, err)
	_, err = pub.SendMessage("transfer", data)
	require.NoError(t, err)

	deadline := time.Now().Add(5 * time.Second)
	for history.Count() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, uint64(2), history.Count())

	events, err := history.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, alice, events[1].From)
	assert.Equal(t, bob, events[1].To)
	assert.Equal(t, uint64(1), events[1].TokenId)

	chain, err := history.EventsForToken(1)
	require.NoError(t, err)
	require.Len(t, chain, 2)
}

func TestSequenceCursorRecovery(t *testing.T) {
	database := filepath.Join(testingDirName, "cursor.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	p := stubledger.New(admin, marketplace)
	_, err := p.MintPokemon(admin, alice, "Onix", "Rock", 14)
	require.NoError(t, err)
	require.NoError(t, p.Transfer(alice, bob, 1))

	require.NoError(t, history.Initialise(p.LedgerFor(alice), ""))
	assert.Equal(t, uint64(2), history.Count())
	require.NoError(t, history.Finalise())

	// the cursor is stored alongside the records
	n, found := storage.Pool.Metadata.GetN([]byte("sequence"))
	require.True(t, found)
	assert.Equal(t, uint64(2), n)

	// an older database has records but no cursor; the next start
	// recovers the sequence from the last record instead
	storage.Pool.Metadata.Delete([]byte("sequence"))

	require.NoError(t, history.Initialise(p.LedgerFor(alice), ""))
	defer func() { _ = history.Finalise() }()

	assert.Equal(t, uint64(2), history.Count())

	events, err := history.Events()
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, bob, events[1].To)
}
