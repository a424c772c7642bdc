// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gate_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/gate"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/stubledger"
)

const (
	testingDirName = "testing"

	admin       = ledger.Address("0x00000000000000000000000000000000000000a1")
	marketplace = ledger.Address("0x00000000000000000000000000000000000000d4")
)

func setupTestLogger() {
	removeFiles()
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

	// start logging
	_ = logger.Initialise(logging)
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func teardownTestLogger() {
	removeFiles()
}

// wraps a ledger and counts paused reads
type countingLedger struct {
	ledger.Ledger
	pausedReads int
}

func (c *countingLedger) IsPaused() (bool, error) {
	c.pausedReads += 1
	return c.Ledger.IsPaused()
}

func TestGate(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	pokedex := stubledger.New(admin, marketplace)
	counted := &countingLedger{Ledger: pokedex.LedgerFor(admin)}

	require.NoError(t, gate.Initialise(counted))
	defer gate.Finalise()

	err := gate.Initialise(counted)
	assert.Equal(t, fault.ErrAlreadyInitialised, err)

	// repeated reads inside the expiry window hit the ledger once
	for i := 0; i < 5; i += 1 {
		paused, err := gate.IsPaused()
		require.NoError(t, err)
		assert.False(t, paused)
	}
	assert.Equal(t, 1, counted.pausedReads, "repeated reads must be memoised")

	require.NoError(t, gate.Require())

	// an administrative pause updates the memoised flag immediately
	require.NoError(t, gate.Pause())
	paused, err := gate.IsPaused()
	require.NoError(t, err)
	assert.True(t, paused)

	err = gate.Require()
	assert.Equal(t, fault.ErrPaused, err)
	assert.True(t, fault.IsErrPaused(err))

	require.NoError(t, gate.Unpause())
	require.NoError(t, gate.Require())

	// refresh forces the next read back to the ledger
	before := counted.pausedReads
	gate.Refresh()
	_, err = gate.IsPaused()
	require.NoError(t, err)
	assert.Equal(t, before+1, counted.pausedReads)
}

func TestGateNotInitialised(t *testing.T) {
	// TestGate has finalised the gate by the time this runs
	_, err := gate.IsPaused()
	assert.Equal(t, fault.ErrNotInitialised, err)

	err = gate.Pause()
	assert.Equal(t, fault.ErrNotInitialised, err)
}
