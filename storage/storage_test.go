// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokemart-inc/pokemartd/storage"
)

const testingDirName = "testing"

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

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

func TestPools(t *testing.T) {
	database := filepath.Join(testingDirName, "storage.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	err := storage.Initialise(database)
	assert.Error(t, err, "double initialise must fail")

	// empty pool
	_, found := storage.Pool.Transfers.LastElement()
	assert.False(t, found)

	storage.Pool.Transfers.Put(sequenceKey(1), []byte("one"))
	storage.Pool.Transfers.Put(sequenceKey(2), []byte("two"))
	storage.Pool.Transfers.Put(sequenceKey(3), []byte("three"))

	assert.Equal(t, []byte("two"), storage.Pool.Transfers.Get(sequenceKey(2)))
	assert.True(t, storage.Pool.Transfers.Has(sequenceKey(3)))
	assert.False(t, storage.Pool.Transfers.Has(sequenceKey(9)))
	assert.Nil(t, storage.Pool.Transfers.Get(sequenceKey(9)))

	last, found := storage.Pool.Transfers.LastElement()
	require.True(t, found)
	assert.Equal(t, sequenceKey(3), last.Key)
	assert.Equal(t, []byte("three"), last.Value)

	// pools do not see each other's records
	assert.Nil(t, storage.Pool.Metadata.Get(sequenceKey(1)))

	storage.Pool.Transfers.Delete(sequenceKey(2))
	assert.False(t, storage.Pool.Transfers.Has(sequenceKey(2)))
}

func TestScan(t *testing.T) {
	database := filepath.Join(testingDirName, "scan.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	for i := uint64(1); i <= 5; i += 1 {
		storage.Pool.Transfers.Put(sequenceKey(i), []byte{byte(i)})
	}

	// keys arrive in order
	seen := []uint64{}
	storage.Pool.Transfers.Scan(func(key []byte, value []byte) bool {
		seen = append(seen, binary.BigEndian.Uint64(key))
		return true
	})
	assert.Equal(t, []uint64{1, 2, 3, 4, 5}, seen)

	// early stop
	count := 0
	storage.Pool.Transfers.Scan(func(key []byte, value []byte) bool {
		count += 1
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func TestGetN(t *testing.T) {
	database := filepath.Join(testingDirName, "getn.leveldb")
	require.NoError(t, storage.Initialise(database))
	defer storage.Finalise()

	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, 424242)
	storage.Pool.Metadata.Put([]byte("sequence"), value)

	n, found := storage.Pool.Metadata.GetN([]byte("sequence"))
	require.True(t, found)
	assert.Equal(t, uint64(424242), n)

	_, found = storage.Pool.Metadata.GetN([]byte("missing"))
	assert.False(t, found)
}
