// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package history - local record of every token transfer
//
// the ledger's transfer log is replayed into the local database on
// startup and a live event feed keeps it current afterwards; the
// database never holds anything that cannot be rebuilt by another
// replay
package history

import (
	"encoding/binary"
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/pokemart-inc/pokemartd/background"
	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/storage"
)

var globalData struct {
	sync.RWMutex
	log      *logger.L
	ledger   ledger.Ledger
	sequence uint64

	subscriber subscriber
	background *background.T

	// set once during initialise
	initialised bool
}

// set up transfer history
//
// replays the ledger's transfer log into local storage, then starts
// the live feed subscriber when a subscription address is configured;
// an empty address runs replay only
func Initialise(l ledger.Ledger, subscribe string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("history")
	globalData.log.Info("starting…")

	globalData.ledger = l

	// resume the sequence from the stored cursor; an older database
	// without one is recovered from its last transfer record
	globalData.sequence = 0
	if n, found := storage.Pool.Metadata.GetN(cursorKey); found {
		globalData.sequence = n
	} else if last, found := storage.Pool.Transfers.LastElement(); found {
		globalData.sequence = binary.BigEndian.Uint64(last.Key) + 1
	}

	if err := replay(); nil != err {
		return err
	}

	processes := background.Processes{}

	if "" != subscribe {
		err := globalData.subscriber.initialise(subscribe)
		if nil != err {
			return err
		}
		processes = append(processes, &globalData.subscriber)
	}

	globalData.initialised = true
	globalData.background = background.Start(processes, nil)

	return nil
}

// shutdown transfer history
func Finalise() error {

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.background.Stop()

	globalData.initialised = false

	return nil
}

// metadata record holding the next sequence number
var cursorKey = []byte("sequence")

func sequenceKey(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// persist the sequence so the next start resumes where this one left
// off, lock already held
func storeCursor() {
	storage.Pool.Metadata.Put(cursorKey, sequenceKey(globalData.sequence))
}

// pull the full transfer log and store whatever is missing locally
//
// the log is append-only on the ledger side, so the local sequence
// is simply its index into the log
func replay() error {

	events, err := globalData.ledger.TransferLog()
	if nil != err {
		return err
	}

	if uint64(len(events)) < globalData.sequence {
		// the local database is ahead of the replayed log, the
		// ledger endpoint must have been reset; drop the stale tail
		// and rewrite everything from the start
		globalData.log.Warnf("local records: %d  replayed log: %d  rebuilding", globalData.sequence, len(events))
		for i := uint64(len(events)); i < globalData.sequence; i += 1 {
			storage.Pool.Transfers.Delete(sequenceKey(i))
		}
		globalData.sequence = 0
	}

	stored := 0
	for i := globalData.sequence; i < uint64(len(events)); i += 1 {
		data, err := json.Marshal(events[i])
		if nil != err {
			return err
		}
		storage.Pool.Transfers.Put(sequenceKey(i), data)
		stored += 1
	}
	globalData.sequence = uint64(len(events))
	storeCursor()

	globalData.log.Infof("replayed events: %d  new: %d", len(events), stored)
	return nil
}

// append one live event to the local record
func appendEvent(event ledger.TransferEvent) {
	globalData.Lock()
	defer globalData.Unlock()

	data, err := json.Marshal(event)
	if nil != err {
		globalData.log.Errorf("marshal error: %s", err)
		return
	}
	storage.Pool.Transfers.Put(sequenceKey(globalData.sequence), data)
	globalData.sequence += 1
	storeCursor()
}

// Count - number of locally recorded transfers
func Count() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.sequence
}

// Events - every recorded transfer in ledger order
func Events() ([]ledger.TransferEvent, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return nil, fault.ErrNotInitialised
	}

	events := make([]ledger.TransferEvent, 0, globalData.sequence)
	decodeError := error(nil)
	storage.Pool.Transfers.Scan(func(key []byte, value []byte) bool {
		var event ledger.TransferEvent
		if err := json.Unmarshal(value, &event); nil != err {
			decodeError = err
			return false
		}
		events = append(events, event)
		return true
	})
	return events, decodeError
}

// EventsForToken - the transfer chain of one token, oldest first
func EventsForToken(tokenId uint64) ([]ledger.TransferEvent, error) {
	all, err := Events()
	if nil != err {
		return nil, err
	}

	events := make([]ledger.TransferEvent, 0, 4)
	for _, event := range all {
		if tokenId == event.TokenId {
			events = append(events, event)
		}
	}
	return events, nil
}
