// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package busy - cooperative outstanding-operation flags
//
// a flag marks a resource (an identity, a token) as having a ledger
// mutation in flight; a second mutation on the same resource is
// rejected instead of queued, the caller retries after the first one
// confirms
package busy

import (
	"sync"
	"time"

	"github.com/pokemart-inc/pokemartd/fault"
)

// time a flag was raised, kept for diagnostics
type flagItem struct {
	timestamp time.Time
}

// Flags - a set of raised flags keyed by resource name
type Flags struct {
	sync.Mutex
	table map[string]flagItem
}

// New - create an empty flag set
func New() *Flags {
	return &Flags{
		table: make(map[string]flagItem, 10),
	}
}

// Acquire - raise the flag for a resource
//
// returns ErrOperationInProgress if the flag is already raised
func (f *Flags) Acquire(key string) error {
	f.Lock()
	defer f.Unlock()

	if _, ok := f.table[key]; ok {
		return fault.ErrOperationInProgress
	}
	f.table[key] = flagItem{
		timestamp: time.Now(),
	}
	return nil
}

// Release - lower the flag for a resource
//
// releasing an unraised flag is a no-op
func (f *Flags) Release(key string) {
	f.Lock()
	delete(f.table, key)
	f.Unlock()
}

// IsBusy - report whether the flag is raised
func (f *Flags) IsBusy(key string) bool {
	f.Lock()
	_, ok := f.table[key]
	f.Unlock()
	return ok
}
