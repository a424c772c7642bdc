// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the local LevelDB database
//
// a single database file holds every locally persisted record; each
// record class lives under a one-byte key prefix held by its pool
// handle. the database is a derived cache of ledger history and can
// be deleted and replayed at any time.
package storage
