// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - typed access to the external authority
//
// the ledger is the sole source of truth for token ownership, listings,
// auctions, commitments and the pause flag; everything this client holds
// is a derived, disposable cache reconstructed from the reads below
//
// the interface is a static capability contract: every operation of the
// ledger is always present, there is no runtime probing; mutating calls
// return only after the ledger confirms or rejects, there is no
// optimistic local state anywhere above this package
package ledger
