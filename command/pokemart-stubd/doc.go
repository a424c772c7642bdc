// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command pokemart-stubd - a stand-in ledger authority
//
// Serves the same JSON-RPC over TLS surface as the real authority but
// keeps all state in memory, so client tooling can be developed and
// demonstrated without a deployed contract.  Every transfer is also
// broadcast on a ZeroMQ feed for history subscribers.
//
// State does not survive a restart.
package main
