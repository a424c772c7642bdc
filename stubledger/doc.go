// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stubledger - an in-memory rendition of the external authority
//
// implements the whole ledger contract: commit verification by digest
// recomputation, listing type exclusivity, strictly increasing bids,
// monotone auction close and the pause flag; used by package tests and
// by the pokemart-stubd development daemon
//
// all state guarding, refunds and fund custody of the real authority
// are reduced to ownership and rejection behaviour, which is all the
// client layers above can observe
package stubledger
