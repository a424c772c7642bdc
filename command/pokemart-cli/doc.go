// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command-line interface to a Pokemon ledger endpoint
//
// every subcommand is a thin wrapper over one coordinator operation:
// read the configuration, connect, perform, print the result as JSON
package main
