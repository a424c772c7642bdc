// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/auction"
	"github.com/pokemart-inc/pokemartd/gate"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/market"
	"github.com/pokemart-inc/pokemartd/mint"
)

// shared state assembled by the app Before hook
type metadata struct {
	file    string
	config  *Configuration
	verbose bool
	e       io.Writer
	w       io.Writer

	client *ledger.Client
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// connect to the configured ledger endpoint
func (m *metadata) connect() error {
	if nil != m.client {
		return nil
	}
	client, err := ledger.NewClient(m.config.Connect, ledger.Address(m.config.Identity))
	if nil != err {
		return err
	}
	m.client = client
	return nil
}

func (m *metadata) close() {
	if nil != m.client {
		m.client.Close()
		m.client = nil
	}
}

// bring up the coordinators needed by the user operations
//
// the auction sweep is disabled for one-shot commands, closes are
// driven by the explicit end-auction command or a running daemon
func (m *metadata) initialise() error {
	if err := m.connect(); nil != err {
		return err
	}

	identity := ledger.Address(m.config.Identity)

	if err := gate.Initialise(m.client); nil != err {
		return err
	}
	if err := mint.Initialise(m.client, identity); nil != err {
		return err
	}
	if err := market.Initialise(m.client, identity); nil != err {
		return err
	}
	if err := auction.Initialise(m.client, identity, -1); nil != err {
		return err
	}
	return nil
}

func (m *metadata) finalise() {
	_ = auction.Finalise()
	_ = market.Finalise()
	_ = mint.Finalise()
	_ = gate.Finalise()
	m.close()
}

// checkTokenId - a token id argument must be a positive integer
func checkTokenId(s string) (uint64, error) {
	tokenId, err := strconv.ParseUint(s, 10, 64)
	if nil != err || 0 == tokenId {
		return 0, fmt.Errorf("tokenId: %q is not a positive integer", s)
	}
	return tokenId, nil
}

// checkLevel - a level argument must be a non-negative integer
func checkLevel(s string) (uint64, error) {
	level, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("level: %q is not a non-negative integer", s)
	}
	return level, nil
}

// checkDuration - seconds, must be positive
func checkDuration(s string) (int64, error) {
	duration, err := strconv.ParseInt(s, 10, 64)
	if nil != err || duration <= 0 {
		return 0, fmt.Errorf("duration: %q is not a positive number of seconds", s)
	}
	return duration, nil
}

func mustMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}
