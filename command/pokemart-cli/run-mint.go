// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/mint"
)

func runCommit(c *cli.Context) error {

	m := mustMetadata(c)

	level, err := checkLevel(c.String("level"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if m.verbose {
		fmt.Fprintf(m.e, "name: %s\n", c.String("name"))
		fmt.Fprintf(m.e, "species: %s\n", c.String("species"))
		fmt.Fprintf(m.e, "level: %d\n", level)
	}

	err = mint.Commit(c.String("name"), c.String("species"), level, c.String("secret"))
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"committed": true,
	})
}

func runReveal(c *cli.Context) error {

	m := mustMetadata(c)

	level, err := checkLevel(c.String("level"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	tokenId, err := mint.Reveal(c.String("name"), c.String("species"), level, c.String("secret"))
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
	})
}

func runCancel(c *cli.Context) error {

	m := mustMetadata(c)

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	if err := mint.Cancel(); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"cancelled": true,
	})
}

func runMint(c *cli.Context) error {

	m := mustMetadata(c)

	receiver := ledger.Address(c.String("receiver"))
	if err := receiver.Validate(); nil != err {
		return err
	}
	level, err := checkLevel(c.String("level"))
	if nil != err {
		return err
	}

	if err := m.initialise(); nil != err {
		return err
	}
	defer m.finalise()

	tokenId, err := mint.MintDirect(receiver, c.String("name"), c.String("species"), level)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"tokenId": tokenId,
		"owner":   receiver,
	})
}
