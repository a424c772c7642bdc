// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/gate"
)

func runPause(c *cli.Context) error {

	m := mustMetadata(c)

	if err := m.connect(); nil != err {
		return err
	}
	if err := gate.Initialise(m.client); nil != err {
		return err
	}
	defer func() { _ = gate.Finalise() }()

	if err := gate.Pause(); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"paused": true,
	})
}

func runUnpause(c *cli.Context) error {

	m := mustMetadata(c)

	if err := m.connect(); nil != err {
		return err
	}
	if err := gate.Initialise(m.client); nil != err {
		return err
	}
	defer func() { _ = gate.Finalise() }()

	if err := gate.Unpause(); nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"paused": false,
	})
}
