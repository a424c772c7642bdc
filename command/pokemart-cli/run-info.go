// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/ledger"
)

type infoReply struct {
	Connect     string         `json:"connect"`
	Identity    ledger.Address `json:"identity"`
	TotalSupply uint64         `json:"totalSupply"`
	Paused      bool           `json:"paused"`
	Owner       ledger.Address `json:"owner"`
	Marketplace ledger.Address `json:"marketplace"`
}

func runInfo(c *cli.Context) error {

	m := mustMetadata(c)
	if err := m.connect(); nil != err {
		return err
	}

	total, err := m.client.TotalSupply()
	if nil != err {
		return err
	}
	paused, err := m.client.IsPaused()
	if nil != err {
		return err
	}
	owner, err := m.client.Owner()
	if nil != err {
		return err
	}
	marketplace, err := m.client.Marketplace()
	if nil != err {
		return err
	}

	return printJson(m.w, infoReply{
		Connect:     m.config.Connect,
		Identity:    ledger.Address(m.config.Identity),
		TotalSupply: total,
		Paused:      paused,
		Owner:       owner,
		Marketplace: marketplace,
	})
}
