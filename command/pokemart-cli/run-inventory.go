// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/inventory"
	"github.com/pokemart-inc/pokemartd/ledger"
)

func runInventory(c *cli.Context) error {

	m := mustMetadata(c)
	if err := m.connect(); nil != err {
		return err
	}

	scanner := inventory.NewScanner(m.client)

	items := []inventory.Item(nil)
	err := error(nil)

	if owner := c.String("owner"); "" != owner {
		address := ledger.Address(owner)
		if err := address.Validate(); nil != err {
			return err
		}
		items, err = scanner.Owned(address)
	} else {
		items, err = scanner.Scan()
	}
	if nil != err {
		return err
	}

	return printJson(m.w, items)
}
