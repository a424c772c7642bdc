// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/history"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/storage"
)

// poll period for newly recorded transfers while following
const followInterval = time.Second

func runHistory(c *cli.Context) error {

	m := mustMetadata(c)
	if err := m.connect(); nil != err {
		return err
	}

	if err := storage.Initialise(m.config.Database.Name); nil != err {
		return err
	}
	defer storage.Finalise()

	tokenId := uint64(0) // zero shows every token
	if tokenArg := c.String("tokenId"); "" != tokenArg {
		id, err := checkTokenId(tokenArg)
		if nil != err {
			return err
		}
		tokenId = id
	}

	// follow keeps the live feed subscription running after the replay
	subscribe := ""
	if c.Bool("follow") {
		subscribe = m.config.Subscribe
		if "" == subscribe {
			return fmt.Errorf("configuration is missing: subscribe")
		}
	}

	if err := history.Initialise(m.client, subscribe); nil != err {
		return err
	}
	defer func() { _ = history.Finalise() }()

	events := []ledger.TransferEvent(nil)
	err := error(nil)
	if 0 != tokenId {
		events, err = history.EventsForToken(tokenId)
	} else {
		events, err = history.Events()
	}
	if nil != err {
		return err
	}

	if err := printJson(m.w, events); nil != err {
		return err
	}

	if "" == subscribe {
		return nil
	}
	return followEvents(m, tokenId)
}

// print newly recorded transfers as they arrive until interrupted
func followEvents(m *metadata, tokenId uint64) error {

	printed := history.Count()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

loop:
	for {
		select {
		case <-ch:
			break loop

		case <-time.After(followInterval):
			count := history.Count()
			if count == printed {
				continue loop
			}
			events, err := history.Events()
			if nil != err {
				return err
			}
			for _, event := range events[printed:] {
				if 0 != tokenId && tokenId != event.TokenId {
					continue
				}
				if err := printJson(m.w, event); nil != err {
					return err
				}
			}
			printed = count
		}
	}
	return nil
}
