// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "pokemart-cli"
	app.Usage = "command-line client for a Pokemon ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "show collection status",
			Action: runInfo,
		},
		{
			Name:  "inventory",
			Usage: "show every token in the collection",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " restrict to tokens held by `ADDRESS`",
				},
			},
			Action: runInventory,
		},
		{
			Name:      "commit",
			Usage:     "commit to a future mint without revealing it",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*pokemon `NAME`",
				},
				cli.StringFlag{
					Name:  "species, s",
					Value: "",
					Usage: "*pokemon `SPECIES`",
				},
				cli.StringFlag{
					Name:  "level, l",
					Value: "0",
					Usage: " pokemon `LEVEL`",
				},
				cli.StringFlag{
					Name:  "secret, x",
					Value: "",
					Usage: "*commitment `SECRET`",
				},
			},
			Action: runCommit,
		},
		{
			Name:      "reveal",
			Usage:     "reveal a commitment and mint the token",
			ArgsUsage: "\n   (* = required, values must match the commit)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*pokemon `NAME`",
				},
				cli.StringFlag{
					Name:  "species, s",
					Value: "",
					Usage: "*pokemon `SPECIES`",
				},
				cli.StringFlag{
					Name:  "level, l",
					Value: "0",
					Usage: " pokemon `LEVEL`",
				},
				cli.StringFlag{
					Name:  "secret, x",
					Value: "",
					Usage: "*commitment `SECRET`",
				},
			},
			Action: runReveal,
		},
		{
			Name:   "cancel",
			Usage:  "withdraw the pending commitment",
			Action: runCancel,
		},
		{
			Name:      "mint",
			Usage:     "mint directly to an address, collection owner only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*pokemon `NAME`",
				},
				cli.StringFlag{
					Name:  "species, s",
					Value: "",
					Usage: "*pokemon `SPECIES`",
				},
				cli.StringFlag{
					Name:  "level, l",
					Value: "0",
					Usage: " pokemon `LEVEL`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an owned token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "list",
			Usage:     "offer an owned token at a fixed price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*asking `PRICE` in coins, e.g. 1.25",
				},
			},
			Action: runList,
		},
		{
			Name:      "buy",
			Usage:     "buy a listed token at its asking price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*expected `PRICE` in coins",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "delist",
			Usage:     "withdraw a fixed-price listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runDelist,
		},
		{
			Name:   "listings",
			Usage:  "show every active fixed-price listing",
			Action: runListings,
		},
		{
			Name:   "auctions",
			Usage:  "show every auction",
			Action: runAuctions,
		},
		{
			Name:      "create-auction",
			Usage:     "open a timed auction on an owned token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "price, p",
					Value: "",
					Usage: "*starting `PRICE` in coins",
				},
				cli.StringFlag{
					Name:  "duration, d",
					Value: "",
					Usage: "*auction `SECONDS`",
				},
			},
			Action: runCreateAuction,
		},
		{
			Name:      "bid",
			Usage:     "bid on an open auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
				cli.StringFlag{
					Name:  "amount, a",
					Value: "",
					Usage: "*bid `AMOUNT` in coins",
				},
			},
			Action: runBid,
		},
		{
			Name:      "end-auction",
			Usage:     "close an expired auction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: "*token `ID`",
				},
			},
			Action: runEndAuction,
		},
		{
			Name:  "history",
			Usage: "show the locally replayed transfer history",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tokenId, t",
					Value: "",
					Usage: " restrict to one token `ID`",
				},
				cli.BoolFlag{
					Name:  "follow, f",
					Usage: " keep following the live transfer feed",
				},
			},
			Action: runHistory,
		},
		{
			Name:   "pause",
			Usage:  "pause the ledger, collection owner only",
			Action: runPause,
		},
		{
			Name:   "unpause",
			Usage:  "unpause the ledger, collection owner only",
			Action: runUnpause,
		},
	}

	app.Before = func(c *cli.Context) error {

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("configuration file is required, use: --config-file FILE")
		}

		config, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}

		app.Metadata = map[string]interface{}{
			"config": &metadata{
				file:    file,
				config:  config,
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if m, ok := app.Metadata["config"].(*metadata); ok {
			m.close()
		}
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
