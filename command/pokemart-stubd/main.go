// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/listener"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/pokemart-inc/pokemartd/background"
	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/stubledger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type serverChannel struct {
	// initial values
	limit               int
	addresses           []string
	certificateFileName string
	keyFileName         string
	callback            listener.Callback
	argument            interface{}

	// filled in later
	tlsConfiguration *tls.Config
	limiter          *listener.Limiter
	listener         *listener.MultiListener
}

// to check if PID file was created
var lockWasCreated = false

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "pokemart-stubd"
	app.Usage = "in-memory Pokemon ledger for development and testing"
	app.Version = version
	app.HideVersion = true

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "gen-cert",
			Usage:     "create a self-signed certificate and private key",
			ArgsUsage: "[host…]",
			Action:    runGenerateCertificate,
		},
		{
			Name:   "start",
			Usage:  "run the ledger",
			Action: runServer,
		},
		{
			Name:  "version",
			Usage: "display pokemart-stubd version",
			Action: func(c *cli.Context) error {
				fmt.Println(version)
				return nil
			},
		},
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func runGenerateCertificate(c *cli.Context) error {

	config, err := getConfiguration(c.GlobalString("config-file"))
	if nil != err {
		return err
	}

	err = makeSelfSignedCertificate("rpc", config.ClientRPC.Certificate, config.ClientRPC.PrivateKey, 0 != len(c.Args()), c.Args())
	if nil != err {
		return err
	}

	fmt.Printf("certificate: %s\n", config.ClientRPC.Certificate)
	fmt.Printf("private key: %s\n", config.ClientRPC.PrivateKey)
	return nil
}

func runServer(c *cli.Context) error {

	config, err := getConfiguration(c.GlobalString("config-file"))
	if nil != err {
		return err
	}

	// start logging
	if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
		return err
	}
	if err := logger.Initialise(config.Logging); nil != err {
		return err
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")

	// grab lock file or fail
	if "" != config.PidFile {
		lf, err := os.OpenFile(config.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				return fmt.Errorf("another instance is already running: %s", config.PidFile)
			}
			return err
		}
		fmt.Fprintf(lf, "%d\n", os.Getpid())
		lf.Close()
		lockWasCreated = true
		defer removeAppLock(config.PidFile)
	}

	// the whole ledger state
	pokedex := stubledger.New(ledger.Address(config.Owner), ledger.Address(config.Marketplace))
	log.Infof("owner: %s", config.Owner)
	log.Infof("marketplace: %s", config.Marketplace)

	// transfer event feed
	processes := background.Processes{}
	if "" != config.Publish {
		pub := &publisher{}
		if err := pub.initialise(config.Publish); nil != err {
			log.Criticalf("publisher error: %s", err)
			return err
		}
		pokedex.SetNotifier(pub.notify)
		processes = append(processes, pub)
	}
	if 0 != len(processes) {
		started := background.Start(processes, nil)
		defer started.Stop()
	}

	server := &serverChannel{
		limit:               config.ClientRPC.MaximumConnections,
		addresses:           config.ClientRPC.Listen,
		certificateFileName: config.ClientRPC.Certificate,
		keyFileName:         config.ClientRPC.PrivateKey,
		callback:            rpcCallback,
		argument:            pokedex,
	}

	if !verifyListen(log, "rpc", server) {
		log.Critical("invalid rpc parameters")
		return fmt.Errorf("invalid rpc parameters")
	}
	if 0 == server.limit {
		log.Critical("rpc listening is disabled")
		return fmt.Errorf("rpc listening is disabled")
	}

	ml, err := listener.NewMultiListener("rpc", server.addresses, server.tlsConfiguration, server.limiter, server.callback)
	if nil != err {
		log.Criticalf("invalid rpc listen addresses: %v", server.addresses)
		return err
	}
	server.listener = ml

	log.Infof("starting server: rpc on: %v", server.addresses)
	server.listener.Start(server.argument)
	defer server.listener.Stop()

	// wait for CTRL-C before shutting down to allow manual testing
	fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	fmt.Printf("\nreceived signal: %v\n", sig)
	fmt.Printf("\nshutting down...\n")

	return nil
}

// remove the lock file - only if this instance created it
func removeAppLock(appLockFile string) {
	if lockWasCreated {
		os.Remove(appLockFile)
		lockWasCreated = false
	}
}
