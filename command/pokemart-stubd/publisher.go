// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/pokemart-inc/pokemartd/ledger"
)

const (
	// feed topic carrying transfer confirmations
	transferTopic = "transfer"

	// events queued while the broadcaster catches up; the notifier
	// runs with the pokedex lock held so it must never block
	publishQueueSize = 100
)

type publisher struct {
	log    *logger.L
	socket *zmq.Socket
	queue  chan ledger.TransferEvent
}

// initialise the publisher and bind its feed
func (pub *publisher) initialise(publish string) error {

	log := logger.New("publisher")
	pub.log = log

	log.Info("initialising…")

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		return err
	}
	socket.SetLinger(0)

	err = socket.Bind(publish)
	if nil != err {
		socket.Close()
		return err
	}

	pub.socket = socket
	pub.queue = make(chan ledger.TransferEvent, publishQueueSize)
	log.Infof("feed bound to: %q", publish)

	return nil
}

// notify - queue one event for broadcast, dropping when the queue is full
func (pub *publisher) notify(event ledger.TransferEvent) {
	select {
	case pub.queue <- event:
	default:
		pub.log.Errorf("queue full, dropping event for token: %d", event.TokenId)
	}
}

// publisher main loop
func (pub *publisher) Run(args interface{}, shutdown <-chan struct{}) {

	log := pub.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case event := <-pub.queue:
			data, err := json.Marshal(event)
			if nil != err {
				log.Errorf("encode error: %s", err)
				continue loop
			}
			_, err = pub.socket.SendMessage(transferTopic, data)
			if nil != err {
				log.Errorf("send error: %s", err)
				continue loop
			}
			log.Infof("published transfer token: %d  from: %s  to: %s", event.TokenId, event.From, event.To)
		}
	}

	log.Info("shutting down…")
	pub.socket.Close()
	log.Info("stopped")
}
