// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package history

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/pokemart-inc/pokemartd/ledger"
	"github.com/pokemart-inc/pokemartd/zmqutil"
)

const (
	subscriberSignal = "inproc://history-subscriber-signal"

	// feed topic carrying transfer confirmations
	transferTopic = "transfer"
)

type subscriber struct {
	log    *logger.L
	push   *zmq.Socket
	pull   *zmq.Socket
	client *zmq.Socket
}

// initialise the subscriber
func (sbsc *subscriber) initialise(subscribe string) error {

	log := logger.New("history-subscriber")
	sbsc.log = log

	log.Info("initialising…")

	// signalling channel
	err := error(nil)
	sbsc.push, sbsc.pull, err = zmqutil.NewSignalPair(subscriberSignal)
	if nil != err {
		return err
	}

	client, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		sbsc.push.Close()
		sbsc.pull.Close()
		return err
	}

	err = client.Connect(subscribe)
	if nil != err {
		client.Close()
		sbsc.push.Close()
		sbsc.pull.Close()
		return err
	}
	client.SetSubscribe(transferTopic)

	sbsc.client = client
	log.Infof("subscription to: %q", subscribe)

	return nil
}

// subscriber main loop
func (sbsc *subscriber) Run(args interface{}, shutdown <-chan struct{}) {

	log := sbsc.log

	log.Info("starting…")

	go func() {

		poller := zmq.NewPoller()
		poller.Add(sbsc.client, zmq.POLLIN)
		poller.Add(sbsc.pull, zmq.POLLIN)

	loop:
		for {
			log.Debug("waiting…")

			polled, _ := poller.Poll(-1)

			for _, p := range polled {
				switch s := p.Socket; s {
				case sbsc.pull:
					_, err := s.RecvMessageBytes(0)
					if nil != err {
						log.Errorf("pull receive error: %v", err)
					}
					break loop

				default:
					data, err := s.RecvMessageBytes(0)
					if nil != err {
						log.Errorf("receive error: %v", err)
					} else {
						sbsc.process(data)
					}
				}
			}
		}
		log.Info("shutting down…")
		sbsc.pull.Close()
		sbsc.client.Close()

		log.Info("stopped")
	}()

	// wait for termination
	<-shutdown

	log.Info("initiate shutdown")
	sbsc.push.SendMessage("stop")
	sbsc.push.Close()
	log.Info("finished")
}

// process one received subscription message
func (sbsc *subscriber) process(data [][]byte) {

	log := sbsc.log

	if 2 != len(data) {
		log.Errorf("invalid message: %v", data)
		return
	}

	switch topic := string(data[0]); topic {
	case transferTopic:
		var event ledger.TransferEvent
		if err := json.Unmarshal(data[1], &event); nil != err {
			log.Errorf("decode error: %s  data: %q", err, data[1])
			return
		}
		log.Infof("transfer token: %d  from: %s  to: %s", event.TokenId, event.From, event.To)
		appendEvent(event)

	default:
		log.Errorf("invalid topic: %q", topic)
	}
}
