// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/pokemart-inc/pokemartd/fault"
)

// Client - JSON-RPC connection to the ledger authority
//
// every mutating call below returns only after the remote side has
// confirmed or rejected; the caller identity is fixed at connect time
// and injected into each request
type Client struct {
	conn     net.Conn
	client   *rpc.Client
	identity Address
}

// NewClient - create a TLS JSON-RPC connection to the ledger
func NewClient(connect string, identity Address) (*Client, error) {

	if err := identity.Validate(); nil != err {
		return nil, err
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, fault.TransportError(err.Error())
	}

	r := &Client{
		conn:     conn,
		client:   jsonrpc.NewClient(conn),
		identity: identity,
	}
	return r, nil
}

// newClientCodec - attach a client to an already established stream
//
// used by the stub daemon tests to run the full wire protocol over an
// in-process pipe
func NewClientConn(conn net.Conn, identity Address) *Client {
	return &Client{
		conn:     conn,
		client:   jsonrpc.NewClient(conn),
		identity: identity,
	}
}

// Identity - the account this connection signs as
func (c *Client) Identity() Address {
	return c.identity
}

// Close - shutdown the ledger connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// call - one RPC round trip with error classification
//
// a remote rejection arrives as rpc.ServerError and is opaque and final;
// anything else is a transport failure
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if nil == c.client {
		return fault.ErrNotConnected
	}
	err := c.client.Call(method, arguments, reply)
	if nil == err {
		return nil
	}
	if _, ok := err.(rpc.ServerError); ok {
		return fault.RejectedError(err.Error())
	}
	return fault.TransportError(err.Error())
}
