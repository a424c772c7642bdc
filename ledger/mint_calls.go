// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// MintCommitsArguments - commitment lookup request
type MintCommitsArguments struct {
	Address Address `json:"address"`
}

// MintCommitsReply - stored commitment digest, zero when none
type MintCommitsReply struct {
	Hash Digest `json:"hash"`
}

// CommitMintArguments - store a commitment digest
type CommitMintArguments struct {
	Caller Address `json:"caller"`
	Hash   Digest  `json:"hash"`
}

// RevealArguments - plaintext mint parameters
//
// the ledger recomputes the digest from exactly these fields and
// compares against the stored commitment
type RevealArguments struct {
	Caller  Address `json:"caller"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Level   uint64  `json:"level"`
	Secret  string  `json:"secret"`
}

// MintPokemonArguments - privileged direct mint
type MintPokemonArguments struct {
	Caller  Address `json:"caller"`
	To      Address `json:"to"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Level   uint64  `json:"level"`
}

// MintReply - confirmation including the resulting transfer events
type MintReply struct {
	Events []TransferEvent `json:"events"`
}

// MintCommits - stored commitment digest for an account, zero when none
func (c *Client) MintCommits(addr Address) (Digest, error) {
	var reply MintCommitsReply
	arguments := MintCommitsArguments{Address: addr}
	if err := c.call("Pokemon.MintCommits", &arguments, &reply); nil != err {
		return Digest{}, err
	}
	return reply.Hash, nil
}

// CommitMint - store a commitment digest for the caller
func (c *Client) CommitMint(digest Digest) error {
	arguments := CommitMintArguments{
		Caller: c.identity,
		Hash:   digest,
	}
	return c.call("Pokemon.CommitMint", &arguments, &struct{}{})
}

// RevealAndMint - reveal mint parameters, mint on digest match
func (c *Client) RevealAndMint(name string, species string, level uint64, secret string) ([]TransferEvent, error) {
	var reply MintReply
	arguments := RevealArguments{
		Caller:  c.identity,
		Name:    name,
		Species: species,
		Level:   level,
		Secret:  secret,
	}
	if err := c.call("Pokemon.RevealAndMint", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Events, nil
}

// CancelCommit - discard the caller's pending commitment
func (c *Client) CancelCommit() error {
	arguments := CallerArguments{Caller: c.identity}
	return c.call("Pokemon.CancelCommit", &arguments, &struct{}{})
}

// MintPokemon - privileged direct mint, ledger owner only
func (c *Client) MintPokemon(to Address, name string, species string, level uint64) ([]TransferEvent, error) {
	var reply MintReply
	arguments := MintPokemonArguments{
		Caller:  c.identity,
		To:      to,
		Name:    name,
		Species: species,
		Level:   level,
	}
	if err := c.call("Pokemon.MintPokemon", &arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Events, nil
}
