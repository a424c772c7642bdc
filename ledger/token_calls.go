// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// wire structures for the Pokemon service
//
// these are the ledger's contract and must not be reordered or renamed

// TotalSupplyReply - count of minted tokens
type TotalSupplyReply struct {
	Count uint64 `json:"count"`
}

// TokenByIndexArguments - enumeration request
type TokenByIndexArguments struct {
	Index uint64 `json:"index"`
}

// TokenByIndexReply - token id at an enumeration index
type TokenByIndexReply struct {
	TokenId uint64 `json:"tokenId"`
}

// TokenArguments - single token request
type TokenArguments struct {
	TokenId uint64 `json:"tokenId"`
}

// OwnerOfReply - current owner of a token
type OwnerOfReply struct {
	Owner Address `json:"owner"`
}

// DetailsReply - the token descriptor fields
type DetailsReply struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Level   uint64 `json:"level"`
}

// PausedReply - the global pause flag
type PausedReply struct {
	Paused bool `json:"paused"`
}

// AddressReply - an account address
type AddressReply struct {
	Address Address `json:"address"`
}

// CallerArguments - a mutation carrying only the caller
type CallerArguments struct {
	Caller Address `json:"caller"`
}

// TransferArguments - ownership transfer request
type TransferArguments struct {
	Caller  Address `json:"caller"`
	To      Address `json:"to"`
	TokenId uint64  `json:"tokenId"`
}

// TransferLogReply - the replayable ownership log
type TransferLogReply struct {
	Events []TransferEvent `json:"events"`
}

// ApprovalForAllArguments - collection-wide authorization query
type ApprovalForAllArguments struct {
	Owner    Address `json:"owner"`
	Operator Address `json:"operator"`
}

// ApprovedReply - authorization state
type ApprovedReply struct {
	Approved bool `json:"approved"`
}

// SetApprovalForAllArguments - collection-wide authorization grant
type SetApprovalForAllArguments struct {
	Caller   Address `json:"caller"`
	Operator Address `json:"operator"`
	Approved bool    `json:"approved"`
}

// ApproveArguments - single token authorization grant
type ApproveArguments struct {
	Caller   Address `json:"caller"`
	Operator Address `json:"operator"`
	TokenId  uint64  `json:"tokenId"`
}

// TotalSupply - count of minted tokens
func (c *Client) TotalSupply() (uint64, error) {
	var reply TotalSupplyReply
	if err := c.call("Pokemon.TotalSupply", struct{}{}, &reply); nil != err {
		return 0, err
	}
	return reply.Count, nil
}

// TokenByIndex - token id at an enumeration index
func (c *Client) TokenByIndex(index uint64) (uint64, error) {
	var reply TokenByIndexReply
	arguments := TokenByIndexArguments{Index: index}
	if err := c.call("Pokemon.TokenByIndex", &arguments, &reply); nil != err {
		return 0, err
	}
	return reply.TokenId, nil
}

// OwnerOf - current owner of a token
func (c *Client) OwnerOf(tokenId uint64) (Address, error) {
	var reply OwnerOfReply
	arguments := TokenArguments{TokenId: tokenId}
	if err := c.call("Pokemon.OwnerOf", &arguments, &reply); nil != err {
		return "", err
	}
	return reply.Owner, nil
}

// PokemonDetails - name, species and level of a token
func (c *Client) PokemonDetails(tokenId uint64) (string, string, uint64, error) {
	var reply DetailsReply
	arguments := TokenArguments{TokenId: tokenId}
	if err := c.call("Pokemon.Details", &arguments, &reply); nil != err {
		return "", "", 0, err
	}
	return reply.Name, reply.Species, reply.Level, nil
}

// IsPaused - the global pause flag
func (c *Client) IsPaused() (bool, error) {
	var reply PausedReply
	if err := c.call("Pokemon.Paused", struct{}{}, &reply); nil != err {
		return false, err
	}
	return reply.Paused, nil
}

// Owner - the ledger's administrative identity
func (c *Client) Owner() (Address, error) {
	var reply AddressReply
	if err := c.call("Pokemon.Owner", struct{}{}, &reply); nil != err {
		return "", err
	}
	return reply.Address, nil
}

// Marketplace - the operator account to authorize for sales
func (c *Client) Marketplace() (Address, error) {
	var reply AddressReply
	if err := c.call("Market.Address", struct{}{}, &reply); nil != err {
		return "", err
	}
	return reply.Address, nil
}

// Pause - set the global pause flag, owner only
func (c *Client) Pause() error {
	arguments := CallerArguments{Caller: c.identity}
	return c.call("Pokemon.Pause", &arguments, &struct{}{})
}

// Unpause - clear the global pause flag, owner only
func (c *Client) Unpause() error {
	arguments := CallerArguments{Caller: c.identity}
	return c.call("Pokemon.Unpause", &arguments, &struct{}{})
}

// Transfer - move a token to another account
func (c *Client) Transfer(to Address, tokenId uint64) error {
	arguments := TransferArguments{
		Caller:  c.identity,
		To:      to,
		TokenId: tokenId,
	}
	return c.call("Pokemon.Transfer", &arguments, &struct{}{})
}

// TransferLog - full replay of the ownership log
func (c *Client) TransferLog() ([]TransferEvent, error) {
	var reply TransferLogReply
	if err := c.call("Pokemon.TransferLog", struct{}{}, &reply); nil != err {
		return nil, err
	}
	return reply.Events, nil
}

// IsApprovedForAll - collection-wide spending authorization state
func (c *Client) IsApprovedForAll(owner Address, operator Address) (bool, error) {
	var reply ApprovedReply
	arguments := ApprovalForAllArguments{Owner: owner, Operator: operator}
	if err := c.call("Pokemon.IsApprovedForAll", &arguments, &reply); nil != err {
		return false, err
	}
	return reply.Approved, nil
}

// SetApprovalForAll - grant or revoke collection-wide authorization
func (c *Client) SetApprovalForAll(operator Address, approved bool) error {
	arguments := SetApprovalForAllArguments{
		Caller:   c.identity,
		Operator: operator,
		Approved: approved,
	}
	return c.call("Pokemon.SetApprovalForAll", &arguments, &struct{}{})
}

// Approve - grant single token authorization
func (c *Client) Approve(operator Address, tokenId uint64) error {
	arguments := ApproveArguments{
		Caller:   c.identity,
		Operator: operator,
		TokenId:  tokenId,
	}
	return c.call("Pokemon.Approve", &arguments, &struct{}{})
}
