// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"
	"strings"

	"github.com/pokemart-inc/pokemartd/fault"
)

// Address - a ledger account in 0x-hex form
//
// comparison is case insensitive as the ledger accepts mixed case
type Address string

// ZeroAddress - the mint origin
const ZeroAddress = Address("0x0000000000000000000000000000000000000000")

// Equal - case insensitive address comparison
func (a Address) Equal(b Address) bool {
	return strings.EqualFold(string(a), string(b))
}

// IsZero - check for the zero address or an unset value
func (a Address) IsZero() bool {
	return "" == a || a.Equal(ZeroAddress)
}

// Validate - check the 0x-hex form
func (a Address) Validate() error {
	s := string(a)
	if len(s) != 42 || !strings.HasPrefix(s, "0x") {
		return fault.ErrInvalidAddress
	}
	if _, err := hex.DecodeString(s[2:]); nil != err {
		return fault.ErrInvalidAddress
	}
	return nil
}

// DigestLength - number of bytes in a commitment digest
const DigestLength = 32

// Digest - a 256 bit commitment digest
type Digest [DigestLength]byte

// IsZero - an all-zero digest marks the absence of a commitment
func (d Digest) IsZero() bool {
	for _, b := range d {
		if 0 != b {
			return false
		}
	}
	return true
}

// String - hex string for logging and display
func (d Digest) String() string {
	return "0x" + hex.EncodeToString(d[:])
}

// MarshalText - hex text for the wire
func (d Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, 2+hex.EncodedLen(DigestLength))
	buffer[0] = '0'
	buffer[1] = 'x'
	hex.Encode(buffer[2:], d[:])
	return buffer, nil
}

// UnmarshalText - hex text from the wire
func (d *Digest) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(string(s), "0x")
	if len(text) != hex.EncodedLen(DigestLength) {
		return fault.ErrInvalidDigest
	}
	buffer := make([]byte, DigestLength)
	if _, err := hex.Decode(buffer, []byte(text)); nil != err {
		return fault.InvalidError(err.Error())
	}
	copy(d[:], buffer)
	return nil
}

// ListingType - marketplace state of one token
//
// a token holds exactly one of these at any instant; fixed listing and
// auction are mutually exclusive
type ListingType int

// listing type values as stored by the ledger
const (
	ListingNone ListingType = iota
	ListingFixed
	ListingAuction
)

// String - listing type represented as a string
func (l ListingType) String() string {
	switch l {
	case ListingNone:
		return "none"
	case ListingFixed:
		return "fixed"
	case ListingAuction:
		return "auction"
	default:
		return "*unknown*"
	}
}

// Token - one collectible as recorded by the ledger
//
// ids are allocated monotonically from 1 and never reused; the owner
// changes only on a ledger-confirmed transfer or sale
type Token struct {
	Id      uint64  `json:"id"`
	Owner   Address `json:"owner"`
	Name    string  `json:"name"`
	Species string  `json:"species"`
	Level   uint64  `json:"level"`
}

// FixedListing - a token offered at a seller-set price
//
// the price is immutable while active; active becomes false on buy or
// delist
type FixedListing struct {
	TokenId uint64  `json:"tokenId"`
	Seller  Address `json:"seller"`
	Price   uint64  `json:"price"`
	Active  bool    `json:"active"`
}

// Auction - a token offered via time-boxed competitive bidding
//
// highest bid and bidder advance only by strictly increasing accepted
// bids; ended is monotone false→true and absorbing
type Auction struct {
	TokenId       uint64  `json:"tokenId"`
	Seller        Address `json:"seller"`
	StartPrice    uint64  `json:"startPrice"`
	HighestBid    uint64  `json:"highestBid"` // zero when no bid yet
	HighestBidder Address `json:"highestBidder"`
	EndTime       int64   `json:"endTime"` // unix seconds
	Ended         bool    `json:"ended"`
}

// TransferEvent - one entry of the append-only ownership log
//
// a mint appears with the zero address as origin
type TransferEvent struct {
	From    Address `json:"from"`
	To      Address `json:"to"`
	TokenId uint64  `json:"tokenId"`
}

// IsMint - true for a mint entry
func (e TransferEvent) IsMint() bool {
	return e.From.IsZero()
}
