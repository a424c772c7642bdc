// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"testing"

	"github.com/pokemart-inc/pokemartd/fault"
	"github.com/pokemart-inc/pokemartd/ledger"
)

func TestAddress(t *testing.T) {

	a := ledger.Address("0xAbCd000000000000000000000000000000000001")
	b := ledger.Address("0xabcd000000000000000000000000000000000001")

	if !a.Equal(b) {
		t.Errorf("address comparison must be case insensitive")
	}
	if a.IsZero() {
		t.Errorf("non-zero address detected as zero")
	}
	if !ledger.ZeroAddress.IsZero() {
		t.Errorf("zero address not detected")
	}
	if nil != a.Validate() {
		t.Errorf("valid address rejected: %s", a)
	}

	badAddresses := []ledger.Address{
		"",
		"0x",
		"abcd000000000000000000000000000000000001",   // no prefix
		"0xabcd0000000000000000000000000000000001",   // too short
		"0xzzcd000000000000000000000000000000000001", // not hex
	}
	for i, bad := range badAddresses {
		if nil == bad.Validate() {
			t.Errorf("%d: invalid address accepted: %q", i, bad)
		}
	}
}

func TestDigestText(t *testing.T) {

	var d ledger.Digest
	for i := 0; i < ledger.DigestLength; i += 1 {
		d[i] = byte(i)
	}

	text, err := d.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var back ledger.Digest
	if err := back.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if !bytes.Equal(d[:], back[:]) {
		t.Errorf("expected: %s  actual: %s", d, back)
	}

	err = back.UnmarshalText([]byte("0xabcd"))
	if fault.ErrInvalidDigest != err {
		t.Errorf("short digest: expected: %q  actual: %v", fault.ErrInvalidDigest, err)
	}

	bad := bytes.Replace(text, []byte("0x00"), []byte("0xzz"), 1)
	if nil == back.UnmarshalText(bad) {
		t.Errorf("non-hex digest accepted: %q", bad)
	}
}

func TestListingTypeString(t *testing.T) {
	testData := []struct {
		lt ledger.ListingType
		s  string
	}{
		{ledger.ListingNone, "none"},
		{ledger.ListingFixed, "fixed"},
		{ledger.ListingAuction, "auction"},
		{ledger.ListingType(9), "*unknown*"},
	}
	for i, item := range testData {
		if item.s != item.lt.String() {
			t.Errorf("%d: expected: %q  actual: %q", i, item.s, item.lt.String())
		}
	}
}

func TestTransferEventIsMint(t *testing.T) {
	mint := ledger.TransferEvent{
		From:    ledger.ZeroAddress,
		To:      "0xabcd000000000000000000000000000000000001",
		TokenId: 1,
	}
	if !mint.IsMint() {
		t.Errorf("zero origin transfer must classify as mint")
	}

	move := ledger.TransferEvent{
		From:    "0xabcd000000000000000000000000000000000001",
		To:      "0xabcd000000000000000000000000000000000002",
		TokenId: 1,
	}
	if move.IsMint() {
		t.Errorf("ordinary transfer must not classify as mint")
	}
}
