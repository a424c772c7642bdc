// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/pokemart-inc/pokemartd/ledger"
)

// the digest must be a pure function of all four fields
func TestCommitmentDigest(t *testing.T) {

	d1 := ledger.CommitmentDigest("Charmander", "Fire", 8, "ash")
	d2 := ledger.CommitmentDigest("Charmander", "Fire", 8, "ash")

	if d1 != d2 {
		t.Fatalf("digest is not deterministic: %s != %s", d1, d2)
	}
	if d1.IsZero() {
		t.Fatalf("digest must not be zero")
	}

	// changing any one field must change the digest
	variants := []ledger.Digest{
		ledger.CommitmentDigest("Squirtle", "Fire", 8, "ash"),
		ledger.CommitmentDigest("Charmander", "Water", 8, "ash"),
		ledger.CommitmentDigest("Charmander", "Fire", 9, "ash"),
		ledger.CommitmentDigest("Charmander", "Fire", 8, "misty"),
	}
	for i, d := range variants {
		if d1 == d {
			t.Errorf("%d: variant digest collides with original", i)
		}
	}
}

// field boundaries must be covered by the fixed-width level encoding,
// not by delimiters, exactly as the ledger packs them
func TestCommitmentDigestPacking(t *testing.T) {

	// name/species boundary shifts must not collide because the level
	// block separates species from secret, but name and species are
	// packed back to back so a shifted split is the same preimage
	a := ledger.CommitmentDigest("ab", "c", 1, "s")
	b := ledger.CommitmentDigest("a", "bc", 1, "s")
	if a != b {
		t.Fatalf("packed encoding must concatenate name and species without a delimiter")
	}

	// level occupies a full 256 bit block
	c := ledger.CommitmentDigest("a", "bc", 1, "s")
	d := ledger.CommitmentDigest("a", "bc", 256, "s")
	if c == d {
		t.Fatalf("level must contribute to the digest")
	}
}

func TestDigestMarshalling(t *testing.T) {

	d1 := ledger.CommitmentDigest("Pikachu", "Electric", 5, "oak")

	text, err := d1.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %v", err)
	}

	var d2 ledger.Digest
	if err := d2.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %v", err)
	}
	if d1 != d2 {
		t.Fatalf("digest round trip failed: %s != %s", d1, d2)
	}

	var zero ledger.Digest
	if !zero.IsZero() {
		t.Fatalf("zero digest not detected")
	}
}
