// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// CommitmentDigest - the canonical hiding digest of mint parameters
//
// legacy Keccak-256 over the packed encoding the ledger verifies:
// name and species as raw bytes, level as a 256 bit big endian
// integer, secret as raw bytes, in exactly this order; reveal fails at
// the ledger unless its recomputation matches bit for bit
func CommitmentDigest(name string, species string, level uint64, secret string) Digest {

	// level packed as uint256 big endian
	var packedLevel [32]byte
	binary.BigEndian.PutUint64(packedLevel[24:], level)

	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	h.Write([]byte(species))
	h.Write(packedLevel[:])
	h.Write([]byte(secret))

	var digest Digest
	copy(digest[:], h.Sum(nil))
	return digest
}
