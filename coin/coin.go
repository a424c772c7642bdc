// SPDX-License-Identifier: ISC
// Copyright (c) 2025-2026 Pokemart Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coin - conversion between the ledger's smallest unit and the
// human decimal coin unit
//
// the ledger accounts for all prices and bids in whole numbers of its
// smallest unit; one coin is 10^8 units; conversion to and from the
// decimal form happens only at the presentation boundary
package coin

import (
	"strings"

	"github.com/pokemart-inc/pokemartd/fault"
)

// exported constants
const (
	DecimalPlaces = 8
	UnitsPerCoin  = uint64(100000000)
)

// FromDecimalString - convert a decimal coin string to smallest units
//
// i.e. "0.00000001" will convert to uint64(1)
//
// rejects empty strings, multiple decimal points, non-digits and more
// than 8 decimal places
func FromDecimalString(s string) (uint64, error) {

	s = strings.TrimSpace(s)
	if "" == s {
		return 0, fault.ErrInvalidCoinAmount
	}

	u := uint64(0)
	point := false
	decimals := 0
	digits := 0

	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			u = u*10 + uint64(c-'0')
			digits += 1
			if point {
				decimals += 1
				if decimals > DecimalPlaces {
					return 0, fault.ErrInvalidCoinAmount
				}
			}
		case '.' == c:
			if point {
				return 0, fault.ErrInvalidCoinAmount
			}
			point = true
		default:
			return 0, fault.ErrInvalidCoinAmount
		}
	}
	if 0 == digits {
		return 0, fault.ErrInvalidCoinAmount
	}

	for decimals < DecimalPlaces {
		u *= 10
		decimals += 1
	}

	return u, nil
}

// ToDecimalString - render smallest units as a decimal coin string
//
// trailing zeros after the decimal point are removed,
// i.e. uint64(102000000) renders as "1.02"
func ToDecimalString(u uint64) string {

	whole := u / UnitsPerCoin
	frac := u % UnitsPerCoin

	buffer := make([]byte, 0, 24)
	buffer = appendUint(buffer, whole)

	if 0 != frac {
		buffer = append(buffer, '.')
		divisor := UnitsPerCoin / 10
		for 0 != frac {
			d := frac / divisor
			buffer = append(buffer, byte('0'+d))
			frac -= d * divisor
			divisor /= 10
		}
	}
	return string(buffer)
}

func appendUint(buffer []byte, u uint64) []byte {
	if 0 == u {
		return append(buffer, '0')
	}
	digits := make([]byte, 0, 20)
	for 0 != u {
		digits = append(digits, byte('0'+u%10))
		u /= 10
	}
	for i := len(digits) - 1; i >= 0; i -= 1 {
		buffer = append(buffer, digits[i])
	}
	return buffer
}
