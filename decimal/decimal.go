// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package decimal - fixed point fractions with 18 decimal places
//
// the text form is "<integer>[.<fraction>]" e.g. "0.5" and is used
// for JSON so values survive storage without loss
package decimal

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/fault"
)

// Places - number of decimal places held
const Places = 18

var scale = new(big.Int).Exp(big.NewInt(10), big.NewInt(Places), nil)

// Decimal - value is atomics / 10^18
type Decimal struct {
	atomics *big.Int
}

// Zero - 0
func Zero() Decimal {
	return Decimal{atomics: new(big.Int)}
}

// One - 1
func One() Decimal {
	return Decimal{atomics: new(big.Int).Set(scale)}
}

// Percent - n / 100
func Percent(n uint64) Decimal {
	a := new(big.Int).SetUint64(n)
	a.Mul(a, scale)
	return Decimal{atomics: a.Quo(a, big.NewInt(100))}
}

// FromString - convert the text form to a Decimal
//
// i.e. "0.5" will convert to 500000000000000000 atomics
//
// Note: unlike a currency conversion, extra decimal places are an
//       error rather than silently discarded.
func FromString(s string) (Decimal, error) {
	if "" == s {
		return Decimal{}, fault.ErrInvalidDecimal
	}

	whole := s
	fraction := ""
	if n := strings.IndexByte(s, '.'); n >= 0 {
		whole = s[:n]
		fraction = s[n+1:]
		if "" == fraction {
			return Decimal{}, fault.ErrInvalidDecimal
		}
	}
	if "" == whole || len(fraction) > Places {
		return Decimal{}, fault.ErrInvalidDecimal
	}

	digits := whole + fraction + strings.Repeat("0", Places-len(fraction))
	for _, b := range digits {
		if b < '0' || b > '9' {
			return Decimal{}, fault.ErrInvalidDecimal
		}
	}

	a, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fault.ErrInvalidDecimal
	}
	return Decimal{atomics: a}, nil
}

func (d Decimal) value() *big.Int {
	if nil == d.atomics {
		return new(big.Int)
	}
	return d.atomics
}

// IsZero - true for zero
func (d Decimal) IsZero() bool {
	return 0 == d.value().Sign()
}

// IsFraction - 0 <= d <= 1
func (d Decimal) IsFraction() bool {
	return d.value().Cmp(scale) <= 0
}

// Cmp - -1, 0, +1 as for big.Int
func (d Decimal) Cmp(other Decimal) int {
	return d.value().Cmp(other.value())
}

// MulFloor - amount × d, truncating any fractional part
func (d Decimal) MulFloor(amount coin.Amount) coin.Amount {
	n := amount.Big()
	n.Mul(n, d.value())
	n.Quo(n, scale)
	result, _ := coin.AmountFromBig(n) // cannot be negative
	return result
}

// String - shortest text form
func (d Decimal) String() string {
	q, r := new(big.Int).QuoRem(d.value(), scale, new(big.Int))
	if 0 == r.Sign() {
		return q.String()
	}
	fraction := r.String()
	fraction = strings.Repeat("0", Places-len(fraction)) + fraction
	return q.String() + "." + strings.TrimRight(fraction, "0")
}

// MarshalJSON - quoted text form
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON - quoted text form
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := ""
	if err := json.Unmarshal(data, &s); nil != err {
		return fault.ErrInvalidDecimal
	}
	v, err := FromString(s)
	if nil != err {
		return err
	}
	*d = v
	return nil
}
