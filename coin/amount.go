// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/bitmark-inc/countingd/fault"
)

// Amount - unsigned arbitrary precision integer
//
// the zero value is zero; values are never modified in place
type Amount struct {
	v *big.Int
}

// NewAmount - amount from a uint64
func NewAmount(n uint64) Amount {
	return Amount{v: new(big.Int).SetUint64(n)}
}

// AmountFromBig - amount from a big integer, which must not be negative
func AmountFromBig(n *big.Int) (Amount, error) {
	if nil == n {
		return Amount{}, nil
	}
	if n.Sign() < 0 {
		return Amount{}, fault.ErrInvalidAmount
	}
	return Amount{v: new(big.Int).Set(n)}, nil
}

// ParseAmount - decimal digits only
func ParseAmount(s string) (Amount, error) {
	if "" == s || strings.TrimLeft(s, "0123456789") != "" {
		return Amount{}, fault.ErrInvalidAmount
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fault.ErrInvalidAmount
	}
	return Amount{v: n}, nil
}

// Big - a copy of the value
func (a Amount) Big() *big.Int {
	if nil == a.v {
		return new(big.Int)
	}
	return new(big.Int).Set(a.v)
}

// IsZero - true for zero
func (a Amount) IsZero() bool {
	return nil == a.v || 0 == a.v.Sign()
}

// Cmp - -1, 0, +1 as for big.Int
func (a Amount) Cmp(b Amount) int {
	return a.Big().Cmp(b.Big())
}

// Add - sum of two amounts
func (a Amount) Add(b Amount) Amount {
	return Amount{v: new(big.Int).Add(a.Big(), b.Big())}
}

// Sub - difference, fails if b > a
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.Cmp(b) < 0 {
		return Amount{}, fault.ErrInsufficientFunds
	}
	return Amount{v: new(big.Int).Sub(a.Big(), b.Big())}, nil
}

func (a Amount) String() string {
	return a.Big().String()
}

// MarshalJSON - amounts are quoted decimal strings
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON - accept the quoted form and also a bare number
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(data) > 0 && '"' == data[0] {
		if err := json.Unmarshal(data, &s); nil != err {
			return err
		}
	}
	n, err := ParseAmount(s)
	if nil != err {
		return err
	}
	*a = n
	return nil
}
