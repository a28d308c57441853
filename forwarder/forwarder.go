// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package forwarder - periodic forwarding of a part of the balance to a parent
package forwarder

import (
	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
)

// Forwarder - computes forwarded funds
type Forwarder struct {
	suppressZero bool
}

// New - create a forwarder
//
// if suppressZero is set coins that truncate to zero are dropped,
// otherwise they are sent as they are
func New(suppressZero bool) *Forwarder {
	return &Forwarder{
		suppressZero: suppressZero,
	}
}

// SuppressZero - true if zero coins are dropped
func (f *Forwarder) SuppressZero() bool {
	return f.suppressZero
}

// Compute - part of every held coin, truncated to whole units
//
// the order of the balance is kept and only held denominations appear;
// the truncated remainder stays in the balance
func (f *Forwarder) Compute(balance coin.Coins, part decimal.Decimal) coin.Coins {
	funds := make(coin.Coins, 0, len(balance))
	for _, c := range balance {
		amount := part.MulFloor(c.Amount)
		if f.suppressZero && amount.IsZero() {
			continue
		}
		funds = append(funds, coin.Coin{
			Denom:  c.Denom,
			Amount: amount,
		})
	}
	return funds
}

// Countdown - one accepted donation against the remaining count
//
// returns the next value to store and whether a forward is due;
// zero is never returned, on reaching it the period restarts
func Countdown(remaining uint64, period uint64) (uint64, bool) {
	if remaining > 1 {
		return remaining - 1, false
	}
	return period, true
}
