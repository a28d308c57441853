// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package forwarder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
	"github.com/bitmark-inc/countingd/forwarder"
)

func TestComputeHalf(t *testing.T) {
	f := forwarder.New(false)
	funds := f.Compute(coin.Coins{coin.New(100, "atom")}, decimal.Percent(50))
	assert.Equal(t, "50atom", funds.String(), "half of 100atom")
}

func TestComputeTruncates(t *testing.T) {
	f := forwarder.New(false)
	balance := coin.Coins{coin.New(15, "atom"), coin.New(1, "btcx"), coin.New(999, "uluna")}
	part, _ := decimal.FromString("0.1")

	funds := f.Compute(balance, part)
	assert.Equal(t, "1atom,0btcx,99uluna", funds.String(), "truncated amounts with zero kept")
	assert.Equal(t, 3, len(funds), "zero coin must be kept")
}

func TestComputeSuppressZero(t *testing.T) {
	f := forwarder.New(true)
	assert.True(t, f.SuppressZero(), "suppress flag")

	balance := coin.Coins{coin.New(15, "atom"), coin.New(1, "btcx")}
	funds := f.Compute(balance, decimal.Percent(10))
	assert.Equal(t, "1atom", funds.String(), "zero coin must be dropped")

	funds = f.Compute(coin.Coins{coin.New(1, "btcx")}, decimal.Percent(10))
	assert.Equal(t, 0, len(funds), "nothing left")
}

func TestComputeEmptyBalance(t *testing.T) {
	f := forwarder.New(false)
	funds := f.Compute(coin.Coins{}, decimal.One())
	assert.Equal(t, 0, len(funds), "no denominations invented")
}

func TestCountdown(t *testing.T) {
	remaining := uint64(3)
	forwards := 0
	for i := 0; i < 3; i += 1 {
		next, due := forwarder.Countdown(remaining, 3)
		assert.NotEqual(t, uint64(0), next, "countdown stored as zero")
		if due {
			forwards += 1
			assert.Equal(t, 2, i, "forward on the third donation")
		}
		remaining = next
	}
	assert.Equal(t, 1, forwards, "forwards in one period")
	assert.Equal(t, uint64(3), remaining, "countdown restarted")

	next, due := forwarder.Countdown(1, 1)
	assert.True(t, due, "period of one")
	assert.Equal(t, uint64(1), next, "period of one restarts")
}
