// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/countingd/coin"
)

type balanceReply struct {
	Address string     `json:"address"`
	Balance coin.Coins `json:"balance"`
}

func runDeposit(c *cli.Context) error {

	m := getMetadata(c)

	address, err := checkRequired(c, "address")
	if nil != err {
		return err
	}
	amount, err := checkCoins(c, "amount")
	if nil != err {
		return err
	}
	if amount.IsZero() {
		return fmt.Errorf("--amount: nothing to deposit")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "address: %s\n", address)
		fmt.Fprintf(m.e, "amount: %s\n", amount)
	}

	err = m.chain.Mint(address, amount)
	if nil != err {
		return err
	}

	return printBalance(m, address)
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	address, err := checkRequired(c, "address")
	if nil != err {
		return err
	}

	return printBalance(m, address)
}

func printBalance(m *metadata, address string) error {
	balance, err := m.chain.Balance(address)
	if nil != err {
		return err
	}
	return printJson(m.w, balanceReply{
		Address: address,
		Balance: balance,
	})
}
