// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bank - native coin balances
package bank

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/environment"
	"github.com/bitmark-inc/countingd/storage"
)

// Bank - balances keyed by address
//
// the value is the JSON of the normalised coin list; an empty
// balance is not stored
type Bank struct {
	log   *logger.L
	store storage.Store
}

// New - balances held in the given store
func New(log *logger.L, store storage.Store) *Bank {
	return &Bank{
		log:   log,
		store: store,
	}
}

// Balance - all coins held by an address
func (b *Bank) Balance(address string) (coin.Coins, error) {
	balance := coin.Coins{}
	_, err := storage.NewItem(address).May(b.store, &balance)
	if nil != err {
		return nil, err
	}
	return balance, nil
}

// AllBalances - environment.Querier
func (b *Bank) AllBalances(address string) (coin.Coins, error) {
	return b.Balance(address)
}

// Mint - create coins out of nothing
func (b *Bank) Mint(address string, amount coin.Coins) error {
	if err := environment.ValidateAddress(address); nil != err {
		return err
	}

	balance, err := b.Balance(address)
	if nil != err {
		return err
	}

	b.log.Infof("mint: %s  to: %s", amount, address)
	return b.put(address, balance.AddCoins(amount))
}

// Send - move coins between addresses
func (b *Bank) Send(from string, to string, amount coin.Coins) error {
	if err := environment.ValidateAddress(to); nil != err {
		return err
	}
	if amount.IsZero() {
		return nil
	}

	source, err := b.Balance(from)
	if nil != err {
		return err
	}
	remaining, err := source.Sub(amount)
	if nil != err {
		b.log.Warnf("send: %s  from: %s  balance: %s", amount, from, source)
		return err
	}
	if err := b.put(from, remaining); nil != err {
		return err
	}

	destination, err := b.Balance(to)
	if nil != err {
		return err
	}

	b.log.Debugf("send: %s  from: %s  to: %s", amount, from, to)
	return b.put(to, destination.AddCoins(amount))
}

func (b *Bank) put(address string, balance coin.Coins) error {
	item := storage.NewItem(address)
	balance = balance.Normalise()
	if 0 == len(balance) {
		item.Remove(b.store)
		return nil
	}
	return item.Save(b.store, balance)
}

// ensure the interface is satisfied
var _ environment.Querier = (*Bank)(nil)
