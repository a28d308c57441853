// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
	"github.com/bitmark-inc/countingd/environment"
	"github.com/bitmark-inc/countingd/forwarder"
	"github.com/bitmark-inc/countingd/ledger"
	"github.com/bitmark-inc/countingd/message"
	"github.com/bitmark-inc/countingd/schema"
	"github.com/bitmark-inc/countingd/storage"
)

const (
	logDirectory = "testing"
	category     = "testing"

	owner    = "owner"
	stranger = "stranger"
	parent   = "parent-contract"
	self     = "contract"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

type fixture struct {
	db     *storage.Database
	store  *storage.PoolHandle
	ledger *ledger.Ledger
}

func setup(t *testing.T, suppressZero bool) *fixture {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	if err := db.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return &fixture{
		db:     db,
		store:  db.Pool.State.Scope([]byte(self)),
		ledger: ledger.New(logger.New(category), forwarder.New(suppressZero)),
	}
}

func (f *fixture) teardown() {
	f.db.Abort()
	_ = f.db.Close()
}

func (f *fixture) instantiate(t *testing.T, threshold coin.Coin, p *message.Parent) {
	msg := message.InstantiateMsg{
		MinimalDonation: &threshold,
		Parent:          p,
	}
	_, err := f.ledger.Instantiate(f.store, environment.Info{Sender: owner}, msg)
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}
}

func (f *fixture) state(t *testing.T) schema.State {
	s, err := schema.LoadState(f.store)
	if nil != err {
		t.Fatalf("load state error: %s", err)
	}
	return s
}

func half(t *testing.T) decimal.Decimal {
	d, err := decimal.FromString("0.5")
	if nil != err {
		t.Fatalf("decimal error: %s", err)
	}
	return d
}

func coins(t *testing.T, s string) coin.Coins {
	cs, err := coin.ParseCoins(s)
	if nil != err {
		t.Fatalf("coins error: %s", err)
	}
	return cs
}
