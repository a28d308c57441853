// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - the four entry points of the counting program
//
// each entry point decodes its JSON payload and hands the typed
// message to the ledger or the migration engine; the caller owns the
// transaction around the store
package contract

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/environment"
	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/forwarder"
	"github.com/bitmark-inc/countingd/ledger"
	"github.com/bitmark-inc/countingd/message"
	"github.com/bitmark-inc/countingd/migration"
	"github.com/bitmark-inc/countingd/response"
	"github.com/bitmark-inc/countingd/storage"
	"github.com/bitmark-inc/countingd/version"
)

// Contract - a loaded program
type Contract struct {
	log    *logger.L
	ledger *ledger.Ledger
	engine *migration.Engine
}

// New - load the program
func New(suppressZero bool) *Contract {
	return &Contract{
		log:    logger.New("contract"),
		ledger: ledger.New(logger.New("ledger"), forwarder.New(suppressZero)),
		engine: migration.New(logger.New("migrate")),
	}
}

// Instantiate - create the state and tag it with the current version
func (c *Contract) Instantiate(store storage.Store, env environment.Env, info environment.Info, raw []byte) (*response.Response, error) {
	found, err := version.Exists(store)
	if nil != err {
		return nil, err
	}
	if found {
		return nil, fault.ErrAlreadyInitialised
	}

	msg, err := message.DecodeInstantiate(raw)
	if nil != err {
		return nil, err
	}

	resp, err := c.ledger.Instantiate(store, info, msg)
	if nil != err {
		return nil, err
	}

	err = version.Set(store, version.Name, version.Version)
	if nil != err {
		return nil, err
	}
	c.log.Infof("instantiated: %s  version: %s", env.ContractAddress, version.Version)
	return resp, nil
}

// Execute - donate, reset or withdraw
func (c *Contract) Execute(store storage.Store, env environment.Env, info environment.Info, raw []byte) (*response.Response, error) {
	msg, err := message.DecodeExec(raw)
	if nil != err {
		return nil, err
	}

	switch {
	case nil != msg.Donate:
		return c.ledger.Donate(store, env, info)
	case nil != msg.Reset:
		return c.ledger.Reset(store, info)
	case nil != msg.Withdraw:
		return c.ledger.Withdraw(store, env, info)
	default:
		return nil, fault.ErrInvalidMessage
	}
}

// Query - read only; the reply is JSON
func (c *Contract) Query(store storage.Store, env environment.Env, raw []byte) ([]byte, error) {
	msg, err := message.DecodeQuery(raw)
	if nil != err {
		return nil, err
	}

	var reply message.ValueResponse
	switch {
	case nil != msg.Value:
		reply, err = c.ledger.Value(store)
	case nil != msg.ValueIncremented:
		reply, err = ledger.ValueIncremented(msg.ValueIncremented.Value)
	default:
		err = fault.ErrInvalidMessage
	}
	if nil != err {
		return nil, err
	}
	return json.Marshal(reply)
}

// Migrate - bring the stored layout up to the current version
func (c *Contract) Migrate(store storage.Store, env environment.Env, raw []byte) (*response.Response, error) {
	if _, err := message.DecodeMigrate(raw); nil != err {
		return nil, err
	}

	outcome, err := c.engine.Migrate(store)
	if nil != err {
		c.log.Warnf("migrate: %s  error: %s", env.ContractAddress, err)
		return nil, err
	}

	return response.New().
		AddAttribute("action", "migrate").
		AddAttribute("from_version", outcome.From).
		AddAttribute("to_version", outcome.To), nil
}
