// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the donation counter state machine
//
// every handler loads the state from the store it is given, applies
// one transition and saves the result; nothing is cached between calls
package ledger

import (
	"math"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/environment"
	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/forwarder"
	"github.com/bitmark-inc/countingd/message"
	"github.com/bitmark-inc/countingd/response"
	"github.com/bitmark-inc/countingd/schema"
	"github.com/bitmark-inc/countingd/storage"
)

// Ledger - donation handlers
type Ledger struct {
	log       *logger.L
	forwarder *forwarder.Forwarder
}

// New - create the handlers
func New(log *logger.L, f *forwarder.Forwarder) *Ledger {
	return &Ledger{
		log:       log,
		forwarder: f,
	}
}

// Instantiate - create the state with the caller as owner
func (l *Ledger) Instantiate(store storage.Store, info environment.Info, msg message.InstantiateMsg) (*response.Response, error) {
	if nil == msg.MinimalDonation {
		return nil, fault.ErrInvalidMessage
	}
	if err := coin.ValidateDenom(msg.MinimalDonation.Denom); nil != err {
		return nil, err
	}

	state := schema.State{
		Counter:         msg.Counter,
		MinimalDonation: *msg.MinimalDonation,
		Owner:           info.Sender,
		DonatingParent:  nil,
	}

	if nil != msg.Parent {
		parent := msg.Parent
		if err := environment.ValidateAddress(parent.Addr); nil != err {
			return nil, err
		}
		if 0 == parent.DonatingPeriod {
			return nil, fault.ErrInvalidDonatingPeriod
		}
		if !parent.Part.IsFraction() {
			return nil, fault.ErrInvalidPart
		}

		period := parent.DonatingPeriod
		state.DonatingParent = &period

		err := schema.SaveParentDonation(store, schema.ParentDonation{
			Address:              parent.Addr,
			DonatingParentPeriod: parent.DonatingPeriod,
			Part:                 parent.Part,
		})
		if nil != err {
			return nil, err
		}
		l.log.Infof("parent: %s  period: %d  part: %s", parent.Addr, parent.DonatingPeriod, parent.Part)
	}

	if err := schema.SaveState(store, state); nil != err {
		return nil, err
	}
	l.log.Infof("instantiated by: %s  counter: %d  minimal donation: %s", info.Sender, state.Counter, state.MinimalDonation)

	return response.New().
		AddAttribute("action", "instantiate").
		AddAttribute("sender", info.Sender), nil
}

// Donate - count the call if the attached funds meet the threshold
//
// a call below the threshold succeeds without changing anything
func (l *Ledger) Donate(store storage.Store, env environment.Env, info environment.Info) (*response.Response, error) {
	state, err := schema.LoadState(store)
	if nil != err {
		return nil, err
	}

	resp := response.New()

	if Accepts(state.MinimalDonation, info.Funds) {
		if math.MaxUint64 == state.Counter {
			l.log.Warnf("counter overflow from: %s", info.Sender)
			return nil, fault.ErrValueOverflow
		}
		state.Counter += 1

		if nil != state.DonatingParent {
			parent, err := schema.LoadParentDonation(store)
			if nil != err {
				return nil, err
			}

			next, due := forwarder.Countdown(*state.DonatingParent, parent.DonatingParentPeriod)
			state.DonatingParent = &next

			if due {
				m, err := l.forward(env, parent)
				if nil != err {
					return nil, err
				}
				if nil != m {
					resp.AddMessage(*m).
						AddAttribute("donated_to_parent", parent.Address)
				}
			}
		}

		if err := schema.SaveState(store, state); nil != err {
			return nil, err
		}
		l.log.Debugf("donation from: %s  counter: %d", info.Sender, state.Counter)
	} else {
		l.log.Debugf("below threshold from: %s  funds: %s", info.Sender, info.Funds)
	}

	resp.AddAttribute("action", "donate").
		AddAttribute("sender", info.Sender).
		AddAttribute("counter", strconv.FormatUint(state.Counter, 10))
	return resp, nil
}

// build the parent invocation from the current balance
//
// returns nil if zero coins are suppressed and nothing remains
func (l *Ledger) forward(env environment.Env, parent schema.ParentDonation) (*response.Message, error) {
	balance, err := env.Querier.AllBalances(env.ContractAddress)
	if nil != err {
		return nil, err
	}

	funds := l.forwarder.Compute(balance, parent.Part)
	l.log.Infof("forward to parent: %s  funds: %s", parent.Address, funds)

	if 0 == len(funds) && l.forwarder.SuppressZero() {
		return nil, nil
	}

	return &response.Message{
		Wasm: &response.WasmExecute{
			ContractAddr: parent.Address,
			Msg:          message.EncodeDonate(),
			Funds:        funds,
		},
	}, nil
}

// Reset - owner only; the counter always returns to zero
func (l *Ledger) Reset(store storage.Store, info environment.Info) (*response.Response, error) {
	state, err := schema.LoadState(store)
	if nil != err {
		return nil, err
	}

	if state.Owner != info.Sender {
		l.log.Warnf("reset refused for: %s", info.Sender)
		return nil, fault.UnauthorizedError{Owner: state.Owner}
	}

	state.Counter = 0
	if err := schema.SaveState(store, state); nil != err {
		return nil, err
	}
	l.log.Info("counter reset")

	return response.New().
		AddAttribute("action", "reset").
		AddAttribute("sender", info.Sender), nil
}

// Withdraw - owner only; send the whole balance to the owner
func (l *Ledger) Withdraw(store storage.Store, env environment.Env, info environment.Info) (*response.Response, error) {
	state, err := schema.LoadState(store)
	if nil != err {
		return nil, err
	}

	if state.Owner != info.Sender {
		l.log.Warnf("withdraw refused for: %s", info.Sender)
		return nil, fault.UnauthorizedError{Owner: state.Owner}
	}

	funds, err := env.Querier.AllBalances(env.ContractAddress)
	if nil != err {
		return nil, err
	}
	l.log.Infof("withdraw: %s to: %s", funds, state.Owner)

	return response.New().
		AddMessage(response.Message{
			Bank: &response.BankSend{
				ToAddress: state.Owner,
				Amount:    funds,
			},
		}).
		AddAttribute("action", "withdraw").
		AddAttribute("sender", info.Sender), nil
}

// Value - the current counter
func (l *Ledger) Value(store storage.Store) (message.ValueResponse, error) {
	state, err := schema.LoadState(store)
	if nil != err {
		return message.ValueResponse{}, err
	}
	return message.ValueResponse{Value: state.Counter}, nil
}

// ValueIncremented - stateless echo of value + 1
func ValueIncremented(value uint64) (message.ValueResponse, error) {
	if math.MaxUint64 == value {
		return message.ValueResponse{}, fault.ErrValueOverflow
	}
	return message.ValueResponse{Value: value + 1}, nil
}

// Accepts - true if the threshold is zero or a coin of its
// denomination is at least the threshold amount
func Accepts(threshold coin.Coin, funds coin.Coins) bool {
	if threshold.Amount.IsZero() {
		return true
	}
	for _, c := range funds {
		if c.Denom == threshold.Denom && c.Amount.Cmp(threshold.Amount) >= 0 {
			return true
		}
	}
	return false
}
