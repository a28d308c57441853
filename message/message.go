// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - JSON request and reply shapes
//
// variants are externally tagged with snake_case names, e.g.
//
//   {"donate":{}}
//   {"reset":{"counter":5}}
//   {"value_incremented":{"value":3}}
package message

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
	"github.com/bitmark-inc/countingd/fault"
)

// Parent - optional upstream beneficiary given at instantiation
type Parent struct {
	Addr           string          `json:"addr"`
	DonatingPeriod uint64          `json:"donating_period"`
	Part           decimal.Decimal `json:"part"`
}

// InstantiateMsg - create a new instance
type InstantiateMsg struct {
	Counter         uint64     `json:"counter"`
	MinimalDonation *coin.Coin `json:"minimal_donation"`
	Parent          *Parent    `json:"parent,omitempty"`
}

// ExecMsg - exactly one field is set
type ExecMsg struct {
	Donate   *Donate   `json:"donate,omitempty"`
	Reset    *Reset    `json:"reset,omitempty"`
	Withdraw *Withdraw `json:"withdraw,omitempty"`
}

// Donate - count a donation
type Donate struct{}

// Reset - set the counter to zero
//
// Counter is accepted for compatibility and ignored
type Reset struct {
	Counter uint64 `json:"counter"`
}

// Withdraw - send the whole balance to the owner
type Withdraw struct{}

// QueryMsg - exactly one field is set
type QueryMsg struct {
	Value            *Value            `json:"value,omitempty"`
	ValueIncremented *ValueIncremented `json:"value_incremented,omitempty"`
}

// Value - read the counter
type Value struct{}

// ValueIncremented - stateless echo of value + 1
type ValueIncremented struct {
	Value uint64 `json:"value"`
}

// ValueResponse - reply to both queries
type ValueResponse struct {
	Value uint64 `json:"value"`
}

// MigrateMsg - no payload
type MigrateMsg struct{}

// DecodeInstantiate - strict decode of an instantiate request
func DecodeInstantiate(raw []byte) (InstantiateMsg, error) {
	var msg InstantiateMsg
	if err := decode(raw, &msg); nil != err {
		return msg, err
	}
	if nil == msg.MinimalDonation {
		return msg, fmt.Errorf("%w: missing field: minimal_donation", fault.ErrInvalidMessage)
	}
	return msg, nil
}

// DecodeExec - strict decode of an execute request
func DecodeExec(raw []byte) (ExecMsg, error) {
	var msg ExecMsg
	if err := decode(raw, &msg); nil != err {
		return msg, err
	}
	if 1 != count(msg.Donate != nil, msg.Reset != nil, msg.Withdraw != nil) {
		return msg, fmt.Errorf("%w: expected exactly one of: donate, reset, withdraw", fault.ErrInvalidMessage)
	}
	return msg, nil
}

// DecodeQuery - strict decode of a query request
func DecodeQuery(raw []byte) (QueryMsg, error) {
	var msg QueryMsg
	if err := decode(raw, &msg); nil != err {
		return msg, err
	}
	if 1 != count(msg.Value != nil, msg.ValueIncremented != nil) {
		return msg, fmt.Errorf("%w: expected exactly one of: value, value_incremented", fault.ErrInvalidMessage)
	}
	return msg, nil
}

// DecodeMigrate - an empty payload is the same as {}
func DecodeMigrate(raw []byte) (MigrateMsg, error) {
	var msg MigrateMsg
	if 0 == len(bytes.TrimSpace(raw)) {
		return msg, nil
	}
	return msg, decode(raw, &msg)
}

// EncodeDonate - the request sent to a parent instance
func EncodeDonate() []byte {
	buffer, _ := json.Marshal(ExecMsg{Donate: &Donate{}}) // cannot fail
	return buffer
}

func decode(raw []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); nil != err {
		return fmt.Errorf("%w: %s", fault.ErrInvalidMessage, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", fault.ErrInvalidMessage)
	}
	return nil
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n += 1
		}
	}
	return n
}
