// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package response - the result of a call
//
// attributes acknowledge what happened; messages are follow-up
// actions that the environment performs after the call succeeds
package response

import (
	"encoding/json"

	"github.com/bitmark-inc/countingd/coin"
)

// Attribute - key/value acknowledgement
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// BankSend - transfer funds from the calling instance
type BankSend struct {
	ToAddress string     `json:"to_address"`
	Amount    coin.Coins `json:"amount"`
}

// WasmExecute - invoke another instance, attaching funds
type WasmExecute struct {
	ContractAddr string          `json:"contract_addr"`
	Msg          json.RawMessage `json:"msg"`
	Funds        coin.Coins      `json:"funds"`
}

// Message - exactly one field is set
type Message struct {
	Bank *BankSend    `json:"bank,omitempty"`
	Wasm *WasmExecute `json:"wasm,omitempty"`
}

// Response - ordered attributes and messages
type Response struct {
	Messages   []Message   `json:"messages"`
	Attributes []Attribute `json:"attributes"`
}

// New - empty response
func New() *Response {
	return &Response{
		Messages:   []Message{},
		Attributes: []Attribute{},
	}
}

// AddAttribute - append an attribute
func (r *Response) AddAttribute(key string, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddMessage - append a follow-up message
func (r *Response) AddMessage(m Message) *Response {
	r.Messages = append(r.Messages, m)
	return r
}

// Attribute - first value for a key
func (r *Response) Attribute(key string) (string, bool) {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}
