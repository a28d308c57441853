// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"

	"github.com/urfave/cli"
)

type record struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}

	info, err := m.chain.ContractInfo(contract)
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runDump(c *cli.Context) error {

	m := getMetadata(c)

	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}

	elements, err := m.chain.Dump(contract)
	if nil != err {
		return err
	}

	records := make([]record, len(elements))
	for i, e := range elements {
		value := json.RawMessage(e.Value)
		if !json.Valid(e.Value) {
			value, _ = json.Marshal(hex.EncodeToString(e.Value)) // cannot fail
		}
		records[i] = record{
			Key:   string(e.Key),
			Value: value,
		}
	}

	return printJson(m.w, records)
}

func runConfigTest(c *cli.Context) error {

	m := getMetadata(c)

	return printJson(m.w, m.config)
}
