// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"
)

func runExecute(c *cli.Context) error {

	m := getMetadata(c)

	sender, err := checkRequired(c, "sender")
	if nil != err {
		return err
	}
	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	message, err := checkMessage(c, "message")
	if nil != err {
		return err
	}
	funds, err := checkCoins(c, "funds")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "contract: %s\n", contract)
		fmt.Fprintf(m.e, "message: %s\n", message)
		fmt.Fprintf(m.e, "funds: %s\n", funds)
	}

	resp, err := m.chain.Execute(sender, contract, message, funds)
	if nil != err {
		return err
	}

	return printJson(m.w, resp)
}

func runQuery(c *cli.Context) error {

	m := getMetadata(c)

	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	message, err := checkMessage(c, "message")
	if nil != err {
		return err
	}

	reply, err := m.chain.Query(contract, message)
	if nil != err {
		return err
	}

	return printJson(m.w, json.RawMessage(reply))
}

func runMigrate(c *cli.Context) error {

	m := getMetadata(c)

	sender, err := checkRequired(c, "sender")
	if nil != err {
		return err
	}
	contract, err := checkRequired(c, "contract")
	if nil != err {
		return err
	}
	message, err := checkMessage(c, "message")
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "contract: %s\n", contract)
		fmt.Fprintf(m.e, "code id: %d\n", m.codeID)
	}

	resp, err := m.chain.Migrate(sender, contract, m.codeID, message)
	if nil != err {
		return err
	}

	return printJson(m.w, resp)
}
