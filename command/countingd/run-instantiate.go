// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/countingd/response"
)

type instantiateReply struct {
	ContractAddress string             `json:"contract_address"`
	CodeID          uint64             `json:"code_id"`
	Response        *response.Response `json:"response"`
}

func runInstantiate(c *cli.Context) error {

	m := getMetadata(c)

	sender, err := checkRequired(c, "sender")
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
	label := c.String("label")
	admin := c.String("admin")

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender)
		fmt.Fprintf(m.e, "message: %s\n", message)
		fmt.Fprintf(m.e, "funds: %s\n", funds)
		fmt.Fprintf(m.e, "label: %q\n", label)
		fmt.Fprintf(m.e, "admin: %s\n", admin)
	}

	address, resp, err := m.chain.Instantiate(m.codeID, sender, message, funds, label, admin)
	if nil != err {
		return err
	}

	return printJson(m.w, instantiateReply{
		ContractAddress: address,
		CodeID:          m.codeID,
		Response:        resp,
	})
}
