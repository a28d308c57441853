// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/countingd/coin"
)

// fetch a required string flag
func checkRequired(c *cli.Context, name string) (string, error) {
	value := c.String(name)
	if "" == value {
		return "", fmt.Errorf("missing --%s", name)
	}
	return value, nil
}

// optional coins flag, blank is no coins
func checkCoins(c *cli.Context, name string) (coin.Coins, error) {
	coins, err := coin.ParseCoins(c.String(name))
	if nil != err {
		return nil, fmt.Errorf("--%s: %s", name, err)
	}
	return coins, nil
}

// the message must at least be valid JSON, the contract does the rest
func checkMessage(c *cli.Context, name string) ([]byte, error) {
	message, err := checkRequired(c, name)
	if nil != err {
		return nil, err
	}
	if !json.Valid([]byte(message)) {
		return nil, fmt.Errorf("--%s: not valid JSON: %q", name, message)
	}
	return []byte(message), nil
}

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}
