// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "deposit",
			Usage:     "create coins for an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "amount, m",
					Value: "",
					Usage: "*coins to create `COINS` e.g. 100atom,5uluna",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "balance",
			Usage:     "display the coins held by an address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*account or contract `ADDRESS`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "instantiate",
			Usage:     "create a new counting contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*creator and owner `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*instantiate message `JSON`",
				},
				cli.StringFlag{
					Name:  "funds, f",
					Value: "",
					Usage: " attached `COINS`",
				},
				cli.StringFlag{
					Name:  "label, l",
					Value: "",
					Usage: " contract `LABEL`",
				},
				cli.StringFlag{
					Name:  "admin, A",
					Value: "",
					Usage: " `ADDRESS` allowed to migrate the contract",
				},
			},
			Action: runInstantiate,
		},
		{
			Name:      "execute",
			Usage:     "call a contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*caller `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "contract, t",
					Value: "",
					Usage: "*contract `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*execute message `JSON` e.g. {\"donate\":{}}",
				},
				cli.StringFlag{
					Name:  "funds, f",
					Value: "",
					Usage: " attached `COINS`",
				},
			},
			Action: runExecute,
		},
		{
			Name:      "query",
			Usage:     "read only call of a contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, t",
					Value: "",
					Usage: "*contract `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: `{"value":{}}`,
					Usage: " query message `JSON`",
				},
			},
			Action: runQuery,
		},
		{
			Name:      "migrate",
			Usage:     "upgrade a contract to the current code",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "sender, s",
					Value: "",
					Usage: "*admin `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "contract, t",
					Value: "",
					Usage: "*contract `ADDRESS`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "{}",
					Usage: " migrate message `JSON`",
				},
			},
			Action: runMigrate,
		},
		{
			Name:      "info",
			Usage:     "display contract metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, t",
					Value: "",
					Usage: "*contract `ADDRESS`",
				},
			},
			Action: runInfo,
		},
		{
			Name:      "dump",
			Usage:     "display all stored records of a contract",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "contract, t",
					Value: "",
					Usage: "*contract `ADDRESS`",
				},
			},
			Action: runDump,
		},
		{
			Name:    "config-test",
			Aliases: []string{"cfg"},
			Usage:   "just check the configuration file",
			Action:  runConfigTest,
		},
		{
			Name:  "version",
			Usage: "display countingd version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
