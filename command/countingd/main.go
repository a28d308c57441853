// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/countingd/chain"
	"github.com/bitmark-inc/countingd/contract"
	"github.com/bitmark-inc/countingd/storage"
)

type metadata struct {
	config  *Configuration
	db      *storage.Database
	chain   *chain.Chain
	log     *logger.L
	codeID  uint64
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that do not need the configuration
var setupCommands = map[string]struct{}{
	"":        {},
	"help":    {},
	"h":       {},
	"version": {},
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "countingd"
	app.Usage = "donation counting contracts on a local ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: "*configuration `FILE`",
		},
		cli.StringSliceFlag{
			Name:  "define, D",
			Usage: " set a configuration variable `NAME=VALUE`",
		},
	}
	app.Commands = commands()

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if _, ok := setupCommands[command]; ok {
			return nil
		}

		file := c.GlobalString("config-file")
		if "" == file {
			return fmt.Errorf("missing --config-file")
		}

		variables, err := parseVariables(c.GlobalStringSlice("define"))
		if nil != err {
			return err
		}

		configuration, err := getConfiguration(file, variables)
		if nil != err {
			return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
		}

		m := &metadata{
			config:  configuration,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if "config-test" == command || "cfg" == command {
			return nil
		}

		// start logging
		if err := logger.Initialise(configuration.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}
		m.log = logger.New("main")
		m.log.Infof("version: %s", version)
		m.log.Debugf("configuration: %v", configuration)

		m.db, err = storage.Open(configuration.Database.Name, storage.ReadWrite)
		if nil != err {
			m.log.Criticalf("storage open: %q  error: %s", configuration.Database.Name, err)
			return fmt.Errorf("storage setup failed with error: %s", err)
		}

		m.chain, err = chain.New(configuration.Chain, m.db)
		if nil != err {
			return err
		}
		m.codeID = m.chain.StoreCode(contract.New(configuration.Forwarding.SuppressZero))

		if m.verbose {
			fmt.Fprintf(m.e, "chain: %s  database: %q  code id: %d\n", configuration.Chain, configuration.Database.Name, m.codeID)
		}
		return nil
	}

	// close the database
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		if nil != m.db {
			if err := m.db.Close(); nil != err {
				m.log.Errorf("storage close error: %s", err)
			}
		}
		m.log.Info("finished")
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// NAME=VALUE pairs to a map
func parseVariables(definitions []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range definitions {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("invalid definition: %q", d)
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}
