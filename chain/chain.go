// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - an execution environment for programs
//
// each top level call runs inside a single storage batch: attached
// funds move to the contract, the program runs and then the messages
// it returned are carried out in order.  Any failure at any depth
// aborts the batch so nothing from the call is observed.
package chain

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/bank"
	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/environment"
	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/response"
	"github.com/bitmark-inc/countingd/storage"
)

// maximum nesting of contract to contract executes
const maximumCallDepth = 16

// key of the instance sequence number in the contracts pool
var sequenceKey = []byte{0x00, 'S', 'E', 'Q'}

// Program - the entry points of a stored code
type Program interface {
	Instantiate(store storage.Store, env environment.Env, info environment.Info, msg []byte) (*response.Response, error)
	Execute(store storage.Store, env environment.Env, info environment.Info, msg []byte) (*response.Response, error)
	Query(store storage.Store, env environment.Env, msg []byte) ([]byte, error)
	Migrate(store storage.Store, env environment.Env, msg []byte) (*response.Response, error)
}

// ContractInfo - metadata of an instance
type ContractInfo struct {
	CodeID  uint64 `json:"code_id"`
	Creator string `json:"creator"`
	Admin   string `json:"admin,omitempty"`
	Label   string `json:"label"`
}

// Chain - programs, instances and balances on one database
type Chain struct {
	sync.Mutex

	log      *logger.L
	name     string
	db       *storage.Database
	bank     *bank.Bank
	programs []Program
}

// New - an environment over an open database
func New(name string, db *storage.Database) (*Chain, error) {
	if !Valid(name) {
		return nil, fault.ErrInvalidChain
	}

	log := logger.New("chain")
	log.Infof("chain: %s", name)

	return &Chain{
		log:      log,
		name:     name,
		db:       db,
		bank:     bank.New(logger.New("bank"), db.Pool.Balances),
		programs: []Program{},
	}, nil
}

// Name - the chain name
func (c *Chain) Name() string {
	return c.name
}

// StoreCode - register a program, code ids start from 1
func (c *Chain) StoreCode(p Program) uint64 {
	c.Lock()
	defer c.Unlock()

	c.programs = append(c.programs, p)
	codeID := uint64(len(c.programs))
	c.log.Infof("stored code id: %d", codeID)
	return codeID
}

// Mint - create coins for an address
func (c *Chain) Mint(address string, amount coin.Coins) error {
	c.Lock()
	defer c.Unlock()

	return c.atomically(func() error {
		return c.bank.Mint(address, amount)
	})
}

// Balance - all coins held by an address
func (c *Chain) Balance(address string) (coin.Coins, error) {
	c.Lock()
	defer c.Unlock()

	return c.bank.Balance(address)
}

// Instantiate - create a new instance of a stored program
//
// returns the address of the new instance
func (c *Chain) Instantiate(codeID uint64, sender string, msg []byte, funds coin.Coins, label string, admin string) (string, *response.Response, error) {
	c.Lock()
	defer c.Unlock()

	address := ""
	var resp *response.Response

	err := c.atomically(func() error {
		p, err := c.program(codeID)
		if nil != err {
			return err
		}
		if err := environment.ValidateAddress(sender); nil != err {
			return err
		}
		if "" != admin {
			if err := environment.ValidateAddress(admin); nil != err {
				return err
			}
		}

		sequence, _, err := c.db.Pool.Contracts.GetN(sequenceKey)
		if nil != err {
			return err
		}
		sequence += 1
		c.db.Pool.Contracts.PutN(sequenceKey, sequence)

		address = contractAddress(c.name, codeID, sequence)
		info := ContractInfo{
			CodeID:  codeID,
			Creator: sender,
			Admin:   admin,
			Label:   label,
		}
		if err := storage.NewItem(address).Save(c.db.Pool.Contracts, info); nil != err {
			return err
		}

		if err := c.bank.Send(sender, address, funds); nil != err {
			return err
		}

		resp, err = p.Instantiate(c.store(address), c.env(address), environment.Info{Sender: sender, Funds: funds}, msg)
		if nil != err {
			return err
		}

		c.log.Infof("instantiate code id: %d  address: %s  label: %q", codeID, address, label)
		return c.dispatch(address, resp, 0)
	})
	if nil != err {
		c.log.Warnf("instantiate code id: %d  error: %s", codeID, err)
		return "", nil, err
	}
	return address, resp, nil
}

// Execute - call an instance with attached funds
func (c *Chain) Execute(sender string, address string, msg []byte, funds coin.Coins) (*response.Response, error) {
	c.Lock()
	defer c.Unlock()

	var resp *response.Response
	err := c.atomically(func() error {
		var err error
		resp, err = c.execute(sender, address, msg, funds, 0)
		return err
	})
	if nil != err {
		c.log.Warnf("execute: %s  error: %s", address, err)
		return nil, err
	}
	return resp, nil
}

// Query - read only call of an instance
func (c *Chain) Query(address string, msg []byte) ([]byte, error) {
	c.Lock()
	defer c.Unlock()

	info, err := c.contractInfo(address)
	if nil != err {
		return nil, err
	}
	p, err := c.program(info.CodeID)
	if nil != err {
		return nil, err
	}
	return p.Query(c.store(address), c.env(address), msg)
}

// Migrate - switch an instance to a new code id and run its migration
//
// only the admin recorded at instantiation may do this
func (c *Chain) Migrate(sender string, address string, codeID uint64, msg []byte) (*response.Response, error) {
	c.Lock()
	defer c.Unlock()

	var resp *response.Response
	err := c.atomically(func() error {
		info, err := c.contractInfo(address)
		if nil != err {
			return err
		}
		if "" == info.Admin || sender != info.Admin {
			return fault.ErrUnauthorizedMigration
		}

		p, err := c.program(codeID)
		if nil != err {
			return err
		}

		info.CodeID = codeID
		if err := storage.NewItem(address).Save(c.db.Pool.Contracts, info); nil != err {
			return err
		}

		resp, err = p.Migrate(c.store(address), c.env(address), msg)
		if nil != err {
			return err
		}

		c.log.Infof("migrate: %s  to code id: %d", address, codeID)
		return c.dispatch(address, resp, 0)
	})
	if nil != err {
		c.log.Warnf("migrate: %s  error: %s", address, err)
		return nil, err
	}
	return resp, nil
}

// ContractInfo - metadata of an instance
func (c *Chain) ContractInfo(address string) (ContractInfo, error) {
	c.Lock()
	defer c.Unlock()

	return c.contractInfo(address)
}

// Dump - all stored records of an instance
func (c *Chain) Dump(address string) ([]storage.Element, error) {
	c.Lock()
	defer c.Unlock()

	if _, err := c.contractInfo(address); nil != err {
		return nil, err
	}
	return c.store(address).Elements()
}

// run an execute at some depth, the caller holds the batch
func (c *Chain) execute(sender string, address string, msg []byte, funds coin.Coins, depth int) (*response.Response, error) {
	if depth > maximumCallDepth {
		return nil, fault.ErrCallDepthExceeded
	}

	info, err := c.contractInfo(address)
	if nil != err {
		return nil, err
	}
	p, err := c.program(info.CodeID)
	if nil != err {
		return nil, err
	}

	if err := c.bank.Send(sender, address, funds); nil != err {
		return nil, err
	}

	resp, err := p.Execute(c.store(address), c.env(address), environment.Info{Sender: sender, Funds: funds}, msg)
	if nil != err {
		return nil, err
	}

	c.log.Debugf("execute: %s  sender: %s  depth: %d", address, sender, depth)
	return resp, c.dispatch(address, resp, depth)
}

// carry out the messages of a response in order
func (c *Chain) dispatch(address string, resp *response.Response, depth int) error {
	for _, m := range resp.Messages {
		switch {
		case nil != m.Bank:
			if err := c.bank.Send(address, m.Bank.ToAddress, m.Bank.Amount); nil != err {
				return err
			}
		case nil != m.Wasm:
			_, err := c.execute(address, m.Wasm.ContractAddr, m.Wasm.Msg, m.Wasm.Funds, depth+1)
			if nil != err {
				return err
			}
		default:
			return fault.ErrInvalidMessage
		}
	}
	return nil
}

// run fn inside a batch, committing only if it succeeds
func (c *Chain) atomically(fn func() error) error {
	if err := c.db.Begin(); nil != err {
		return err
	}
	if err := fn(); nil != err {
		c.db.Abort()
		return err
	}
	return c.db.Commit()
}

func (c *Chain) contractInfo(address string) (ContractInfo, error) {
	var info ContractInfo
	found, err := storage.NewItem(address).May(c.db.Pool.Contracts, &info)
	if nil != err {
		return ContractInfo{}, err
	}
	if !found {
		if err := CheckContractAddress(address); nil != err {
			return ContractInfo{}, err
		}
		return ContractInfo{}, fault.ErrUnknownContract
	}
	return info, nil
}

func (c *Chain) program(codeID uint64) (Program, error) {
	if 0 == codeID || codeID > uint64(len(c.programs)) {
		return nil, fault.ErrUnknownCode
	}
	return c.programs[codeID-1], nil
}

func (c *Chain) store(address string) *storage.PoolHandle {
	return c.db.Pool.State.Scope([]byte(address))
}

func (c *Chain) env(address string) environment.Env {
	return environment.Env{
		ContractAddress: address,
		Querier:         c.bank,
	}
}
