// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package environment - what the execution environment supplies to each call
package environment

import (
	"strings"
	"unicode"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/fault"
)

//go:generate mockgen -destination=mocks/querier.go -package=mocks github.com/bitmark-inc/countingd/environment Querier

// Querier - read access to account balances
type Querier interface {
	AllBalances(address string) (coin.Coins, error)
}

// Env - the program instance being called
type Env struct {
	ContractAddress string
	Querier         Querier
}

// Info - the caller and the funds attached to the call
type Info struct {
	Sender string
	Funds  coin.Coins
}

// maximum length of an address
const maxAddressLength = 128

// ValidateAddress - addresses are non-empty printable text without spaces
func ValidateAddress(address string) error {
	if "" == address || len(address) > maxAddressLength {
		return fault.ErrInvalidAddress
	}
	if strings.IndexFunc(address, func(r rune) bool {
		return unicode.IsSpace(r) || !unicode.IsPrint(r)
	}) >= 0 {
		return fault.ErrInvalidAddress
	}
	return nil
}
