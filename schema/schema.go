// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package schema - the on-disk record layouts
//
// three generations of layout exist:
//
//   0.1.4  layout A: separate "counter", "minimal_donation" and "owner" records
//   0.2.0  layout B: one "state" record {counter, minimal_donation, owner}
//   0.3.0  current:  "state" {counter, minimal_donation, owner, donating_parent}
//                    plus "parent_donation" iff donating_parent is set
//
// only the migration code may touch the historical layouts
package schema

import (
	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
	"github.com/bitmark-inc/countingd/storage"
)

// version tags of the historical layouts
const (
	VersionLayoutA = "0.1.4"
	VersionLayoutB = "0.2.0"
)

// State - the current singleton state record
type State struct {
	Counter         uint64    `json:"counter"`
	MinimalDonation coin.Coin `json:"minimal_donation"`
	Owner           string    `json:"owner"`
	DonatingParent  *uint64   `json:"donating_parent"`
}

// ParentDonation - forwarding settings, present iff State.DonatingParent is set
type ParentDonation struct {
	Address              string          `json:"address"`
	DonatingParentPeriod uint64          `json:"donating_parent_period"`
	Part                 decimal.Decimal `json:"part"`
}

// current layout
var (
	StateItem          = storage.NewItem("state")
	ParentDonationItem = storage.NewItem("parent_donation")
)

// layout A: three independent records
//   counter:          uint64
//   minimal_donation: coin.Coin
//   owner:            string
var (
	LayoutACounter         = storage.NewItem("counter")
	LayoutAMinimalDonation = storage.NewItem("minimal_donation")
	LayoutAOwner           = storage.NewItem("owner")
)

// LayoutBState - layout B combined record, stored under the same key as State
type LayoutBState struct {
	Counter         uint64    `json:"counter"`
	MinimalDonation coin.Coin `json:"minimal_donation"`
	Owner           string    `json:"owner"`
}

// LayoutBStateItem - layout B record
var LayoutBStateItem = storage.NewItem("state")

// LoadState - read the current state
func LoadState(store storage.Store) (State, error) {
	var s State
	err := StateItem.Load(store, &s)
	return s, err
}

// SaveState - overwrite the current state
func SaveState(store storage.Store, s State) error {
	return StateItem.Save(store, s)
}

// LoadParentDonation - read the forwarding settings
func LoadParentDonation(store storage.Store) (ParentDonation, error) {
	var p ParentDonation
	err := ParentDonationItem.Load(store, &p)
	return p, err
}

// SaveParentDonation - overwrite the forwarding settings
func SaveParentDonation(store storage.Store, p ParentDonation) error {
	return ParentDonationItem.Save(store, p)
}
