// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/schema"
	"github.com/bitmark-inc/countingd/storage"
	"github.com/bitmark-inc/countingd/version"
)

// Steps - the migration table, oldest first
func Steps() []Step {
	return []Step{
		{From: schema.VersionLayoutA, To: schema.VersionLayoutB, Apply: layoutAToB},
		{From: schema.VersionLayoutB, To: version.Version, Apply: layoutBToCurrent},
	}
}

// merge the three layout A records into one layout B record
//
// the separate records are removed once merged
func layoutAToB(store storage.Store) error {
	var counter uint64
	if err := schema.LayoutACounter.Load(store, &counter); nil != err {
		return err
	}

	var minimalDonation coin.Coin
	if err := schema.LayoutAMinimalDonation.Load(store, &minimalDonation); nil != err {
		return err
	}

	var owner string
	if err := schema.LayoutAOwner.Load(store, &owner); nil != err {
		return err
	}

	err := schema.LayoutBStateItem.Save(store, schema.LayoutBState{
		Counter:         counter,
		MinimalDonation: minimalDonation,
		Owner:           owner,
	})
	if nil != err {
		return err
	}

	schema.LayoutACounter.Remove(store)
	schema.LayoutAMinimalDonation.Remove(store)
	schema.LayoutAOwner.Remove(store)
	return nil
}

// layout B had no parent, so none is created
func layoutBToCurrent(store storage.Store) error {
	var old schema.LayoutBState
	if err := schema.LayoutBStateItem.Load(store, &old); nil != err {
		return err
	}

	return schema.SaveState(store, schema.State{
		Counter:         old.Counter,
		MinimalDonation: old.MinimalDonation,
		Owner:           old.Owner,
		DonatingParent:  nil,
	})
}
