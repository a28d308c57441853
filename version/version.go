// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"github.com/bitmark-inc/countingd/storage"
)

// program identity stored with each instance
//
// ensure that git has a tag: "vX.Y.Z" corresponding to the version
const (
	Name    = "counting-contract"
	Major   = "0"
	Minor   = "3"
	Patch   = "0"
	Version = Major + "." + Minor + "." + Patch
)

// ContractVersion - the stored version tag of an instance
type ContractVersion struct {
	Contract string `json:"contract"`
	Version  string `json:"version"`
}

var info = storage.NewItem("contract_info")

// Get - read the stored version tag
func Get(store storage.Store) (ContractVersion, error) {
	var v ContractVersion
	err := info.Load(store, &v)
	return v, err
}

// Set - write the version tag
func Set(store storage.Store, contract string, version string) error {
	return info.Save(store, ContractVersion{
		Contract: contract,
		Version:  version,
	})
}

// Exists - true if the instance has a version tag
func Exists(store storage.Store) (bool, error) {
	return info.Exists(store)
}
