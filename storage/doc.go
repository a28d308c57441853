// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. scope        = big endian uint16 length ++ scope name (contract address)
// 4. sequence     = big endian uint64 (8 bytes)
// 5. *json*       = JSON encoded record
//
// Version:
//
//   0x00 ++ "VERSION"          - database format version
//                                data: big endian uint32
//
// Balances:
//
//   B ++ address               - balance of an account or contract
//                                data: json coin list
//
// Contracts:
//
//   C ++ 0x00 ++ "SEQ"         - next contract instance sequence
//                                data: sequence
//   C ++ address               - contract metadata
//                                data: json {code_id, creator, admin, label}
//
// State:
//
//   S ++ scope ++ key          - per-contract keyed records
//                                data: json record, e.g.
//                                  "contract_info"    - {contract, version}
//                                  "state"            - current state (or layout B state)
//                                  "parent_donation"  - parent forwarding record
//                                  "counter", "minimal_donation", "owner" - layout A only
//
// Testing:
//   Z ++ key                   - testing data
//
// All writes are buffered in a batch between Begin and Commit; reads
// through a pool see the buffered writes.  Abort discards them.
package storage
