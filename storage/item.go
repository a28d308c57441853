// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/countingd/fault"
)

// Item - a single JSON record stored under a fixed key
type Item struct {
	key []byte
}

// NewItem - create an item for a key
func NewItem(key string) Item {
	return Item{key: []byte(key)}
}

// Key - the storage key
func (i Item) Key() string {
	return string(i.key)
}

// Load - decode the record into v
//
// an absent record gives an error of class NotFound, an
// undecodable one an error of class Record
func (i Item) Load(s Store, v interface{}) error {
	buffer, err := s.Get(i.key)
	if nil != err {
		return err
	}
	if err := json.Unmarshal(buffer, v); nil != err {
		return fmt.Errorf("%w: %q: %s", fault.ErrCorruptRecord, i.key, err)
	}
	return nil
}

// May - load the record if present
func (i Item) May(s Store, v interface{}) (bool, error) {
	err := i.Load(s, v)
	if fault.IsErrNotFound(err) {
		return false, nil
	}
	return nil == err, err
}

// Save - unconditional overwrite
func (i Item) Save(s Store, v interface{}) error {
	buffer, err := json.Marshal(v)
	if nil != err {
		return err
	}
	s.Put(i.key, buffer)
	return nil
}

// Remove - delete the record, absence is not an error
func (i Item) Remove(s Store) {
	s.Delete(i.key)
}

// Exists - check for the record
func (i Item) Exists(s Store) (bool, error) {
	return s.Has(i.key)
}
