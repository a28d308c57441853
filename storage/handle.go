// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/logger"
)

// Store - keyed byte store
//
// Get returns an error of class NotFound for an absent key
type Store interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// PoolHandle - one prefix of the database
type PoolHandle struct {
	prefix     []byte
	limit      []byte
	dataAccess Access
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, len(p.prefix), len(p.prefix)+len(key))
	copy(prefixedKey, p.prefix)
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair in the current batch
func (p *PoolHandle) Put(key []byte, value []byte) {
	if !p.dataAccess.InUse() {
		logger.Panicf("pool.Put: %q outside transaction", key)
	}
	p.dataAccess.Put(p.prefixKey(key), value)
}

// Delete - remove a key in the current batch
func (p *PoolHandle) Delete(key []byte) {
	if !p.dataAccess.InUse() {
		logger.Panicf("pool.Delete: %q outside transaction", key)
	}
	p.dataAccess.Delete(p.prefixKey(key))
}

// Get - read a value for a given key
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	value, err := p.dataAccess.Get(p.prefixKey(key))
	if leveldb.ErrNotFound == err {
		return nil, fmt.Errorf("%w: %q", fault.ErrRecordNotFound, key)
	}
	return value, err
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	return p.dataAccess.Has(p.prefixKey(key))
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
func (p *PoolHandle) GetN(key []byte) (uint64, bool, error) {
	buffer, err := p.Get(key)
	if fault.IsErrNotFound(err) {
		return 0, false, nil
	} else if nil != err {
		return 0, false, err
	}
	if len(buffer) < 8 {
		return 0, false, fmt.Errorf("%w: %q truncated", fault.ErrCorruptRecord, key)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true, nil
}

// PutN - store a big endian uint64
func (p *PoolHandle) PutN(key []byte, n uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	p.Put(key, buffer)
}

// Scope - a store whose keys are all inside a named sub-range of this pool
func (p *PoolHandle) Scope(name []byte) *PoolHandle {
	if len(name) > 0xffff {
		logger.Panicf("pool.Scope: name length: %d is too long", len(name))
	}
	namespace := make([]byte, 2, 2+len(name))
	binary.BigEndian.PutUint16(namespace, uint16(len(name)))
	namespace = append(namespace, name...)

	return &PoolHandle{
		prefix:     p.prefixKey(namespace),
		limit:      prefixLimit(p.prefixKey(namespace)),
		dataAccess: p.dataAccess,
	}
}

// Elements - all committed elements of the pool in key order
//
// pending writes of the current batch are not visible
func (p *PoolHandle) Elements() ([]Element, error) {
	maxRange := ldb_util.Range{
		Start: p.prefix, // Start of key range, included in the range
		Limit: p.limit,  // Limit of key range, excluded from the range
	}

	iter := p.dataAccess.Iterator(&maxRange)
	defer iter.Release()

	result := make([]Element, 0, 16)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(p.prefix)) // strip the prefix
		copy(dataKey, key[len(p.prefix):])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		result = append(result, Element{Key: dataKey, Value: dataValue})
	}
	return result, iter.Error()
}

// smallest key greater than every key with the prefix
func prefixLimit(prefix []byte) []byte {
	limit := make([]byte, len(prefix))
	copy(limit, prefix)
	for i := len(limit) - 1; i >= 0; i -= 1 {
		if limit[i] < 0xff {
			limit[i] += 1
			return limit[:i+1]
		}
	}
	return nil
}
