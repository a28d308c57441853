// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/storage"
)

type record struct {
	Counter uint64 `json:"counter"`
	Owner   string `json:"owner"`
}

func TestItemRoundTrip(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	store := db.Pool.State.Scope([]byte("contract"))
	item := storage.NewItem("state")

	var r record
	err := item.Load(store, &r)
	assert.True(t, fault.IsErrNotFound(err), "absent record: %v", err)

	ok, err := item.May(store, &r)
	assert.Nil(t, err, "may on absent record")
	assert.False(t, ok, "may on absent record")

	commit(t, db, func() {
		err := item.Save(store, record{Counter: 3, Owner: "owner"})
		assert.Nil(t, err, "save error")
	})

	raw, err := store.Get([]byte("state"))
	assert.Nil(t, err, "raw get")
	assert.Equal(t, `{"counter":3,"owner":"owner"}`, string(raw), "stored JSON")

	ok, err = item.May(store, &r)
	assert.Nil(t, err, "may error")
	assert.True(t, ok, "may on present record")
	assert.Equal(t, record{Counter: 3, Owner: "owner"}, r, "loaded record")

	exists, err := item.Exists(store)
	assert.Nil(t, err, "exists error")
	assert.True(t, exists, "exists")

	commit(t, db, func() {
		item.Remove(store)
	})
	exists, _ = item.Exists(store)
	assert.False(t, exists, "removed record exists")
}

func TestItemCorruptRecord(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	store := db.Pool.State.Scope([]byte("contract"))
	commit(t, db, func() {
		store.Put([]byte("state"), []byte("{not json"))
	})

	var r record
	err := storage.NewItem("state").Load(store, &r)
	assert.True(t, fault.IsErrRecord(err), "corrupt record: %v", err)
}
