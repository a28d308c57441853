// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/countingd/fault"
)

func TestRefuseNewerDatabase(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)
	name := filepath.Join(dir, "newer.leveldb")

	db, err := leveldb.OpenFile(name, nil)
	if nil != err {
		t.Fatalf("leveldb open error: %s", err)
	}
	_ = putVersion(db, currentDBVersion+1)
	_ = db.Close()

	_, err = Open(name, ReadWrite)
	assert.True(t, fault.IsErrInvalid(err), "newer database accepted: %v", err)

	db, err = leveldb.OpenFile(name, nil)
	if nil != err {
		t.Fatalf("leveldb reopen error: %s", err)
	}
	_ = db.Put(versionKey, []byte{1, 2}, nil)
	_ = db.Close()

	_, err = Open(name, ReadWrite)
	assert.True(t, fault.IsErrRecord(err), "short version record accepted: %v", err)
}

func TestCacheReportsDeletes(t *testing.T) {
	c := newCache()
	c.Set(dbPut, "a", []byte("1"))
	c.Set(dbDelete, "b", nil)

	value, deleted, found := c.Get("a")
	assert.Equal(t, []byte("1"), value, "put value")
	assert.False(t, deleted, "put reported deleted")
	assert.True(t, found, "put not found")

	_, deleted, found = c.Get("b")
	assert.True(t, deleted, "delete not reported")
	assert.True(t, found, "delete not found")

	c.Clear()
	_, _, found = c.Get("a")
	assert.False(t, found, "clear did not flush")
}
