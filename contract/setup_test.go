// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/storage"
)

const (
	logDirectory = "testing"

	owner    = "owner"
	stranger = "stranger"
	parent   = "parent-contract"
	self     = "contract"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

func setup(t *testing.T) (*storage.Database, *storage.PoolHandle) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	if err := db.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	return db, db.Pool.State.Scope([]byte(self))
}

func teardown(db *storage.Database) {
	db.Abort()
	_ = db.Close()
}
