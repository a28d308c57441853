// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/storage"
)

const (
	logDirectory = "testing"
	category     = "testing"
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

// an empty instance store
func setup(t *testing.T) (*storage.Database, *storage.PoolHandle) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	return db, db.Pool.State.Scope([]byte("contract"))
}

// run fn inside a batch; the batch is committed only if fn succeeds
func atomically(t *testing.T, db *storage.Database, fn func() error) error {
	if err := db.Begin(); nil != err {
		t.Fatalf("begin error: %s", err)
	}
	if err := fn(); nil != err {
		db.Abort()
		return err
	}
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return nil
}

func mustCommit(t *testing.T, db *storage.Database, fn func() error) {
	if err := atomically(t, db, fn); nil != err {
		t.Fatalf("fixture error: %s", err)
	}
}

func elements(t *testing.T, store *storage.PoolHandle) []storage.Element {
	e, err := store.Elements()
	if nil != err {
		t.Fatalf("elements error: %s", err)
	}
	return e
}
