// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/countingd/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrRecordOne   = fault.RecordError("record one")
	ErrRecordTwo   = fault.RecordError("record two")
)

// test that various errors can be classified, even when wrapped
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
		record   bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, true, false, false},
		{ErrProcessOne, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, true, false},
		{ErrRecordOne, false, false, false, false, true},
		{ErrRecordTwo, false, false, false, false, true},
		{fmt.Errorf("%w: \"state\"", fault.ErrRecordNotFound), false, false, true, false, false},
		{fmt.Errorf("%w: \"state\"", fault.ErrCorruptRecord), false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

func TestStructuredErrors(t *testing.T) {
	err := error(fault.UnauthorizedError{Owner: "owner"})
	if !fault.IsErrUnauthorized(err) {
		t.Errorf("unauthorized not detected: %v", err)
	}
	if "unauthorized - only owner can call it" != err.Error() {
		t.Errorf("unexpected message: %q", err)
	}

	err = fmt.Errorf("migrate: %w", fault.UnsupportedVersionError{Version: "0.0.1"})
	if !fault.IsErrUnsupportedVersion(err) {
		t.Errorf("unsupported version not detected: %v", err)
	}
	if fault.IsErrInvalidName(err) {
		t.Errorf("unsupported version detected as invalid name: %v", err)
	}

	err = fault.InvalidNameError{Name: "other"}
	if !fault.IsErrInvalidName(err) {
		t.Errorf("invalid name not detected: %v", err)
	}
	if fault.IsErrInvalid(err) {
		t.Errorf("invalid name must not be class invalid: %v", err)
	}
}
