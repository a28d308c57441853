// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrCallDepthExceeded         = ProcessError("call depth exceeded")
	ErrChecksumMismatch          = InvalidError("checksum mismatch")
	ErrConfigurationNotTable     = InvalidError("configuration must return a table")
	ErrCorruptRecord             = RecordError("record is corrupt")
	ErrDatabaseIsNewer           = InvalidError("database version is newer than supported")
	ErrDatabaseIsOlder           = InvalidError("database version is older than supported")
	ErrDuplicateDenomination     = InvalidError("duplicate denomination")
	ErrIncompatibleVersionRecord = RecordError("incompatible database version record")
	ErrInsufficientFunds         = ProcessError("insufficient funds")
	ErrInvalidAddress            = InvalidError("invalid address")
	ErrInvalidAmount             = InvalidError("invalid amount")
	ErrInvalidChain              = InvalidError("invalid chain name")
	ErrInvalidCoin               = InvalidError("invalid coin")
	ErrInvalidDecimal            = InvalidError("invalid decimal")
	ErrInvalidDenomination       = InvalidError("invalid denomination")
	ErrInvalidDonatingPeriod     = InvalidError("donating period must be positive")
	ErrInvalidMessage            = InvalidError("invalid message")
	ErrInvalidPart               = InvalidError("part must be between 0 and 1")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrRecordNotFound            = NotFoundError("record not found")
	ErrTransactionInUse          = ProcessError("transaction already in use")
	ErrTransactionNotStarted     = ProcessError("transaction not started")
	ErrUnauthorizedMigration     = InvalidError("only the admin can migrate a contract")
	ErrUnknownCode               = NotFoundError("code id is not known")
	ErrUnknownContract           = NotFoundError("contract is not known")
	ErrValueOverflow             = InvalidError("value overflow")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// UnauthorizedError - caller is not the owner
type UnauthorizedError struct {
	Owner string
}

func (e UnauthorizedError) Error() string {
	return fmt.Sprintf("unauthorized - only %s can call it", e.Owner)
}

// InvalidNameError - stored program name differs from this program
type InvalidNameError struct {
	Name string
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid contract name: %q", e.Name)
}

// UnsupportedVersionError - stored version tag cannot be migrated
type UnsupportedVersionError struct {
	Version string
}

func (e UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported contract version for migration: %q", e.Version)
}

// determine the class of an error
//
// errors wrapped with %w are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }

func IsErrUnauthorized(e error) bool       { var x UnauthorizedError; return errors.As(e, &x) }
func IsErrInvalidName(e error) bool        { var x InvalidNameError; return errors.As(e, &x) }
func IsErrUnsupportedVersion(e error) bool { var x UnsupportedVersionError; return errors.As(e, &x) }
