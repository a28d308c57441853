// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"bytes"
	"encoding/binary"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/countingd/fault"
)

// miscellaneous constants
const (
	digestLength   = 20
	checksumLength = 4
)

// contract address: base58 of
//
//   digest ++ checksum
//
// where digest is the first 20 bytes of SHA3-256 over
//
//   chain name ++ code id (8 bytes BE) ++ instance sequence (8 bytes BE)
//
// and checksum is the first 4 bytes of SHA3-256 over the digest
func contractAddress(chainName string, codeID uint64, sequence uint64) string {
	buffer := make([]byte, len(chainName), len(chainName)+16)
	copy(buffer, chainName)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, codeID)
	buffer = append(buffer, n...)
	binary.BigEndian.PutUint64(n, sequence)
	buffer = append(buffer, n...)

	digest := sha3.Sum256(buffer)
	address := digest[:digestLength]

	checksum := sha3.Sum256(address)
	address = append(address, checksum[:checksumLength]...)

	return base58.Encode(address)
}

// CheckContractAddress - decode and verify the checksum
func CheckContractAddress(address string) error {
	decoded, err := base58.Decode(address)
	if nil != err {
		return fault.ErrInvalidAddress
	}
	if digestLength+checksumLength != len(decoded) {
		return fault.ErrInvalidAddress
	}

	checksum := sha3.Sum256(decoded[:digestLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[digestLength:]) {
		return fault.ErrChecksumMismatch
	}
	return nil
}
