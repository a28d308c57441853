// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/message"
)

func TestDecodeInstantiate(t *testing.T) {
	msg, err := message.DecodeInstantiate([]byte(`{"minimal_donation":{"denom":"atom","amount":"10"}}`))
	assert.Nil(t, err, "decode error")
	assert.Equal(t, uint64(0), msg.Counter, "default counter")
	assert.Equal(t, "10atom", msg.MinimalDonation.String(), "minimal donation")
	assert.Nil(t, msg.Parent, "parent")

	msg, err = message.DecodeInstantiate([]byte(`{"counter":7,"minimal_donation":{"denom":"atom","amount":"0"},"parent":{"addr":"parent","donating_period":3,"part":"0.1"}}`))
	assert.Nil(t, err, "decode with parent error")
	assert.Equal(t, uint64(7), msg.Counter, "counter")
	assert.Equal(t, "parent", msg.Parent.Addr, "parent address")
	assert.Equal(t, uint64(3), msg.Parent.DonatingPeriod, "parent period")
	assert.Equal(t, "0.1", msg.Parent.Part.String(), "parent part")

	_, err = message.DecodeInstantiate([]byte(`{"counter":1}`))
	assert.True(t, fault.IsErrInvalid(err), "missing minimal donation: %v", err)

	_, err = message.DecodeInstantiate([]byte(`{"minimal_donation":{"denom":"atom","amount":"1"},"extra":1}`))
	assert.True(t, fault.IsErrInvalid(err), "unknown field: %v", err)
}

func TestDecodeExec(t *testing.T) {
	msg, err := message.DecodeExec([]byte(`{"donate":{}}`))
	assert.Nil(t, err, "donate error")
	assert.NotNil(t, msg.Donate, "donate")

	msg, err = message.DecodeExec([]byte(`{"reset":{"counter":12}}`))
	assert.Nil(t, err, "reset error")
	assert.Equal(t, uint64(12), msg.Reset.Counter, "reset counter decoded")

	msg, err = message.DecodeExec([]byte(`{"reset":{}}`))
	assert.Nil(t, err, "reset default error")
	assert.Equal(t, uint64(0), msg.Reset.Counter, "reset counter default")

	msg, err = message.DecodeExec([]byte(`{"withdraw":{}}`))
	assert.Nil(t, err, "withdraw error")
	assert.NotNil(t, msg.Withdraw, "withdraw")

	for _, raw := range []string{`{}`, `{"donate":{},"withdraw":{}}`, `{"burn":{}}`, `[]`, `{"donate":{}} {}`} {
		_, err = message.DecodeExec([]byte(raw))
		assert.True(t, fault.IsErrInvalid(err), "%s: accepted: %v", raw, err)
	}
}

func TestDecodeQuery(t *testing.T) {
	msg, err := message.DecodeQuery([]byte(`{"value":{}}`))
	assert.Nil(t, err, "value error")
	assert.NotNil(t, msg.Value, "value")

	msg, err = message.DecodeQuery([]byte(`{"value_incremented":{"value":41}}`))
	assert.Nil(t, err, "value incremented error")
	assert.Equal(t, uint64(41), msg.ValueIncremented.Value, "value incremented")

	_, err = message.DecodeQuery([]byte(`{}`))
	assert.True(t, fault.IsErrInvalid(err), "empty query accepted: %v", err)
}

func TestDecodeMigrate(t *testing.T) {
	_, err := message.DecodeMigrate(nil)
	assert.Nil(t, err, "empty payload")

	_, err = message.DecodeMigrate([]byte(`{}`))
	assert.Nil(t, err, "empty object")

	_, err = message.DecodeMigrate([]byte(`{"version":"1"}`))
	assert.True(t, fault.IsErrInvalid(err), "unknown field accepted: %v", err)
}

func TestEncodeDonate(t *testing.T) {
	assert.Equal(t, `{"donate":{}}`, string(message.EncodeDonate()), "donate request")
}
