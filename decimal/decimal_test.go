// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package decimal_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/countingd/coin"
	"github.com/bitmark-inc/countingd/decimal"
	"github.com/bitmark-inc/countingd/fault"
)

// check the text conversion in both directions
func TestFromString(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"0", "0"},
		{"0.0", "0"},
		{"0.5", "0.5"},
		{"0.50", "0.5"},
		{"1", "1"},
		{"1.000000000000000000", "1"},
		{"0.000000000000000001", "0.000000000000000001"},
		{"0.1", "0.1"},
		{"0.25", "0.25"},
		{"12.0034", "12.0034"},
	}

	for i, item := range tests {
		d, err := decimal.FromString(item.text)
		if nil != err {
			t.Errorf("%d: %q: error: %s", i, item.text, err)
			continue
		}
		if item.expected != d.String() {
			t.Errorf("%d: %q: actual: %q  expected: %q", i, item.text, d, item.expected)
		}
	}
}

func TestFromStringInvalid(t *testing.T) {
	tests := []string{
		"",
		".",
		".5",
		"5.",
		"0.0000000000000000001",
		"-0.5",
		"1e3",
		"0.5.1",
		"abc",
	}

	for i, text := range tests {
		_, err := decimal.FromString(text)
		if fault.ErrInvalidDecimal != err {
			t.Errorf("%d: %q: expected invalid decimal, actual: %v", i, text, err)
		}
	}
}

// multiplication truncates towards zero
func TestMulFloor(t *testing.T) {
	tests := []struct {
		amount   uint64
		part     string
		expected string
	}{
		{100, "0.5", "50"},
		{15, "0.5", "7"},
		{1, "0.5", "0"},
		{0, "0.5", "0"},
		{99, "0.1", "9"},
		{1000, "1", "1000"},
		{1000, "0", "0"},
		{3, "0.333333333333333333", "0"},
	}

	for i, item := range tests {
		part, err := decimal.FromString(item.part)
		if nil != err {
			t.Fatalf("%d: part: %q error: %s", i, item.part, err)
		}
		actual := part.MulFloor(coin.NewAmount(item.amount))
		if item.expected != actual.String() {
			t.Errorf("%d: %d × %s: actual: %s  expected: %s", i, item.amount, item.part, actual, item.expected)
		}
	}
}

func TestIsFraction(t *testing.T) {
	if !decimal.Zero().IsFraction() || !decimal.One().IsFraction() || !decimal.Percent(10).IsFraction() {
		t.Error("value in [0,1] rejected")
	}
	d, _ := decimal.FromString("1.000000000000000001")
	if d.IsFraction() {
		t.Errorf("%s accepted as fraction", d)
	}
}

func TestJSON(t *testing.T) {
	buffer, err := json.Marshal(decimal.Percent(25))
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `"0.25"` != string(buffer) {
		t.Errorf("marshal: actual: %s", buffer)
	}

	var d decimal.Decimal
	if err := json.Unmarshal([]byte(`"0.75"`), &d); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if 0 != d.Cmp(decimal.Percent(75)) {
		t.Errorf("unmarshal: actual: %s", d)
	}

	if err := json.Unmarshal([]byte(`0.75`), &d); fault.ErrInvalidDecimal != err {
		t.Errorf("bare number accepted: %v", err)
	}
}
