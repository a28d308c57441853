// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coin

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bitmark-inc/countingd/fault"
)

var (
	denominationPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)
	coinPattern         = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
)

// Coin - an amount of a single denomination
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// New - create a coin
func New(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: NewAmount(amount),
	}
}

// Parse - decode the "<amount><denom>" form, e.g. "10atom"
func Parse(s string) (Coin, error) {
	match := coinPattern.FindStringSubmatch(strings.TrimSpace(s))
	if nil == match {
		return Coin{}, fault.ErrInvalidCoin
	}
	amount, err := ParseAmount(match[1])
	if nil != err {
		return Coin{}, err
	}
	return Coin{Denom: match[2], Amount: amount}, nil
}

// ValidateDenom - check a denomination string
func ValidateDenom(denom string) error {
	if !denominationPattern.MatchString(denom) {
		return fault.ErrInvalidDenomination
	}
	return nil
}

func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

// Coins - a list of coins
//
// a normalised list is sorted by denomination with no zero amounts
// and no duplicate denominations
type Coins []Coin

// ParseCoins - comma separated coins, e.g. "10atom,5uluna"
func ParseCoins(s string) (Coins, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return Coins{}, nil
	}
	seen := make(map[string]struct{})
	coins := make(Coins, 0, 4)
	for _, item := range strings.Split(s, ",") {
		c, err := Parse(item)
		if nil != err {
			return nil, err
		}
		if _, ok := seen[c.Denom]; ok {
			return nil, fault.ErrDuplicateDenomination
		}
		seen[c.Denom] = struct{}{}
		coins = append(coins, c)
	}
	return coins.Normalise(), nil
}

// Normalise - merge duplicates, drop zeros and sort
func (cs Coins) Normalise() Coins {
	result := Coins{}
	for _, c := range cs {
		result = result.Add(c)
	}
	return result
}

// AmountOf - total of one denomination
func (cs Coins) AmountOf(denom string) Amount {
	total := Amount{}
	for _, c := range cs {
		if c.Denom == denom {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// IsZero - no non-zero coins present
func (cs Coins) IsZero() bool {
	for _, c := range cs {
		if !c.Amount.IsZero() {
			return false
		}
	}
	return true
}

// Add - return a new normalised list with the coin added
func (cs Coins) Add(c Coin) Coins {
	result := make(Coins, 0, len(cs)+1)
	added := false
	for _, existing := range cs {
		if existing.Amount.IsZero() {
			continue
		}
		if existing.Denom == c.Denom {
			existing = Coin{Denom: c.Denom, Amount: existing.Amount.Add(c.Amount)}
			added = true
		}
		result = append(result, existing)
	}
	if !added && !c.Amount.IsZero() {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Denom < result[j].Denom
	})
	return result
}

// AddCoins - sum of two lists
func (cs Coins) AddCoins(other Coins) Coins {
	result := cs.Normalise()
	for _, c := range other {
		result = result.Add(c)
	}
	return result
}

// Sub - remove other from this list, fails if any denomination would go negative
func (cs Coins) Sub(other Coins) (Coins, error) {
	remaining := make(map[string]Amount)
	for _, c := range cs.Normalise() {
		remaining[c.Denom] = c.Amount
	}
	for _, c := range other.Normalise() {
		left, err := remaining[c.Denom].Sub(c.Amount)
		if nil != err {
			return nil, err
		}
		remaining[c.Denom] = left
	}
	result := Coins{}
	for denom, amount := range remaining {
		result = result.Add(Coin{Denom: denom, Amount: amount})
	}
	return result, nil
}

func (cs Coins) String() string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = c.String()
	}
	return strings.Join(s, ",")
}
