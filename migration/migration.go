// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - upgrade stored state to the current layout
//
// each step reads one historical layout and writes the next; a store
// that is several generations behind passes through every later step
// in a single call
package migration

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/countingd/fault"
	"github.com/bitmark-inc/countingd/storage"
	"github.com/bitmark-inc/countingd/version"
)

// Step - transform the layout of one version into the next
type Step struct {
	From  string
	To    string
	Apply func(storage.Store) error
}

// Outcome - what a migration did
type Outcome struct {
	From  string
	To    string
	Steps []string // "from->to" for each step applied
}

// Upgraded - true if any step ran
func (o Outcome) Upgraded() bool {
	return len(o.Steps) > 0
}

// Engine - ordered migration steps for one program
type Engine struct {
	log     *logger.L
	name    string
	current string
	steps   []Step
}

// New - the engine for this program's layouts
func New(log *logger.L) *Engine {
	e, err := NewEngine(log, version.Name, version.Version, Steps())
	logger.PanicIfError("migration.New", err)
	return e
}

// NewEngine - engine over an explicit table
//
// the steps must form a chain ending at current
func NewEngine(log *logger.L, name string, current string, steps []Step) (*Engine, error) {
	for i, s := range steps {
		if nil == s.Apply {
			return nil, fmt.Errorf("migration step: %s->%s has no transform", s.From, s.To)
		}
		if i+1 < len(steps) && s.To != steps[i+1].From {
			return nil, fmt.Errorf("migration step: %s->%s is not followed by: %s", s.From, s.To, s.To)
		}
		if s.From == current {
			return nil, fmt.Errorf("migration step: %s->%s starts at the current version", s.From, s.To)
		}
	}
	if len(steps) > 0 && steps[len(steps)-1].To != current {
		return nil, fmt.Errorf("migration steps end at: %s not: %s", steps[len(steps)-1].To, current)
	}
	return &Engine{
		log:     log,
		name:    name,
		current: current,
		steps:   steps,
	}, nil
}

// Current - the version this engine upgrades to
func (e *Engine) Current() string {
	return e.current
}

// Migrate - bring the store up to the current version
//
// all validation happens before the first write so a failed call
// leaves the store untouched; an up to date store is not an error
func (e *Engine) Migrate(store storage.Store) (Outcome, error) {
	stored, err := version.Get(store)
	if nil != err {
		return Outcome{}, err
	}

	if stored.Contract != e.name {
		e.log.Warnf("stored name: %q  expected: %q", stored.Contract, e.name)
		return Outcome{}, fault.InvalidNameError{Name: stored.Contract}
	}

	outcome := Outcome{
		From:  stored.Version,
		To:    e.current,
		Steps: []string{},
	}

	if stored.Version == e.current {
		e.log.Debugf("already at version: %s", e.current)
		return outcome, nil
	}

	start := -1
	for i, s := range e.steps {
		if s.From == stored.Version {
			start = i
			break
		}
	}
	if start < 0 {
		e.log.Warnf("unsupported version: %q", stored.Version)
		return Outcome{}, fault.UnsupportedVersionError{Version: stored.Version}
	}

	for _, s := range e.steps[start:] {
		e.log.Infof("migrate: %s -> %s", s.From, s.To)
		if err := s.Apply(store); nil != err {
			e.log.Errorf("migrate: %s -> %s  error: %s", s.From, s.To, err)
			return Outcome{}, err
		}
		outcome.Steps = append(outcome.Steps, s.From+"->"+s.To)
	}

	if err := version.Set(store, e.name, e.current); nil != err {
		return Outcome{}, err
	}
	return outcome, nil
}
