// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"

	"github.com/bitmark-inc/countingd/storage"
)

// terminal highlighting for keys and values
type palette struct {
	key   string
	value string
	end   string
}

var (
	plain    = palette{}
	coloured = palette{
		key:   "\033[1;36m",
		value: "\033[1;33m",
		end:   "\033[0m",
	}
)

// how records are written
type layout struct {
	colours  palette
	hexDump  bool // non-JSON values as offset/hex/ascii lines
	maxCount int
	early    bool // stop at the first key without the prefix
}

// poolTags - tag → field name for every pool
func poolTags() map[string]string {
	tags := make(map[string]string)
	poolType := reflect.TypeOf(storage.Pools{})
	for i := 0; i < poolType.NumField(); i += 1 {
		field := poolType.Field(i)
		tags[field.Tag.Get("prefix")] = field.Name
	}
	return tags
}

// findPool - the pool handle whose prefix tag matches
func findPool(db *storage.Database, tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(db.Pool)
	poolValue := reflect.ValueOf(db.Pool)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			return poolValue.Field(i).Interface().(*storage.PoolHandle)
		}
	}
	return nil
}

// selectElements - records from the first key at or after prefix,
// limited to the layout's count and, if early is set, to keys that
// carry the prefix
func selectElements(data []storage.Element, prefix []byte, l layout) []storage.Element {
	start := 0
	for start < len(data) && bytes.Compare(data[start].Key, prefix) < 0 {
		start += 1
	}

	result := make([]storage.Element, 0, l.maxCount)
	for _, e := range data[start:] {
		if len(result) >= l.maxCount {
			break
		}
		if l.early && !bytes.HasPrefix(e.Key, prefix) {
			break
		}
		result = append(result, e)
	}
	return result
}

// writeElements - keys in hex, values as indented JSON if they parse
func writeElements(w io.Writer, data []storage.Element, l layout) error {
	c := l.colours
	for i, e := range data {
		if _, err := fmt.Fprintf(w, "%d: Key: %s%x%s\n", i, c.key, e.Key, c.end); nil != err {
			return err
		}

		var buffer bytes.Buffer
		switch {
		case json.Valid(e.Value):
			if err := json.Indent(&buffer, e.Value, "   ", "  "); nil != err {
				return err
			}
			_, err := fmt.Fprintf(w, "%d: Val: %s%s%s\n", i, c.value, buffer.String(), c.end)
			if nil != err {
				return err
			}

		case l.hexDump:
			hexDump(&buffer, fmt.Sprintf("%d: Val: %s", i, c.value), c.end, e.Value)
			if _, err := w.Write(buffer.Bytes()); nil != err {
				return err
			}

		default:
			if _, err := fmt.Fprintf(w, "%d: Val: %s%x%s\n", i, c.value, e.Value, c.end); nil != err {
				return err
			}
		}
	}
	return nil
}

// offset, hex bytes and printable characters, 16 bytes per line
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	const bytesPerLine = 16
	for offset := 0; offset < len(data); offset += bytesPerLine {
		end := offset + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		line := data[offset:end]

		text := make([]byte, len(line))
		for i, c := range line {
			if c < 32 || c >= 127 {
				c = '.'
			}
			text[i] = c
		}
		fmt.Fprintf(w, "%s%04x  %-*x |%s|%s\n", prefix, offset, 2*bytesPerLine, line, text, suffix)
	}
}
