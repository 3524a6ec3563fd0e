// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider

import (
	"strconv"

	"github.com/aibor/projson/internal/jsontree"
)

// Kind is the kind of an [Entry].
type Kind int

// Entry kinds.
const (
	KindFile Kind = iota
	KindDirectory
)

func (k Kind) String() string {
	if k == KindDirectory {
		return "directory"
	}

	return "file"
}

// Entry is a single directory entry as seen from outside.
//
// Size is the exact byte length of the rendered content for files and always
// 0 for directories.
type Entry struct {
	Name string
	Kind Kind
	Size uint64
}

// IsDir returns true if the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// Project returns the entry for the given value with the given name. It
// returns false for a nil value.
func Project(name string, value *jsontree.Value) (Entry, bool) {
	if value == nil {
		return Entry{}, false
	}

	text, isFile := content(value)
	if !isFile {
		return Entry{Name: name, Kind: KindDirectory}, true
	}

	return Entry{
		Name: name,
		Kind: KindFile,
		Size: uint64(len(text)),
	}, true
}

// Children returns the entries of all immediate children of the given value.
//
// Object members come in document order, array items in index order named by
// their decimal index. Scalars have no children.
func Children(value *jsontree.Value) []Entry {
	switch value.Kind() {
	case jsontree.KindObject:
		entries := make([]Entry, 0, value.Len())

		for key, member := range value.Members() {
			if entry, ok := Project(key, member); ok {
				entries = append(entries, entry)
			}
		}

		return entries
	case jsontree.KindArray:
		entries := make([]Entry, 0, value.Len())

		for idx, item := range value.Items() {
			if entry, ok := Project(strconv.Itoa(idx), item); ok {
				entries = append(entries, entry)
			}
		}

		return entries
	default:
		return nil
	}
}
