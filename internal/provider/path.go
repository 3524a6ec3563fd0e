// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider

import (
	"strconv"
	"strings"

	"github.com/aibor/projson/internal/jsontree"
)

// Path is a virtual path as sequence of segments. The empty path is the root.
type Path []string

// ParsePath splits the given path string into its segments.
//
// Both "/" and "\" separate segments. Empty segments are dropped, so leading,
// trailing and repeated separators do not matter. "." and ".." are kept as
// literal segments, there is no traversal.
func ParsePath(path string) Path {
	return strings.FieldsFunc(path, isSeparator)
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// Join returns a new path with the given segment appended. p is not modified.
func (p Path) Join(segment string) Path {
	joined := make(Path, len(p), len(p)+1)
	copy(joined, p)

	return append(joined, segment)
}

// Name returns the last segment. It is empty for the root.
func (p Path) Name() string {
	if len(p) == 0 {
		return ""
	}

	return p[len(p)-1]
}

func (p Path) String() string {
	return strings.Join(p, "/")
}

// Resolve walks the tree from root along the given path and returns the value
// it addresses.
//
// Object segments are matched as exact keys. Array segments must be decimal
// indices without sign or leading zeros. Scalars have no children. It returns
// false if any segment does not match.
func Resolve(root *jsontree.Value, path Path) (*jsontree.Value, bool) {
	current := root

	for _, segment := range path {
		next, ok := child(current, segment)
		if !ok || next == nil {
			return nil, false
		}

		current = next
	}

	return current, true
}

func child(value *jsontree.Value, segment string) (*jsontree.Value, bool) {
	switch value.Kind() {
	case jsontree.KindObject:
		return value.Lookup(segment)
	case jsontree.KindArray:
		idx, ok := parseIndex(segment)
		if !ok {
			return nil, false
		}

		return value.Index(idx)
	default:
		return nil, false
	}
}

func parseIndex(segment string) (int, bool) {
	if segment == "" || (len(segment) > 1 && segment[0] == '0') {
		return 0, false
	}

	for _, c := range []byte(segment) {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	// Fails only on overflow, which is out of range anyway.
	idx, err := strconv.Atoi(segment)
	if err != nil {
		return 0, false
	}

	return idx, true
}
