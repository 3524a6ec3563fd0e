// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider

import (
	"fmt"

	"github.com/aibor/projson/internal/jsontree"
)

// Provider answers directory listing and file read requests for a JSON value
// tree.
//
// It holds nothing but the tree root, which must not be modified while the
// Provider is in use. All methods are safe for concurrent use.
type Provider struct {
	root *jsontree.Value
}

// New creates a new [Provider] for the tree with the given root. A nil root
// is treated as null.
func New(root *jsontree.Value) *Provider {
	if root == nil {
		root = jsontree.Null()
	}

	return &Provider{root: root}
}

// Root returns the root of the tree.
func (p *Provider) Root() *jsontree.Value {
	return p.root
}

// ListDirectory returns the entries of the directory at the given path.
//
// The result is empty if the path does not resolve or resolves to a file.
func (p *Provider) ListDirectory(path string) []Entry {
	return p.ListPath(ParsePath(path))
}

// ListPath is like [Provider.ListDirectory] for an already split [Path].
func (p *Provider) ListPath(path Path) []Entry {
	value, ok := Resolve(p.root, path)
	if !ok {
		return nil
	}

	return Children(value)
}

// ReadFile returns length bytes of the content of the file at the given path
// starting at offset.
//
// The whole range must lie within the content, it is never truncated. The
// returned slice is not shared and may be modified by the caller. Errors are
// of type [*PathError] and wrap [ErrNotFound] if the path does not resolve,
// [ErrInvalidArgument] if it is a directory and [ErrOutOfRange] if the range
// exceeds the content.
func (p *Provider) ReadFile(path string, offset, length uint64) ([]byte, error) {
	return p.read(path, ParsePath(path), offset, length)
}

// ReadPath is like [Provider.ReadFile] for an already split [Path].
func (p *Provider) ReadPath(path Path, offset, length uint64) ([]byte, error) {
	return p.read(path.String(), path, offset, length)
}

func (p *Provider) read(
	name string,
	path Path,
	offset, length uint64,
) ([]byte, error) {
	value, ok := Resolve(p.root, path)
	if !ok {
		return nil, &PathError{Op: "read", Path: name, Err: ErrNotFound}
	}

	text, ok := content(value)
	if !ok {
		return nil, &PathError{Op: "read", Path: name, Err: ErrInvalidArgument}
	}

	size := uint64(len(text))

	// Written this way to not overflow on offset+length.
	if offset > size || length > size-offset {
		return nil, &PathError{
			Op:   "read",
			Path: name,
			Err: fmt.Errorf("%w: offset %d, length %d, size %d",
				ErrOutOfRange, offset, length, size),
		}
	}

	return []byte(text[offset : offset+length]), nil
}

// Stat returns the entry for the value at the given path itself, named
// after the last path segment. The root entry has an empty name.
//
// The error is a [*PathError] wrapping [ErrNotFound] if the path does not
// resolve.
func (p *Provider) Stat(path string) (Entry, error) {
	return p.stat(path, ParsePath(path))
}

// StatPath is like [Provider.Stat] for an already split [Path].
func (p *Provider) StatPath(path Path) (Entry, error) {
	return p.stat(path.String(), path)
}

func (p *Provider) stat(name string, path Path) (Entry, error) {
	value, ok := Resolve(p.root, path)
	if !ok {
		return Entry{}, &PathError{Op: "stat", Path: name, Err: ErrNotFound}
	}

	entry, ok := Project(path.Name(), value)
	if !ok {
		return Entry{}, &PathError{Op: "stat", Path: name, Err: ErrNotFound}
	}

	return entry, nil
}
