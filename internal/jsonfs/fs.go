// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsonfs

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/aibor/projson/internal/provider"
)

const (
	dirFileMode     = fs.ModeDir | 0o555
	regularFileMode = 0o444
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError

var (
	_ fs.FS         = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
	_ fs.ReadFileFS = (*FS)(nil)
)

// FS is a read-only [fs.FS] backed by a [provider.Provider].
type FS struct {
	provider *provider.Provider
	modTime  time.Time
}

// New creates a new [FS] for the given [provider.Provider]. All files report
// the zero time as modification time.
func New(p *provider.Provider) *FS {
	return &FS{provider: p}
}

// WithModTime returns a copy of the [FS] that reports the given modification
// time for all files.
func (fsys *FS) WithModTime(modTime time.Time) *FS {
	return &FS{
		provider: fsys.provider,
		modTime:  modTime,
	}
}

// Open opens the named file or directory.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	file, err := fsys.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return file, nil
}

// Stat returns information about the named file or directory.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	path, entry, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{
			Op:   "stat",
			Path: name,
			Err:  err,
		}
	}

	info := fsys.fileInfo(name, path, entry)

	return &info, nil
}

// ReadFile returns the whole content of the named file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	path, entry, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  err,
		}
	}

	if entry.IsDir() {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  ErrIsDir,
		}
	}

	data, err := fsys.provider.ReadPath(path, 0, entry.Size)
	if err != nil {
		return nil, fmt.Errorf("readfile %s: %w", name, err)
	}

	return data, nil
}

func (fsys *FS) open(name string) (fs.File, error) {
	path, entry, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	file := &openFile{
		info:     fsys.fileInfo(name, path, entry),
		provider: fsys.provider,
		path:     path,
	}

	if entry.IsDir() {
		file.entries = fsys.dirEntries(path)
	}

	return file, nil
}

func (fsys *FS) find(name string) (provider.Path, provider.Entry, error) {
	if !fs.ValidPath(name) {
		return nil, provider.Entry{}, fs.ErrInvalid
	}

	path := split(name)

	entry, err := fsys.provider.StatPath(path)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			return nil, provider.Entry{}, fs.ErrNotExist
		}

		return nil, provider.Entry{}, err
	}

	// The root is always a directory, even if the document is a scalar.
	if len(path) == 0 {
		entry = provider.Entry{Kind: provider.KindDirectory}
	}

	return path, entry, nil
}

func (fsys *FS) dirEntries(path provider.Path) []fs.DirEntry {
	children := fsys.provider.ListPath(path)
	entries := make([]fs.DirEntry, 0, len(children))

	for _, child := range children {
		if !validName(child.Name) {
			continue
		}

		entries = append(entries, &dirEntry{
			info: fsys.fileInfo(child.Name, path.Join(child.Name), child),
		})
	}

	return entries
}

func (fsys *FS) fileInfo(
	name string,
	path provider.Path,
	entry provider.Entry,
) fileInfo {
	mode := fs.FileMode(regularFileMode)
	if entry.IsDir() {
		mode = dirFileMode
	}

	return fileInfo{
		name:    baseName(name),
		path:    path,
		entry:   entry,
		mode:    mode,
		modTime: fsys.modTime,
	}
}

func split(name string) provider.Path {
	if name == "." {
		return provider.Path{}
	}

	return strings.Split(name, "/")
}

func baseName(name string) string {
	idx := strings.LastIndexByte(name, '/')
	return name[idx+1:]
}

// validName reports whether the key can be listed as a single path element.
// Backslashes count as separators, too.
func validName(name string) bool {
	return name != "." && !strings.ContainsAny(name, `/\`) && fs.ValidPath(name)
}
