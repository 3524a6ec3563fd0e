// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsonfs

import (
	"io"
	"io/fs"
	"time"

	"github.com/aibor/projson/internal/provider"
)

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*dirEntry)(nil)
)

type fileInfo struct {
	name    string
	path    provider.Path
	entry   provider.Entry
	mode    fs.FileMode
	modTime time.Time
}

func (i *fileInfo) Name() string       { return i.name }
func (i *fileInfo) Size() int64        { return int64(i.entry.Size) }
func (i *fileInfo) Mode() fs.FileMode  { return i.mode }
func (i *fileInfo) ModTime() time.Time { return i.modTime }
func (i *fileInfo) IsDir() bool        { return i.entry.IsDir() }
func (i *fileInfo) Sys() any           { return i.entry }
func (i *fileInfo) String() string     { return fs.FormatFileInfo(i) }

type dirEntry struct {
	info fileInfo
}

func (e *dirEntry) Name() string               { return e.info.name }
func (e *dirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e *dirEntry) IsDir() bool                { return e.info.IsDir() }
func (e *dirEntry) Info() (fs.FileInfo, error) { return &e.info, nil }
func (e *dirEntry) String() string             { return fs.FormatDirEntry(e) }

var (
	_ fs.File        = (*openFile)(nil)
	_ fs.ReadDirFile = (*openFile)(nil)
)

type openFile struct {
	info     fileInfo
	provider *provider.Provider
	path     provider.Path
	entries  []fs.DirEntry
	offset   uint64
	closed   bool
}

// Stat implements [fs.File].
func (f *openFile) Stat() (fs.FileInfo, error) {
	if f.closed {
		return nil, f.pathError("stat", fs.ErrClosed)
	}

	return &f.info, nil
}

// Read implements [fs.File].
//
// Each call reads the exact remaining range from the provider, so a read
// never asks for more than the file holds.
func (f *openFile) Read(b []byte) (int, error) {
	if f.closed {
		return 0, f.pathError("read", fs.ErrClosed)
	}

	if f.info.IsDir() {
		return 0, f.pathError("read", ErrIsDir)
	}

	remaining := f.info.entry.Size - f.offset
	if remaining == 0 {
		return 0, io.EOF
	}

	if len(b) == 0 {
		return 0, nil
	}

	length := min(uint64(len(b)), remaining)

	data, err := f.provider.ReadPath(f.path, f.offset, length)
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	n := copy(b, data)
	f.offset += uint64(n)

	return n, nil
}

// Close implements [fs.File].
func (f *openFile) Close() error {
	if f.closed {
		return f.pathError("close", fs.ErrClosed)
	}

	f.closed = true

	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (f *openFile) ReadDir(count int) ([]fs.DirEntry, error) {
	if f.closed {
		return nil, f.pathError("readdir", fs.ErrClosed)
	}

	if !f.info.IsDir() {
		return nil, f.pathError("readdir", ErrNotDir)
	}

	start := int(f.offset)
	end := len(f.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	f.offset = uint64(end)

	return f.entries[start:end], nil
}

func (f *openFile) pathError(op string, err error) error {
	return &PathError{
		Op:   op,
		Path: f.path.String(),
		Err:  err,
	}
}
