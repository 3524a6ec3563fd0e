// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotFound is returned if a path does not resolve to any value.
	ErrNotFound = fs.ErrNotExist

	// ErrInvalidArgument is returned if a directory is read as a file.
	ErrInvalidArgument = fs.ErrInvalid

	// ErrOutOfRange is returned if a requested byte range exceeds the file's
	// content.
	ErrOutOfRange = errors.New("range exceeds file size")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
