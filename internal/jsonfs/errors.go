// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jsonfs

import "errors"

var (
	// ErrIsDir is returned if a directory is read like a regular file.
	ErrIsDir = errors.New("is a directory")

	// ErrNotDir is returned if a regular file is read like a directory.
	ErrNotDir = errors.New("not a directory")
)
