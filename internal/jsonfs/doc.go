// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jsonfs provides an [io/fs.FS] view of a [provider.Provider].
//
// It makes the projected JSON tree usable with everything that takes an
// [io/fs.FS], like [fs.WalkDir] or archive writers. Nothing is copied: every
// directory listing and file read is answered by the provider on demand.
//
// Directories opened with [FS.Open] list their entries in document order.
// [fs.ReadDir] sorts them by name, as its contract demands. Names that are
// not valid path elements, like keys containing "/" or the empty key, are
// left out.
package jsonfs
