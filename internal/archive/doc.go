// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive writes a file tree given as [io/fs.FS] into a cpio archive
// in "newc" format. It serves for writing a snapshot of a projected JSON
// document that can be extracted anywhere with standard tools, like
//
//	cpio -idv < document.cpio
package archive
