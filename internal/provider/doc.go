// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package provider projects a [jsontree.Value] tree as a read-only file tree.
//
// Arrays and objects are directories, all scalar values are files. Object
// members are named by their key, array items by their decimal index. A
// file's content is the textual rendering of its value: strings unquoted,
// numbers as written in the document, booleans as "true" and "false", null
// as empty content.
//
// A [Provider] answers the two questions a file system virtualization layer
// asks: what entries exist in a directory ([Provider.ListDirectory]) and what
// bytes are in a given range of a file ([Provider.ReadFile]). All operations
// are pure reads of the immutable tree and may be called concurrently.
package provider
