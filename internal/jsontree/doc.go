// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jsontree provides an immutable JSON value tree.
//
// A tree is built once by [Parse] and never changes afterwards, so it can be
// shared by any number of concurrent readers without synchronization. Object
// members keep their document order and numbers keep their literal source
// text, so rendering a value back is stable byte for byte.
package jsontree
