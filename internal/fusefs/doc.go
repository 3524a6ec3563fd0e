// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package fusefs mounts the projection of a JSON document as read-only FUSE
// file system.
//
// Every inode is backed by the segment path of its value. All requests are
// answered by the [provider.Provider] on the fly, so no content is cached
// apart from what the kernel caches itself.
package fusefs
