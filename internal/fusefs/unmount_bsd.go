// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build darwin || freebsd

package fusefs

import "golang.org/x/sys/unix"

func forceUnmount(dir string) error {
	return unix.Unmount(dir, unix.MNT_FORCE) //nolint:wrapcheck
}
