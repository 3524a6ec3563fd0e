// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fusefs

import "golang.org/x/sys/unix"

// forceUnmount detaches the mount lazily. It is cleaned up by the kernel as
// soon as it is not busy anymore.
func forceUnmount(dir string) error {
	return unix.Unmount(dir, unix.MNT_DETACH) //nolint:wrapcheck
}
