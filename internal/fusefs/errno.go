// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package fusefs

import (
	"errors"
	"syscall"

	"github.com/aibor/projson/internal/provider"
)

func toErrno(err error) syscall.Errno {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, provider.ErrNotFound):
		return syscall.ENOENT
	case errors.Is(err, provider.ErrInvalidArgument):
		return syscall.EISDIR
	case errors.Is(err, provider.ErrOutOfRange):
		return syscall.EINVAL
	default:
		return syscall.EIO
	}
}
