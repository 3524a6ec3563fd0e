// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import "errors"

// ErrNotRegularFile is returned if a file is expected to be regular but is
// not.
var ErrNotRegularFile = errors.New("not a regular file")
