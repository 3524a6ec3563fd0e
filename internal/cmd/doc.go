// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for projson. It handles
// flag parsing, the mount lifecycle, error handling and output handling.
package cmd
