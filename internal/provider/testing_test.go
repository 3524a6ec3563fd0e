// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider_test

import (
	"testing"

	"github.com/aibor/projson/internal/jsontree"
	"github.com/stretchr/testify/require"
)

const scenarioDocument = `{"x": [1, "two", true], "y": null}`

func mustParse(tb testing.TB, text string) *jsontree.Value {
	tb.Helper()

	value, err := jsontree.ParseString(text)
	require.NoError(tb, err)

	return value
}
