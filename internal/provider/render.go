// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider

import "github.com/aibor/projson/internal/jsontree"

// Render returns the file content of a scalar value. It returns false for
// arrays and objects.
func Render(value *jsontree.Value) ([]byte, bool) {
	text, ok := content(value)
	if !ok {
		return nil, false
	}

	return []byte(text), true
}

func content(value *jsontree.Value) (string, bool) {
	switch value.Kind() {
	case jsontree.KindNull:
		return "", true
	case jsontree.KindBool:
		if value.Bool() {
			return "true", true
		}

		return "false", true
	case jsontree.KindNumber, jsontree.KindString:
		return value.Text(), true
	default:
		return "", false
	}
}
