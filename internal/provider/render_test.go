// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider_test

import (
	"testing"

	"github.com/aibor/projson/internal/jsontree"
	"github.com/aibor/projson/internal/provider"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		value    *jsontree.Value
		expected []byte
		notFile  bool
	}{
		{
			name:     "null",
			value:    jsontree.Null(),
			expected: []byte{},
		},
		{
			name:     "true",
			value:    jsontree.Bool(true),
			expected: []byte("true"),
		},
		{
			name:     "false",
			value:    jsontree.Bool(false),
			expected: []byte("false"),
		},
		{
			name:     "integer",
			value:    jsontree.Number("42"),
			expected: []byte("42"),
		},
		{
			name:     "number keeps literal",
			value:    jsontree.Number("1.50e+3"),
			expected: []byte("1.50e+3"),
		},
		{
			name:     "string is unquoted",
			value:    jsontree.String(`say "hi"` + "\n"),
			expected: []byte("say \"hi\"\n"),
		},
		{
			name:     "multi-byte string",
			value:    jsontree.String("äöü"),
			expected: []byte("äöü"),
		},
		{
			name:    "array",
			value:   jsontree.Array(jsontree.Null()),
			notFile: true,
		},
		{
			name:    "object",
			value:   jsontree.Object(),
			notFile: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, ok := provider.Render(tt.value)
			if tt.notFile {
				assert.False(t, ok)
				assert.Nil(t, actual)

				return
			}

			assert.True(t, ok)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestRender_Fresh(t *testing.T) {
	value := jsontree.String("abc")

	first, _ := provider.Render(value)
	first[0] = 'x'

	second, _ := provider.Render(value)
	assert.Equal(t, []byte("abc"), second)
}
