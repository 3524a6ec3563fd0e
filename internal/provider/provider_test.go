// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package provider_test

import (
	"math"
	"testing"

	"github.com/aibor/projson/internal/jsontree"
	"github.com/aibor/projson/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestProvider_Scenario(t *testing.T) {
	p := provider.New(mustParse(t, scenarioDocument))

	assert.Equal(t, []provider.Entry{
		{Name: "x", Kind: provider.KindDirectory},
		{Name: "y", Kind: provider.KindFile, Size: 0},
	}, p.ListDirectory(""), "root")

	assert.Equal(t, []provider.Entry{
		{Name: "0", Kind: provider.KindFile, Size: 1},
		{Name: "1", Kind: provider.KindFile, Size: 3},
		{Name: "2", Kind: provider.KindFile, Size: 4},
	}, p.ListDirectory("x"), "array")

	data, err := p.ReadFile("x/1", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), data)

	_, err = p.ReadFile("x/1", 1, 3)
	require.ErrorIs(t, err, provider.ErrOutOfRange)

	data, err = p.ReadFile("y", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, data)

	assert.Empty(t, p.ListDirectory("x/0"), "scalar is no directory")

	_, err = p.ReadFile("z", 0, 0)
	require.ErrorIs(t, err, provider.ErrNotFound)

	_, err = p.Stat("z")
	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestProvider_ListDirectory(t *testing.T) {
	p := provider.New(mustParse(t, `{"a": {"b": [true, false]}, "s": "x"}`))

	tests := []struct {
		name     string
		path     string
		expected []provider.Entry
	}{
		{
			name: "nested object",
			path: "a",
			expected: []provider.Entry{
				{Name: "b", Kind: provider.KindDirectory},
			},
		},
		{
			name: "backslash path",
			path: `\a\b`,
			expected: []provider.Entry{
				{Name: "0", Kind: provider.KindFile, Size: 4},
				{Name: "1", Kind: provider.KindFile, Size: 5},
			},
		},
		{
			name: "not found",
			path: "a/c",
		},
		{
			name: "file",
			path: "s",
		},
		{
			name: "below file",
			path: "s/t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := p.ListDirectory(tt.path)
			if tt.expected == nil {
				assert.Empty(t, actual)
				return
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestProvider_ReadFile(t *testing.T) {
	p := provider.New(mustParse(t, `{"s": "hello", "n": 3.10, "f": false, "d": {}, "a": []}`))

	tests := []struct {
		name        string
		path        string
		offset      uint64
		length      uint64
		expected    []byte
		expectedErr error
	}{
		{
			name:     "whole string",
			path:     "s",
			length:   5,
			expected: []byte("hello"),
		},
		{
			name:     "middle",
			path:     "s",
			offset:   1,
			length:   3,
			expected: []byte("ell"),
		},
		{
			name:     "empty at end",
			path:     "s",
			offset:   5,
			expected: []byte{},
		},
		{
			name:     "number literal",
			path:     "n",
			length:   4,
			expected: []byte("3.10"),
		},
		{
			name:     "false",
			path:     "f",
			length:   5,
			expected: []byte("false"),
		},
		{
			name:        "beyond end",
			path:        "s",
			length:      6,
			expectedErr: provider.ErrOutOfRange,
		},
		{
			name:        "offset beyond end",
			path:        "s",
			offset:      6,
			expectedErr: provider.ErrOutOfRange,
		},
		{
			name:        "overflow",
			path:        "s",
			offset:      2,
			length:      math.MaxUint64,
			expectedErr: provider.ErrOutOfRange,
		},
		{
			name:        "object",
			path:        "d",
			expectedErr: provider.ErrInvalidArgument,
		},
		{
			name:        "array",
			path:        "a",
			offset:      math.MaxUint64,
			length:      math.MaxUint64,
			expectedErr: provider.ErrInvalidArgument,
		},
		{
			name:        "root",
			path:        "",
			expectedErr: provider.ErrInvalidArgument,
		},
		{
			name:        "missing",
			path:        "x",
			expectedErr: provider.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := p.ReadFile(tt.path, tt.offset, tt.length)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				var pathErr *provider.PathError
				require.ErrorAs(t, err, &pathErr)
				assert.Equal(t, "read", pathErr.Op)
				assert.Equal(t, tt.path, pathErr.Path)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestProvider_ReadFileWholeContent(t *testing.T) {
	root := mustParse(t, `{
		"null": null, "true": true, "false": false,
		"int": 7, "float": -0.25e-3, "str": "ünïcode", "empty": ""
	}`)
	p := provider.New(root)

	for key, value := range root.Members() {
		t.Run(key, func(t *testing.T) {
			expected, ok := provider.Render(value)
			require.True(t, ok)

			entry, err := p.Stat(key)
			require.NoError(t, err)
			assert.EqualValues(t, len(expected), entry.Size)

			actual, err := p.ReadFile(key, 0, entry.Size)
			require.NoError(t, err)
			assert.Equal(t, expected, actual)

			_, err = p.ReadFile(key, 0, entry.Size+1)
			assert.ErrorIs(t, err, provider.ErrOutOfRange)
		})
	}
}

func TestProvider_ReadFileFresh(t *testing.T) {
	p := provider.New(jsontree.Array(jsontree.String("abc")))

	first, err := p.ReadFile("0", 0, 3)
	require.NoError(t, err)

	first[0] = 'x'

	second, err := p.ReadFile("0", 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), second)
}

func TestProvider_Stat(t *testing.T) {
	p := provider.New(mustParse(t, scenarioDocument))

	tests := []struct {
		path     string
		expected provider.Entry
	}{
		{
			path:     "",
			expected: provider.Entry{Kind: provider.KindDirectory},
		},
		{
			path:     "x",
			expected: provider.Entry{Name: "x", Kind: provider.KindDirectory},
		},
		{
			path:     "x/1",
			expected: provider.Entry{Name: "1", Kind: provider.KindFile, Size: 3},
		},
		{
			path:     "/y/",
			expected: provider.Entry{Name: "y", Kind: provider.KindFile},
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			actual, err := p.Stat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestProvider_PathVariants(t *testing.T) {
	p := provider.New(mustParse(t, `{"a/b": "slash", "a": {"b": "nested"}}`))

	data, err := p.ReadPath(provider.Path{"a/b"}, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("slash"), data, "segments are not split again")

	data, err = p.ReadFile("a/b", 0, 6)
	require.NoError(t, err)
	assert.Equal(t, []byte("nested"), data)

	entry, err := p.StatPath(provider.Path{"a/b"})
	require.NoError(t, err)
	assert.Equal(t, provider.Entry{Name: "a/b", Kind: provider.KindFile, Size: 5}, entry)

	assert.Equal(t, p.ListDirectory("a"), p.ListPath(provider.Path{"a"}))
}

func TestProvider_NilRoot(t *testing.T) {
	p := provider.New(nil)

	assert.Equal(t, jsontree.KindNull, p.Root().Kind())
	assert.Empty(t, p.ListDirectory(""))

	data, err := p.ReadFile("", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestProvider_Concurrent(t *testing.T) {
	root := mustParse(t, `{
		"list": [0, 1, 2, 3, 4, 5, 6, 7, 8, 9],
		"text": "some longer text content",
		"obj": {"a": true, "b": null}
	}`)
	p := provider.New(root)

	expectedList := p.ListDirectory("list")

	textEntry, err := p.Stat("text")
	require.NoError(t, err)
	require.EqualValues(t, 24, textEntry.Size)

	expectedText, err := p.ReadFile("text", 0, textEntry.Size)
	require.NoError(t, err)
	require.Equal(t, "some longer text content", string(expectedText))

	_, err = p.ReadFile("text", 0, textEntry.Size+1)
	require.ErrorIs(t, err, provider.ErrOutOfRange)

	var eg errgroup.Group

	for worker := range 32 {
		eg.Go(func() error {
			for iteration := range 200 {
				switch (worker + iteration) % 4 {
				case 0:
					if !assert.Equal(t, expectedList, p.ListDirectory("list")) {
						return assert.AnError
					}
				case 1:
					data, err := p.ReadFile("text", 0, textEntry.Size)
					if err != nil {
						return err
					}

					if !assert.Equal(t, expectedText, data) {
						return assert.AnError
					}
				case 2:
					_, err := p.ReadFile("obj", 0, 1)
					if !assert.ErrorIs(t, err, provider.ErrInvalidArgument) {
						return assert.AnError
					}
				default:
					if _, err := p.Stat("list/9"); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}

	require.NoError(t, eg.Wait())
}
