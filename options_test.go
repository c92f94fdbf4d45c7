// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOptionsYAML(t *testing.T) {
	t.Parallel()

	opts, err := DecodeOptions(strings.NewReader(`
dot: true
nocase: true
strictSlashes: true
maxLength: 128
matchTimeout: 250ms
ignore:
  - "**/*.tmp"
  - "**/.git/**"
literalBrackets: false
`))
	require.NoError(t, err)

	assert.True(t, opts.Dot)
	assert.True(t, opts.NoCase)
	assert.True(t, opts.StrictSlashes)
	assert.Equal(t, 128, opts.MaxLength)
	assert.Equal(t, 250*time.Millisecond, opts.MatchTimeout)
	assert.Equal(t, []string{"**/*.tmp", "**/.git/**"}, opts.Ignore)
	require.NotNil(t, opts.LiteralBrackets)
	assert.False(t, *opts.LiteralBrackets)
}

func TestDecodeOptionsJSON(t *testing.T) {
	t.Parallel()

	opts, err := DecodeOptions(strings.NewReader(`{"windows": true, "noextglob": true, "prepend": "(?:x)?"}`))
	require.NoError(t, err)

	assert.True(t, opts.Windows)
	assert.True(t, opts.NoExtglob)
	assert.Equal(t, "(?:x)?", opts.Prepend)
}

func TestDecodeOptionsRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "unknown key", doc: "dotfiles: true\n"},
		{name: "wrong type", doc: "dot: [1, 2]\n"},
		{name: "negative length", doc: "maxLength: -1\n"},
		{name: "negative timeout", doc: "matchTimeout: -1s\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeOptions(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestDecodeOptionsEmpty(t *testing.T) {
	t.Parallel()

	opts, err := DecodeOptions(strings.NewReader(""))
	require.NoError(t, err)
	assert.True(t, opts.cacheable())
}

func TestLoadOptionsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "glob.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dot: true\nmatchBase: true\n"), 0o600))

	opts, err := LoadOptionsFile(path)
	require.NoError(t, err)
	assert.True(t, opts.Dot)
	assert.True(t, opts.MatchBase)

	ok, err := IsMatch("a/b/.env", "*", opts)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = LoadOptionsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, Options{}.Validate())
	require.ErrorIs(t, Options{MaxLength: -5}.Validate(), ErrInvalidOptions)
	require.ErrorIs(t, Options{MatchTimeout: -time.Second}.Validate(), ErrInvalidOptions)
}
