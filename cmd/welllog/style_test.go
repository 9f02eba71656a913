package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/welllog/model"
)

func TestLoadStyle_Default(t *testing.T) {
	s, err := loadStyle("")
	require.NoError(t, err)
	assert.Contains(t, s.Protected, "DEPT")
}

func TestLoadStyle_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"delimiter: comma\nprecision: 4\nline_ending: crlf\nprotected: [DEPT, TVD]\n"), 0o644))

	s, err := loadStyle(path)
	require.NoError(t, err)

	opts, err := s.writerOptions()
	require.NoError(t, err)
	assert.True(t, opts.HasDelimiter)
	assert.Equal(t, model.Comma, opts.Delimiter)
	assert.Equal(t, 4, opts.Precision)
	assert.Equal(t, "\r\n", opts.LineEnding)
	assert.Equal(t, []string{"DEPT", "TVD"}, s.Protected)
}

func TestWriterOptions_Invalid(t *testing.T) {
	_, err := Style{Delimiter: "pipe"}.writerOptions()
	assert.Error(t, err)

	bad := -2
	_, err = Style{Precision: &bad}.writerOptions()
	assert.Error(t, err)

	_, err = Style{LineEnding: "cr"}.writerOptions()
	assert.Error(t, err)
}

func TestLoadStyle_MissingFile(t *testing.T) {
	_, err := loadStyle("/nonexistent/style.yaml")
	assert.Error(t, err)
}
