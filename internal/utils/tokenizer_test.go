package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTokens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verlaine.txt")
	content := "les sanglots longs\ndes violons\n\n  de   l'automne\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tokens, err := ReadTokens(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"les", "sanglots", "longs", "des", "violons", "de", "l'automne"}, tokens)
}

func TestReadTokensEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	tokens, err := ReadTokens(path)
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestReadTokensMissingFile(t *testing.T) {
	_, err := ReadTokens(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
