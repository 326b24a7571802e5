package datastructures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieInsertContains(t *testing.T) {
	tr := NewTrie()
	assert.Equal(t, 0, tr.Size())
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.Contains("a"))
	assert.False(t, tr.Contains("apple"))

	tr.Insert("apple")
	assert.Equal(t, 5, tr.Size())
	assert.True(t, tr.Contains("apple"))
	assert.False(t, tr.Contains(""))
	assert.False(t, tr.Contains("app"))
	assert.False(t, tr.Contains("appl"))
	assert.False(t, tr.Contains("apples"))

	tr.Insert("orange")
	assert.Equal(t, 11, tr.Size())
	assert.True(t, tr.Contains("apple"))
	assert.True(t, tr.Contains("orange"))
	assert.False(t, tr.Contains("orang"))
	assert.False(t, tr.Contains("oranges"))
	assert.False(t, tr.Contains("pear"))
}

func TestTrieSharedPrefixes(t *testing.T) {
	tr := NewTrie()
	tr.Insert("orange")
	tr.Insert("oranges")

	// "oranges" only adds one entry beyond "orange".
	assert.Equal(t, 7, tr.Size())
	assert.True(t, tr.Contains("orange"))
	assert.True(t, tr.Contains("oranges"))
	assert.False(t, tr.Contains("orang"))

	// A word that is a prefix of an existing word becomes a member once
	// inserted itself.
	tr.Insert("or")
	assert.Equal(t, 7, tr.Size())
	assert.True(t, tr.Contains("or"))
	assert.False(t, tr.Contains("o"))
}

func TestTrieReinsert(t *testing.T) {
	tr := NewTrie()
	tr.Insert("apple")
	tr.Insert("apple")
	assert.Equal(t, 5, tr.Size())
	assert.True(t, tr.Contains("apple"))
}

func TestTrieEmptyInsert(t *testing.T) {
	tr := NewTrie()
	tr.Insert("")
	assert.Equal(t, 0, tr.Size())
	assert.False(t, tr.Contains(""))
}
