package datastructures

type (
	// Trie stores a set of words as a tree of rune-keyed child maps.
	Trie struct {
		root trieNode
	}

	trieNode map[rune]*trieEntry

	trieEntry struct {
		// end marks that the path ending at this entry spells a stored word.
		end      bool
		children trieNode
	}
)

// NewTrie creates an empty trie.
func NewTrie() *Trie {
	return &Trie{root: trieNode{}}
}

// Insert adds a word to the trie. Inserting the empty string is a no-op.
func (t *Trie) Insert(token string) {
	runes := []rune(token)
	curr := t.root
	for i, r := range runes {
		entry, ok := curr[r]
		if !ok {
			entry = &trieEntry{children: trieNode{}}
			curr[r] = entry
		}
		if i == len(runes)-1 {
			entry.end = true
		}
		curr = entry.children
	}
}

// Contains reports whether the exact word was inserted. Prefixes of stored
// words are not members, and the empty string never is.
func (t *Trie) Contains(token string) bool {
	runes := []rune(token)
	curr := t.root
	for i, r := range runes {
		entry, ok := curr[r]
		if !ok {
			return false
		}
		if i == len(runes)-1 {
			return entry.end
		}
		curr = entry.children
	}
	return false
}

// Size returns the total number of rune entries stored, counting shared
// prefixes once.
func (t *Trie) Size() int {
	return t.root.size()
}

func (n trieNode) size() int {
	total := len(n)
	for _, entry := range n {
		total += entry.children.size()
	}
	return total
}
