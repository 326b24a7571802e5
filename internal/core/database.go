package core

import (
	"errors"
	"sync"

	"github.com/vskvj3/listd/internal/datastructures"
	"github.com/vskvj3/listd/internal/utils"
)

// Database holds the named in-memory structures: deque-backed lists,
// stacks, and one shared word trie. The structures themselves are
// single-threaded; the database mutex serializes all access to them.
type Database struct {
	mu     sync.Mutex
	lists  map[string]*datastructures.Deque[string]
	stacks map[string]*datastructures.Stack[string]
	words  *datastructures.Trie
}

// Create a new database instance
func NewDatabase() *Database {
	return &Database{
		lists:  make(map[string]*datastructures.Deque[string]),
		stacks: make(map[string]*datastructures.Stack[string]),
		words:  datastructures.NewTrie(),
	}
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return nil
}

func validateValue(value string) error {
	if value == "" {
		return errors.New("value cannot be empty")
	}
	return nil
}

// LPush adds a value to the head of the named list.
func (db *Database) LPush(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		list = datastructures.NewDeque[string]()
		db.lists[key] = list
	}
	list.PushFront(value)
	return nil
}

// RPush adds a value to the tail of the named list.
func (db *Database) RPush(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		list = datastructures.NewDeque[string]()
		db.lists[key] = list
	}
	list.PushBack(value)
	return nil
}

// LPop removes the head value of the named list. The second return is false
// when the list is missing or empty; that is not an error.
func (db *Database) LPop(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		return "", false, nil
	}
	value, ok := list.PopFront()
	if list.Len() == 0 {
		delete(db.lists, key)
	}
	return value, ok, nil
}

// RPop removes the tail value of the named list.
func (db *Database) RPop(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		return "", false, nil
	}
	value, ok := list.PopBack()
	if list.Len() == 0 {
		delete(db.lists, key)
	}
	return value, ok, nil
}

// LLen returns the length of the named list (0 when missing).
func (db *Database) LLen(key string) (int, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		return 0, nil
	}
	return list.Len(), nil
}

// LClear tears the named list down and returns how many values it held.
func (db *Database) LClear(key string) (int, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		return 0, nil
	}
	removed := list.Len()
	list.Clear()
	delete(db.lists, key)
	return removed, nil
}

// LDrain empties the named list and returns its values, front to back, or
// back to front when reverse is set.
func (db *Database) LDrain(key string, reverse bool) ([]string, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	list, exists := db.lists[key]
	if !exists {
		return []string{}, nil
	}

	it := list.Drain()
	values := []string{}
	for {
		var value string
		var ok bool
		if reverse {
			value, ok = it.NextBack()
		} else {
			value, ok = it.Next()
		}
		if !ok {
			break
		}
		values = append(values, value)
	}
	delete(db.lists, key)
	return values, nil
}

// SPush places a value on top of the named stack.
func (db *Database) SPush(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if err := validateValue(value); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	stack, exists := db.stacks[key]
	if !exists {
		stack = datastructures.NewStack[string]()
		db.stacks[key] = stack
	}
	stack.Push(value)
	return nil
}

// SPop removes the top value of the named stack.
func (db *Database) SPop(key string) (string, bool, error) {
	if err := validateKey(key); err != nil {
		return "", false, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	stack, exists := db.stacks[key]
	if !exists {
		return "", false, nil
	}
	value, ok := stack.Pop()
	if stack.Len() == 0 {
		delete(db.stacks, key)
	}
	return value, ok, nil
}

// SLen returns the depth of the named stack (0 when missing).
func (db *Database) SLen(key string) (int, error) {
	if err := validateKey(key); err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	stack, exists := db.stacks[key]
	if !exists {
		return 0, nil
	}
	return stack.Len(), nil
}

// WordAdd inserts a word into the shared trie.
func (db *Database) WordAdd(word string) error {
	if err := validateValue(word); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	db.words.Insert(word)
	return nil
}

// WordExists reports whether the exact word was added.
func (db *Database) WordExists(word string) bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.words.Contains(word)
}

// WordCount returns the number of rune entries stored in the trie.
func (db *Database) WordCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.words.Size()
}

// LoadWords tokenizes a text file and inserts every token into the trie,
// returning the number of tokens read.
func (db *Database) LoadWords(filename string) (int, error) {
	tokens, err := utils.ReadTokens(filename)
	if err != nil {
		return 0, err
	}

	db.mu.Lock()
	defer db.mu.Unlock()
	for _, token := range tokens {
		db.words.Insert(token)
	}
	return len(tokens), nil
}
