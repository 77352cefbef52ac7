package index

import (
	"sort"
)

// Trie is a prefix tree keyed by the raw UTF-8 bytes of normalized terms.
// Each stored term carries its ScoreList of ranked documents. The trie
// supports enumerating every term sharing a byte-string prefix without
// scanning the full vocabulary.
type Trie struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[byte]*trieNode
	list     *ScoreList // non-nil only on nodes that terminate a term
	term     string
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: &trieNode{}}
}

// Len returns the number of distinct terms stored in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Insert stores list under term, replacing any list previously stored for
// the same term. The empty string is a valid term: all-punctuation tokens
// normalize to "" and are indexed like any other term.
func (t *Trie) Insert(term string, list *ScoreList) {
	node := t.root
	for i := 0; i < len(term); i++ {
		b := term[i]
		if node.children == nil {
			node.children = make(map[byte]*trieNode)
		}
		child, ok := node.children[b]
		if !ok {
			child = &trieNode{}
			node.children[b] = child
		}
		node = child
	}
	if node.list == nil {
		t.size++
	}
	node.list = list
	node.term = term
}

// Get returns the ScoreList stored for an exact term, if any.
func (t *Trie) Get(term string) (*ScoreList, bool) {
	node := t.descend(term)
	if node == nil || node.list == nil {
		return nil, false
	}
	return node.list, true
}

// WalkPrefix calls fn for every stored term having prefix as a byte
// prefix, including the term equal to prefix itself. Terms are visited in
// lexicographic byte order. An empty prefix visits the whole vocabulary.
func (t *Trie) WalkPrefix(prefix string, fn func(term string, list *ScoreList)) {
	node := t.descend(prefix)
	if node == nil {
		return
	}
	walk(node, fn)
}

func (t *Trie) descend(key string) *trieNode {
	node := t.root
	for i := 0; i < len(key); i++ {
		child, ok := node.children[key[i]]
		if !ok {
			return nil
		}
		node = child
	}
	return node
}

func walk(node *trieNode, fn func(term string, list *ScoreList)) {
	if node.list != nil {
		fn(node.term, node.list)
	}
	if len(node.children) == 0 {
		return
	}
	keys := make([]byte, 0, len(node.children))
	for b := range node.children {
		keys = append(keys, b)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, b := range keys {
		walk(node.children[b], fn)
	}
}
