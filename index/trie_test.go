package index

import (
	"reflect"
	"testing"
)

func collectPrefix(trie *Trie, prefix string) []string {
	var terms []string
	trie.WalkPrefix(prefix, func(term string, _ *ScoreList) {
		terms = append(terms, term)
	})
	return terms
}

func buildTrie(terms ...string) *Trie {
	trie := NewTrie()
	for _, term := range terms {
		trie.Insert(term, &ScoreList{})
	}
	return trie
}

func TestTrieWalkPrefix(t *testing.T) {
	trie := buildTrie("apple", "applied", "app", "banana", "band")

	tests := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"shared prefix", "app", []string{"app", "apple", "applied"}},
		{"exact term included", "apple", []string{"apple"}},
		{"different branch", "ban", []string{"banana", "band"}},
		{"no match", "cherry", nil},
		{"prefix longer than any term", "applesauce", nil},
		{"empty prefix walks everything", "", []string{"app", "apple", "applied", "banana", "band"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectPrefix(trie, tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WalkPrefix(%q) visited %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestTrieEmptyTermIsAValidKey(t *testing.T) {
	trie := buildTrie("", "a")

	if _, ok := trie.Get(""); !ok {
		t.Fatal("Get(\"\") did not find the empty term")
	}
	got := collectPrefix(trie, "")
	want := []string{"", "a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WalkPrefix(\"\") visited %v, want %v", got, want)
	}
}

func TestTrieLenCountsDistinctTerms(t *testing.T) {
	trie := buildTrie("apple", "apple", "banana")
	if trie.Len() != 2 {
		t.Errorf("Len() = %d, want 2", trie.Len())
	}
}

func TestTrieInsertReplacesList(t *testing.T) {
	trie := NewTrie()
	first := &ScoreList{}
	second := &ScoreList{}
	trie.Insert("term", first)
	trie.Insert("term", second)

	got, ok := trie.Get("term")
	if !ok || got != second {
		t.Error("Insert did not replace the stored list for an existing term")
	}
}

func TestEmptyTrie(t *testing.T) {
	trie := NewTrie()
	if trie.Len() != 0 {
		t.Errorf("Len() = %d, want 0", trie.Len())
	}
	if got := collectPrefix(trie, "anything"); got != nil {
		t.Errorf("WalkPrefix on empty trie visited %v, want none", got)
	}
}

func TestTrieUTF8ByteKeys(t *testing.T) {
	// Prefix matching operates on raw UTF-8 bytes, so a multi-byte rune
	// shares its leading bytes across terms.
	trie := buildTrie("café", "cafés")

	got := collectPrefix(trie, "café")
	want := []string{"café", "cafés"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WalkPrefix(%q) visited %v, want %v", "café", got, want)
	}
}
