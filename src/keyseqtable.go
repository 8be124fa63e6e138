package mim

import (
	"bytes"
	"sort"
)

// keyseqEntry is one compiled rule: a byte-sequence key and the Action
// list to execute on an exact match.
type keyseqEntry struct {
	key     []byte
	actions Element
}

// KeyseqTable is the compiled body of one `map` form: a mapping from a
// byte-sequence key to an Action list, supporting exact lookup and
// efficient longest-prefix matching over a queried input. Entries are
// kept sorted by key so both operations are a binary search — O(N log
// |table|) for a query of length N.
type KeyseqTable struct {
	entries []keyseqEntry
}

func newKeyseqTable(entries []keyseqEntry) *KeyseqTable {
	sort.Slice(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})
	return &KeyseqTable{entries: entries}
}

// Lookup returns the Action list stored for an exact key, if any.
func (t *KeyseqTable) Lookup(key []byte) (Element, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return bytes.Compare(t.entries[i].key, key) >= 0
	})
	if i < len(t.entries) && bytes.Equal(t.entries[i].key, key) {
		return t.entries[i].actions, true
	}
	return Element{}, false
}

// LongestMatch finds the longest L in [1, min(len(input), maxLen)] — L
// counted in runes — such that the UTF-8 encoding of input[:L] is a key
// in the table, returning L and its Action list. ok is false if no
// rune-prefix of input matched any stored key. The cap is a character
// count ("10 key characters"), not a byte count, so each
// candidate prefix is re-encoded from runes rather than sliced in bytes.
func (t *KeyseqTable) LongestMatch(input []rune, maxLen int) (length int, actions Element, ok bool) {
	limit := maxLen
	if len(input) < limit {
		limit = len(input)
	}
	for l := 1; l <= limit; l++ {
		key := []byte(string(input[:l]))
		if actionList, found := t.Lookup(key); found {
			length, actions, ok = l, actionList, true
		}
	}
	return
}
