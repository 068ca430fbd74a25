package dartdict

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/hupe1980/dartdict/format"
	"github.com/hupe1980/dartdict/token"
	"github.com/hupe1980/dartdict/trie"
)

// Dict is an immutable dictionary index: surface strings mapped to their
// token records, plus the prefix set that lets a longest-match scanner stop
// early. It is constructed once by Load and safe for unsynchronized
// concurrent reads; there is no update path.
type Dict struct {
	entries        map[string][]token.Token
	containsLonger map[string]struct{}
	leftContexts   uint32
	rightContexts  uint32
	features       []byte
}

// newDict expands each walker entry into its token slice and derives the
// prefix index. Entries are inserted in walk order, so when two trie paths
// decode to the same key the one discovered later in ascending-byte order
// wins outright; values are never merged.
func newDict(h *format.Header, walked []trie.Entry, tokens []token.Token, features []byte) (*Dict, error) {
	d := &Dict{
		entries:        make(map[string][]token.Token, len(walked)),
		containsLonger: make(map[string]struct{}),
		leftContexts:   h.LeftContexts,
		rightContexts:  h.RightContexts,
		features:       features,
	}

	for _, e := range walked {
		end := uint64(e.Range.First) + uint64(e.Range.Count)
		if end > uint64(len(tokens)) {
			return nil, fmt.Errorf("%w: key %q addresses tokens [%d, %d) beyond table of %d",
				format.ErrStructuralCorruption, e.Key, e.Range.First, end, len(tokens))
		}
		lexemes := make([]token.Token, e.Range.Count)
		copy(lexemes, tokens[e.Range.First:end])
		d.entries[e.Key] = lexemes
	}

	for key := range d.entries {
		runes := []rune(key)
		for i := 1; i < len(runes); i++ {
			d.containsLonger[string(runes[:i])] = struct{}{}
		}
	}

	return d, nil
}

// Get returns the token records stored for an exact key match, in token-table
// order. The returned slice is shared and must be treated as read-only.
func (d *Dict) Get(s string) ([]token.Token, bool) {
	lexemes, ok := d.entries[s]
	return lexemes, ok
}

// MayContain reports whether s is a dictionary key or a strict prefix (over
// codepoints) of one. A false result tells a longest-match scanner that no
// extension of s can yield an entry.
func (d *Dict) MayContain(s string) bool {
	if _, ok := d.containsLonger[s]; ok {
		return true
	}
	_, ok := d.entries[s]
	return ok
}

// FeatureAt returns the NUL-terminated feature string starting at the given
// byte offset in the feature blob. Out-of-range offsets yield the empty
// string, never an error.
func (d *Dict) FeatureAt(offset uint32) string {
	if uint64(offset) >= uint64(len(d.features)) {
		return ""
	}
	b := d.features[offset:]
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}

// LeftContexts returns the left-context count carried from the header. The
// consumer is expected to cross-check it against its connection-cost table.
func (d *Dict) LeftContexts() uint32 { return d.leftContexts }

// RightContexts returns the right-context count carried from the header.
func (d *Dict) RightContexts() uint32 { return d.rightContexts }

// Len returns the number of distinct surface keys.
func (d *Dict) Len() int { return len(d.entries) }

// Entries iterates over all key/token-list pairs in unspecified order.
// The yielded slices must be treated as read-only.
func (d *Dict) Entries() iter.Seq2[string, []token.Token] {
	return func(yield func(string, []token.Token) bool) {
		for key, lexemes := range d.entries {
			if !yield(key, lexemes) {
				return
			}
		}
	}
}
