// Package trie walks the double-array trie section of a compiled dictionary.
//
// The on-disk trie is a flat array of (base, check) pairs. A transition from
// state `from` to array slot `to` is trusted only when the slot's check field
// names `from` as its origin; everything else is unallocated garbage and is
// pruned, never reported as an error.
package trie

import (
	"fmt"

	"github.com/hupe1980/dartdict/format"
)

// Link is one double-array trie node as stored on disk.
//
// Check records the state this slot was reached from. Base is overloaded:
// for an internal node it is the forward offset used to compute child slots
// (base + 1 + byteValue); for a terminal node its most significant bit is set
// and its bitwise complement packs a token-range pointer.
type Link struct {
	Base  uint32
	Check uint32
}

const terminalFlag = 0x8000_0000

// TokenRange identifies a contiguous run of token records associated with
// one dictionary key. It is the decoded form of a terminal node's base field,
// so nothing downstream has to re-inspect raw bits.
type TokenRange struct {
	First uint32
	Count uint32
}

// decodeRange unpacks the complement-encoded pointer of a terminal base.
func decodeRange(base uint32) TokenRange {
	p := ^base
	return TokenRange{First: p / 0x100, Count: p % 0x100}
}

// ReadTable reads n link records in file order. Index 0 holds the trie
// root's container; root transitions begin from links[0].Base.
func ReadTable(br *format.Reader, n uint32) ([]Link, error) {
	links := make([]Link, n)
	for i := range links {
		base, err := br.Uint32()
		if err != nil {
			return nil, fmt.Errorf("read link table: %w", err)
		}
		check, err := br.Uint32()
		if err != nil {
			return nil, fmt.Errorf("read link table: %w", err)
		}
		links[i] = Link{Base: base, Check: check}
	}
	return links, nil
}

// validLink reports whether following the transition from state `from` into
// slot `to` is trustworthy: the slot exists, its check names `from`, and its
// base does not point straight back at `from` (forbids a one-hop loop).
func validLink(links []Link, from, to uint32) bool {
	if uint64(to) >= uint64(len(links)) {
		return false
	}
	l := links[to]
	return l.Check == from && l.Base != from
}

// validTerminal reports whether the self-referential pair (from, from) marks
// a dictionary entry ending at this state.
func validTerminal(links []Link, from, to uint32) bool {
	return validLink(links, from, to) && links[to].Base&terminalFlag != 0
}
