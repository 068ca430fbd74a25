// Package testutil builds synthetic dictionary images in memory so tests can
// exercise the loader without shipping real lexicon files.
package testutil

import (
	"encoding/binary"
	"sort"

	"github.com/hupe1980/dartdict/format"
	"github.com/hupe1980/dartdict/token"
	"github.com/hupe1980/dartdict/trie"
)

// KeySpec declares one dictionary entry: a surface key and the token-table
// slice it should point at.
type KeySpec struct {
	Key   string
	First uint32
	Count uint32
}

// baseSpacing keeps every node's child range [base+1, base+256] disjoint
// from all other nodes' ranges and terminal cells.
const baseSpacing = 0x200

type node struct {
	children map[byte]*node
	terminal bool
	first    uint32
	count    uint32
	base     uint32
}

// BuildLinks constructs a well-formed double-array link table encoding the
// given keys. Node bases are assigned breadth-first with a spacing wide
// enough that no two cells collide, so the result is valid by construction
// rather than compact.
func BuildLinks(specs []KeySpec) []trie.Link {
	root := &node{children: map[byte]*node{}}
	for _, s := range specs {
		n := root
		for _, b := range []byte(s.Key) {
			child, ok := n.children[b]
			if !ok {
				child = &node{children: map[byte]*node{}}
				n.children[b] = child
			}
			n = child
		}
		n.terminal = true
		n.first, n.count = s.First, s.Count
	}

	// Breadth-first base assignment: node i gets base 1 + i*baseSpacing.
	order := []*node{root}
	for i := 0; i < len(order); i++ {
		n := order[i]
		n.base = uint32(1 + i*baseSpacing)
		for _, b := range sortedBytes(n.children) {
			order = append(order, n.children[b])
		}
	}

	last := order[len(order)-1]
	links := make([]trie.Link, last.base+0x100+2)
	links[0] = trie.Link{Base: root.base}

	for _, n := range order {
		if n.terminal {
			ptr := n.first*0x100 + n.count
			links[n.base] = trie.Link{Base: ^ptr, Check: n.base}
		}
		for _, b := range sortedBytes(n.children) {
			child := n.children[b]
			links[n.base+1+uint32(b)] = trie.Link{Base: child.base, Check: n.base}
		}
	}

	return links
}

func sortedBytes(m map[byte]*node) []byte {
	out := make([]byte, 0, len(m))
	for b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Image describes one dictionary file to serialize. Zero values are filled
// with working defaults; the size overrides exist so corruption tests can
// declare byte counts that contradict the actual sections.
type Image struct {
	Magic         uint32
	Version       uint32
	Kind          uint32
	EntryCount    uint32
	LeftContexts  uint32
	RightContexts uint32
	Encoding      string

	Links    []trie.Link
	Tokens   []token.Token
	Features []byte

	LinkBytes    *uint32
	TokenBytes   *uint32
	FeatureBytes *uint32
}

// Bytes serializes the image in the on-disk layout (little-endian).
func (img Image) Bytes() []byte {
	version := img.Version
	if version == 0 {
		version = format.SupportedVersion
	}
	encoding := img.Encoding
	if encoding == "" {
		encoding = format.Encoding
	}

	linkBytes := uint32(len(img.Links) * format.LinkRecordSize)
	if img.LinkBytes != nil {
		linkBytes = *img.LinkBytes
	}
	tokenBytes := uint32(len(img.Tokens) * format.TokenRecordSize)
	if img.TokenBytes != nil {
		tokenBytes = *img.TokenBytes
	}
	featureBytes := uint32(len(img.Features))
	if img.FeatureBytes != nil {
		featureBytes = *img.FeatureBytes
	}

	out := make([]byte, 0, format.HeaderSize+len(img.Links)*format.LinkRecordSize+len(img.Tokens)*format.TokenRecordSize+len(img.Features))
	for _, v := range []uint32{
		img.Magic, version, img.Kind, img.EntryCount,
		img.LeftContexts, img.RightContexts,
		linkBytes, tokenBytes, featureBytes,
		0, // reserved
	} {
		out = binary.LittleEndian.AppendUint32(out, v)
	}

	enc := make([]byte, format.EncodingFieldSize)
	copy(enc, encoding)
	out = append(out, enc...)

	for _, l := range img.Links {
		out = binary.LittleEndian.AppendUint32(out, l.Base)
		out = binary.LittleEndian.AppendUint32(out, l.Check)
	}
	for _, t := range img.Tokens {
		out = AppendToken(out, t)
	}
	return append(out, img.Features...)
}

// AppendToken serializes one 16-byte token record. The ID field is positional
// and never written.
func AppendToken(b []byte, t token.Token) []byte {
	b = binary.LittleEndian.AppendUint16(b, t.LeftID)
	b = binary.LittleEndian.AppendUint16(b, t.RightID)
	b = binary.LittleEndian.AppendUint16(b, t.PosID)
	b = binary.LittleEndian.AppendUint16(b, uint16(t.Cost))
	b = binary.LittleEndian.AppendUint32(b, t.FeatureOffset)
	return binary.LittleEndian.AppendUint32(b, t.Compound)
}

// MakeTokens returns n distinct records so tests can tell table positions
// apart: record i carries Cost i and PosID i.
func MakeTokens(n int) []token.Token {
	tokens := make([]token.Token, n)
	for i := range tokens {
		tokens[i] = token.Token{
			LeftID:  uint16(100 + i),
			RightID: uint16(200 + i),
			PosID:   uint16(i),
			Cost:    int16(i),
		}
	}
	return tokens
}
