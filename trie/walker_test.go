package trie

import (
	"errors"
	"testing"

	"github.com/hupe1980/dartdict/format"
)

// catLinks hand-packs a trie holding the single key "cat" pointing at token
// range [5, 7). Bases: root 1, then 2, 3, 4 along the path.
func catLinks() []Link {
	links := make([]Link, 130)
	links[0] = Link{Base: 1}
	links[1+1+'c'] = Link{Base: 2, Check: 1}
	links[2+1+'a'] = Link{Base: 3, Check: 2}
	links[3+1+'t'] = Link{Base: 4, Check: 3}
	links[4] = Link{Base: ^uint32(5*0x100 + 2), Check: 4}
	return links
}

// chainLinks builds a single-path trie whose key is n NUL bytes, terminating
// at token range [0, 1). Bases are spaced so cells never collide.
func chainLinks(n int) []Link {
	base := func(k int) uint32 { return uint32(1 + k*0x200) }
	links := make([]Link, base(n)+0x101)
	links[0] = Link{Base: base(0)}
	for k := 0; k < n; k++ {
		links[base(k)+1] = Link{Base: base(k + 1), Check: base(k)}
	}
	links[base(n)] = Link{Base: ^uint32(1), Check: base(n)}
	return links
}

func TestWalk_SingleKey(t *testing.T) {
	entries, err := Walk(catLinks(), 1024)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(entries), entries)
	}
	if entries[0].Key != "cat" {
		t.Errorf("key = %q, want %q", entries[0].Key, "cat")
	}
	if entries[0].Range != (TokenRange{First: 5, Count: 2}) {
		t.Errorf("range = %+v, want {First: 5, Count: 2}", entries[0].Range)
	}
}

func TestWalk_SiblingOrder(t *testing.T) {
	// Root with two children "a" and "b", each a one-byte key.
	links := make([]Link, 0x500)
	links[0] = Link{Base: 1}
	links[1+1+'a'] = Link{Base: 0x200, Check: 1}
	links[1+1+'b'] = Link{Base: 0x300, Check: 1}
	links[0x200] = Link{Base: ^uint32(0*0x100 + 1), Check: 0x200}
	links[0x300] = Link{Base: ^uint32(1*0x100 + 1), Check: 0x300}

	entries, err := Walk(links, 1024)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Ascending byte order is the documented discovery order.
	if entries[0].Key != "a" || entries[1].Key != "b" {
		t.Errorf("keys = %q, %q; want a, b", entries[0].Key, entries[1].Key)
	}
}

func TestWalk_InvalidUTF8Dropped(t *testing.T) {
	// Single key 0xFF: reachable, terminal, but not decodable.
	links := make([]Link, 0x300)
	links[0] = Link{Base: 1}
	links[1+1+0xFF] = Link{Base: 2, Check: 1}
	links[2] = Link{Base: ^uint32(1), Check: 2}

	entries, err := Walk(links, 1024)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0: malformed keys must be dropped silently", len(entries))
	}
}

func TestWalk_SparseSlotsPruned(t *testing.T) {
	// Only garbage around the root: nothing validates, nothing errors.
	links := make([]Link, 300)
	links[0] = Link{Base: 1}
	links[7] = Link{Base: 99, Check: 42} // check names a state we never occupy

	entries, err := Walk(links, 1024)
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}

func TestWalk_CycleDetected(t *testing.T) {
	// base 1 -> slot 2 -> base 3 -> slot 4 -> base 1 again.
	links := []Link{
		{Base: 1},
		{},
		{Base: 3, Check: 1},
		{},
		{Base: 1, Check: 3},
	}

	_, err := Walk(links, 1024)
	if !errors.Is(err, format.ErrStructuralCorruption) {
		t.Fatalf("Walk error = %v, want %v", err, format.ErrStructuralCorruption)
	}
}

func TestWalk_DepthBound(t *testing.T) {
	links := chainLinks(5)

	entries, err := Walk(links, 5)
	if err != nil {
		t.Fatalf("Walk within bound failed: %v", err)
	}
	if len(entries) != 1 || len(entries[0].Key) != 5 {
		t.Fatalf("entries = %+v, want one 5-byte key", entries)
	}

	if _, err := Walk(links, 3); !errors.Is(err, format.ErrStructuralCorruption) {
		t.Fatalf("Walk past bound: error = %v, want %v", err, format.ErrStructuralCorruption)
	}
}

func TestWalk_EmptyTable(t *testing.T) {
	if _, err := Walk(nil, 1024); !errors.Is(err, format.ErrStructuralCorruption) {
		t.Fatalf("Walk(nil) error = %v, want %v", err, format.ErrStructuralCorruption)
	}
}
