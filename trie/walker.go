package trie

import (
	"fmt"
	"unicode/utf8"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/dartdict/format"
)

// Entry is one reconstructed dictionary key and its token-range pointer.
type Entry struct {
	Key   string
	Range TokenRange
}

// frame is one pending traversal state. Each frame owns its key bytes, so no
// buffer is shared between levels of the walk.
type frame struct {
	base uint32
	key  []byte
}

// Walk enumerates every (key, token-range) pair reachable from the root.
//
// The traversal is depth-first with sibling bytes visited in ascending order,
// so the output order is deterministic: when two paths decode to the same key
// string, the later entry in the result is the one discovered later in
// ascending-byte order.
//
// Keys whose accumulated bytes are not valid UTF-8 are dropped silently; the
// double array is sparse by design and an unallocated slot is not an error.
// A slot reachable twice, or a key growing past maxKeyBytes, cannot occur in
// a well-formed file and fails with format.ErrStructuralCorruption instead of
// looping forever on crafted input.
func Walk(links []Link, maxKeyBytes int) ([]Entry, error) {
	if len(links) == 0 {
		return nil, fmt.Errorf("%w: empty link table", format.ErrStructuralCorruption)
	}

	// In this format a node is addressed by its base value: check fields
	// name the parent's base, not its slot. Two nodes sharing a base value
	// would already alias each other's children, so any slot observed twice
	// means the file is broken, not that the trie shares suffixes.
	visited := roaring.New()

	var entries []Entry
	stack := []frame{{base: links[0].Base}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.key) > maxKeyBytes {
			return nil, fmt.Errorf("%w: key exceeds %d bytes, link chain does not terminate", format.ErrStructuralCorruption, maxKeyBytes)
		}

		if validTerminal(links, f.base, f.base) {
			if utf8.Valid(f.key) {
				entries = append(entries, Entry{
					Key:   string(f.key),
					Range: decodeRange(links[f.base].Base),
				})
			}
		}

		// Push children high byte first so they pop in ascending order.
		for i := 0xFF; i >= 0; i-- {
			to := uint64(f.base) + 1 + uint64(i)
			if to >= uint64(len(links)) || !validLink(links, f.base, uint32(to)) {
				continue
			}
			if visited.Contains(uint32(to)) {
				return nil, fmt.Errorf("%w: link slot %d reachable twice", format.ErrStructuralCorruption, to)
			}
			visited.Add(uint32(to))

			key := make([]byte, len(f.key)+1)
			copy(key, f.key)
			key[len(f.key)] = byte(i)
			stack = append(stack, frame{base: links[to].Base, key: key})
		}
	}

	return entries, nil
}
