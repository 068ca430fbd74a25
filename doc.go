// Package dartdict loads compiled double-array trie (DART) dictionaries —
// the binary lexicon format used by morphological analyzers — into an
// immutable in-memory index.
//
// # Quick Start
//
//	dict, err := dartdict.LoadFile("sys.dic", magic)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tokens, ok := dict.Get("猫")       // exact surface lookup
//	more := dict.MayContain("ね")      // could a longer key still match?
//	feat := dict.FeatureAt(tokens[0].FeatureOffset)
//
// Loading is a single, all-or-nothing pass: the caller receives either a
// fully populated dictionary or an error, never a partial one. The returned
// Dict is immutable and safe for unsynchronized concurrent reads.
//
// # Format Safety
//
// The loader validates the header (magic, version, record alignment,
// encoding) before trusting any table, and the trie walk is cycle-safe:
// a crafted file that chains back-references fails with
// ErrStructuralCorruption instead of exhausting the stack.
//
// Dictionaries compressed as a zstd frame are detected and decompressed
// transparently.
package dartdict
