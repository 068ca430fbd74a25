package dartdict

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/hupe1980/dartdict/format"
	"github.com/hupe1980/dartdict/internal/mmap"
	"github.com/hupe1980/dartdict/token"
	"github.com/hupe1980/dartdict/trie"
)

// zstdMagic is the little-endian frame magic 0xFD2FB528.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Load reads a compiled DART dictionary from r in one strictly sequential
// pass. expectedMagic selects the dictionary kind the caller will accept.
//
// The load is all-or-nothing: any header, structural, or I/O failure aborts
// the whole operation and no partial dictionary is ever returned. The caller
// keeps ownership of r; reloading after a failure means re-opening the
// stream from the start.
//
// If the stream starts with a zstd frame it is decompressed transparently.
func Load(r io.Reader, expectedMagic uint32, optFns ...Option) (*Dict, error) {
	o := applyOptions(optFns)

	d, err := load(r, expectedMagic, o)
	o.logger.LogLoad(d, err)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// LoadFile memory-maps the file at path read-only and loads it. When the
// platform refuses the mapping it falls back to buffered reads. The mapping
// is released before returning; the dictionary owns copies of everything it
// keeps.
func LoadFile(path string, expectedMagic uint32, optFns ...Option) (*Dict, error) {
	if m, err := mmap.Open(path); err == nil {
		defer m.Close()
		return Load(bytes.NewReader(m.Data), expectedMagic, optFns...)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, expectedMagic, optFns...)
}

func load(r io.Reader, expectedMagic uint32, o options) (*Dict, error) {
	src, closeSrc, err := decompressed(bufio.NewReaderSize(r, 256*1024))
	if err != nil {
		return nil, err
	}
	defer closeSrc()

	br := format.NewReader(src)

	h, err := format.ReadHeader(br, expectedMagic)
	if err != nil {
		return nil, err
	}

	links, err := trie.ReadTable(br, h.LinkCount())
	if err != nil {
		return nil, err
	}

	tokens, err := token.ReadTable(src, h.TokenCount())
	if err != nil {
		return nil, err
	}

	features, err := br.Bytes(h.FeatureBytes)
	if err != nil {
		return nil, fmt.Errorf("read feature blob: %w", err)
	}

	walked, err := trie.Walk(links, o.maxKeyBytes)
	if err != nil {
		return nil, err
	}

	return newDict(h, walked, tokens, features)
}

// decompressed sniffs the stream head and, for zstd-framed input, inserts a
// decoder. Plain dictionaries pass through untouched.
func decompressed(br *bufio.Reader) (io.Reader, func(), error) {
	head, err := br.Peek(len(zstdMagic))
	if err != nil || !bytes.Equal(head, zstdMagic) {
		// Short or unpeekable streams are left for the header parser,
		// which reports the real error.
		return br, func() {}, nil
	}

	dec, err := zstd.NewReader(br)
	if err != nil {
		return nil, nil, fmt.Errorf("open zstd frame: %w", err)
	}
	return dec, dec.Close, nil
}
