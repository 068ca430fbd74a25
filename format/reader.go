package format

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Reader reads fixed-width little-endian fields from a dictionary stream.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader creates a Reader over r. The caller keeps ownership of r and is
// responsible for buffering and closing it.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Uint32 reads one little-endian 4-byte unsigned integer.
func (br *Reader) Uint32() (uint32, error) {
	if _, err := io.ReadFull(br.r, br.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(br.buf[:4]), nil
}

// Skip discards exactly n bytes.
func (br *Reader) Skip(n int64) error {
	_, err := io.CopyN(io.Discard, br.r, n)
	return err
}

// FixedString reads an n-byte field and trims trailing NUL padding.
func (br *Reader) FixedString(n int) (string, error) {
	raw := make([]byte, n)
	if _, err := io.ReadFull(br.r, raw); err != nil {
		return "", err
	}
	return strings.TrimRight(string(raw), "\x00"), nil
}

// Bytes reads exactly n bytes. A short read fails with the underlying I/O
// error and no partial buffer is returned.
func (br *Reader) Bytes(n uint32) ([]byte, error) {
	blob := make([]byte, n)
	if _, err := io.ReadFull(br.r, blob); err != nil {
		return nil, err
	}
	return blob, nil
}

// ReadHeader reads and validates the fixed file header.
//
// Every failure is fatal for the whole load: the caller must not read any
// table after a header error.
func ReadHeader(br *Reader, expectedMagic uint32) (*Header, error) {
	h := &Header{}

	fields := []*uint32{
		&h.Magic, &h.Version, &h.Kind, &h.EntryCount,
		&h.LeftContexts, &h.RightContexts,
		&h.LinkBytes, &h.TokenBytes, &h.FeatureBytes,
	}
	for _, f := range fields {
		v, err := br.Uint32()
		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		*f = v
	}

	if h.Magic != expectedMagic {
		return nil, fmt.Errorf("%w: magic 0x%08x, want 0x%08x", ErrFormatMismatch, h.Magic, expectedMagic)
	}
	if h.Version != SupportedVersion {
		return nil, fmt.Errorf("%w: 0x%x", ErrUnsupportedVersion, h.Version)
	}
	if h.LinkBytes%LinkRecordSize != 0 {
		return nil, fmt.Errorf("%w: link table is %d bytes, not a multiple of %d", ErrStructuralCorruption, h.LinkBytes, LinkRecordSize)
	}
	if h.TokenBytes%TokenRecordSize != 0 {
		return nil, fmt.Errorf("%w: token table is %d bytes, not a multiple of %d", ErrStructuralCorruption, h.TokenBytes, TokenRecordSize)
	}

	// 4 reserved bytes between the section sizes and the encoding name.
	if err := br.Skip(4); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	enc, err := br.FixedString(EncodingFieldSize)
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	h.Encoding = enc
	if enc != Encoding {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, enc)
	}

	return h, nil
}
