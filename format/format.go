// Package format describes the on-disk layout of compiled DART dictionaries
// and provides the little-endian primitives used to read them.
package format

import "errors"

const (
	// SupportedVersion is the only dictionary format version this loader
	// accepts. There are no backward-compatibility shims.
	SupportedVersion = 0x66

	// LinkRecordSize is the size of one double-array trie node on disk.
	LinkRecordSize = 8
	// TokenRecordSize is the size of one token record on disk.
	TokenRecordSize = 16
	// EncodingFieldSize is the fixed width of the encoding-name header field.
	EncodingFieldSize = 32

	// HeaderSize is the total size of the fixed file header.
	HeaderSize = 0x48

	// Encoding is the only character encoding this loader accepts.
	Encoding = "UTF-8"
)

var (
	// ErrFormatMismatch is returned when the magic number does not match the
	// dictionary kind the caller asked for.
	ErrFormatMismatch = errors.New("not a dictionary of the expected kind")

	// ErrUnsupportedVersion is returned for any version other than
	// SupportedVersion.
	ErrUnsupportedVersion = errors.New("unsupported dictionary version")

	// ErrStructuralCorruption is returned when section sizes or the trie
	// structure violate the format's byte-count invariants.
	ErrStructuralCorruption = errors.New("dictionary structurally corrupt")

	// ErrUnsupportedEncoding is returned for any encoding other than UTF-8.
	ErrUnsupportedEncoding = errors.New("unsupported dictionary encoding")
)

// Header is the fixed 0x48-byte header at the start of every dictionary file.
//
// Kind and EntryCount are read for stream position only; the loader has no
// use for them. LeftContexts and RightContexts are retained verbatim so the
// consumer can cross-check them against its connection-cost table.
type Header struct {
	Magic         uint32
	Version       uint32
	Kind          uint32 // system/user/unknown-word tag, ignored
	EntryCount    uint32 // unused count field, ignored
	LeftContexts  uint32
	RightContexts uint32
	LinkBytes     uint32 // must be a multiple of LinkRecordSize
	TokenBytes    uint32 // must be a multiple of TokenRecordSize
	FeatureBytes  uint32 // raw blob, no alignment constraint
	Encoding      string
}

// LinkCount returns the number of link records declared by the header.
func (h *Header) LinkCount() uint32 { return h.LinkBytes / LinkRecordSize }

// TokenCount returns the number of token records declared by the header.
func (h *Header) TokenCount() uint32 { return h.TokenBytes / TokenRecordSize }
