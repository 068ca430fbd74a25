// Package token reads the fixed-width morphological token records that
// follow the trie section of a compiled dictionary.
package token

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RecordSize is the on-disk size of one token record.
const RecordSize = 16

// Token is one morphological analysis entry.
//
// ID is not stored in the file; it is the record's zero-based position in the
// token table, which is the index space that trie token-range pointers
// address. FeatureOffset addresses the feature blob, not the token table.
type Token struct {
	ID            uint32
	LeftID        uint16
	RightID       uint16
	PosID         uint16
	Cost          int16
	FeatureOffset uint32
	Compound      uint32
}

// Read reads one 16-byte record and assigns it the given sequential id.
func Read(r io.Reader, id uint32) (Token, error) {
	var raw [RecordSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Token{}, fmt.Errorf("read token %d: %w", id, err)
	}
	return Token{
		ID:            id,
		LeftID:        binary.LittleEndian.Uint16(raw[0:2]),
		RightID:       binary.LittleEndian.Uint16(raw[2:4]),
		PosID:         binary.LittleEndian.Uint16(raw[4:6]),
		Cost:          int16(binary.LittleEndian.Uint16(raw[6:8])),
		FeatureOffset: binary.LittleEndian.Uint32(raw[8:12]),
		Compound:      binary.LittleEndian.Uint32(raw[12:16]),
	}, nil
}

// ReadTable reads n sequential records, assigning ids by table position.
func ReadTable(r io.Reader, n uint32) ([]Token, error) {
	tokens := make([]Token, 0, n)
	for i := uint32(0); i < n; i++ {
		t, err := Read(r, i)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}
