package dartdict

import "github.com/hupe1980/dartdict/format"

// Format errors are defined next to the layout they guard in the format
// package and re-exported here as the public error contract. All of them are
// fatal to the load call; none is retried internally.
var (
	// ErrFormatMismatch is returned when the file's magic number does not
	// match the dictionary kind the caller expected.
	ErrFormatMismatch = format.ErrFormatMismatch

	// ErrUnsupportedVersion is returned when the version field is not the
	// single supported value.
	ErrUnsupportedVersion = format.ErrUnsupportedVersion

	// ErrStructuralCorruption is returned when section byte counts are not
	// multiples of their record size, a token-range pointer addresses past
	// the token table, or the trie walk detects a cycle.
	ErrStructuralCorruption = format.ErrStructuralCorruption

	// ErrUnsupportedEncoding is returned when the encoding field is not
	// "UTF-8".
	ErrUnsupportedEncoding = format.ErrUnsupportedEncoding
)
