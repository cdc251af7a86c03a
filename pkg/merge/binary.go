// File: pkg/merge/binary.go
package merge

import "bytes"

// isBinaryContent checks if file contents are likely binary by inspecting
// the first few bytes for null bytes or a high ratio of non-printable
// characters.
func isBinaryContent(data []byte) bool {
	sample := data
	if len(sample) > 512 {
		sample = sample[:512]
	}

	// Null bytes are common in binary files.
	if bytes.Contains(sample, []byte{0}) {
		return true
	}

	if len(sample) == 0 {
		return false // Empty files are considered text.
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// If more than 30% non-printable characters, consider it binary.
	return float64(nonPrintable)/float64(len(sample)) > 0.3
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b >= 128
}
