package extract

import "unicode/utf8"

// extractTXT decodes the bytes as strict UTF-8. Invalid input fails with
// ErrInvalidUTF8 rather than decoding with replacement characters.
func extractTXT(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return string(data), nil
}
