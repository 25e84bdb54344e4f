package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedInlineImage = errors.New("malformed inline image")

// IsInlineImage reports whether s is a base64 data URL image left over from
// before images were moved to object storage.
func IsInlineImage(s string) bool {
	return strings.HasPrefix(s, "data:image")
}

// DecodeInlineImage parses "data:image/<type>;base64,<payload>".
func DecodeInlineImage(s string) ([]byte, string, error) {
	header, payload, ok := strings.Cut(s, ",")
	if !ok || !IsInlineImage(header) {
		return nil, "", ErrMalformedInlineImage
	}

	mediaType := strings.TrimPrefix(header, "data:")
	contentType, encoding, _ := strings.Cut(mediaType, ";")
	if encoding != "base64" {
		return nil, "", fmt.Errorf("%w: unsupported encoding %q", ErrMalformedInlineImage, encoding)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrMalformedInlineImage, err)
	}
	return data, contentType, nil
}
