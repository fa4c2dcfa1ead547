// Package datauri encodes binary payloads as self-describing data URIs so a
// photo can live inside a single database column and be handed to the
// frontend unchanged as an <img> source.
package datauri

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	scheme       = "data:"
	base64Marker = ";base64,"
	defaultMIME  = "application/octet-stream"
)

var ErrInvalidURI = errors.New("invalid data URI")

// Encode produces "data:<contentType>;base64,<payload>". Total over any byte
// sequence; an empty content type falls back to application/octet-stream.
func Encode(data []byte, contentType string) string {
	if contentType == "" {
		contentType = defaultMIME
	}
	return fmt.Sprintf("%s%s%s%s", scheme, contentType, base64Marker, base64.StdEncoding.EncodeToString(data))
}

// Decode recovers the original bytes and declared content type from a value
// produced by Encode.
func Decode(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, scheme) {
		return nil, "", fmt.Errorf("%w: missing data: prefix", ErrInvalidURI)
	}
	rest := uri[len(scheme):]

	idx := strings.Index(rest, base64Marker)
	if idx < 0 {
		return nil, "", fmt.Errorf("%w: missing base64 marker", ErrInvalidURI)
	}

	contentType := rest[:idx]
	if contentType == "" {
		contentType = defaultMIME
	}

	data, err := base64.StdEncoding.DecodeString(rest[idx+len(base64Marker):])
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	return data, contentType, nil
}
