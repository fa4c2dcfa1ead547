package datauri

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name        string
		data        []byte
		contentType string
	}{
		{"jpeg bytes", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}, "image/jpeg"},
		{"png bytes", []byte("\x89PNG\r\n\x1a\n"), "image/png"},
		{"empty payload", []byte{}, "image/gif"},
		{"binary with nulls", bytes.Repeat([]byte{0x00, 0xFE}, 1024), "application/octet-stream"},
		{"content type with params", []byte("hello"), "text/plain; charset=utf-8"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uri := Encode(tc.data, tc.contentType)

			data, contentType, err := Decode(uri)
			require.NoError(t, err)
			assert.Equal(t, tc.contentType, contentType)
			assert.True(t, bytes.Equal(tc.data, data))
		})
	}
}

func TestEncodeDefaultsContentType(t *testing.T) {
	uri := Encode([]byte("x"), "")

	_, contentType, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", contentType)
}

func TestEncodeLargePayload(t *testing.T) {
	// Boundary: the configured 10 MiB upload cap.
	data := bytes.Repeat([]byte{0xAB}, 10*1024*1024)

	decoded, contentType, err := Decode(Encode(data, "image/jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.True(t, bytes.Equal(data, decoded))
}

func TestDecodeInvalid(t *testing.T) {
	cases := []struct {
		name string
		uri  string
	}{
		{"not a data uri", "https://example.com/photo.jpg"},
		{"missing base64 marker", "data:image/jpeg,rawbytes"},
		{"bad base64", "data:image/jpeg;base64,&&&&"},
		{"empty string", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Decode(tc.uri)
			assert.ErrorIs(t, err, ErrInvalidURI)
		})
	}
}
