// Package qrcode renders PNG QR codes for shareable links, either as raw
// bytes or as a data URI for inline <img> tags. It wraps
// github.com/skip2/go-qrcode with size bounds and input validation.
package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyContent is returned when content is empty or only whitespace.
	ErrEmptyContent = errors.New("qrcode: content cannot be empty")
	// ErrGenerate wraps failures of the underlying encoder.
	ErrGenerate = errors.New("qrcode: failed to generate image")
)

const (
	DefaultSize = 256
	MaxSize     = 1024
)

// Generate encodes content as a square PNG of size pixels. Sizes <= 0 fall
// back to DefaultSize and sizes above MaxSize are clamped.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, normalizeSize(size))
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI is Generate encoded as "data:image/png;base64,...".
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func normalizeSize(size int) int {
	switch {
	case size <= 0:
		return DefaultSize
	case size > MaxSize:
		return MaxSize
	default:
		return size
	}
}
