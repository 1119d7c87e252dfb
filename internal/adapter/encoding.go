package adapter

import (
	"encoding/base64"
	"strings"
)

// Base64 defines an interface for Base64 operations to enable mocking
//
//go:generate mockgen -source=encoding.go -destination=../mocks/encoding.go -package=mocks -mock_names=Base64=MockBase64
type Base64 interface {
	Encode(data []byte) string
	// Decode accepts standard and URL-safe alphabets, padded or not
	Decode(data string) ([]byte, error)
}

type RealBase64 struct{}

func NewBase64() Base64 {
	return &RealBase64{}
}

func (b *RealBase64) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (b *RealBase64) Decode(data string) ([]byte, error) {
	data = strings.TrimRight(strings.TrimSpace(data), "=")
	if strings.ContainsAny(data, "-_") {
		return base64.RawURLEncoding.DecodeString(data)
	}
	return base64.RawStdEncoding.DecodeString(data)
}
