package base64

import (
	b64 "encoding/base64"
	"fmt"
	"strings"
)

const payloadMarker = ";base64,"

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, payloadMarker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// Decode strips the data URI prefix and decodes the base64 payload.
func Decode(file string) ([]byte, error) {
	idx := strings.Index(file, payloadMarker)
	if idx == -1 {
		return nil, fmt.Errorf("invalid base64 data URI")
	}

	data, err := b64.StdEncoding.DecodeString(file[idx+len(payloadMarker):])
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return data, nil
}
