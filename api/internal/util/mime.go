package util

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// DecodeBase64MaybeDataURL decodes base64 payloads. If the string is a
// data: URI, the MIME type from its prefix is returned as a hint.
func DecodeBase64MaybeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var hintMIME string
	if strings.HasPrefix(s, "data:") {
		// data:<mime>;base64,<payload>
		if idx := strings.IndexByte(s, ','); idx > 0 {
			meta := s[len("data:"):idx] // "<mime>;base64"
			if semi := strings.IndexByte(meta, ';'); semi >= 0 {
				hintMIME = meta[:semi]
			} else {
				hintMIME = meta
			}
			s = s[idx+1:]
		}
	}
	// Standard base64 first, then URL-safe for clients that send it.
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, hintMIME, nil
	} else if b2, err2 := base64.URLEncoding.DecodeString(s); err2 == nil {
		return b2, hintMIME, nil
	} else {
		return nil, "", err
	}
}

// PickMIME prefers the explicit MIME, then the data:URI hint, otherwise
// detects from the bytes.
func PickMIME(explicit, hint string, data []byte) string {
	if exp := strings.TrimSpace(explicit); exp != "" {
		return normalizeMIME(exp)
	}
	if h := strings.TrimSpace(hint); h != "" {
		return normalizeMIME(h)
	}
	if len(data) > 0 {
		return normalizeMIME(http.DetectContentType(data))
	}
	return "application/octet-stream"
}

// normalizeMIME strips parameters like "; charset=utf-8" and lowercases.
func normalizeMIME(m string) string {
	if semi := strings.IndexByte(m, ';'); semi >= 0 {
		m = m[:semi]
	}
	return strings.ToLower(strings.TrimSpace(m))
}
