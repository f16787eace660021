package ask

import (
	"encoding/json"
	"io"
	"strings"
	"unicode/utf8"

	"tutor-proxy/api/internal/syllabus"
)

const maxQuestionRunes = 1500

// Normalize decodes the request body, applies defaults and validates. It is
// pure apart from reading r; nothing upstream is touched.
func Normalize(r io.Reader) (Request, error) {
	var raw rawRequest
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Request{}, err
	}
	return normalizeRaw(raw)
}

func normalizeRaw(raw rawRequest) (Request, error) {
	req := Request{
		Board:      strings.ToUpper(defaultStr(raw.Board, "ICSE")),
		ClassLevel: defaultStr(raw.ClassLevel, "10"),
		Subject:    defaultStr(raw.Subject, "General"),
		Chapter:    defaultStr(raw.Chapter, "General"),
		Question:   strings.TrimSpace(raw.Question),
		Tier:       normalizeTier(raw.Model),
	}

	// Older clients send "files", newer ones "attachments".
	req.Files = raw.Files
	if len(req.Files) == 0 {
		req.Files = raw.Attachments
	}

	if !syllabus.BoardAllowed(req.Board) {
		return Request{}, ErrInvalidBoard
	}
	if req.Question == "" && len(req.Files) == 0 {
		return Request{}, ErrMissingQuestion
	}
	if utf8.RuneCountInString(req.Question) > maxQuestionRunes {
		return Request{}, ErrQuestionTooLong
	}
	return req, nil
}

func normalizeTier(model string) Tier {
	switch strings.ToLower(strings.TrimSpace(model)) {
	case "t2", "advanced", "pro":
		return TierAdvanced
	default:
		return TierFast
	}
}

func defaultStr(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}
