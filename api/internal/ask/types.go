package ask

import "errors"

// Tier selects the upstream model family.
type Tier string

const (
	TierFast     Tier = "fast"
	TierAdvanced Tier = "advanced"
)

// Validation errors surfaced to the client as 400s.
var (
	ErrInvalidBoard    = errors.New("invalid board; use ICSE, CBSE or SSLC")
	ErrMissingQuestion = errors.New("question or at least one attachment is required")
	ErrQuestionTooLong = errors.New("question exceeds the 1500 character limit")
)

// Attachment is one client-supplied file, base64 in Data, optionally as a
// data: URL.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     string `json:"base64"`
}

// rawRequest mirrors the wire body. Attachments arrive under either "files"
// or "attachments" depending on the client generation.
type rawRequest struct {
	Board       string       `json:"board"`
	ClassLevel  string       `json:"class_level"`
	Subject     string       `json:"subject"`
	Chapter     string       `json:"chapter"`
	Question    string       `json:"question"`
	Model       string       `json:"model"`
	Files       []Attachment `json:"files"`
	Attachments []Attachment `json:"attachments"`
}

// Request is the normalized, validated form consumed by the pipeline.
type Request struct {
	Board      string
	ClassLevel string
	Subject    string
	Chapter    string
	Question   string
	Tier       Tier
	Files      []Attachment
}
