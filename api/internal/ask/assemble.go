package ask

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/generative-ai-go/genai"

	"tutor-proxy/api/internal/prompt"
	"tutor-proxy/api/internal/util"
)

// Uploader is the slice of the upstream engine the assembler needs: pushing a
// document to the provider's file store and waiting until it is usable.
type Uploader interface {
	Upload(ctx context.Context, name, mime string, data []byte) (*genai.File, error)
}

const maxInlineTextRunes = 8000

var supportedMIME = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
	"text/plain":      true,
}

// Assemble turns the attachments plus instruction text into the ordered part
// sequence for the generation call: all binary/reference parts first, then
// exactly one text part carrying the instruction plus any annotations.
//
// Attachment problems are never fatal. A bad or unsupported file becomes a
// note in the instruction text and the request proceeds. The returned names
// are provider-side file handles the caller must release after the stream.
func Assemble(ctx context.Context, log *slog.Logger, up Uploader, req Request, instruction string) ([]genai.Part, []string) {
	var (
		parts   []genai.Part
		handles []string
		notes   strings.Builder
	)

	for _, att := range req.Files {
		data, hint, err := util.DecodeBase64MaybeDataURL(att.Data)
		if err != nil {
			log.Warn("attachment decode failed", "file", att.Name, "err", err)
			notes.WriteString(prompt.SkipNote(att.Name, "could not be decoded"))
			continue
		}
		mime := util.PickMIME(att.MimeType, hint, data)

		switch {
		case !supportedMIME[mime]:
			log.Warn("attachment type unsupported", "file", att.Name, "mime", mime)
			notes.WriteString(prompt.SkipNote(att.Name, "unsupported file type "+mime))

		case mime == "text/plain":
			text := util.TruncateRunes(string(data), maxInlineTextRunes, "\n…[truncated]")
			notes.WriteString(prompt.AttachedTextNote(att.Name, text))

		case mime == "application/pdf":
			f, err := up.Upload(ctx, att.Name, mime, data)
			if err != nil {
				// Inline the raw bytes instead of dropping the document.
				log.Warn("document upload failed, inlining", "file", att.Name, "err", err)
				parts = append(parts, genai.Blob{MIMEType: mime, Data: data})
				continue
			}
			handles = append(handles, f.Name)
			parts = append(parts, genai.FileData{MIMEType: f.MIMEType, URI: f.URI})

		default: // images
			parts = append(parts, genai.Blob{MIMEType: mime, Data: data})
		}
	}

	parts = append(parts, genai.Text(instruction+notes.String()))
	return parts, handles
}
