// Package gemini wraps the upstream generative client. One Client is created
// at startup and shared by all requests; every call it issues is stateless,
// so no locking is needed.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tutor-proxy/api/internal/ask"
	"tutor-proxy/api/internal/relay"
)

const (
	uploadPollAttempts = 20
	uploadPollInterval = time.Second
)

// GenParams are the per-request generation knobs.
type GenParams struct {
	MaxOutputTokens int32
	Temperature     float32
}

// CasualParams keeps small-talk replies short and a little playful.
var CasualParams = GenParams{MaxOutputTokens: 256, Temperature: 0.9}

// AcademicParams gives room for full worked answers with low randomness.
var AcademicParams = GenParams{MaxOutputTokens: 2048, Temperature: 0.3}

type Client struct {
	cl            *genai.Client
	fastModel     string
	advancedModel string
}

func New(ctx context.Context, apiKey, fastModel, advancedModel string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Client{cl: cl, fastModel: fastModel, advancedModel: advancedModel}, nil
}

func (c *Client) Close() error { return c.cl.Close() }

func (c *Client) modelFor(tier ask.Tier) string {
	if tier == ask.TierAdvanced {
		return c.advancedModel
	}
	return c.fastModel
}

// Stream starts a streaming generation and returns the blocking pull the
// relay drives. iterator.Done passes through as the end-of-stream sentinel.
func (c *Client) Stream(ctx context.Context, tier ask.Tier, params GenParams, parts []genai.Part) relay.PullFunc {
	m := c.cl.GenerativeModel(c.modelFor(tier))
	m.SetMaxOutputTokens(params.MaxOutputTokens)
	m.SetTemperature(params.Temperature)

	it := m.GenerateContentStream(ctx, parts...)
	return func() (string, error) {
		resp, err := it.Next()
		if err != nil {
			return "", err
		}
		return joinText(resp), nil
	}
}

// Upload pushes a document to the provider file store and waits until it is
// ready to be referenced. The wait is bounded; a document still processing
// after the last poll is an error (callers fall back to inline bytes).
func (c *Client) Upload(ctx context.Context, name, mime string, data []byte) (*genai.File, error) {
	f, err := c.cl.UploadFile(ctx, "", bytes.NewReader(data), &genai.UploadFileOptions{
		DisplayName: name,
		MIMEType:    mime,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %s: %w", name, err)
	}

	// Release the stored file ourselves on any failed exit so the caller
	// only ever tracks handles that reached ACTIVE.
	handle := f.Name
	fail := func(err error) (*genai.File, error) {
		_ = c.cl.DeleteFile(ctx, handle)
		return nil, err
	}

	for attempt := 0; attempt < uploadPollAttempts; attempt++ {
		switch f.State {
		case genai.FileStateActive:
			return f, nil
		case genai.FileStateFailed:
			return fail(fmt.Errorf("upload %s: processing failed", name))
		}
		select {
		case <-ctx.Done():
			return fail(ctx.Err())
		case <-time.After(uploadPollInterval):
		}
		if f, err = c.cl.GetFile(ctx, handle); err != nil {
			return fail(fmt.Errorf("upload %s: poll: %w", name, err))
		}
	}
	return fail(fmt.Errorf("upload %s: not active after %d polls", name, uploadPollAttempts))
}

func (c *Client) Delete(ctx context.Context, name string) error {
	return c.cl.DeleteFile(ctx, name)
}

func joinText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
	}
	return b.String()
}
