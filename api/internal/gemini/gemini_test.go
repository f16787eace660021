package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"

	"tutor-proxy/api/internal/ask"
)

func TestModelFor(t *testing.T) {
	c := &Client{fastModel: "flash", advancedModel: "pro"}

	assert.Equal(t, "flash", c.modelFor(ask.TierFast))
	assert.Equal(t, "pro", c.modelFor(ask.TierAdvanced))
	assert.Equal(t, "flash", c.modelFor(ask.Tier("unknown")))
}

func TestJoinText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("Hello "), genai.Text("world")}}},
			{Content: nil},
		},
	}
	assert.Equal(t, "Hello world", joinText(resp))
	assert.Equal(t, "", joinText(nil))
	assert.Equal(t, "", joinText(&genai.GenerateContentResponse{}))
}

func TestBudgets(t *testing.T) {
	assert.Less(t, CasualParams.MaxOutputTokens, AcademicParams.MaxOutputTokens)
	assert.Greater(t, CasualParams.Temperature, AcademicParams.Temperature)
}
