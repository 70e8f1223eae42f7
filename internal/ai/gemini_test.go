package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"tabela/internal/config"
)

func TestFromGenAI(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{
				{Text: "thinking...", Thought: true},
				{Text: "A distância é de 217,5 km. "},
				{Text: "RESULT_KM: 217.5"},
			}},
			GroundingMetadata: &genai.GroundingMetadata{
				GroundingChunks: []*genai.GroundingChunk{
					{Web: &genai.GroundingChunkWeb{Title: "DER-MG", URI: "https://example.org/der"}},
					nil,
					{Maps: &genai.GroundingChunkMaps{Title: "Ipatinga", URI: "https://maps.example.org/ipa"}},
					{Web: &genai.GroundingChunkWeb{URI: "https://example.org/untitled"}},
				},
			},
		}},
	}

	got, err := fromGenAI(resp)
	require.NoError(t, err)
	assert.Equal(t, "A distância é de 217,5 km. RESULT_KM: 217.5", got.Text)
	assert.Equal(t, []GroundingEntry{
		{Title: "DER-MG", URI: "https://example.org/der"},
		{Title: "Ipatinga", URI: "https://maps.example.org/ipa"},
		{URI: "https://example.org/untitled"},
	}, got.Grounding)
}

func TestFromGenAI_NoCandidates(t *testing.T) {
	_, err := fromGenAI(&genai.GenerateContentResponse{})
	assert.Error(t, err)
	_, err = fromGenAI(nil)
	assert.Error(t, err)
}

func TestNew_DisabledWithoutKey(t *testing.T) {
	g, err := New(context.Background(), config.AIConfig{Backend: config.BackendGenAI})
	require.NoError(t, err)
	assert.Nil(t, g)
}
