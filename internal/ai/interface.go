package ai

import (
	"context"
	"errors"
)

// ErrSearchUnsupported is returned by backends that cannot run a
// search-grounded request.
var ErrSearchUnsupported = errors.New("backend does not support search grounding")

// Request is a single text generation call.
type Request struct {
	Prompt string
	// Search enables the web search tool so the answer can cite sources.
	Search      bool
	Temperature float32
}

// GroundingEntry is one web or map reference the model cited.
// Either field may be empty; callers decide what to keep.
type GroundingEntry struct {
	Title string
	URI   string
}

// Response is the validated shape of a model answer.
type Response struct {
	Text      string
	Grounding []GroundingEntry
}

// Generator defines the contract for a text generation backend.
// Implementations return an error for transport failures and empty answers.
type Generator interface {
	Generate(ctx context.Context, req Request) (Response, error)
}
