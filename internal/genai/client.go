package genai

import "context"

// Client is the interface to the generative-AI endpoint. Generate sends one
// request and returns the first candidate's first text part, unmodified.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
