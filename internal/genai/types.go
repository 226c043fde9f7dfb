// Package genai defines the generative-AI wire types and the client used to
// call the hosted Gemini endpoint. Requests are built once by the prompt
// assembler and never mutated after construction.
package genai

import "encoding/json"

// Content role constants. The Gemini API names the assistant role "model".
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Blob is inline binary data, base64-encoded.
type Blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is one piece of a content entry: text or inline binary.
type Part struct {
	Text       string `json:"text,omitempty"`
	InlineData *Blob  `json:"inlineData,omitempty"`
}

// Content is one tagged entry in the request history.
type Content struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// SystemInstruction carries the system prompt.
type SystemInstruction struct {
	Parts []Part `json:"parts"`
}

// ThinkingConfig hints how much reasoning effort the model should spend.
type ThinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

// GenerationConfig holds sampling and output options.
type GenerationConfig struct {
	Temperature      float64         `json:"temperature,omitempty"`
	CandidateCount   int             `json:"candidateCount,omitempty"`
	MaxOutputTokens  int             `json:"maxOutputTokens,omitempty"`
	ResponseMimeType string          `json:"responseMimeType,omitempty"`
	ThinkingConfig   *ThinkingConfig `json:"thinkingConfig,omitempty"`
}

// Request is a complete generation request: system instruction, ordered
// content history, and generation options.
type Request struct {
	Contents          []Content          `json:"contents"`
	GenerationConfig  *GenerationConfig  `json:"generationConfig,omitempty"`
	SystemInstruction *SystemInstruction `json:"systemInstruction,omitempty"`
}

// API response structures.

type apiResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content struct {
		Parts []Part `json:"parts"`
		Role  string `json:"role"`
	} `json:"content"`
	FinishReason string `json:"finishReason,omitempty"`
}

// UpstreamShapeError reports an upstream response that lacks the expected
// candidate/content/parts structure. Raw carries the full upstream payload
// for offline diagnosis.
type UpstreamShapeError struct {
	Raw json.RawMessage
}

func (e *UpstreamShapeError) Error() string {
	return "gemini response did not have the expected structure"
}
