package domain

import (
	"encoding/json"
	"time"
)

// Role constants for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// UIAction is a tagged instruction emitted by the assistant telling the
// interface which interactive control to render next. The payload is opaque;
// only the type tag is inspected.
type UIAction struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// UI action type tags.
const (
	ActionButtons         = "buttons"
	ActionFileRequest     = "fileRequest"
	ActionShowImage       = "showImage"
	ActionShowPaymentForm = "showPaymentForm"
)

// Message is one turn in the conversation. Immutable once appended to the
// conversation store; deleted only on full reset.
type Message struct {
	ID            string            `json:"id"`
	Role          string            `json:"role"`
	Content       string            `json:"content"`
	UIAction      *UIAction         `json:"uiAction,omitempty"`
	ExtractedData map[string]string `json:"extractedData,omitempty"`
	// RawResponse caches the assistant's complete structured reply so it can
	// be replayed into future prompts. Empty for user and error turns.
	RawResponse string    `json:"rawResponse,omitempty"`
	IsError     bool      `json:"isError,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// StructuredReply is an assistant reply parsed from raw model output.
type StructuredReply struct {
	Message       string            `json:"message"`
	UIAction      *UIAction         `json:"uiAction,omitempty"`
	ExtractedData map[string]string `json:"extractedData,omitempty"`
	NextPhase     Phase             `json:"nextPhase,omitempty"`
	IsError       bool              `json:"isError,omitempty"`
}
