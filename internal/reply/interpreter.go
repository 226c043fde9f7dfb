// Package reply parses raw model output into structured replies. Malformed
// output is surfaced as an error-flagged reply, never repaired or retried.
package reply

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/finlark/onboard/internal/domain"
)

// ErrorPlaceholder is the display text of the sentinel reply produced when
// model output cannot be parsed.
const ErrorPlaceholder = "Error: Invalid response format"

// StripJSONFence removes a single enclosing markdown JSON code fence. Only
// the exact leading "```json" and trailing "```" delimiters are removed, at
// most once each; fences anywhere else are left untouched.
func StripJSONFence(s string) string {
	out := s
	if rest, ok := strings.CutPrefix(out, "```json"); ok {
		out = strings.TrimLeft(rest, " \t\r\n")
	}
	trimmed := strings.TrimRight(out, " \t\r\n")
	if rest, ok := strings.CutSuffix(trimmed, "```"); ok {
		out = strings.TrimRight(rest, " \t\r\n")
	}
	return out
}

// wireReply mirrors the JSON schema the instruction template asks the model
// to honor. extractedData is decoded loosely so a contract violation in one
// value does not fail the whole turn.
type wireReply struct {
	Message       string           `json:"message"`
	UIAction      *domain.UIAction `json:"uiAction"`
	ExtractedData map[string]any   `json:"extractedData"`
	NextPhase     string           `json:"nextPhase"`
}

// Interpret parses raw model output into a StructuredReply. On parse failure
// it returns an error-flagged reply with a fixed placeholder message.
func Interpret(raw string) domain.StructuredReply {
	var wire wireReply
	if err := json.Unmarshal([]byte(StripJSONFence(raw)), &wire); err != nil {
		return domain.StructuredReply{Message: ErrorPlaceholder, IsError: true}
	}

	rep := domain.StructuredReply{
		Message:  wire.Message,
		UIAction: wire.UIAction,
	}
	if wire.ExtractedData != nil {
		rep.ExtractedData = flattenValues(wire.ExtractedData)
	}
	if p := domain.Phase(wire.NextPhase); p.Valid() {
		rep.NextPhase = p
	}
	return rep
}

// InterpretDocument parses the output of the document-extraction prompt.
func InterpretDocument(raw string) (domain.DocumentClassification, error) {
	var wire struct {
		DocumentType  string         `json:"documentType"`
		ExtractedData map[string]any `json:"extractedData"`
		Confidence    float64        `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(StripJSONFence(raw)), &wire); err != nil {
		return domain.DocumentClassification{}, fmt.Errorf("parsing document classification: %w", err)
	}
	cls := domain.DocumentClassification{
		DocumentType: domain.DocumentType(wire.DocumentType),
		Confidence:   wire.Confidence,
	}
	if wire.ExtractedData != nil {
		cls.ExtractedData = flattenValues(wire.ExtractedData)
	}
	return cls, nil
}

// flattenValues coerces scalar values to strings. The upstream contract
// promises flat human-readable strings; nested objects and arrays violate it
// and are dropped rather than failing the turn.
func flattenValues(in map[string]any) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		case nil:
			// null values carry no fact
		default:
			// nested object or array: dropped
		}
	}
	return out
}
