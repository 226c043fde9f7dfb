package prompt

import (
	"github.com/finlark/onboard/internal/domain"
	"github.com/finlark/onboard/internal/genai"
)

// Generation options fixed for conversational turns: low-depth, low-latency
// responses with structured-JSON output.
const (
	conversationTemperature = 0.7
	conversationMaxTokens   = 2048
	// A minimal thinking budget disables deep deliberation.
	conversationThinkingBudget = 128
)

// BuildConversationRequest builds the outbound generation request for one
// conversational turn. It replays the full conversation history, preferring
// each assistant turn's cached raw response over its display text so the
// model sees the structure (UI directives, phase transitions) it previously
// emitted. Error-flagged turns carry no valid structured payload and are
// replayed as display text.
//
// If the last stored message is already a user message with content equal to
// userText, it is not appended again. This guards against double-submission
// when the caller has optimistically recorded the user's message before
// assembling the request.
func BuildConversationRequest(phase domain.Phase, history []domain.Message, snap domain.Snapshot, userText string) genai.Request {
	contents := make([]genai.Content, 0, len(history)+1)
	for _, msg := range history {
		if msg.Role == domain.RoleUser {
			contents = append(contents, textContent(genai.RoleUser, msg.Content))
			continue
		}
		text := msg.Content
		if msg.RawResponse != "" {
			text = msg.RawResponse
		}
		contents = append(contents, textContent(genai.RoleModel, text))
	}

	last := lastMessage(history)
	if last == nil || last.Role != domain.RoleUser || last.Content != userText {
		contents = append(contents, textContent(genai.RoleUser, userText))
	}

	return genai.Request{
		Contents: contents,
		SystemInstruction: &genai.SystemInstruction{
			Parts: []genai.Part{{Text: Default.Render(phase, snap)}},
		},
		GenerationConfig: &genai.GenerationConfig{
			Temperature:      conversationTemperature,
			CandidateCount:   1,
			MaxOutputTokens:  conversationMaxTokens,
			ResponseMimeType: "application/json",
			ThinkingConfig:   &genai.ThinkingConfig{ThinkingBudget: conversationThinkingBudget},
		},
	}
}

func textContent(role, text string) genai.Content {
	return genai.Content{Role: role, Parts: []genai.Part{{Text: text}}}
}

func lastMessage(history []domain.Message) *domain.Message {
	if len(history) == 0 {
		return nil
	}
	return &history[len(history)-1]
}
