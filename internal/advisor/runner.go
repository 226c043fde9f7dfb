// Package advisor is the orchestration layer: it turns store state into a
// generation request, calls the model, and applies the interpreted reply
// back onto the stores.
package advisor

import (
	"context"
	"fmt"

	"github.com/finlark/onboard/internal/application"
	"github.com/finlark/onboard/internal/conversation"
	"github.com/finlark/onboard/internal/domain"
	"github.com/finlark/onboard/internal/genai"
	"github.com/finlark/onboard/internal/logging"
	"github.com/finlark/onboard/internal/prompt"
	"github.com/finlark/onboard/internal/reply"
)

// Runner drives one onboarding session: a conversation store, an application
// store, and a generative-AI client.
type Runner struct {
	client genai.Client
	conv   *conversation.Store
	app    *application.Store
	log    *logging.Logger
}

// NewRunner creates a runner for one session.
func NewRunner(client genai.Client, conv *conversation.Store, app *application.Store, log *logging.Logger) *Runner {
	return &Runner{
		client: client,
		conv:   conv,
		app:    app,
		log:    log.Sub("advisor"),
	}
}

// Conversation returns the session's conversation store.
func (r *Runner) Conversation() *conversation.Store { return r.conv }

// Application returns the session's application-data store.
func (r *Runner) Application() *application.Store { return r.app }

// Send processes one user turn: it records the user message, assembles the
// request from both stores, calls the model, and ingests the reply. The busy
// flag is set for the duration of the call and cleared on every path. A
// failed call still appends an error-flagged message so the conversation
// remains usable.
func (r *Runner) Send(ctx context.Context, text string) (domain.Message, error) {
	r.conv.SetBusy(true)
	defer r.conv.SetBusy(false)

	r.conv.AppendUser(text)

	req := prompt.BuildConversationRequest(r.conv.Phase(), r.conv.Messages(), r.app.Snapshot(), text)

	r.log.Debug().
		Str("sessionId", r.conv.ID()).
		Str("phase", string(r.conv.Phase())).
		Int("historyLen", len(req.Contents)).
		Msg("sending conversation turn")

	raw, err := r.client.Generate(ctx, req)
	if err != nil {
		msg := r.conv.Append(domain.Message{
			Role:    domain.RoleAssistant,
			Content: reply.ErrorPlaceholder,
			IsError: true,
		})
		return msg, fmt.Errorf("model call: %w", err)
	}

	msg := r.conv.IngestResponse(raw)
	r.applyReply(msg)
	return msg, nil
}

// applyReply merges a successful assistant turn's side effects into the
// application store.
func (r *Runner) applyReply(msg domain.Message) {
	if msg.IsError {
		return
	}
	if len(msg.ExtractedData) > 0 {
		r.app.MergeExtractedData(msg.ExtractedData)
	}
	if r.conv.Phase() == domain.PhaseComplete {
		r.app.Complete()
	}
}

// ExtractDocument classifies one document via the extraction prompt, records
// the resulting document record, and merges its extracted fields into the
// running application data.
func (r *Runner) ExtractDocument(ctx context.Context, filename string, data []byte, mimeType string) (domain.DocumentRecord, error) {
	req := prompt.BuildExtractionRequest(data, mimeType)

	raw, err := r.client.Generate(ctx, req)
	if err != nil {
		return domain.DocumentRecord{}, fmt.Errorf("model call: %w", err)
	}

	cls, err := reply.InterpretDocument(raw)
	if err != nil {
		return domain.DocumentRecord{}, err
	}

	doc := domain.DocumentRecord{
		File:       filename,
		Type:       cls.DocumentType,
		Data:       cls.ExtractedData,
		Confidence: cls.Confidence,
	}
	r.app.AddDocument(doc)
	r.app.MergeExtractedData(cls.ExtractedData)

	r.log.Info().
		Str("file", filename).
		Str("type", string(cls.DocumentType)).
		Float64("confidence", cls.Confidence).
		Msg("document classified")

	return doc, nil
}
