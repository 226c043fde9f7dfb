package reply

import (
	"testing"

	"github.com/finlark/onboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fence stripping ---

func TestStripJSONFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "exact fence",
			input: "```json\n{\"message\":\"hi\"}\n```",
			want:  `{"message":"hi"}`,
		},
		{
			name:  "no fence unchanged",
			input: `{"message":"hi"}`,
			want:  `{"message":"hi"}`,
		},
		{
			name:  "leading fence only",
			input: "```json\n{\"a\":1}",
			want:  `{"a":1}`,
		},
		{
			name:  "trailing fence only",
			input: "{\"a\":1}\n```",
			want:  `{"a":1}`,
		},
		{
			name:  "fence in the middle untouched",
			input: "{\"message\":\"use ```json blocks\"}",
			want:  "{\"message\":\"use ```json blocks\"}",
		},
		{
			name:  "plain text",
			input: "not json",
			want:  "not json",
		},
		{
			name:  "extra whitespace around fences",
			input: "```json  \n\n{\"a\":1}\n\n```  ",
			want:  `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripJSONFence(tt.input))
		})
	}
}

func TestStripJSONFenceIdempotent(t *testing.T) {
	input := "```json\n{\"message\":\"hi\"}\n```"
	once := StripJSONFence(input)
	twice := StripJSONFence(once)
	assert.Equal(t, once, twice)
}

func TestFencedAndUnfencedParseIdentically(t *testing.T) {
	fenced := Interpret("```json\n{\"message\":\"hello\",\"nextPhase\":\"package\"}\n```")
	plain := Interpret(`{"message":"hello","nextPhase":"package"}`)
	assert.Equal(t, plain, fenced)
}

// --- Interpret ---

func TestInterpretFullReply(t *testing.T) {
	raw := `{
		"message": "What type of business are you running?",
		"uiAction": {"type": "buttons", "data": {"options": ["Retail", "Restaurant"]}},
		"extractedData": {"businessName": "Blue Bottle"},
		"nextPhase": "package"
	}`

	rep := Interpret(raw)
	assert.False(t, rep.IsError)
	assert.Equal(t, "What type of business are you running?", rep.Message)
	require.NotNil(t, rep.UIAction)
	assert.Equal(t, domain.ActionButtons, rep.UIAction.Type)
	assert.JSONEq(t, `{"options": ["Retail", "Restaurant"]}`, string(rep.UIAction.Data))
	assert.Equal(t, map[string]string{"businessName": "Blue Bottle"}, rep.ExtractedData)
	assert.Equal(t, domain.PhasePackage, rep.NextPhase)
}

func TestInterpretDefaults(t *testing.T) {
	rep := Interpret(`{}`)
	assert.False(t, rep.IsError)
	assert.Equal(t, "", rep.Message)
	assert.Nil(t, rep.UIAction)
	assert.Nil(t, rep.ExtractedData)
	assert.Equal(t, domain.Phase(""), rep.NextPhase)
}

func TestInterpretMalformed(t *testing.T) {
	for _, raw := range []string{"not json", "", "```json\ngarbage\n```", `"just a string"`} {
		rep := Interpret(raw)
		assert.True(t, rep.IsError, "input %q should produce an error reply", raw)
		assert.Equal(t, ErrorPlaceholder, rep.Message)
	}
}

func TestInterpretUnknownNextPhaseIgnored(t *testing.T) {
	rep := Interpret(`{"message":"ok","nextPhase":"warp-speed"}`)
	assert.False(t, rep.IsError)
	assert.Equal(t, domain.Phase(""), rep.NextPhase)
}

func TestInterpretOpaqueUIActionPassthrough(t *testing.T) {
	// The interpreter does not validate the action payload's shape.
	raw := `{"message":"pay now","uiAction":{"type":"showPaymentForm","data":{"whatever":{"nested":true}}}}`
	rep := Interpret(raw)
	require.NotNil(t, rep.UIAction)
	assert.Equal(t, domain.ActionShowPaymentForm, rep.UIAction.Type)
	assert.JSONEq(t, `{"whatever":{"nested":true}}`, string(rep.UIAction.Data))
}

func TestInterpretCoercesScalars(t *testing.T) {
	raw := `{"message":"m","extractedData":{"locations":2,"active":true,"name":"Joe's","none":null}}`
	rep := Interpret(raw)
	assert.Equal(t, map[string]string{
		"locations": "2",
		"active":    "true",
		"name":      "Joe's",
	}, rep.ExtractedData)
}

func TestInterpretDropsNestedValues(t *testing.T) {
	raw := `{"message":"m","extractedData":{"owner":{"name":"Joe"},"tags":["a"],"ein":"12-345"}}`
	rep := Interpret(raw)
	assert.Equal(t, map[string]string{"ein": "12-345"}, rep.ExtractedData)
}

func TestInterpretNullExtractedData(t *testing.T) {
	rep := Interpret(`{"message":"m","extractedData":null}`)
	assert.Nil(t, rep.ExtractedData)
}

// --- InterpretDocument ---

func TestInterpretDocument(t *testing.T) {
	raw := "```json\n" + `{"documentType":"taxID","extractedData":{"ein":"12-3456789"},"confidence":0.95}` + "\n```"
	cls, err := InterpretDocument(raw)
	require.NoError(t, err)
	assert.Equal(t, domain.DocTaxID, cls.DocumentType)
	assert.Equal(t, map[string]string{"ein": "12-3456789"}, cls.ExtractedData)
	assert.InDelta(t, 0.95, cls.Confidence, 0.0001)
}

func TestInterpretDocumentMalformed(t *testing.T) {
	_, err := InterpretDocument("definitely not json")
	assert.Error(t, err)
}
