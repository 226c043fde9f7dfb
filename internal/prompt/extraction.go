package prompt

import (
	"encoding/base64"

	"github.com/finlark/onboard/internal/genai"
)

const extractionTemperature = 0.2

// extractionInstruction is the fixed prompt for single-document
// classification. No conversation history is involved.
const extractionInstruction = `You are a specialized document data extraction assistant.
Your sole purpose is to extract key information from the provided document and return it in a structured JSON format.
Do not add any conversational text or explanations.
Your entire response must be a single valid JSON object.

Based on the document's content and type, identify it as one of the following: 'businessLicense', 'taxID', 'bankInfo', 'ownerID'.

Return a JSON object with the following structure:
{
  "documentType": "businessLicense|taxID|bankInfo|ownerID",
  "extractedData": { "<key>": "<value>" },
  "confidence": 0.95
}`

// BuildExtractionRequest builds the generation request for classifying one
// document: the fixed extraction instruction plus the document as an inline
// binary part, at a lower temperature than conversational turns.
func BuildExtractionRequest(data []byte, mimeType string) genai.Request {
	return genai.Request{
		Contents: []genai.Content{
			{
				Role: genai.RoleUser,
				Parts: []genai.Part{
					{Text: extractionInstruction},
					{InlineData: &genai.Blob{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(data),
					}},
				},
			},
		},
		GenerationConfig: &genai.GenerationConfig{
			Temperature:      extractionTemperature,
			CandidateCount:   1,
			MaxOutputTokens:  conversationMaxTokens,
			ResponseMimeType: "application/json",
		},
	}
}
