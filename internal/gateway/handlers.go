package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finlark/onboard/internal/genai"
	"github.com/finlark/onboard/internal/reply"
)

// handleGenerate forwards a generation request to the Gemini endpoint and
// returns the first candidate's text with one enclosing JSON code fence
// stripped. The body is itself a JSON document, forwarded as text, not
// re-serialized.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxBodyMB)<<20)

	var req genai.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Contents) == 0 {
		writeError(w, http.StatusBadRequest, `Request body must contain a "contents" property.`)
		return
	}

	raw, err := s.client.Generate(r.Context(), req)
	if err != nil {
		var shapeErr *genai.UpstreamShapeError
		if errors.As(err, &shapeErr) {
			s.log.Error().Msg("gemini response did not have the expected structure")
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error":      "Gemini API response was malformed.",
				"fullResult": json.RawMessage(shapeErr.Raw),
			})
			return
		}
		s.log.Error().Err(err).Msg("error calling gemini")
		writeError(w, http.StatusInternalServerError, "An error occurred while communicating with the Gemini API.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(reply.StripJSONFence(raw)))
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleNotFound returns a 404 for unknown routes.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "not found",
		"path":  r.URL.Path,
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
