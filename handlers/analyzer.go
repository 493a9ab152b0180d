package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
	"github.com/BhanuPrakash-01/fake-news-detector/services"
)

const (
	minTextLength = 10
	maxTextLength = 10000
)

type AnalyzerHandler struct {
	service *services.AnalyzerService
}

func NewAnalyzerHandler(service *services.AnalyzerService) *AnalyzerHandler {
	return &AnalyzerHandler{service: service}
}

// writeDetail sends a FastAPI-style error body: {"detail": "..."}.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Detail: detail})
}

// ValidateText applies the submission rules: trimmed, non-empty, 10-10000
// characters. Returns the trimmed text, or an error message for the detail
// body.
func ValidateText(text string) (string, string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", "Text cannot be empty or only whitespace"
	}
	if len([]rune(trimmed)) < minTextLength {
		return "", "Text must be at least 10 characters long"
	}
	if len([]rune(trimmed)) > maxTextLength {
		return "", "Text must be at most 10000 characters long"
	}
	return trimmed, ""
}

func (h *AnalyzerHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	log.Printf("[HANDLER] 📥 Received request: %s %s", r.Method, r.RemoteAddr)

	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if h.service.IsPaused.Load() {
		writeDetail(w, http.StatusServiceUnavailable, "Service is paused for maintenance")
		return
	}

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	text, detail := ValidateText(req.Text)
	if detail != "" {
		writeDetail(w, http.StatusUnprocessableEntity, detail)
		return
	}

	log.Printf("[HANDLER] 📝 Analyzing text (%d chars)", len(text))

	result, err := h.service.AnalyzeText(text)
	if err != nil {
		log.Printf("[HANDLER] ❌ Analysis failed: %v", err)
		writeDetail(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	log.Printf("[HANDLER] ✅ Done in %v", time.Since(startTime))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *AnalyzerHandler) Limits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(services.GetRateLimits())
}
