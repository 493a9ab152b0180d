package models

// Verdict values returned by the synthesis step.
const (
	VerdictFake      = "FAKE"
	VerdictReal      = "REAL"
	VerdictUncertain = "UNCERTAIN"
)

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	Verdict          string            `json:"verdict"`
	Confidence       float64           `json:"confidence"`
	MLPrediction     string            `json:"ml_prediction"`
	MLConfidence     float64           `json:"ml_confidence"`
	FactChecks       []FactCheckResult `json:"fact_checks"`
	Reasoning        string            `json:"reasoning"`
	ProcessingTimeMs float64           `json:"processing_time_ms"`
}

// FactCheckResult is one professional fact-checker review of a claim.
type FactCheckResult struct {
	Claim    string `json:"claim"`
	Claimant string `json:"claimant,omitempty"`
	Rating   string `json:"rating"`
	Source   string `json:"source"`
	URL      string `json:"url,omitempty"`
}

// MLResult is the raw model prediction before synthesis.
type MLResult struct {
	Prediction    string             `json:"prediction"`
	Confidence    float64            `json:"confidence"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
}

// SynthesisResult is the final verdict combined from ML and fact-checks.
type SynthesisResult struct {
	Verdict    string  `json:"verdict"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

type HealthStatus struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

// ErrorResponse mirrors FastAPI-style error bodies: {"detail": "..."}.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
