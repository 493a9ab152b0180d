package main

import (
	"strings"
	"testing"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

func TestClassifyVerdict(t *testing.T) {
	tests := []struct {
		verdict string
		want    string
	}{
		{"FAKE", bucketNegative},
		{"REAL", bucketPositive},
		{"UNCERTAIN", bucketNeutral},
		{"MOSTLY_TRUE", bucketNeutral},
		{"", bucketNeutral},
		{"garbage-from-server", bucketNeutral},
	}

	for _, tt := range tests {
		if got := classifyVerdict(tt.verdict); got != tt.want {
			t.Errorf("classifyVerdict(%q) = %q, want %q", tt.verdict, got, tt.want)
		}
	}
}

func TestFormatConfidence(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.92, "92.0%"},
		{1, "100.0%"},
		{0, "0.0%"},
		{0.855, "85.5%"},
	}

	for _, tt := range tests {
		if got := formatConfidence(tt.confidence); got != tt.want {
			t.Errorf("formatConfidence(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}

func TestConfidenceBar(t *testing.T) {
	if got := confidenceBar(0.92); got != "[█████████░]" {
		t.Errorf("confidenceBar(0.92) = %q", got)
	}
	if got := confidenceBar(0); got != "[░░░░░░░░░░]" {
		t.Errorf("confidenceBar(0) = %q", got)
	}
	if got := confidenceBar(1); got != "[██████████]" {
		t.Errorf("confidenceBar(1) = %q", got)
	}
}

func TestFormatResult(t *testing.T) {
	out := FormatResult(&models.AnalyzeResponse{
		Verdict:          "FAKE",
		Confidence:       0.92,
		MLPrediction:     "fake",
		MLConfidence:     0.89,
		Reasoning:        "Professional fact-checkers found this claim to be false.",
		ProcessingTimeMs: 145,
		FactChecks: []models.FactCheckResult{
			{Claim: "birds are drones", Rating: "False", Source: "Snopes", URL: "https://example.com/check"},
		},
	})

	for _, want := range []string{"FAKE", "92.0%", "89.0%", "Snopes", "145ms", "fact-checkers found this claim"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatResult() missing %q in:\n%s", want, out)
		}
	}
}
