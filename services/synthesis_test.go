package services

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func fcs(ratings ...string) []models.FactCheckResult {
	var out []models.FactCheckResult
	for _, r := range ratings {
		out = append(out, models.FactCheckResult{Claim: "c", Rating: r, Source: "s"})
	}
	return out
}

func TestSynthesizeFactCheckersOutrankML(t *testing.T) {
	tests := []struct {
		name           string
		mlPrediction   string
		mlConfidence   float64
		factChecks     []models.FactCheckResult
		wantVerdict    string
		wantConfidence float64
	}{
		{
			name:         "majority false beats confident REAL model",
			mlPrediction: models.VerdictReal, mlConfidence: 0.99,
			factChecks:  fcs("False", "Pants on Fire", "Mostly True"),
			wantVerdict: models.VerdictFake, wantConfidence: 0.9, // 0.7 + 2*0.1
		},
		{
			name:         "majority true beats FAKE model",
			mlPrediction: models.VerdictFake, mlConfidence: 0.95,
			factChecks:  fcs("True", "Correct"),
			wantVerdict: models.VerdictReal, wantConfidence: 0.9,
		},
		{
			name:         "confidence capped at 0.95",
			mlPrediction: models.VerdictReal, mlConfidence: 0.5,
			factChecks:  fcs("False", "False", "False", "False", "False"),
			wantVerdict: models.VerdictFake, wantConfidence: 0.95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(tt.mlPrediction, tt.mlConfidence, tt.factChecks)
			if got.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", got.Verdict, tt.wantVerdict)
			}
			if diff := got.Confidence - tt.wantConfidence; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if got.Reasoning == "" {
				t.Error("reasoning must not be empty")
			}
		})
	}
}

func TestSynthesizeMixedSignals(t *testing.T) {
	// Tie with a confident model: trust the model at reduced confidence.
	got := Synthesize(models.VerdictFake, 0.9, fcs("False", "True"))
	if got.Verdict != models.VerdictFake {
		t.Errorf("verdict = %q, want FAKE", got.Verdict)
	}
	if diff := got.Confidence - 0.9*0.85; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence = %v, want %v", got.Confidence, 0.9*0.85)
	}

	// Tie with an unconfident model: UNCERTAIN at 0.5.
	got = Synthesize(models.VerdictFake, 0.6, fcs("False", "True"))
	if got.Verdict != models.VerdictUncertain {
		t.Errorf("verdict = %q, want UNCERTAIN", got.Verdict)
	}
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got.Confidence)
	}
}

func TestSynthesizeNoFactChecks(t *testing.T) {
	tests := []struct {
		name         string
		mlConfidence float64
		wantVerdict  string
	}{
		{"high confidence trusts model", 0.9, models.VerdictFake},
		{"medium confidence trusts model", 0.7, models.VerdictFake},
		{"low confidence is uncertain", 0.55, models.VerdictUncertain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Synthesize(models.VerdictFake, tt.mlConfidence, nil)
			if got.Verdict != tt.wantVerdict {
				t.Errorf("verdict = %q, want %q", got.Verdict, tt.wantVerdict)
			}
			if got.Confidence != tt.mlConfidence {
				t.Errorf("confidence = %v, want ml confidence %v", got.Confidence, tt.mlConfidence)
			}
		})
	}
}

// Ratings with unrelated wording count neither as true nor false.
func TestSynthesizeUnrecognizedRatings(t *testing.T) {
	got := Synthesize(models.VerdictReal, 0.9, fcs("Unproven", "Satire"))
	if got.Verdict != models.VerdictReal {
		t.Errorf("verdict = %q, want model verdict REAL on zero-count tie", got.Verdict)
	}
}
