package services

import (
	"fmt"
	"log"
	"strings"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

var falseRatings = []string{"false", "pants on fire", "mostly false"}
var trueRatings = []string{"true", "mostly true", "correct"}

// Synthesize combines the ML prediction and fact-checker reviews into the
// final verdict. Professional fact-checkers outrank the model: a clear
// majority of false (or true) ratings decides the verdict outright. Ties fall
// back to the model when it is confident, otherwise to UNCERTAIN.
func Synthesize(mlPrediction string, mlConfidence float64, factChecks []models.FactCheckResult) *models.SynthesisResult {
	log.Printf("[SYNTHESIS] ⚖️ ML: %s (%.2f), fact checks: %d", mlPrediction, mlConfidence, len(factChecks))

	if len(factChecks) > 0 {
		falseCount := 0
		trueCount := 0
		for _, fc := range factChecks {
			rating := strings.ToLower(fc.Rating)
			if containsAny(rating, falseRatings) {
				falseCount++
			}
			if containsAny(rating, trueRatings) {
				trueCount++
			}
		}

		log.Printf("[SYNTHESIS]    Breakdown: %d FALSE, %d TRUE", falseCount, trueCount)

		if falseCount > trueCount && falseCount > 0 {
			return &models.SynthesisResult{
				Verdict:    models.VerdictFake,
				Confidence: min(0.95, 0.7+float64(falseCount)*0.1),
				Reasoning: fmt.Sprintf(
					"Professional fact-checkers found this claim to be false. "+
						"%d fact-checker(s) rated it as false or misleading.", falseCount),
			}
		}

		if trueCount > falseCount && trueCount > 0 {
			return &models.SynthesisResult{
				Verdict:    models.VerdictReal,
				Confidence: min(0.95, 0.7+float64(trueCount)*0.1),
				Reasoning: fmt.Sprintf(
					"Professional fact-checkers verified this claim as true. "+
						"%d fact-checker(s) confirmed its accuracy.", trueCount),
			}
		}

		if mlConfidence > 0.8 {
			return &models.SynthesisResult{
				Verdict:    mlPrediction,
				Confidence: mlConfidence * 0.85,
				Reasoning: fmt.Sprintf(
					"Fact-checkers provided mixed signals. Our AI model predicts "+
						"this is %s with %.0f%% confidence.", mlPrediction, mlConfidence*100),
			}
		}

		return &models.SynthesisResult{
			Verdict:    models.VerdictUncertain,
			Confidence: 0.5,
			Reasoning: "Fact-checkers provided conflicting assessments, and our AI " +
				"model is not highly confident. More investigation needed.",
		}
	}

	if mlConfidence > 0.85 {
		return &models.SynthesisResult{
			Verdict:    mlPrediction,
			Confidence: mlConfidence,
			Reasoning: fmt.Sprintf(
				"No fact-checks found. Our AI model predicts this is %s "+
					"with high confidence (%.0f%%).", mlPrediction, mlConfidence*100),
		}
	}

	if mlConfidence > 0.65 {
		return &models.SynthesisResult{
			Verdict:    mlPrediction,
			Confidence: mlConfidence,
			Reasoning: fmt.Sprintf(
				"No fact-checks found. Our AI model suggests this is likely "+
					"%s (%.0f%% confidence).", mlPrediction, mlConfidence*100),
		}
	}

	return &models.SynthesisResult{
		Verdict:    models.VerdictUncertain,
		Confidence: mlConfidence,
		Reasoning: fmt.Sprintf(
			"No definitive fact-checks found, and our AI model has moderate "+
				"confidence (%.0f%%). This claim requires more context or investigation.", mlConfidence*100),
	}
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
