package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

// Display style buckets for verdicts.
const (
	bucketNegative = "negative"
	bucketPositive = "positive"
	bucketNeutral  = "neutral"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)

	negativeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	positiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	neutralStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// classifyVerdict maps a verdict string to its display bucket. Total:
// anything the server sends that is not FAKE or REAL renders as neutral.
func classifyVerdict(verdict string) string {
	switch verdict {
	case models.VerdictFake:
		return bucketNegative
	case models.VerdictReal:
		return bucketPositive
	default:
		return bucketNeutral
	}
}

func verdictStyle(bucket string) lipgloss.Style {
	switch bucket {
	case bucketNegative:
		return negativeStyle
	case bucketPositive:
		return positiveStyle
	default:
		return neutralStyle
	}
}

func verdictEmoji(bucket string) string {
	switch bucket {
	case bucketNegative:
		return "🔴"
	case bucketPositive:
		return "🟢"
	default:
		return "🟡"
	}
}

// formatConfidence renders a [0,1] confidence as a percentage with one
// decimal, e.g. 0.92 -> "92.0%".
func formatConfidence(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}

// confidenceBar renders a ten-segment bar for a [0,1] confidence.
func confidenceBar(confidence float64) string {
	filled := int(confidence * 10)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", 10-filled) + "]"
}

func FormatResult(r *models.AnalyzeResponse) string {
	bucket := classifyVerdict(r.Verdict)
	style := verdictStyle(bucket)

	var b strings.Builder

	// Header
	b.WriteString(fmt.Sprintf("%s %s — %s confidence\n",
		verdictEmoji(bucket), style.Render(r.Verdict), formatConfidence(r.Confidence)))
	b.WriteString(confidenceBar(r.Confidence) + "\n")

	if r.Reasoning != "" {
		b.WriteString(fmt.Sprintf("\n📝 %s\n", r.Reasoning))
	}

	b.WriteString(fmt.Sprintf("\n🤖 ML model: %s (%s)\n", r.MLPrediction, formatConfidence(r.MLConfidence)))

	if len(r.FactChecks) > 0 {
		b.WriteString("\n🕵️ Fact checks:\n")
		for _, fc := range r.FactChecks[:clamp(len(r.FactChecks), 5)] {
			b.WriteString(fmt.Sprintf("• %q — %s (%s)\n", fc.Claim, fc.Rating, fc.Source))
			if fc.URL != "" {
				b.WriteString(dimStyle.Render("  "+fc.URL) + "\n")
			}
		}
	}

	b.WriteString(dimStyle.Render(fmt.Sprintf("\nProcessed in %.0fms", r.ProcessingTimeMs)))
	return strings.TrimRight(b.String(), "\n")
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}
