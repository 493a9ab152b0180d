package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

// MLClient calls a hosted sequence-classification endpoint (HuggingFace
// Inference API shape) and maps its labels to FAKE/REAL.
type MLClient struct {
	BaseURL string
	APIKey  string

	httpClient *http.Client
}

func NewMLClient(baseURL, apiKey string) *MLClient {
	return &MLClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

type inferenceRequest struct {
	Inputs  string `json:"inputs"`
	Options struct {
		WaitForModel bool `json:"wait_for_model"`
	} `json:"options"`
}

type inferenceLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type inferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time"`
}

// Predict runs inference on text. The hosted model may still be cold-loading
// on the first request, in which case the API answers 503; we retry a couple
// of times before giving up.
func (c *MLClient) Predict(text string) (*models.MLResult, error) {
	// Hosted models truncate around 512 tokens anyway; cap the payload so we
	// do not ship multi-page articles over the wire.
	const maxRunes = 2000
	runes := []rune(text)
	if len(runes) > maxRunes {
		text = string(runes[:maxRunes])
	}

	reqBody := inferenceRequest{Inputs: text}
	reqBody.Options.WaitForModel = true

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal inference request: %w", err)
	}

	const maxRetries = 3
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			log.Printf("[ML] ⏳ Attempt %d/%d, waiting 10 seconds for model...", attempt, maxRetries)
			time.Sleep(10 * time.Second)
		}

		result, retryable, err := c.predictOnce(jsonData)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("model unavailable after %d attempts: %w", maxRetries, lastErr)
}

func (c *MLClient) predictOnce(jsonData []byte) (*models.MLResult, bool, error) {
	req, err := http.NewRequest("POST", c.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, false, fmt.Errorf("build inference request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	UpdateRateLimit("model", resp, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr inferenceError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error != "" {
			// 503 with estimated_time means the model is still loading.
			loading := resp.StatusCode == http.StatusServiceUnavailable
			if loading {
				log.Printf("[ML] ⏳ Model cold start: %s (~%.0fs)", apiErr.Error, apiErr.EstimatedTime)
			}
			return nil, loading || resp.StatusCode == http.StatusTooManyRequests,
				fmt.Errorf("inference API error: %s", apiErr.Error)
		}
		log.Printf("[ML] ❌ API returned status %d: %s", resp.StatusCode, string(body))
		return nil, resp.StatusCode == http.StatusTooManyRequests,
			fmt.Errorf("inference API status %d", resp.StatusCode)
	}

	labels, err := parseInferenceLabels(body)
	if err != nil {
		return nil, false, err
	}

	return labelsToResult(labels), false, nil
}

// parseInferenceLabels accepts both response shapes the API produces:
// [[{label,score},...]] for single inputs and [{label,score},...].
func parseInferenceLabels(body []byte) ([]inferenceLabel, error) {
	var nested [][]inferenceLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}

	var flat []inferenceLabel
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return flat, nil
	}

	return nil, fmt.Errorf("unexpected inference response: %s", string(body))
}

func labelsToResult(labels []inferenceLabel) *models.MLResult {
	result := &models.MLResult{
		Probabilities: make(map[string]float64, len(labels)),
	}

	best := inferenceLabel{Score: -1}
	for _, l := range labels {
		name := normalizeLabel(l.Label)
		result.Probabilities[name] = l.Score
		if l.Score > best.Score {
			best = inferenceLabel{Label: name, Score: l.Score}
		}
	}

	result.Prediction = best.Label
	result.Confidence = best.Score

	log.Printf("[ML] 🤖 Prediction: %s (confidence: %.2f)", result.Prediction, result.Confidence)
	return result
}

// normalizeLabel maps model label ids to our verdict vocabulary.
// Fine-tuned fake-news checkpoints use LABEL_0=fake, LABEL_1=real.
func normalizeLabel(label string) string {
	switch strings.ToUpper(label) {
	case "LABEL_0", "FAKE", "NEGATIVE":
		return models.VerdictFake
	case "LABEL_1", "REAL", "POSITIVE":
		return models.VerdictReal
	default:
		return strings.ToUpper(label)
	}
}
