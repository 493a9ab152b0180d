package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"sync/atomic"
	"time"

	"github.com/BhanuPrakash-01/fake-news-detector/database"
	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

// MLPredictor is the model inference dependency of the analyzer.
type MLPredictor interface {
	Predict(text string) (*models.MLResult, error)
}

// FactChecker is the external claim-verification dependency.
type FactChecker interface {
	CheckClaims(text string) []models.FactCheckResult
}

// ResultCache stores serialized analysis results. A Get miss is any non-nil
// error.
type ResultCache interface {
	Get(key string) (string, error)
	Set(key string, value string, expiration time.Duration) error
}

const cacheTTL = time.Hour

type AnalyzerService struct {
	ml        MLPredictor
	factCheck FactChecker
	cache     ResultCache
	IsPaused  atomic.Bool
}

func NewAnalyzerService(ml MLPredictor, factCheck FactChecker, cache ResultCache) *AnalyzerService {
	return &AnalyzerService{
		ml:        ml,
		factCheck: factCheck,
		cache:     cache,
	}
}

// AnalyzeText runs the full pipeline: cache lookup, ML inference, fact-check
// lookup, synthesis, persistence. A cache hit skips inference and fact-check
// entirely. processing_time_ms covers the whole pipeline, cache hits included.
func (s *AnalyzerService) AnalyzeText(text string) (*models.AnalyzeResponse, error) {
	startTime := time.Now()

	key := cacheKey(text)
	if cached, err := s.cache.Get(key); err == nil {
		var resp models.AnalyzeResponse
		if json.Unmarshal([]byte(cached), &resp) == nil {
			resp.ProcessingTimeMs = float64(time.Since(startTime).Microseconds()) / 1000
			log.Printf("[ANALYZER] ⚡ Cache hit (%s)", key[:12])
			return &resp, nil
		}
		// A corrupt entry falls through to a fresh analysis.
		log.Printf("[ANALYZER] ⚠️ Discarding unreadable cache entry (%s)", key[:12])
	}

	log.Printf("[ANALYZER] 🤖 Step 1/3 — Running ML inference...")
	mlResult, err := s.ml.Predict(text)
	if err != nil {
		return nil, err
	}

	log.Printf("[ANALYZER] 🔍 Step 2/3 — Querying fact-check APIs...")
	factChecks := s.factCheck.CheckClaims(text)

	log.Printf("[ANALYZER] ⚖️ Step 3/3 — Synthesizing final verdict...")
	final := Synthesize(mlResult.Prediction, mlResult.Confidence, factChecks)

	resp := &models.AnalyzeResponse{
		Verdict:          final.Verdict,
		Confidence:       final.Confidence,
		MLPrediction:     mlResult.Prediction,
		MLConfidence:     mlResult.Confidence,
		FactChecks:       factChecks,
		Reasoning:        final.Reasoning,
		ProcessingTimeMs: float64(time.Since(startTime).Microseconds()) / 1000,
	}
	if resp.FactChecks == nil {
		resp.FactChecks = []models.FactCheckResult{}
	}

	if resultJSON, err := json.Marshal(resp); err == nil {
		s.cache.Set(key, string(resultJSON), cacheTTL)
		database.SaveAnalysis(text, resp.Verdict, resp.Confidence, string(resultJSON))
	}

	log.Printf("[ANALYZER] ✅ Verdict: %s (%.0f%%) in %.0fms",
		resp.Verdict, resp.Confidence*100, resp.ProcessingTimeMs)
	return resp, nil
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "analysis:" + hex.EncodeToString(sum[:])
}
