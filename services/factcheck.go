package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

const factCheckBaseURL = "https://factchecktools.googleapis.com/v1alpha1/claims:search"

type GoogleFactCheckClient struct {
	APIKey string

	baseURL    string
	httpClient *http.Client
}

func NewGoogleFactCheckClient(apiKey string) *GoogleFactCheckClient {
	return &GoogleFactCheckClient{
		APIKey:  apiKey,
		baseURL: factCheckBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type googleFactCheckResponse struct {
	Claims []struct {
		Text        string `json:"text"`
		Claimant    string `json:"claimant"`
		ClaimDate   string `json:"claimDate"`
		ClaimReview []struct {
			Publisher struct {
				Name string `json:"name"`
				Site string `json:"site"`
			} `json:"publisher"`
			Url           string `json:"url"`
			Title         string `json:"title"`
			ReviewDate    string `json:"reviewDate"`
			TextualRating string `json:"textualRating"`
			LanguageCode  string `json:"languageCode"`
		} `json:"claimReview"`
	} `json:"claims"`
}

// CheckClaims queries the Google Fact Check Tools API for reviews matching the
// text. The first 100 characters serve as the search query. Any upstream
// failure degrades to an empty list so the analysis can still complete on the
// ML signal alone.
func (c *GoogleFactCheckClient) CheckClaims(text string) []models.FactCheckResult {
	if c.APIKey == "" {
		log.Println("[FACT CHECK] ⚠️ API key not configured, skipping")
		return nil
	}

	query := text
	if runes := []rune(query); len(runes) > 100 {
		query = string(runes[:100])
	}

	log.Printf("[FACT CHECK] 🔍 Querying fact-check API: %.50s...", query)

	apiURL := fmt.Sprintf("%s?query=%s&languageCode=en&key=%s",
		c.baseURL, url.QueryEscape(query), c.APIKey)

	req, err := http.NewRequest("GET", apiURL, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[FACT CHECK] ❌ Network error: %v", err)
		return nil
	}
	defer resp.Body.Close()

	UpdateRateLimit("factcheck", resp, resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		log.Printf("[FACT CHECK] ❌ API returned status: %d", resp.StatusCode)
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil
	}

	var fcResp googleFactCheckResponse
	if err := json.Unmarshal(body, &fcResp); err != nil {
		log.Printf("[FACT CHECK] ❌ JSON parse error: %v", err)
		return nil
	}

	// Only the first 5 claims feed synthesis; each keeps all its reviews.
	claims := fcResp.Claims
	if len(claims) > 5 {
		claims = claims[:5]
	}

	var results []models.FactCheckResult
	for _, claim := range claims {
		for _, review := range claim.ClaimReview {
			results = append(results, models.FactCheckResult{
				Claim:    claim.Text,
				Claimant: claim.Claimant,
				Rating:   review.TextualRating,
				Source:   review.Publisher.Name,
				URL:      review.Url,
			})
		}
	}

	log.Printf("[FACT CHECK] ✅ Found %d fact-check results", len(results))
	return results
}
