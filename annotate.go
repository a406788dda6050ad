package lexcloud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// DefaultServiceURL is the default base URL of the external morphology
// service.
const DefaultServiceURL = "https://api.rosette.com/rest/v1"

// AnnotationClient calls an external morphology service that assigns a lemma
// and a part-of-speech tag to each token of a text. The client owns a rate
// limiter so batch runs over many documents stay inside the service's
// request budget.
type AnnotationClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewAnnotationClient creates a client for the morphology service at
// baseURL, authenticating with apiKey.
func NewAnnotationClient(baseURL, apiKey string) *AnnotationClient {
	return NewAnnotationClientWithHTTP(baseURL, apiKey, &http.Client{
		Timeout: 30 * time.Second,
	})
}

// NewAnnotationClientWithHTTP creates a client with a custom HTTP client
// (for testing).
func NewAnnotationClientWithHTTP(baseURL, apiKey string, hc *http.Client) *AnnotationClient {
	return &AnnotationClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  hc,
		// 5 requests/second, matching the service's documented free-tier cap.
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
}

// morphologyResponse mirrors the service's morphology payload: parallel
// arrays aligned by token index.
type morphologyResponse struct {
	Tokens  []string `json:"tokens"`
	Lemmas  []string `json:"lemmas"`
	PosTags []string `json:"posTags"`
}

// Annotate sends text to the morphology service and returns one Token per
// input token. Tags outside the closed category set are folded into
// POSOther, so every returned token is valid distribution input.
func (c *AnnotationClient) Annotate(ctx context.Context, text string) ([]Token, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	body, err := json.Marshal(map[string]string{"content": text})
	if err != nil {
		return nil, fmt.Errorf("encoding annotation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/morphology/complete", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating annotation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RosetteAPI-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling annotation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service returned status %d", resp.StatusCode)
	}

	var mr morphologyResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, fmt.Errorf("decoding annotation response: %w", err)
	}
	if len(mr.Lemmas) != len(mr.PosTags) {
		return nil, fmt.Errorf("annotation response misaligned: %d lemmas vs %d tags",
			len(mr.Lemmas), len(mr.PosTags))
	}

	tokens := make([]Token, 0, len(mr.Lemmas))
	for i, lemma := range mr.Lemmas {
		pos, _ := ParsePartOfSpeech(mr.PosTags[i])
		tokens = append(tokens, Token{Lemma: lemma, POS: pos})
	}
	return tokens, nil
}
