package insight

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/AshokKumar3502/facemirror/internal/errors"
	"github.com/AshokKumar3502/facemirror/internal/models"
)

const (
	defaultModel   = "gemini-2.0-flash"
	defaultBaseURL = "https://generativelanguage.googleapis.com"

	// A hung analysis call must not pin the session in Loading forever.
	defaultTimeout = 60 * time.Second

	defaultMaxRetries  = 3
	defaultBaseBackoff = 500 * time.Millisecond
	defaultRateLimit   = 2 // requests per second
	defaultBurst       = 4
)

// Config configures the HTTP analysis client.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client talks to a Gemini-style generateContent endpoint.
type Client struct {
	model      string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	maxRetries int
}

// NewClient builds an Analyzer from cfg. An empty API key is allowed here;
// each call reports KindKeyMissing instead, so the session can route the user
// to settings rather than failing at startup.
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		model:   model,
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter:    rate.NewLimiter(rate.Limit(defaultRateLimit), defaultBurst),
		maxRetries: defaultMaxRetries,
	}
}

type generatePart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig *generationConfig `json:"generation_config,omitempty"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"response_mime_type,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (c *Client) Analyze(ctx context.Context, image []byte, checkin models.Context) (models.InsightData, error) {
	parts := []generatePart{
		{Text: analyzePrompt(checkin)},
		{InlineData: &inlineData{
			MimeType: "image/jpeg",
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}

	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return models.InsightData{}, err
	}

	var data models.InsightData
	if err := json.Unmarshal([]byte(stripFences(text)), &data); err != nil {
		return models.InsightData{}, errors.Wrap(errors.KindGeneral, "malformed analysis response", err)
	}
	return data, nil
}

func (c *Client) Summarize(ctx context.Context, entries []models.JournalEntry) (models.WeeklyInsight, error) {
	parts := []generatePart{{Text: summarizePrompt(entries)}}

	text, err := c.generate(ctx, parts, true)
	if err != nil {
		return models.WeeklyInsight{}, err
	}

	var summary models.WeeklyInsight
	if err := json.Unmarshal([]byte(stripFences(text)), &summary); err != nil {
		return models.WeeklyInsight{}, errors.Wrap(errors.KindGeneral, "malformed summary response", err)
	}
	return summary, nil
}

func (c *Client) Chat(ctx context.Context, insight models.InsightData, message string) (string, error) {
	parts := []generatePart{{Text: chatPrompt(insight, message)}}

	text, err := c.generate(ctx, parts, false)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate performs the request with rate limiting and retries on transient
// failures. Non-retryable failures are returned classified.
func (c *Client) generate(ctx context.Context, parts []generatePart, jsonResponse bool) (string, error) {
	if c.apiKey == "" {
		return "", errors.New(errors.KindKeyMissing, "no analysis API key configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", errors.Wrap(errors.KindGeneral, "rate limiter interrupted", err)
	}

	req := generateRequest{
		Contents: []generateContent{{Parts: parts}},
	}
	if jsonResponse {
		req.GenerationConfig = &generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0.4,
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := defaultBaseBackoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", errors.Wrap(errors.KindGeneral, "analysis cancelled", ctx.Err())
			}
		}

		text, retryable, err := c.doRequest(ctx, req)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}

	return "", errors.Wrap(errors.KindGeneral, "analysis failed after retries", lastErr)
}

func (c *Client) doRequest(ctx context.Context, req generateRequest) (string, bool, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", false, errors.Wrap(errors.KindGeneral, "failed to marshal request", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", false, errors.Wrap(errors.KindGeneral, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", true, errors.Wrap(errors.KindGeneral, "analysis request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, errors.Wrap(errors.KindGeneral, "failed to read response", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden:
		return "", false, errors.New(errors.KindInvalidKey, "analysis capability rejected the API key")
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", true, errors.New(errors.KindGeneral, fmt.Sprintf("analysis returned status %d", resp.StatusCode))
	default:
		return "", false, errors.New(errors.KindGeneral, fmt.Sprintf("analysis returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", false, errors.Wrap(errors.KindGeneral, "malformed response envelope", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", false, errors.New(errors.KindGeneral, "empty analysis response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, false, nil
}

// stripFences removes a surrounding markdown code fence if the model wrapped
// its JSON in one.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
