package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"affiliate-blog/pkg/config"
	"affiliate-blog/pkg/logger"
	"affiliate-blog/services/content/internal/entity"
)

const (
	maxResponseSize = 4 << 20

	articleMaxTokens = 4000
	reviewMaxTokens  = 1000

	articleSystemPrompt = "You are a skilled SEO content writer. Always respond with valid JSON."
	reviewSystemPrompt  = "You are an expert product reviewer who provides honest, detailed reviews. Always respond with valid JSON."
)

const articlePromptTemplate = `You are an expert content writer specializing in SEO-optimized blog posts.
Write a detailed, engaging, and helpful article about %q that provides real value to the reader.

Requirements:
- Minimum 1,200 words
- Use a friendly but professional tone
- Break the content into clear sections with H2/H3 headings
- Include a short introduction and a conclusion
- Add bullet points and numbered lists where appropriate
- Optimize for search engines by naturally including relevant keywords
- Do not include any images, image tags or image URLs in the content

Format the article in clean, semantic HTML (<h2>, <h3>, <p>, <ul>, <li>, <strong>, <em>) without classes or inline styles.

Also provide an SEO title (max 60 characters) and a meta description (max 160 characters).

Respond as JSON:
{
  "title": "SEO title here",
  "excerpt": "Meta description here",
  "content": "Full HTML article here"
}`

const reviewPromptTemplate = `You are an expert content writer specializing in product roundups and reviews.
Write a helpful review for the product %q%s.

Requirements:
- 200-300 words with pros, cons, and a verdict
- Friendly but professional tone, written from the perspective of someone who has used the product
- Be honest and balanced
- Rate the product from 1 to 5 stars based on overall value and performance

Respond as JSON:
{
  "rating": 4,
  "reviewContent": "The detailed review text with pros, cons, and verdict"
}`

type RetryConfig struct {
	MaxAttempts       int
	BackoffBase       time.Duration
	BackoffMultiplier float64
	MaxBackoff        time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		BackoffBase:       2 * time.Second,
		BackoffMultiplier: 2.0,
		MaxBackoff:        30 * time.Second,
	}
}

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	retry       RetryConfig
	logger      *logger.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

func WithRetryConfig(rc RetryConfig) ClientOption {
	return func(c *Client) { c.retry = rc }
}

func NewClient(cfg *config.Config, log *logger.Logger, opts ...ClientOption) *Client {
	retry := DefaultRetryConfig()
	if cfg.OpenAIMaxAttempts > 0 {
		retry.MaxAttempts = cfg.OpenAIMaxAttempts
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.OpenAITimeout},
		baseURL:     strings.TrimSuffix(cfg.OpenAIBaseURL, "/"),
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.OpenAIModel,
		temperature: cfg.OpenAITemperature,
		retry:       retry,
		logger:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type articlePayload struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

type reviewPayload struct {
	Rating        float64 `json:"rating"`
	ReviewContent string  `json:"reviewContent"`
}

// RequestArticle asks for a long-form HTML article about topic.
func (c *Client) RequestArticle(ctx context.Context, topic string) (*entity.Article, error) {
	content, err := c.complete(ctx, articleSystemPrompt, fmt.Sprintf(articlePromptTemplate, topic), articleMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload articlePayload
	if err := decodeCompletion(content, &payload); err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.Title) == "" || strings.TrimSpace(payload.Content) == "" {
		return nil, NewFatalError(fmt.Errorf("article completion is missing title or content"))
	}

	return &entity.Article{
		Title:      strings.TrimSpace(payload.Title),
		Excerpt:    strings.TrimSpace(payload.Excerpt),
		Content:    payload.Content,
		Provenance: entity.ProvenanceGenerated,
	}, nil
}

// RequestProductReview asks for a short review and star rating of a product.
// The rating is returned as produced; callers normalize it.
func (c *Client) RequestProductReview(ctx context.Context, title, description string) (*entity.ReviewDraft, error) {
	extra := ""
	if description != "" {
		extra = fmt.Sprintf(" (%s)", description)
	}

	content, err := c.complete(ctx, reviewSystemPrompt, fmt.Sprintf(reviewPromptTemplate, title, extra), reviewMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload reviewPayload
	if err := decodeCompletion(content, &payload); err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload.ReviewContent) == "" {
		return nil, NewFatalError(fmt.Errorf("review completion is missing content"))
	}

	return &entity.ReviewDraft{
		Rating:  payload.Rating,
		Content: strings.TrimSpace(payload.ReviewContent),
	}, nil
}

func decodeCompletion(content string, out interface{}) error {
	raw := ExtractJSON(content)
	if raw == "" {
		return NewFatalError(fmt.Errorf("completion did not contain a JSON object"))
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return NewFatalError(fmt.Errorf("failed to decode completion: %w", err))
	}
	return nil
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	if c.apiKey == "" {
		return "", NewFatalError(ErrNotConfigured)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature:    c.temperature,
		MaxTokens:      maxTokens,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return "", NewFatalError(fmt.Errorf("build request body: %w", err))
	}

	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		content, err := c.doRequest(ctx, body)
		if err == nil {
			return content, nil
		}

		lastErr = err
		if IsFatal(err) {
			return "", err
		}

		if attempt < c.retry.MaxAttempts {
			backoff := c.calculateBackoff(attempt)
			c.logger.Warn("Completion attempt %d/%d failed, retrying in %s: %v", attempt, c.retry.MaxAttempts, backoff, err)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return "", lastErr
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	multiplier := 1.0
	for i := 1; i < attempt; i++ {
		multiplier *= c.retry.BackoffMultiplier
	}

	backoff := time.Duration(float64(c.retry.BackoffBase) * multiplier)
	if backoff > c.retry.MaxBackoff {
		backoff = c.retry.MaxBackoff
	}

	// +/- 25% jitter
	jitter := float64(backoff) * 0.25 * (rand.Float64()*2 - 1)
	return backoff + time.Duration(jitter)
}

func (c *Client) doRequest(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", NewFatalError(fmt.Errorf("create HTTP request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", NewTransientError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(resp.StatusCode, respBody)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", NewFatalError(fmt.Errorf("decode completion response: %w", err))
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", NewTransientError(fmt.Errorf("no content generated"))
	}

	return parsed.Choices[0].Message.Content, nil
}
