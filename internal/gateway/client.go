// Package gateway wraps the external generative-language service behind a
// validated, typed-failure contract. Malformed records are filtered out here;
// the engine never sees a question whose answer is not one of its options.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"psy211-course-service/internal/domain"
)

// Generator is the contract the course service consumes.
type Generator interface {
	GenerateQuestions(ctx context.Context, scope, label string, count int) ([]domain.Question, error)
	GenerateGlossaryTerms(ctx context.Context, unitID int, unitTitle string) ([]domain.GlossaryTerm, error)
}

// Options configure the REST client. Zero values fall back to service defaults.
type Options struct {
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
}

// Client talks to the generative-language REST API
// (models/{model}:generateContent with a JSON response schema).
type Client struct {
	baseURL    string
	model      string
	keys       KeyStore
	httpClient *http.Client
	maxRetries int
}

func NewClient(keys KeyStore, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if opts.Model == "" {
		opts.Model = "gemini-2.0-flash"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		model:      opts.Model,
		keys:       keys,
		httpClient: &http.Client{Timeout: opts.Timeout},
		maxRetries: opts.MaxRetries,
	}
}

type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("generation http %d: %s", e.StatusCode, e.Body)
}

func isRetryable(code int) bool {
	return code == 408 || code == 429 || (code >= 500 && code <= 599)
}

func isAuthStatus(code int) bool {
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// wire shapes of the generateContent call.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float64        `json:"temperature"`
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

type wireQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation struct {
		Theory          string `json:"theory"`
		DetailedExample string `json:"detailedExample"`
		Implications    string `json:"implications"`
		Applications    string `json:"applications"`
	} `json:"explanation"`
}

type wireTerm struct {
	TermAr       string `json:"termAr"`
	TermEn       string `json:"termEn"`
	Definition   string `json:"definition"`
	Theory       string `json:"theory"`
	LocalExample string `json:"localExample"`
	Impact       string `json:"impact"`
	Application  string `json:"application"`
}

// GenerateQuestions asks the service for count MCQs scoped to one unit or to
// the whole course (scope domain.ScopeAllUnits). The returned list may be
// shorter than count; it is never empty on success.
func (c *Client) GenerateQuestions(ctx context.Context, scope, label string, count int) ([]domain.Question, error) {
	prompt := questionPrompt(scope, label, count)
	raw, err := c.generate(ctx, prompt, questionSchema())
	if err != nil {
		return nil, err
	}

	var wire []wireQuestion
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &domain.GenerationError{Err: fmt.Errorf("decode questions: %w", err)}
	}

	unitID := 0
	if scope != domain.ScopeAllUnits {
		unitID, _ = strconv.Atoi(scope)
	}

	stamp := time.Now().UnixNano()
	questions := make([]domain.Question, 0, len(wire))
	for i, w := range wire {
		q := domain.Question{
			ID:      fmt.Sprintf("gen-%s-%d-%d", scope, stamp, i),
			Unit:    unitID,
			Text:    strings.TrimSpace(w.Question),
			Options: w.Options,
			Answer:  w.Answer,
			Explanation: domain.Explanation{
				Theory:          w.Explanation.Theory,
				DetailedExample: w.Explanation.DetailedExample,
				Implications:    w.Explanation.Implications,
				Applications:    w.Explanation.Applications,
			},
		}
		// Drop malformed records instead of propagating them.
		if !q.Valid() {
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) == 0 {
		return nil, &domain.GenerationError{Err: errors.New("no valid questions in response")}
	}
	return questions, nil
}

// GenerateGlossaryTerms asks the service for additional glossary terms for a unit.
func (c *Client) GenerateGlossaryTerms(ctx context.Context, unitID int, unitTitle string) ([]domain.GlossaryTerm, error) {
	prompt := glossaryPrompt(unitID, unitTitle)
	raw, err := c.generate(ctx, prompt, glossarySchema())
	if err != nil {
		return nil, err
	}

	var wire []wireTerm
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &domain.GenerationError{Err: fmt.Errorf("decode terms: %w", err)}
	}

	terms := make([]domain.GlossaryTerm, 0, len(wire))
	for _, w := range wire {
		if strings.TrimSpace(w.TermAr) == "" || strings.TrimSpace(w.Definition) == "" {
			continue
		}
		terms = append(terms, domain.GlossaryTerm{
			TermAr:       w.TermAr,
			TermEn:       w.TermEn,
			Definition:   w.Definition,
			Theory:       w.Theory,
			LocalExample: w.LocalExample,
			Impact:       w.Impact,
			Application:  w.Application,
		})
	}
	if len(terms) == 0 {
		return nil, &domain.GenerationError{Err: errors.New("no valid terms in response")}
	}
	return terms, nil
}

// generate performs the HTTP call and extracts the JSON payload text.
func (c *Client) generate(ctx context.Context, prompt string, schema map[string]any) ([]byte, error) {
	if !c.keys.HasKey() {
		return nil, &domain.GenerationError{Authorization: true, Err: errors.New("missing api key")}
	}

	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
			Temperature:      0.4,
		},
	}

	raw, err := c.doWithRetry(ctx, req)
	if err != nil {
		var httpErr *httpError
		if errors.As(err, &httpErr) && isAuthStatus(httpErr.StatusCode) {
			return nil, &domain.GenerationError{Authorization: true, Err: err}
		}
		return nil, &domain.GenerationError{Err: err}
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, &domain.GenerationError{Err: fmt.Errorf("decode response: %w", err)}
	}

	var text string
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			text += p.Text
		}
	}
	if text == "" {
		return nil, &domain.GenerationError{Err: errors.New("empty model response")}
	}
	return []byte(text), nil
}

func (c *Client) doWithRetry(ctx context.Context, body any) ([]byte, error) {
	backoff := time.Second

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		raw, err := c.doOnce(ctx, body)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		var httpErr *httpError
		if !errors.As(err, &httpErr) || !isRetryable(httpErr.StatusCode) {
			return nil, err
		}
		if attempt == c.maxRetries {
			break
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		backoff *= 2
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, body any) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	url := c.baseURL + "/v1beta/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.keys.Key())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &httpError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

func questionPrompt(scope, label string, count int) string {
	scopeLine := "الوحدة رقم " + scope + " من مقرر علم النفس الدينامي ونظريات القياس"
	if scope == domain.ScopeAllUnits {
		scopeLine = "كافة وحدات مقرر علم النفس الدينامي ونظريات القياس (PSY 211)"
	}
	return fmt.Sprintf(
		"أنت أستاذ علم نفس بجامعة العريش. أنشئ %d سؤال اختيار من متعدد باللغة العربية حول %s بعنوان: %s. "+
			"لكل سؤال أربعة خيارات وإجابة واحدة صحيحة تطابق أحد الخيارات حرفياً، مع شرح نظري ومثال من بيئة سيناء وانعكاسات وتطبيقات.",
		count, scopeLine, label)
}

func glossaryPrompt(unitID int, unitTitle string) string {
	return fmt.Sprintf(
		"أنت أستاذ علم نفس بجامعة العريش. أنشئ خمسة مصطلحات نفسية جديدة باللغتين العربية والإنجليزية للوحدة %d بعنوان: %s، "+
			"مع تعريف وتأصيل نظري ومثال من بيئة سيناء وأثر وتطبيق عملي لكل مصطلح.",
		unitID, unitTitle)
}

func questionSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"options":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"answer":   map[string]any{"type": "string"},
				"explanation": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"theory":          map[string]any{"type": "string"},
						"detailedExample": map[string]any{"type": "string"},
						"implications":    map[string]any{"type": "string"},
						"applications":    map[string]any{"type": "string"},
					},
					"required": []string{"theory", "detailedExample", "implications", "applications"},
				},
			},
			"required": []string{"question", "options", "answer", "explanation"},
		},
	}
}

func glossarySchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"termAr":       map[string]any{"type": "string"},
				"termEn":       map[string]any{"type": "string"},
				"definition":   map[string]any{"type": "string"},
				"theory":       map[string]any{"type": "string"},
				"localExample": map[string]any{"type": "string"},
				"impact":       map[string]any{"type": "string"},
				"application":  map[string]any{"type": "string"},
			},
			"required": []string{"termAr", "termEn", "definition", "theory", "localExample", "impact", "application"},
		},
	}
}
