// Package classifier turns a piece of conversational text into an
// emotional Classification via a pluggable LLM or HTTP backend. Any
// non-configuration failure degrades to a neutral classification rather
// than propagating, so a flaky classifier never breaks the engine.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"emotion-engine/internal/domain"
)

// Classification is the normalized result of classifying one piece of text.
type Classification struct {
	Label      string  `json:"label"`
	Intensity  float64 `json:"intensity"`
	Reason     string  `json:"reason"`
	Confidence float64 `json:"confidence"`
}

// Neutral is the degrade-to result used whenever classification fails for
// a non-configuration reason.
var Neutral = Classification{Label: "neutral"}

// Options configures a Classifier. At least one of ClassifierURL or APIKey
// must be set; when both are, ClassifierURL is used.
type Options struct {
	APIKey        string
	BaseURL       string
	Model         string
	EmotionLabels []string
	ConfidenceMin float64

	ClassifierURL string

	Timeout time.Duration

	// FetchFn is an injection seam for tests; defaults to http.DefaultClient.Do.
	FetchFn func(*http.Request) (*http.Response, error)

	ClassificationLogPath string
}

// Classifier classifies a piece of text attributed to role ("user" or
// "agent") into a Classification.
type Classifier interface {
	Classify(ctx context.Context, text, role string) (Classification, error)
}

// New constructs a Classifier from opts. It returns a ConfigError if
// neither ClassifierURL nor APIKey is set; every other failure mode is
// deferred to Classify time, where it degrades to Neutral.
func New(opts Options, logger *zap.Logger) (Classifier, error) {
	if opts.ClassifierURL == "" && opts.APIKey == "" {
		return nil, domain.NewConfigError("classifier requires either classifierUrl or apiKey")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.ConfidenceMin <= 0 {
		opts.ConfidenceMin = 0.4
	}
	if opts.FetchFn == nil {
		opts.FetchFn = http.DefaultClient.Do
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &httpClassifier{opts: opts, logger: logger}, nil
}

type httpClassifier struct {
	opts   Options
	logger *zap.Logger
}

func (c *httpClassifier) Classify(ctx context.Context, text, role string) (Classification, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	result, err := c.dispatch(ctx, text, role)
	if err != nil {
		c.logger.Warn("classification failed, degrading to neutral", zap.Error(err))
		c.appendLog(classificationLogEntry{
			Success: false,
			Role:    role,
			Text:    text,
			Error:   err.Error(),
		})
		return Neutral, nil
	}

	result.Label = strings.ToLower(strings.TrimSpace(result.Label))
	if result.Label == "" || !c.isKnownLabel(result.Label) || result.Confidence < c.opts.ConfidenceMin {
		result = Neutral
	}

	c.appendLog(classificationLogEntry{
		Success:        true,
		Role:           role,
		Text:           text,
		Classification: &result,
	})
	return result, nil
}

func (c *httpClassifier) isKnownLabel(label string) bool {
	if len(c.opts.EmotionLabels) == 0 {
		return true
	}
	for _, l := range c.opts.EmotionLabels {
		if strings.EqualFold(l, label) {
			return true
		}
	}
	return label == "neutral"
}

func (c *httpClassifier) dispatch(ctx context.Context, text, role string) (Classification, error) {
	if c.opts.ClassifierURL != "" {
		return c.callClassifierURL(ctx, text, role)
	}
	if isAnthropicModel(c.opts.Model) {
		return c.callAnthropic(ctx, text, role)
	}
	return c.callOpenAI(ctx, text, role)
}

// isAnthropicModel reports whether a model name routes to the Anthropic
// messages API rather than an OpenAI-shaped chat-completions endpoint.
func isAnthropicModel(model string) bool {
	return strings.HasPrefix(strings.ToLower(model), "claude")
}

// isReasoningModel reports whether an OpenAI model omits the temperature
// field (the o1/o3/"-reasoning" family).
func isReasoningModel(model string) bool {
	m := strings.ToLower(model)
	return strings.HasPrefix(m, "o1") || strings.HasPrefix(m, "o3") || strings.Contains(m, "-reasoning")
}

func (c *httpClassifier) callClassifierURL(ctx context.Context, text, role string) (Classification, error) {
	body, err := json.Marshal(map[string]string{"text": text, "role": role})
	if err != nil {
		return Classification{}, fmt.Errorf("marshal classifier request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.ClassifierURL, bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("build classifier request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	raw, err := c.doRequest(req)
	if err != nil {
		return Classification{}, err
	}

	var out Classification
	if err := json.Unmarshal([]byte(CleanJSONResponse(raw)), &out); err != nil {
		return Classification{}, fmt.Errorf("decode classifier response: %w", err)
	}
	return out, nil
}

func (c *httpClassifier) callAnthropic(ctx context.Context, text, role string) (Classification, error) {
	baseURL := c.opts.BaseURL
	if baseURL == "" {
		baseURL = "https://api.anthropic.com"
	}
	payload := map[string]any{
		"model":      c.opts.Model,
		"max_tokens": 256,
		"messages": []map[string]string{
			{"role": "user", "content": classificationPrompt(text, role, c.opts.EmotionLabels)},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Classification{}, fmt.Errorf("marshal anthropic request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("build anthropic request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.opts.APIKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	raw, err := c.doRequest(req)
	if err != nil {
		return Classification{}, err
	}

	var env struct {
		Content []Block `json:"content"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return Classification{}, fmt.Errorf("decode anthropic envelope: %w", err)
	}
	return parseClassificationText(ExtractText(BlockContent(env.Content)))
}

func (c *httpClassifier) callOpenAI(ctx context.Context, text, role string) (Classification, error) {
	baseURL := c.opts.BaseURL
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	payload := map[string]any{
		"model": c.opts.Model,
		"messages": []map[string]string{
			{"role": "user", "content": classificationPrompt(text, role, c.opts.EmotionLabels)},
		},
	}
	if !isReasoningModel(c.opts.Model) {
		payload["temperature"] = 0.2
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Classification{}, fmt.Errorf("marshal openai request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return Classification{}, fmt.Errorf("build openai request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)

	raw, err := c.doRequest(req)
	if err != nil {
		return Classification{}, err
	}

	var env struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return Classification{}, fmt.Errorf("decode openai envelope: %w", err)
	}
	if len(env.Choices) == 0 {
		return Classification{}, fmt.Errorf("openai response had no choices")
	}
	return parseClassificationText(env.Choices[0].Message.Content)
}

func (c *httpClassifier) doRequest(req *http.Request) ([]byte, error) {
	resp, err := c.opts.FetchFn(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read classifier response body: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("classifier responded with status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}

func parseClassificationText(text string) (Classification, error) {
	cleaned := CleanJSONResponse(text)
	var out Classification
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		return Classification{}, fmt.Errorf("decode classification text %q: %w", cleaned, err)
	}
	return out, nil
}

func classificationPrompt(text, role string, labels []string) string {
	labelHint := "known emotion labels"
	if len(labels) > 0 {
		labelHint = strings.Join(labels, ", ")
	}
	return fmt.Sprintf(
		"Classify the emotional content of this %s message. Respond with ONLY a JSON object "+
			"{\"label\":string,\"intensity\":number 0-1,\"reason\":string,\"confidence\":number 0-1}. "+
			"Use one of these labels when possible: %s.\n\nMessage:\n%s",
		role, labelHint, text,
	)
}

type classificationLogEntry struct {
	Success        bool             `json:"success"`
	Role           string           `json:"role"`
	Text           string           `json:"text"`
	Classification *Classification  `json:"classification,omitempty"`
	Error          string           `json:"error,omitempty"`
}

func (c *httpClassifier) appendLog(entry classificationLogEntry) {
	if c.opts.ClassificationLogPath == "" {
		return
	}
	// Only a short excerpt of the classified text is kept in the log.
	const maxExcerptRunes = 120
	if r := []rune(entry.Text); len(r) > maxExcerptRunes {
		entry.Text = string(r[:maxExcerptRunes])
	}
	f, err := os.OpenFile(c.opts.ClassificationLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		c.logger.Warn("could not open classification log", zap.Error(err))
		return
	}
	defer f.Close()

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}
	f.Write(append(line, '\n'))
}
