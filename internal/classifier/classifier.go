// Package classifier calls an external vision model to assign each photo a
// gallery category and a short description.
package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"smartgallery/internal/domain"
)

// ErrRateLimited is returned when the classification service answers with a
// rate-limit status. Callers are expected to back off and retry.
var ErrRateLimited = errors.New("classification service rate limited")

// Result is one classification outcome. Category is always a member of the
// configured set.
type Result struct {
	Category    domain.Category
	Description string
}

// Classifier assigns category/description metadata to one image.
type Classifier interface {
	Classify(ctx context.Context, image []byte, mimeType string) (Result, error)
}

// GeminiClassifier implements Classifier against the Gemini generateContent
// REST API.
type GeminiClassifier struct {
	baseURL    string
	apiKey     string
	model      string
	categories domain.CategorySet
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewGeminiClassifier creates a classifier for the given API key and model.
func NewGeminiClassifier(apiKey, model string, categories domain.CategorySet, timeout time.Duration, logger logrus.FieldLogger) *GeminiClassifier {
	return &GeminiClassifier{
		baseURL:    "https://generativelanguage.googleapis.com",
		apiKey:     apiKey,
		model:      model,
		categories: categories,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.WithField("component", "classifier"),
	}
}

// Request/response shapes for the generateContent endpoint. Only the fields
// this client reads or writes are declared.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
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

// Classify sends the image plus the category instruction prompt to the model
// and parses the JSON object out of its reply. A rate-limit response surfaces
// as ErrRateLimited; any other transport or parse failure is a plain error.
func (c *GeminiClassifier) Classify(ctx context.Context, image []byte, mimeType string) (Result, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: buildPrompt(c.categories)},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal classify request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("failed to build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("classify call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return Result{}, ErrRateLimited
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.log.WithFields(logrus.Fields{
			"status": resp.StatusCode,
			"body":   string(body),
		}).Error("Classification service returned error status")
		return Result{}, fmt.Errorf("classify call returned status %d", resp.StatusCode)
	}

	var genResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return Result{}, fmt.Errorf("failed to decode classify response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return Result{}, errors.New("classify response contained no candidates")
	}

	return ParseResult(genResp.Candidates[0].Content.Parts[0].Text, c.categories)
}

// buildPrompt asks for exactly one category from the set plus a short
// description, as one bare JSON object.
func buildPrompt(categories domain.CategorySet) string {
	var b strings.Builder
	b.WriteString("You are classifying portfolio photos for an IT services company (CCTV, networking, software).\n")
	b.WriteString("Analyze this image and respond with a single JSON object (no markdown, no extra text) with two fields:\n\n")
	b.WriteString("1. \"category\": pick EXACTLY ONE from this list:\n")
	for _, label := range categories.Labels() {
		b.WriteString("   - \"" + string(label) + "\"\n")
	}
	b.WriteString("\n2. \"description\": a short, confident description (10-20 words) of what the photo shows and why it demonstrates expertise.\n\n")
	b.WriteString(`Respond with ONLY valid JSON like: {"category":"CCTV & Security","description":"..."}`)
	return b.String()
}

// classifiedPayload is the JSON object the model is instructed to return.
type classifiedPayload struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// ParseResult extracts the category/description object from the model's raw
// reply. Models sometimes wrap the JSON in markdown code fences despite the
// prompt, so fences are stripped first. An out-of-set category is coerced to
// Uncategorized rather than rejected.
func ParseResult(raw string, categories domain.CategorySet) (Result, error) {
	jsonStr := stripCodeFence(strings.TrimSpace(raw))

	var payload classifiedPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return Result{}, fmt.Errorf("failed to parse classification JSON: %w", err)
	}

	return Result{
		Category:    categories.Coerce(payload.Category),
		Description: payload.Description,
	}, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
