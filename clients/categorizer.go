package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pemistahl/lingua-go"
)

// IndustryVocabulary is the fixed set of industries the categorizer may
// suggest. Keeping suggestions inside this set keeps them matchable against
// opportunity industries without synonym drift.
var IndustryVocabulary = []string{
	"Tech",
	"Finance",
	"Healthcare",
	"Retail",
	"Energy",
	"Education",
	"Media",
	"Travel",
	"Food",
	"Real Estate",
}

// Categorizer suggests an industry for free text (a contact's position,
// company, notes) via the LLM categorization API. Non-English text is
// skipped: the prompt and vocabulary are English, so anything else just
// produces noise.
type Categorizer struct {
	logger   *slog.Logger
	client   *http.Client
	apiURL   string
	apiKey   string
	detector lingua.LanguageDetector
}

func NewCategorizer(logger *slog.Logger, client *http.Client, apiURL, apiKey string) *Categorizer {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Portuguese).
		Build()

	return &Categorizer{
		logger:   logger,
		client:   client,
		apiURL:   apiURL,
		apiKey:   apiKey,
		detector: detector,
	}
}

// SuggestIndustry returns an industry from the vocabulary, or "" when no
// confident suggestion exists. Suggestions are best-effort: callers should
// treat "" as "leave the industry unset", never as an error.
func (c *Categorizer) SuggestIndustry(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	if lang, ok := c.detector.DetectLanguageOf(text); !ok || lang != lingua.English {
		return "", nil
	}

	reqBody := map[string]interface{}{
		"model": "gpt-4o-mini",
		"messages": []map[string]string{
			{"role": "system", "content": categorizerPrompt()},
			{"role": "user", "content": text},
		},
		"temperature": 0,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("categorize: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("categorizer returned status %d: %s", resp.StatusCode, string(body))
	}

	var res struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode categorizer response: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", nil
	}

	return NormalizeSuggestion(res.Choices[0].Message.Content), nil
}

func categorizerPrompt() string {
	return "You classify a person's role or company description into exactly one industry from this list: " +
		strings.Join(IndustryVocabulary, ", ") +
		". Reply with the industry name only, or NONE if none fits."
}

// NormalizeSuggestion maps a model reply onto the vocabulary. Replies that
// don't land in the vocabulary (including "NONE") become "".
func NormalizeSuggestion(reply string) string {
	reply = strings.TrimSpace(strings.Trim(strings.TrimSpace(reply), `."'`))
	for _, industry := range IndustryVocabulary {
		if strings.EqualFold(reply, industry) {
			return industry
		}
	}
	return ""
}
