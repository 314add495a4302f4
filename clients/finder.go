package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strconv"
	"time"
)

// Finder wraps the external email-finder API (Hunter-style domain search).
type Finder struct {
	logger *slog.Logger
	client *http.Client
	apiURL string
	apiKey string
}

type FinderCandidate struct {
	Email      string
	FirstName  string
	LastName   string
	Position   string
	Company    string
	Confidence int
}

func NewFinder(logger *slog.Logger, client *http.Client, apiURL, apiKey string) *Finder {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Finder{
		logger: logger,
		client: client,
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// DomainSearch returns email candidates found for the given domain.
func (f *Finder) DomainSearch(ctx context.Context, domain string, limit int) ([]FinderCandidate, error) {
	query := neturl.Values{}
	query.Set("domain", domain)
	query.Set("limit", strconv.Itoa(limit))
	url := fmt.Sprintf("%s/domain-search?%s", f.apiURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-Key", f.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("finder domain search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("finder returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read finder response: %w", err)
	}

	return ParseDomainSearch(body)
}

type finderResponse struct {
	Data struct {
		Domain       string `json:"domain"`
		Organization string `json:"organization"`
		Emails       []struct {
			Value      string `json:"value"`
			FirstName  string `json:"first_name"`
			LastName   string `json:"last_name"`
			Position   string `json:"position"`
			Confidence int    `json:"confidence"`
		} `json:"emails"`
	} `json:"data"`
}

// ParseDomainSearch decodes a domain-search payload into candidates.
// Entries without an email address are dropped.
func ParseDomainSearch(body []byte) ([]FinderCandidate, error) {
	var res finderResponse
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decode finder response: %w", err)
	}

	candidates := make([]FinderCandidate, 0, len(res.Data.Emails))
	for _, e := range res.Data.Emails {
		if e.Value == "" {
			continue
		}
		candidates = append(candidates, FinderCandidate{
			Email:      e.Value,
			FirstName:  e.FirstName,
			LastName:   e.LastName,
			Position:   e.Position,
			Company:    res.Data.Organization,
			Confidence: e.Confidence,
		})
	}

	return candidates, nil
}
