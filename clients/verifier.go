package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pitchpool/pitchpool.api/enums"
)

const verifyCacheTTL = 24 * time.Hour

// Verifier wraps the external email-verification API. Results are cached in
// Redis so repeat verifications of the same address don't burn API credits.
type Verifier struct {
	logger *slog.Logger
	client *http.Client
	rdb    *redis.Client
	apiURL string
	apiKey string
}

func NewVerifier(logger *slog.Logger, client *http.Client, rdb *redis.Client, apiURL, apiKey string) *Verifier {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Verifier{
		logger: logger,
		client: client,
		rdb:    rdb,
		apiURL: apiURL,
		apiKey: apiKey,
	}
}

// Verify returns the deliverability status for the address and whether the
// answer came from cache.
func (v *Verifier) Verify(ctx context.Context, email string) (enums.VerificationStatus, bool, error) {
	key := "verify:" + strings.ToLower(strings.TrimSpace(email))

	cached, err := v.rdb.Get(ctx, key).Result()
	if err == nil {
		return ParseVerificationResult(cached), true, nil
	}
	if err != redis.Nil {
		v.logger.Warn("verification cache read failed", "error", err)
	}

	status, err := v.verifyRemote(ctx, email)
	if err != nil {
		return enums.VerificationUnknown, false, err
	}

	if err := v.rdb.Set(ctx, key, string(status), verifyCacheTTL).Err(); err != nil {
		v.logger.Warn("verification cache write failed", "error", err)
	}

	return status, false, nil
}

func (v *Verifier) verifyRemote(ctx context.Context, email string) (enums.VerificationStatus, error) {
	query := neturl.Values{}
	query.Set("email", email)
	url := fmt.Sprintf("%s/verify?%s", v.apiURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return enums.VerificationUnknown, err
	}
	req.Header.Set("X-API-Key", v.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return enums.VerificationUnknown, fmt.Errorf("verify email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return enums.VerificationUnknown, fmt.Errorf("verifier returned status %d: %s", resp.StatusCode, string(body))
	}

	var res struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return enums.VerificationUnknown, fmt.Errorf("decode verifier response: %w", err)
	}

	return ParseVerificationResult(res.Result), nil
}

// ParseVerificationResult maps an API result string onto our status enum.
// Anything unrecognized is treated as unknown rather than an error.
func ParseVerificationResult(result string) enums.VerificationStatus {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "deliverable", "valid":
		return enums.VerificationDeliverable
	case "risky", "accept_all", "catch_all":
		return enums.VerificationRisky
	case "undeliverable", "invalid":
		return enums.VerificationUndeliverable
	default:
		return enums.VerificationUnknown
	}
}
