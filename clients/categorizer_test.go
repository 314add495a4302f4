package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchpool/pitchpool.api/enums"
)

func TestNormalizeSuggestion(t *testing.T) {
	assert.Equal(t, "Tech", NormalizeSuggestion("Tech"))
	assert.Equal(t, "Tech", NormalizeSuggestion("tech"))
	assert.Equal(t, "Tech", NormalizeSuggestion(" Tech. "))
	assert.Equal(t, "Real Estate", NormalizeSuggestion("real estate"))
	assert.Equal(t, "", NormalizeSuggestion("NONE"))
	assert.Equal(t, "", NormalizeSuggestion("Cryptocurrency"))
	assert.Equal(t, "", NormalizeSuggestion(""))
}

func TestParseVerificationResult(t *testing.T) {
	assert.Equal(t, enums.VerificationDeliverable, ParseVerificationResult("deliverable"))
	assert.Equal(t, enums.VerificationDeliverable, ParseVerificationResult("Valid"))
	assert.Equal(t, enums.VerificationRisky, ParseVerificationResult("risky"))
	assert.Equal(t, enums.VerificationRisky, ParseVerificationResult("accept_all"))
	assert.Equal(t, enums.VerificationUndeliverable, ParseVerificationResult("invalid"))
	assert.Equal(t, enums.VerificationUnknown, ParseVerificationResult("whatever"))
	assert.Equal(t, enums.VerificationUnknown, ParseVerificationResult(""))
}
