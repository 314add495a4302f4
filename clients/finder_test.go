package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDomainSearch(t *testing.T) {
	body := []byte(`{
		"data": {
			"domain": "acme.com",
			"organization": "Acme Inc",
			"emails": [
				{"value": "jane@acme.com", "first_name": "Jane", "last_name": "Doe", "position": "CTO", "confidence": 94},
				{"value": "", "first_name": "Ghost", "last_name": "", "position": "", "confidence": 10},
				{"value": "info@acme.com", "first_name": "", "last_name": "", "position": "", "confidence": 72}
			]
		}
	}`)

	candidates, err := ParseDomainSearch(body)
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, "jane@acme.com", candidates[0].Email)
	assert.Equal(t, "Jane", candidates[0].FirstName)
	assert.Equal(t, "Acme Inc", candidates[0].Company)
	assert.Equal(t, 94, candidates[0].Confidence)
	assert.Equal(t, "info@acme.com", candidates[1].Email)
}

func TestParseDomainSearch_InvalidJSON(t *testing.T) {
	_, err := ParseDomainSearch([]byte("not json"))
	assert.Error(t, err)
}

func TestParseDomainSearch_EmptyPayload(t *testing.T) {
	candidates, err := ParseDomainSearch([]byte(`{"data": {"emails": []}}`))
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
