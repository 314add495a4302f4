package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pitchpool/pitchpool.api/enums"
)

func TestNextAttempt_RetriesWithGrowingBackoff(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	backoff := 15 * time.Minute

	status, retryAt := nextAttempt(0, 3, now, backoff)
	assert.Equal(t, enums.QueueStatusPending, status)
	assert.Equal(t, now.Add(15*time.Minute), retryAt)

	status, retryAt = nextAttempt(1, 3, now, backoff)
	assert.Equal(t, enums.QueueStatusPending, status)
	assert.Equal(t, now.Add(30*time.Minute), retryAt)
}

func TestNextAttempt_DeadLettersAtBudget(t *testing.T) {
	now := time.Now()

	status, _ := nextAttempt(2, 3, now, time.Minute)
	assert.Equal(t, enums.QueueStatusFailed, status)

	status, _ = nextAttempt(5, 3, now, time.Minute)
	assert.Equal(t, enums.QueueStatusFailed, status)
}

func TestNextAttempt_BudgetOfOneNeverRetries(t *testing.T) {
	status, _ := nextAttempt(0, 1, time.Now(), time.Minute)
	assert.Equal(t, enums.QueueStatusFailed, status)
}
