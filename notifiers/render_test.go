package notifiers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchpool/pitchpool.api/data"
)

func sampleJob() data.OutreachJob {
	return data.OutreachJob{
		RecipientEmail: "jane@acme.com",
		FirstName:      "Jane",
		LastName:       "Doe",
		Company:        "Acme",
		JournalistName: "Sam Reporter",
		Publication:    "The Daily",
		Topic:          "AI in retail",
	}
}

func TestRenderPlaceholders_AllFields(t *testing.T) {
	job := sampleJob()
	out := RenderPlaceholders(
		"Hi {{FirstName}} {{LastName}} of {{Company}}, {{JournalistName}} at {{Publication}} wants {{Topic}}",
		job,
	)

	assert.Equal(t, "Hi Jane Doe of Acme, Sam Reporter at The Daily wants AI in retail", out)
}

func TestRenderPlaceholders_UnknownPlaceholderLeftAlone(t *testing.T) {
	out := RenderPlaceholders("Hi {{FirstName}}, see {{Unknown}}", sampleJob())
	assert.Equal(t, "Hi Jane, see {{Unknown}}", out)
}

func TestRenderPlaceholders_NoPlaceholders(t *testing.T) {
	out := RenderPlaceholders("plain text", sampleJob())
	assert.Equal(t, "plain text", out)
}

func TestRenderPlaceholders_RepeatedPlaceholder(t *testing.T) {
	out := RenderPlaceholders("{{FirstName}} {{FirstName}}", sampleJob())
	assert.Equal(t, "Jane Jane", out)
}

func TestOutreachEmail(t *testing.T) {
	mailer := NewMailer("smtp.example.com", "587", "outreach@pitchpool.io", "pw", "https://app.pitchpool.io")

	job := sampleJob()
	job.Subject = "Pitch for {{Publication}}"
	job.Body = "Hi {{JournalistName}},\nI run {{Company}}."

	mail, err := mailer.OutreachEmail(job)
	require.NoError(t, err)

	assert.Equal(t, "jane@acme.com", mail.To)
	assert.Equal(t, "Pitch for The Daily", mail.Subject)
	assert.True(t, strings.Contains(mail.Body, "Hi Sam Reporter,<br>I run Acme."))
}
