package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/enums"
	"github.com/pitchpool/pitchpool.api/matchers"
)

func testContact(id int, industry string) data.Contact {
	c := data.Contact{ID: id, Email: "c@x.com", FirstName: "C"}
	if industry != "" {
		c.Industry = sql.NullString{String: industry, Valid: true}
	}
	return c
}

func testOpportunity(id int, industry string) data.Opportunity {
	return data.Opportunity{
		ID:             id,
		JournalistName: "J",
		Industry:       sql.NullString{String: industry, Valid: industry != ""},
		Active:         true,
	}
}

var twoTemplates = []data.Template{
	{ID: 1, TemplateNumber: 1, Subject: "Intro", Body: "Hi"},
	{ID: 2, TemplateNumber: 2, Subject: "Bump", Body: "Following up"},
}

func TestBuildPreview_SampleCappedAtThree(t *testing.T) {
	contacts := []data.Contact{
		testContact(1, "Tech"),
		testContact(2, "Tech"),
		testContact(3, "Tech"),
		testContact(4, "Tech"),
	}
	opps := []data.Opportunity{testOpportunity(1, "Tech")}

	result := matchers.Match(contacts, opps, twoTemplates)
	preview := buildPreview(result, twoTemplates, matchers.Industries(opps))

	assert.Len(t, preview.Previews, 3)
	assert.Equal(t, 4, preview.TotalMatches)
	assert.Equal(t, 8, preview.TotalEmails)
	assert.Equal(t, []string{"Tech"}, preview.AvailableIndustries)
}

func TestBuildPreview_WarningsCarryBuckets(t *testing.T) {
	contacts := []data.Contact{
		testContact(1, "Tech"),
		testContact(2, ""),
		testContact(3, "Retail"),
	}
	opps := []data.Opportunity{testOpportunity(1, "Tech")}

	result := matchers.Match(contacts, opps, twoTemplates)
	preview := buildPreview(result, twoTemplates, matchers.Industries(opps))

	require.Len(t, preview.Warnings.ContactsWithoutIndustry, 1)
	assert.Equal(t, 2, preview.Warnings.ContactsWithoutIndustry[0].ID)
	require.Len(t, preview.Warnings.ContactsWithNonMatchingIndustry, 1)
	assert.Equal(t, 3, preview.Warnings.ContactsWithNonMatchingIndustry[0].ID)
}

func TestBuildPreview_EmailsCarryTemplateSequence(t *testing.T) {
	contacts := []data.Contact{testContact(1, "Tech")}
	opps := []data.Opportunity{testOpportunity(1, "Tech")}

	result := matchers.Match(contacts, opps, twoTemplates)
	preview := buildPreview(result, twoTemplates, matchers.Industries(opps))

	require.Len(t, preview.Previews, 1)
	require.Len(t, preview.Previews[0].Emails, 2)
	assert.Equal(t, 1, preview.Previews[0].Emails[0].Number)
	assert.Equal(t, "Intro", preview.Previews[0].Emails[0].Subject)
	assert.Equal(t, 2, preview.Previews[0].Emails[1].Number)
}

func TestBuildQueue_OneRowPerPairPerTemplate(t *testing.T) {
	userID := uuid.New()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	pairs := []matchers.MatchedPair{
		{Contact: testContact(1, "Tech"), Opportunity: testOpportunity(10, "Tech"), Templates: twoTemplates},
		{Contact: testContact(1, "Tech"), Opportunity: testOpportunity(11, "Tech"), Templates: twoTemplates},
	}

	queue := buildQueue(pairs, userID, 7, start, 2)

	require.Len(t, queue, 4)
	for _, row := range queue {
		assert.Equal(t, userID, row.UserID)
		assert.Equal(t, 7, row.CampaignID)
		assert.Equal(t, enums.QueueStatusPending, row.Status)
	}

	// First template immediately, follow-up two days later.
	assert.Equal(t, start, queue[0].ScheduledAt)
	assert.Equal(t, start.Add(48*time.Hour), queue[1].ScheduledAt)
	assert.Equal(t, 1, queue[0].TemplateNumber)
	assert.Equal(t, 2, queue[1].TemplateNumber)
	assert.Equal(t, 10, queue[0].OpportunityID)
	assert.Equal(t, 11, queue[2].OpportunityID)
}

func TestConsideredContactIDs_DeduplicatesAcrossPairs(t *testing.T) {
	contacts := []data.Contact{
		testContact(1, "Tech"),
		testContact(2, ""),
		testContact(3, "Retail"),
	}
	opps := []data.Opportunity{testOpportunity(1, "Tech"), testOpportunity(2, "Tech")}

	result := matchers.Match(contacts, opps, twoTemplates)
	require.Len(t, result.Pairs, 2) // contact 1 twice

	ids := consideredContactIDs(result)
	assert.ElementsMatch(t, []int{1, 2, 3}, ids)
}
