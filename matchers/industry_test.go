package matchers

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pitchpool/pitchpool.api/data"
)

func contact(id int, email, firstName, industry string) data.Contact {
	c := data.Contact{ID: id, Email: email, FirstName: firstName}
	if industry != "" {
		c.Industry = sql.NullString{String: industry, Valid: true}
	}
	return c
}

func opportunity(id int, industry string) data.Opportunity {
	o := data.Opportunity{ID: id, JournalistName: "J", Active: true}
	if industry != "" {
		o.Industry = sql.NullString{String: industry, Valid: true}
	}
	return o
}

var testTemplates = []data.Template{
	{ID: 1, TemplateNumber: 1, Subject: "Intro", Body: "Hi {{FirstName}}"},
	{ID: 2, TemplateNumber: 2, Subject: "Follow up", Body: "Bumping this"},
}

func TestMatch_SingleIndustryMatch(t *testing.T) {
	contacts := []data.Contact{contact(1, "a@x.com", "A", "Tech")}
	opps := []data.Opportunity{opportunity(1, "Tech"), opportunity(2, "Finance")}

	result := Match(contacts, opps, testTemplates)

	assert.Len(t, result.Pairs, 1)
	assert.Empty(t, result.NoIndustry)
	assert.Empty(t, result.NoMatch)
	assert.Equal(t, 1, result.Pairs[0].Contact.ID)
	assert.Equal(t, 1, result.Pairs[0].Opportunity.ID)
	assert.Equal(t, testTemplates, result.Pairs[0].Templates)
}

func TestMatch_EmptyIndustryGoesToNoIndustry(t *testing.T) {
	contacts := []data.Contact{
		contact(1, "a@x.com", "A", ""),
		{ID: 2, Email: "b@x.com", FirstName: "B", Industry: sql.NullString{String: "   ", Valid: true}},
	}
	opps := []data.Opportunity{opportunity(1, "Tech")}

	result := Match(contacts, opps, testTemplates)

	assert.Empty(t, result.Pairs)
	assert.Len(t, result.NoIndustry, 2)
	assert.Empty(t, result.NoMatch)
}

func TestMatch_UnmatchedIndustryGoesToNoMatch(t *testing.T) {
	contacts := []data.Contact{contact(1, "a@x.com", "A", "Retail")}
	opps := []data.Opportunity{opportunity(1, "Tech"), opportunity(2, "Finance")}

	result := Match(contacts, opps, testTemplates)

	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.NoIndustry)
	assert.Len(t, result.NoMatch, 1)
	assert.Equal(t, 1, result.NoMatch[0].ID)
}

func TestMatch_MalformedContactsExcludedEverywhere(t *testing.T) {
	contacts := []data.Contact{
		contact(1, "", "A", "Tech"),
		contact(2, "b@x.com", "", "Tech"),
		contact(3, "   ", "C", "Tech"),
	}
	opps := []data.Opportunity{opportunity(1, "Tech")}

	result := Match(contacts, opps, testTemplates)

	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.NoIndustry)
	assert.Empty(t, result.NoMatch)
}

func TestMatch_MultipleOpportunitiesSameIndustry(t *testing.T) {
	contacts := []data.Contact{contact(1, "a@x.com", "A", "Tech")}
	opps := []data.Opportunity{opportunity(1, "Tech"), opportunity(2, "Tech")}

	result := Match(contacts, opps, testTemplates)

	assert.Len(t, result.Pairs, 2)
	assert.Equal(t, 1, result.Pairs[0].Opportunity.ID)
	assert.Equal(t, 2, result.Pairs[1].Opportunity.ID)
	for _, pair := range result.Pairs {
		assert.Equal(t, 1, pair.Contact.ID)
		assert.Equal(t, testTemplates, pair.Templates)
	}
}

func TestMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	contacts := []data.Contact{contact(1, "a@x.com", "A", " Tech ")}
	opps := []data.Opportunity{opportunity(1, "tech")}

	result := Match(contacts, opps, testTemplates)

	assert.Len(t, result.Pairs, 1)
	assert.Empty(t, result.NoMatch)
}

func TestMatch_OpportunityWithoutIndustryNeverMatches(t *testing.T) {
	contacts := []data.Contact{contact(1, "a@x.com", "A", "Tech")}
	opps := []data.Opportunity{opportunity(1, "")}

	result := Match(contacts, opps, testTemplates)

	assert.Empty(t, result.Pairs)
	assert.Len(t, result.NoMatch, 1)
}

func TestMatch_OrderFollowsInputOrder(t *testing.T) {
	contacts := []data.Contact{
		contact(1, "a@x.com", "A", "Finance"),
		contact(2, "b@x.com", "B", "Tech"),
	}
	opps := []data.Opportunity{
		opportunity(1, "Tech"),
		opportunity(2, "Finance"),
		opportunity(3, "Tech"),
	}

	result := Match(contacts, opps, testTemplates)

	assert.Len(t, result.Pairs, 3)
	// Contact 1 first (opp 2), then contact 2 against opps 1 and 3 in order.
	assert.Equal(t, 1, result.Pairs[0].Contact.ID)
	assert.Equal(t, 2, result.Pairs[0].Opportunity.ID)
	assert.Equal(t, 2, result.Pairs[1].Contact.ID)
	assert.Equal(t, 1, result.Pairs[1].Opportunity.ID)
	assert.Equal(t, 2, result.Pairs[2].Contact.ID)
	assert.Equal(t, 3, result.Pairs[2].Opportunity.ID)
}

func TestMatch_Idempotent(t *testing.T) {
	contacts := []data.Contact{
		contact(1, "a@x.com", "A", "Tech"),
		contact(2, "b@x.com", "B", "Retail"),
		contact(3, "c@x.com", "C", ""),
	}
	opps := []data.Opportunity{opportunity(1, "Tech"), opportunity(2, "Finance")}

	first := Match(contacts, opps, testTemplates)
	second := Match(contacts, opps, testTemplates)

	assert.Equal(t, first, second)
}

func TestMatch_EmptyInputs(t *testing.T) {
	result := Match(nil, nil, nil)

	assert.Empty(t, result.Pairs)
	assert.Empty(t, result.NoIndustry)
	assert.Empty(t, result.NoMatch)
}

func TestExactMatcher(t *testing.T) {
	m := ExactMatcher{}

	assert.True(t, m.Matches("Tech", "tech"))
	assert.True(t, m.Matches(" Tech ", "TECH"))
	assert.False(t, m.Matches("Tech", "Technology"))
	assert.False(t, m.Matches("Techs", "Tech"))
	assert.False(t, m.Matches("", "Tech"))
	assert.False(t, m.Matches("Tech", ""))
	assert.False(t, m.Matches("", ""))
}

func TestIndustries_DistinctTrimmedSorted(t *testing.T) {
	opps := []data.Opportunity{
		opportunity(1, " Tech "),
		opportunity(2, "finance"),
		opportunity(3, "TECH"),
		opportunity(4, ""),
		opportunity(5, "Finance"),
	}

	industries := Industries(opps)

	// Case preserved as first seen, deduplicated case-insensitively.
	assert.Equal(t, []string{"Tech", "finance"}, industries)
}

func TestIndustries_Empty(t *testing.T) {
	assert.Empty(t, Industries(nil))
	assert.Empty(t, Industries([]data.Opportunity{opportunity(1, "  ")}))
}
