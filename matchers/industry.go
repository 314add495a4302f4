package matchers

import (
	"sort"
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
)

// IndustryMatcher decides whether a contact's industry and an opportunity's
// industry refer to the same thing. Implementations must treat blank input
// as a non-match.
type IndustryMatcher interface {
	Matches(contactIndustry, opportunityIndustry string) bool
}

// ExactMatcher matches industries by trimmed, case-insensitive equality.
// " Tech " and "tech" match; "Tech" and "Technology" do not. This is the
// documented policy: no fuzzy matching, no synonym resolution.
type ExactMatcher struct{}

func (ExactMatcher) Matches(contactIndustry, opportunityIndustry string) bool {
	a := strings.TrimSpace(contactIndustry)
	b := strings.TrimSpace(opportunityIndustry)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}

// MatchedPair is one contact paired with one opportunity sharing its
// industry, carrying the full enabled template sequence. A contact matching
// K opportunities produces K pairs, each with the identical templates.
type MatchedPair struct {
	Contact     data.Contact
	Opportunity data.Opportunity
	Templates   []data.Template
}

// MatchResult partitions the considered contacts: every contact with an
// email and first name lands in exactly one of Pairs (possibly several
// pairs), NoIndustry, or NoMatch.
type MatchResult struct {
	Pairs      []MatchedPair
	NoIndustry []data.Contact
	NoMatch    []data.Contact
}

// Match pairs contacts against opportunities using the exact industry
// policy. Opportunities must be pre-filtered to active rows and templates to
// enabled rows sorted by template number; Match does not check either.
func Match(contacts []data.Contact, opportunities []data.Opportunity, templates []data.Template) MatchResult {
	return MatchWith(ExactMatcher{}, contacts, opportunities, templates)
}

// MatchWith is Match with a pluggable industry policy. Pure and
// deterministic: output order follows contact input order, then opportunity
// input order.
func MatchWith(matcher IndustryMatcher, contacts []data.Contact, opportunities []data.Opportunity, templates []data.Template) MatchResult {
	result := MatchResult{
		Pairs:      []MatchedPair{},
		NoIndustry: []data.Contact{},
		NoMatch:    []data.Contact{},
	}

	for _, contact := range contacts {
		// Records without an email or first name are malformed, not
		// matching failures. They appear in no bucket.
		if strings.TrimSpace(contact.Email) == "" || strings.TrimSpace(contact.FirstName) == "" {
			continue
		}

		industry := ""
		if contact.Industry.Valid {
			industry = strings.TrimSpace(contact.Industry.String)
		}
		if industry == "" {
			result.NoIndustry = append(result.NoIndustry, contact)
			continue
		}

		matched := false
		for _, opp := range opportunities {
			if !opp.Industry.Valid {
				continue
			}
			if !matcher.Matches(industry, opp.Industry.String) {
				continue
			}
			matched = true
			result.Pairs = append(result.Pairs, MatchedPair{
				Contact:     contact,
				Opportunity: opp,
				Templates:   templates,
			})
		}

		if !matched {
			result.NoMatch = append(result.NoMatch, contact)
		}
	}

	return result
}

// Industries returns the distinct industries among the given opportunities,
// trimmed, case-preserved as first seen, sorted lexicographically.
func Industries(opportunities []data.Opportunity) []string {
	seen := make(map[string]struct{})
	industries := make([]string, 0, len(opportunities))

	for _, opp := range opportunities {
		if !opp.Industry.Valid {
			continue
		}
		industry := strings.TrimSpace(opp.Industry.String)
		if industry == "" {
			continue
		}
		key := strings.ToLower(industry)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		industries = append(industries, industry)
	}

	sort.Strings(industries)
	return industries
}
