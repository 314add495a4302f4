package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/enums"
	"github.com/pitchpool/pitchpool.api/matchers"
	"github.com/pitchpool/pitchpool.api/metrics"
	"github.com/pitchpool/pitchpool.api/models"
)

const (
	previewSampleSize       = 3
	defaultSendIntervalDays = 2
)

type CampaignHandler struct {
	campaignRepo    *repos.CampaignRepo
	contactRepo     *repos.ContactRepo
	opportunityRepo *repos.OpportunityRepo
	templateRepo    *repos.TemplateRepo
	queueRepo       *repos.QueueRepo
}

func NewCampaignHandler(
	campaignRepo *repos.CampaignRepo,
	contactRepo *repos.ContactRepo,
	opportunityRepo *repos.OpportunityRepo,
	templateRepo *repos.TemplateRepo,
	queueRepo *repos.QueueRepo,
) *CampaignHandler {
	return &CampaignHandler{
		campaignRepo:    campaignRepo,
		contactRepo:     contactRepo,
		opportunityRepo: opportunityRepo,
		templateRepo:    templateRepo,
		queueRepo:       queueRepo,
	}
}

// matchInputs is everything a matching pass needs, loaded up front so both
// preview and launch share the same precondition checks.
type matchInputs struct {
	contacts      []data.Contact
	opportunities []data.Opportunity
	templates     []data.Template
}

func (h *CampaignHandler) loadMatchInputs(userID uuid.UUID, poolIDs []int) (matchInputs, *Result) {
	templates, err := h.templateRepo.GetEnabledTemplates(userID)
	if err != nil {
		res := InternalError(err, "load templates: ")
		return matchInputs{}, &res
	}
	if len(templates) == 0 {
		res := BadRequest("No templates enabled. Enable at least one template before previewing a campaign.")
		return matchInputs{}, &res
	}

	opportunities, err := h.opportunityRepo.GetActiveOpportunities(userID)
	if err != nil {
		res := InternalError(err, "load opportunities: ")
		return matchInputs{}, &res
	}
	if len(opportunities) == 0 {
		res := NotFound("No active journalist leads found. Add leads before previewing a campaign.")
		return matchInputs{}, &res
	}

	var contacts []data.Contact
	if len(poolIDs) > 0 {
		contacts, err = h.contactRepo.GetContactsByPoolIDs(userID, poolIDs)
	} else {
		contacts, err = h.contactRepo.GetAllContacts(userID)
	}
	if err != nil {
		res := InternalError(err, "load contacts: ")
		return matchInputs{}, &res
	}
	if len(contacts) == 0 {
		res := NotFound("No contacts found.")
		return matchInputs{}, &res
	}

	return matchInputs{contacts: contacts, opportunities: opportunities, templates: templates}, nil
}

func (h *CampaignHandler) PreviewCampaign(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.PreviewCampaignRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return BadRequest("Invalid request.")
		}
	}

	inputs, errRes := h.loadMatchInputs(user.ID, req.PoolIDs)
	if errRes != nil {
		return *errRes
	}

	result := matchers.Match(inputs.contacts, inputs.opportunities, inputs.templates)
	metrics.PreviewRequests.Inc()
	metrics.MatchesComputed.Add(float64(len(result.Pairs)))

	return Ok(buildPreview(result, inputs.templates, matchers.Industries(inputs.opportunities)))
}

// buildPreview packages a match result into the preview response: the first
// few pairs as a sample plus aggregate counts and warnings.
func buildPreview(result matchers.MatchResult, templates []data.Template, industries []string) models.PreviewCampaignResponse {
	previews := make([]models.PreviewPair, 0, previewSampleSize)
	for i, pair := range result.Pairs {
		if i >= previewSampleSize {
			break
		}
		previews = append(previews, toPreviewPair(pair))
	}

	// TODO: totalEmails multiplies pairs by the template count even though
	// every pair already carries the full template sequence, so it overcounts
	// whenever a contact matches several opportunities. Confirm the intended
	// metric before changing it; the dashboard currently expects this value.
	totalEmails := len(result.Pairs) * len(templates)

	return models.PreviewCampaignResponse{
		Previews:            previews,
		TotalMatches:        len(result.Pairs),
		TotalEmails:         totalEmails,
		AvailableIndustries: industries,
		Warnings: models.PreviewWarnings{
			ContactsWithoutIndustry:         toContactModels(result.NoIndustry),
			ContactsWithNonMatchingIndustry: toContactModels(result.NoMatch),
		},
	}
}

func toPreviewPair(pair matchers.MatchedPair) models.PreviewPair {
	emails := make([]models.PreviewEmail, 0, len(pair.Templates))
	for _, t := range pair.Templates {
		emails = append(emails, models.PreviewEmail{
			Number:  t.TemplateNumber,
			Subject: t.Subject,
			Body:    t.Body,
		})
	}

	return models.PreviewPair{
		Contact:     models.FromDataContact(pair.Contact),
		Opportunity: models.FromDataOpportunity(pair.Opportunity),
		Emails:      emails,
	}
}

func toContactModels(contacts []data.Contact) []models.Contact {
	if len(contacts) == 0 {
		return nil
	}
	out := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, models.FromDataContact(c))
	}
	return out
}

func (h *CampaignHandler) LaunchCampaign(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.LaunchCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Campaign name is required.")
	}
	interval := req.SendIntervalDays
	if interval <= 0 {
		interval = defaultSendIntervalDays
	}

	inputs, errRes := h.loadMatchInputs(user.ID, req.PoolIDs)
	if errRes != nil {
		return *errRes
	}

	result := matchers.Match(inputs.contacts, inputs.opportunities, inputs.templates)
	if len(result.Pairs) == 0 {
		return BadRequest("No contacts match any active journalist lead. Set contact industries or add leads first.")
	}
	metrics.MatchesComputed.Add(float64(len(result.Pairs)))

	campaignID, err := h.campaignRepo.CreateCampaign(data.Campaign{UserID: user.ID, Name: name})
	if err != nil {
		return InternalError(err, "launch campaign: create campaign")
	}

	// Unmatched contacts still join the campaign; only queue rows are
	// limited to matched pairs.
	if err := h.contactRepo.AssignCampaign(consideredContactIDs(result), user.ID, campaignID); err != nil {
		return InternalError(err, "launch campaign: assign contacts")
	}

	queue := buildQueue(result.Pairs, user.ID, campaignID, time.Now(), interval)
	if err := h.queueRepo.EnqueueEmails(queue); err != nil {
		return InternalError(err, "launch campaign: enqueue emails")
	}
	metrics.CampaignsLaunched.Inc()

	return Created(models.LaunchCampaignResponse{
		CampaignID:   campaignID,
		QueuedEmails: len(queue),
		TotalMatches: len(result.Pairs),
	})
}

// buildQueue expands matched pairs into queue rows: one row per pair per
// template, with follow-ups spaced intervalDays apart.
func buildQueue(pairs []matchers.MatchedPair, userID uuid.UUID, campaignID int, start time.Time, intervalDays int) []data.QueuedEmail {
	queue := make([]data.QueuedEmail, 0, len(pairs))
	for _, pair := range pairs {
		for i, tmpl := range pair.Templates {
			queue = append(queue, data.QueuedEmail{
				UserID:         userID,
				CampaignID:     campaignID,
				ContactID:      pair.Contact.ID,
				OpportunityID:  pair.Opportunity.ID,
				TemplateNumber: tmpl.TemplateNumber,
				Subject:        tmpl.Subject,
				Body:           tmpl.Body,
				Status:         enums.QueueStatusPending,
				ScheduledAt:    start.Add(time.Duration(i*intervalDays) * 24 * time.Hour),
			})
		}
	}
	return queue
}

// consideredContactIDs collects every contact the matcher bucketed, matched
// or not, deduplicated.
func consideredContactIDs(result matchers.MatchResult) []int {
	seen := make(map[int]struct{})
	ids := make([]int, 0, len(result.Pairs)+len(result.NoIndustry)+len(result.NoMatch))

	add := func(id int) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, pair := range result.Pairs {
		add(pair.Contact.ID)
	}
	for _, c := range result.NoIndustry {
		add(c.ID)
	}
	for _, c := range result.NoMatch {
		add(c.ID)
	}

	return ids
}

func (h *CampaignHandler) GetCampaigns(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	campaigns, err := h.campaignRepo.GetCampaignsByUserID(user.ID)
	if err != nil {
		return InternalError(err, "get campaigns: ")
	}

	res := models.GetCampaignsResponse{Campaigns: make([]models.Campaign, 0, len(campaigns))}
	for _, c := range campaigns {
		res.Campaigns = append(res.Campaigns, toCampaignModel(c))
	}

	return Ok(res)
}

func (h *CampaignHandler) GetCampaign(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid campaign ID.")
	}

	campaign, err := h.campaignRepo.GetCampaignByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get campaign: ")
	}
	if campaign == nil {
		return NotFound("Campaign not found.")
	}

	return Ok(toCampaignModel(*campaign))
}

func toCampaignModel(c data.CampaignWithStats) models.Campaign {
	return models.Campaign{
		ID:           c.ID,
		Name:         c.Name,
		CreatedAt:    c.CreatedAt,
		PendingCount: c.PendingCount,
		SentCount:    c.SentCount,
		FailedCount:  c.FailedCount,
	}
}
