package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pitchpool/pitchpool.api/clients"
	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/enums"
	"github.com/pitchpool/pitchpool.api/metrics"
	"github.com/pitchpool/pitchpool.api/models"
)

const (
	defaultDiscoveryLimit = 10
	maxDiscoveryLimit     = 25
)

type DiscoveryHandler struct {
	finder      *clients.Finder
	categorizer *clients.Categorizer
	contactRepo *repos.ContactRepo
}

func NewDiscoveryHandler(finder *clients.Finder, categorizer *clients.Categorizer, contactRepo *repos.ContactRepo) *DiscoveryHandler {
	return &DiscoveryHandler{
		finder:      finder,
		categorizer: categorizer,
		contactRepo: contactRepo,
	}
}

// Search finds prospect emails for a domain and imports them as contacts.
// Candidates whose email the user already has are skipped.
func (h *DiscoveryHandler) Search(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.DiscoverySearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	domain := strings.ToLower(strings.TrimSpace(req.Domain))
	if domain == "" {
		return BadRequest("Domain is required.")
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultDiscoveryLimit
	}
	if limit > maxDiscoveryLimit {
		limit = maxDiscoveryLimit
	}

	candidates, err := h.finder.DomainSearch(r.Context(), domain, limit)
	if err != nil {
		return InternalError(err, "discovery search: ")
	}

	existing, err := h.contactRepo.GetAllContacts(user.ID)
	if err != nil {
		return InternalError(err, "discovery search: load contacts")
	}
	known := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		known[strings.ToLower(c.Email)] = struct{}{}
	}

	res := models.DiscoverySearchResponse{
		Total:    len(candidates),
		Contacts: make([]models.Contact, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		if _, ok := known[strings.ToLower(candidate.Email)]; ok {
			res.Skipped++
			continue
		}

		contact := data.Contact{
			UserID:       user.ID,
			Email:        candidate.Email,
			FirstName:    candidate.FirstName,
			LastName:     candidate.LastName,
			Company:      candidate.Company,
			Source:       enums.ContactSourceDiscovery,
			Verification: enums.VerificationUnknown,
		}

		// Best-effort industry suggestion from the candidate's position.
		if candidate.Position != "" {
			suggestion, err := h.categorizer.SuggestIndustry(r.Context(), candidate.Position+" at "+candidate.Company)
			if err != nil {
				slog.Warn("discovery: categorize candidate failed", "error", err)
			} else if suggestion != "" {
				contact.Industry = toNullString(suggestion)
			}
		}

		id, err := h.contactRepo.CreateContact(contact)
		if err != nil {
			return InternalError(err, "discovery search: import contact")
		}
		contact.ID = id

		res.Imported++
		res.Contacts = append(res.Contacts, models.FromDataContact(contact))
	}

	metrics.ContactsDiscovered.Add(float64(res.Imported))

	return Ok(res)
}
