package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/mail"
	"strconv"
	"strings"

	"github.com/pitchpool/pitchpool.api/clients"
	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/enums"
	"github.com/pitchpool/pitchpool.api/metrics"
	"github.com/pitchpool/pitchpool.api/models"
)

type ContactHandler struct {
	repo        *repos.ContactRepo
	verifier    *clients.Verifier
	categorizer *clients.Categorizer
}

func NewContactHandler(repo *repos.ContactRepo, verifier *clients.Verifier, categorizer *clients.Categorizer) *ContactHandler {
	return &ContactHandler{
		repo:        repo,
		verifier:    verifier,
		categorizer: categorizer,
	}
}

func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return BadRequest("Email is required.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return BadRequest("Invalid email address.")
	}

	contact := data.Contact{
		UserID:       user.ID,
		Email:        email,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Company:      strings.TrimSpace(req.Company),
		Industry:     toNullString(req.Industry),
		Source:       enums.ContactSourceManual,
		Verification: enums.VerificationUnknown,
	}

	id, err := h.repo.CreateContact(contact)
	if err != nil {
		return InternalError(err, "create contact: ")
	}

	return Created(id)
}

func (h *ContactHandler) GetContacts(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage := 50
	offset := (page - 1) * perPage

	contacts, total, err := h.repo.GetContactsByUserID(user.ID, perPage, offset)
	if err != nil {
		return InternalError(err, "get contacts: ")
	}

	res := models.GetContactsResponse{
		Contacts: make([]models.Contact, 0, len(contacts)),
		Total:    total,
		Page:     page,
		PerPage:  perPage,
	}
	for _, c := range contacts {
		res.Contacts = append(res.Contacts, models.FromDataContact(c))
	}

	return Ok(res)
}

func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	contact, err := h.repo.GetContactByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get contact: ")
	}
	if contact == nil {
		return NotFound("Contact not found.")
	}

	return Ok(models.FromDataContact(*contact))
}

func (h *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	var req models.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return BadRequest("Email is required.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return BadRequest("Invalid email address.")
	}

	contact := data.Contact{
		ID:        id,
		UserID:    user.ID,
		Email:     email,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Company:   strings.TrimSpace(req.Company),
		Industry:  toNullString(req.Industry),
	}

	if err := h.repo.UpdateContact(contact); err != nil {
		return InternalError(err, "update contact: ")
	}

	return Ok(nil)
}

func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	if err := h.repo.DeleteContact(id, user.ID); err != nil {
		return InternalError(err, "delete contact: ")
	}

	return Ok(nil)
}

func (h *ContactHandler) VerifyContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	contact, err := h.repo.GetContactByID(id, user.ID)
	if err != nil {
		return InternalError(err, "verify contact: get contact")
	}
	if contact == nil {
		return NotFound("Contact not found.")
	}

	status, cached, err := h.verifier.Verify(r.Context(), contact.Email)
	if err != nil {
		return InternalError(err, "verify contact: ")
	}

	if err := h.repo.SetVerification(id, user.ID, string(status)); err != nil {
		return InternalError(err, "verify contact: save status")
	}
	metrics.Verifications.WithLabelValues(string(status)).Inc()

	return Ok(models.VerifyContactResponse{
		Email:  contact.Email,
		Status: string(status),
		Cached: cached,
	})
}

// CategorizeContact asks the categorizer for an industry suggestion based on
// the contact's company text and stores it when one comes back. Contacts
// that already have an industry are left alone.
func (h *ContactHandler) CategorizeContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	contact, err := h.repo.GetContactByID(id, user.ID)
	if err != nil {
		return InternalError(err, "categorize contact: get contact")
	}
	if contact == nil {
		return NotFound("Contact not found.")
	}
	if contact.Industry.Valid && strings.TrimSpace(contact.Industry.String) != "" {
		return Ok(models.CategorizeContactResponse{Industry: contact.Industry.String})
	}

	suggestion, err := h.categorizer.SuggestIndustry(r.Context(), contact.Company)
	if err != nil {
		return InternalError(err, "categorize contact: ")
	}

	if suggestion != "" {
		if err := h.repo.SetIndustry(id, user.ID, suggestion); err != nil {
			return InternalError(err, "categorize contact: save industry")
		}
	}

	return Ok(models.CategorizeContactResponse{Industry: suggestion})
}

func toNullString(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
