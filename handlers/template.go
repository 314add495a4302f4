package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/models"
)

// MaxEnabledTemplates caps the outreach sequence length per user.
const MaxEnabledTemplates = 5

type TemplateHandler struct {
	repo *repos.TemplateRepo
}

func NewTemplateHandler(repo *repos.TemplateRepo) *TemplateHandler {
	return &TemplateHandler{repo}
}

func (h *TemplateHandler) CreateTemplate(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if req.TemplateNumber < 1 || req.TemplateNumber > MaxEnabledTemplates {
		return BadRequest("Template number must be between 1 and 5.")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return BadRequest("Subject is required.")
	}
	if strings.TrimSpace(req.Body) == "" {
		return BadRequest("Body is required.")
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	if enabled {
		count, err := h.repo.CountEnabled(user.ID)
		if err != nil {
			return InternalError(err, "create template: count enabled")
		}
		if count >= MaxEnabledTemplates {
			return BadRequest("At most 5 templates can be enabled.")
		}
	}

	tmpl := data.Template{
		UserID:         user.ID,
		TemplateNumber: req.TemplateNumber,
		Subject:        req.Subject,
		Body:           req.Body,
		Enabled:        enabled,
	}

	id, err := h.repo.CreateTemplate(tmpl)
	if err != nil {
		if errors.Is(err, repos.ErrTemplateNumberTaken) {
			return BadRequest("Template number already in use.")
		}
		return InternalError(err, "create template: ")
	}

	return Created(id)
}

func (h *TemplateHandler) GetTemplates(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	templates, err := h.repo.GetTemplatesByUserID(user.ID)
	if err != nil {
		return InternalError(err, "get templates: ")
	}

	res := models.GetTemplatesResponse{Templates: make([]models.Template, 0, len(templates))}
	for _, t := range templates {
		res.Templates = append(res.Templates, models.Template{
			ID:             t.ID,
			UserID:         t.UserID,
			TemplateNumber: t.TemplateNumber,
			Subject:        t.Subject,
			Body:           t.Body,
			Enabled:        t.Enabled,
		})
	}

	return Ok(res)
}

func (h *TemplateHandler) GetTemplate(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid template ID.")
	}

	tmpl, err := h.repo.GetTemplateByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get template: ")
	}
	if tmpl == nil {
		return NotFound("Template not found.")
	}

	return Ok(models.Template{
		ID:             tmpl.ID,
		UserID:         tmpl.UserID,
		TemplateNumber: tmpl.TemplateNumber,
		Subject:        tmpl.Subject,
		Body:           tmpl.Body,
		Enabled:        tmpl.Enabled,
	})
}

func (h *TemplateHandler) UpdateTemplate(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid template ID.")
	}

	var req models.UpdateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	if req.TemplateNumber < 1 || req.TemplateNumber > MaxEnabledTemplates {
		return BadRequest("Template number must be between 1 and 5.")
	}
	if strings.TrimSpace(req.Subject) == "" {
		return BadRequest("Subject is required.")
	}
	if strings.TrimSpace(req.Body) == "" {
		return BadRequest("Body is required.")
	}

	tmpl := data.Template{
		ID:             id,
		UserID:         user.ID,
		TemplateNumber: req.TemplateNumber,
		Subject:        req.Subject,
		Body:           req.Body,
		Enabled:        req.Enabled,
	}

	if err := h.repo.UpdateTemplate(tmpl); err != nil {
		return InternalError(err, "update template: ")
	}

	return Ok(nil)
}

func (h *TemplateHandler) DeleteTemplate(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid template ID.")
	}

	if err := h.repo.DeleteTemplate(id, user.ID); err != nil {
		return InternalError(err, "delete template: ")
	}

	return Ok(nil)
}
