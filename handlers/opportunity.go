package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/models"
)

type OpportunityHandler struct {
	repo *repos.OpportunityRepo
}

func NewOpportunityHandler(repo *repos.OpportunityRepo) *OpportunityHandler {
	return &OpportunityHandler{repo}
}

func (h *OpportunityHandler) CreateOpportunity(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.CreateOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.JournalistName)
	if name == "" {
		return BadRequest("Journalist name is required.")
	}

	opp := data.Opportunity{
		UserID:         user.ID,
		JournalistName: name,
		Publication:    strings.TrimSpace(req.Publication),
		Industry:       toNullString(req.Industry),
		Topic:          strings.TrimSpace(req.Topic),
		Notes:          req.Notes,
		Active:         true,
	}
	if req.Active != nil {
		opp.Active = *req.Active
	}
	if req.Deadline != nil {
		opp.Deadline = sql.NullTime{Time: *req.Deadline, Valid: true}
	}

	id, err := h.repo.CreateOpportunity(opp)
	if err != nil {
		return InternalError(err, "create opportunity: ")
	}

	return Created(id)
}

func (h *OpportunityHandler) GetOpportunities(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var opps []data.Opportunity
	var err error
	if r.URL.Query().Get("active") == "true" {
		opps, err = h.repo.GetActiveOpportunities(user.ID)
	} else {
		opps, err = h.repo.GetOpportunitiesByUserID(user.ID)
	}
	if err != nil {
		return InternalError(err, "get opportunities: ")
	}

	res := models.GetOpportunitiesResponse{Opportunities: make([]models.Opportunity, 0, len(opps))}
	for _, o := range opps {
		res.Opportunities = append(res.Opportunities, models.FromDataOpportunity(o))
	}

	return Ok(res)
}

func (h *OpportunityHandler) GetOpportunity(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid opportunity ID.")
	}

	opp, err := h.repo.GetOpportunityByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get opportunity: ")
	}
	if opp == nil {
		return NotFound("Opportunity not found.")
	}

	return Ok(models.FromDataOpportunity(*opp))
}

func (h *OpportunityHandler) UpdateOpportunity(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid opportunity ID.")
	}

	var req models.UpdateOpportunityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.JournalistName)
	if name == "" {
		return BadRequest("Journalist name is required.")
	}

	opp := data.Opportunity{
		ID:             id,
		UserID:         user.ID,
		JournalistName: name,
		Publication:    strings.TrimSpace(req.Publication),
		Industry:       toNullString(req.Industry),
		Topic:          strings.TrimSpace(req.Topic),
		Notes:          req.Notes,
		Active:         req.Active,
	}
	if req.Deadline != nil {
		opp.Deadline = sql.NullTime{Time: *req.Deadline, Valid: true}
	}

	if err := h.repo.UpdateOpportunity(opp); err != nil {
		return InternalError(err, "update opportunity: ")
	}

	return Ok(nil)
}

func (h *OpportunityHandler) DeleteOpportunity(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid opportunity ID.")
	}

	if err := h.repo.DeleteOpportunity(id, user.ID); err != nil {
		return InternalError(err, "delete opportunity: ")
	}

	return Ok(nil)
}
