package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/models"
)

type PoolHandler struct {
	repo        *repos.PoolRepo
	contactRepo *repos.ContactRepo
}

func NewPoolHandler(repo *repos.PoolRepo, contactRepo *repos.ContactRepo) *PoolHandler {
	return &PoolHandler{repo: repo, contactRepo: contactRepo}
}

func (h *PoolHandler) CreatePool(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	var req models.CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Pool name is required.")
	}
	if len(name) > 100 {
		return BadRequest("Pool name must be at most 100 characters.")
	}

	id, err := h.repo.CreatePool(data.Pool{UserID: user.ID, Name: name})
	if err != nil {
		return InternalError(err, "create pool: ")
	}

	return Created(id)
}

func (h *PoolHandler) GetPools(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	pools, err := h.repo.GetPoolsByUserID(user.ID)
	if err != nil {
		return InternalError(err, "get pools: ")
	}

	res := models.GetPoolsResponse{Pools: make([]models.Pool, 0, len(pools))}
	for _, p := range pools {
		res.Pools = append(res.Pools, models.Pool{
			ID:           p.ID,
			UserID:       p.UserID,
			Name:         p.Name,
			ContactCount: p.ContactCount,
		})
	}

	return Ok(res)
}

func (h *PoolHandler) GetPool(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid pool ID.")
	}

	pool, err := h.repo.GetPoolByID(id, user.ID)
	if err != nil {
		return InternalError(err, "get pool: ")
	}
	if pool == nil {
		return NotFound("Pool not found.")
	}

	contacts, err := h.contactRepo.GetContactsByPoolIDs(user.ID, []int{id})
	if err != nil {
		return InternalError(err, "get pool contacts: ")
	}

	res := models.GetPoolResponse{
		Pool: models.Pool{
			ID:           pool.ID,
			UserID:       pool.UserID,
			Name:         pool.Name,
			ContactCount: len(contacts),
		},
		Contacts: make([]models.Contact, 0, len(contacts)),
	}
	for _, c := range contacts {
		res.Contacts = append(res.Contacts, models.FromDataContact(c))
	}

	return Ok(res)
}

func (h *PoolHandler) UpdatePool(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid pool ID.")
	}

	var req models.UpdatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return BadRequest("Pool name is required.")
	}

	if err := h.repo.UpdatePool(data.Pool{ID: id, UserID: user.ID, Name: name}); err != nil {
		return InternalError(err, "update pool: ")
	}

	return Ok(nil)
}

func (h *PoolHandler) DeletePool(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid pool ID.")
	}

	if err := h.repo.DeletePool(id, user.ID); err != nil {
		return InternalError(err, "delete pool: ")
	}

	return Ok(nil)
}

func (h *PoolHandler) AddContacts(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid pool ID.")
	}

	var req models.AddPoolContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BadRequest("Invalid request.")
	}
	if len(req.ContactIDs) == 0 {
		return BadRequest("At least one contact ID is required.")
	}

	pool, err := h.repo.GetPoolByID(id, user.ID)
	if err != nil {
		return InternalError(err, "add pool contacts: get pool")
	}
	if pool == nil {
		return NotFound("Pool not found.")
	}

	if err := h.repo.AddContacts(id, user.ID, req.ContactIDs); err != nil {
		return InternalError(err, "add pool contacts: ")
	}

	return Ok(nil)
}

func (h *PoolHandler) RemoveContact(w http.ResponseWriter, r *http.Request) Result {
	user := UserFrom(r)

	poolID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return BadRequest("Invalid pool ID.")
	}
	contactID, err := strconv.Atoi(r.PathValue("contactId"))
	if err != nil {
		return BadRequest("Invalid contact ID.")
	}

	if err := h.repo.RemoveContact(poolID, contactID, user.ID); err != nil {
		return InternalError(err, "remove pool contact: ")
	}

	return Ok(nil)
}
