package models

import (
	"github.com/google/uuid"

	"github.com/pitchpool/pitchpool.api/data"
)

type CreateContactRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Industry  string `json:"industry"`
}

type UpdateContactRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Industry  string `json:"industry"`
}

type Contact struct {
	ID           int       `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Company      string    `json:"company"`
	Industry     string    `json:"industry,omitempty"`
	CampaignID   *int64    `json:"campaignId,omitempty"`
	Source       string    `json:"source"`
	Verification string    `json:"verification"`
}

type GetContactsResponse struct {
	Contacts []Contact `json:"contacts"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PerPage  int       `json:"perPage"`
}

func FromDataContact(c data.Contact) Contact {
	contact := Contact{
		ID:           c.ID,
		UserID:       c.UserID,
		Email:        c.Email,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Company:      c.Company,
		Source:       string(c.Source),
		Verification: string(c.Verification),
	}
	if c.Industry.Valid {
		contact.Industry = c.Industry.String
	}
	if c.CampaignID.Valid {
		id := c.CampaignID.Int64
		contact.CampaignID = &id
	}
	return contact
}
