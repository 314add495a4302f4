package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pitchpool/pitchpool.api/data"
)

type CreateOpportunityRequest struct {
	JournalistName string     `json:"journalistName"`
	Publication    string     `json:"publication"`
	Industry       string     `json:"industry"`
	Topic          string     `json:"topic"`
	Notes          string     `json:"notes"`
	Active         *bool      `json:"active"`
	Deadline       *time.Time `json:"deadline"`
}

type UpdateOpportunityRequest struct {
	JournalistName string     `json:"journalistName"`
	Publication    string     `json:"publication"`
	Industry       string     `json:"industry"`
	Topic          string     `json:"topic"`
	Notes          string     `json:"notes"`
	Active         bool       `json:"active"`
	Deadline       *time.Time `json:"deadline"`
}

type Opportunity struct {
	ID             int        `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	JournalistName string     `json:"journalistName"`
	Publication    string     `json:"publication"`
	Industry       string     `json:"industry,omitempty"`
	Topic          string     `json:"topic"`
	Notes          string     `json:"notes"`
	Active         bool       `json:"active"`
	Deadline       *time.Time `json:"deadline,omitempty"`
}

type GetOpportunitiesResponse struct {
	Opportunities []Opportunity `json:"opportunities"`
}

func FromDataOpportunity(o data.Opportunity) Opportunity {
	opp := Opportunity{
		ID:             o.ID,
		UserID:         o.UserID,
		JournalistName: o.JournalistName,
		Publication:    o.Publication,
		Topic:          o.Topic,
		Notes:          o.Notes,
		Active:         o.Active,
	}
	if o.Industry.Valid {
		opp.Industry = o.Industry.String
	}
	if o.Deadline.Valid {
		deadline := o.Deadline.Time
		opp.Deadline = &deadline
	}
	return opp
}
