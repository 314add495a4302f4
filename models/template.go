package models

import "github.com/google/uuid"

type CreateTemplateRequest struct {
	TemplateNumber int    `json:"templateNumber"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	Enabled        *bool  `json:"enabled"`
}

type UpdateTemplateRequest struct {
	TemplateNumber int    `json:"templateNumber"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
	Enabled        bool   `json:"enabled"`
}

type Template struct {
	ID             int       `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	TemplateNumber int       `json:"templateNumber"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	Enabled        bool      `json:"enabled"`
}

type GetTemplatesResponse struct {
	Templates []Template `json:"templates"`
}
