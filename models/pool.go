package models

import (
	"github.com/google/uuid"
)

type CreatePoolRequest struct {
	Name string `json:"name"`
}

type UpdatePoolRequest struct {
	Name string `json:"name"`
}

type AddPoolContactsRequest struct {
	ContactIDs []int `json:"contactIds"`
}

type Pool struct {
	ID           int       `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Name         string    `json:"name"`
	ContactCount int       `json:"contactCount"`
}

type GetPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

type GetPoolResponse struct {
	Pool     Pool      `json:"pool"`
	Contacts []Contact `json:"contacts"`
}
