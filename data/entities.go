package data

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/pitchpool/pitchpool.api/enums"
)

type User struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	DisplayName string    `db:"display_name"`
	Email       string    `db:"email"`
	Avatar      string    `db:"avatar"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Contact struct {
	ID           int                      `db:"id"`
	UserID       uuid.UUID                `db:"user_id"`
	Email        string                   `db:"email"`
	FirstName    string                   `db:"first_name"`
	LastName     string                   `db:"last_name"`
	Company      string                   `db:"company"`
	Industry     sql.NullString           `db:"industry"`
	CampaignID   sql.NullInt64            `db:"campaign_id"`
	Source       enums.ContactSource      `db:"source"`
	Verification enums.VerificationStatus `db:"verification"`
	CreatedAt    time.Time                `db:"created_at"`
	UpdatedAt    time.Time                `db:"updated_at"`
}

type Pool struct {
	ID        int       `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Opportunity struct {
	ID             int            `db:"id"`
	UserID         uuid.UUID      `db:"user_id"`
	JournalistName string         `db:"journalist_name"`
	Publication    string         `db:"publication"`
	Industry       sql.NullString `db:"industry"`
	Topic          string         `db:"topic"`
	Notes          string         `db:"notes"`
	Active         bool           `db:"active"`
	Deadline       sql.NullTime   `db:"deadline"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type Template struct {
	ID             int       `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	TemplateNumber int       `db:"template_number"`
	Subject        string    `db:"subject"`
	Body           string    `db:"body"`
	Enabled        bool      `db:"enabled"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type Campaign struct {
	ID        int       `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type QueuedEmail struct {
	ID             int64             `db:"id"`
	UserID         uuid.UUID         `db:"user_id"`
	CampaignID     int               `db:"campaign_id"`
	ContactID      int               `db:"contact_id"`
	OpportunityID  int               `db:"opportunity_id"`
	TemplateNumber int               `db:"template_number"`
	Subject        string            `db:"subject"`
	Body           string            `db:"body"`
	Status         enums.QueueStatus `db:"status"`
	Attempts       int               `db:"attempts"`
	ScheduledAt    time.Time         `db:"scheduled_at"`
	SentAt         sql.NullTime      `db:"sent_at"`
	LastError      sql.NullString    `db:"last_error"`
	CreatedAt      time.Time         `db:"created_at"`
}
