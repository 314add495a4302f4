package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
)

type ContactRepo struct {
	db *sqlx.DB
}

func NewContactRepo(db *sqlx.DB) *ContactRepo {
	return &ContactRepo{db}
}

// CreateContact inserts a contact, returning the id. Duplicate emails for the
// same user return the existing row's id instead of erroring.
func (r *ContactRepo) CreateContact(contact data.Contact) (int, error) {
	query := `
		INSERT INTO contacts (user_id, email, first_name, last_name, company, industry, source, verification)
		VALUES (:user_id, :email, :first_name, :last_name, :company, :industry, :source, :verification)
		ON CONFLICT (user_id, LOWER(email)) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, contact)
	if err != nil {
		return 0, fmt.Errorf("create contact: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		err = rows.Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
		return id, nil
	}

	query = "SELECT id FROM contacts WHERE user_id = $1 AND LOWER(email) = LOWER($2)"
	err = r.db.Get(&id, query, contact.UserID, contact.Email)
	if err != nil {
		return 0, fmt.Errorf("get existing contact id: %w", err)
	}

	return id, nil
}

func (r *ContactRepo) GetContactsByUserID(userID uuid.UUID, limit, offset int) ([]data.Contact, int, error) {
	var contacts []data.Contact
	query := `
		SELECT *
		FROM contacts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	err := r.db.Select(&contacts, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("get contacts by user id: %w", err)
	}

	var total int
	err = r.db.Get(&total, "SELECT COUNT(*) FROM contacts WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}

	return contacts, total, nil
}

// GetAllContacts returns every contact for the user, in insertion order.
// The matcher depends on this order being stable.
func (r *ContactRepo) GetAllContacts(userID uuid.UUID) ([]data.Contact, error) {
	var contacts []data.Contact
	query := `
		SELECT *
		FROM contacts
		WHERE user_id = $1
		ORDER BY id ASC`

	err := r.db.Select(&contacts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get all contacts: %w", err)
	}

	return contacts, nil
}

// GetContactsByPoolIDs returns contacts that belong to any of the given
// pools, deduplicated, in insertion order.
func (r *ContactRepo) GetContactsByPoolIDs(userID uuid.UUID, poolIDs []int) ([]data.Contact, error) {
	if len(poolIDs) == 0 {
		return []data.Contact{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT c.*
		FROM contacts c
		JOIN pool_contacts pc ON pc.contact_id = c.id
		WHERE c.user_id = ? AND pc.pool_id IN (?)
		ORDER BY c.id ASC`, userID, poolIDs)
	if err != nil {
		return nil, fmt.Errorf("build get contacts by pool ids: %w", err)
	}
	query = r.db.Rebind(query)

	var contacts []data.Contact
	err = r.db.Select(&contacts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get contacts by pool ids: %w", err)
	}

	return contacts, nil
}

func (r *ContactRepo) GetContactByID(id int, userID uuid.UUID) (*data.Contact, error) {
	var contact data.Contact
	query := "SELECT * FROM contacts WHERE id = $1 AND user_id = $2"

	err := r.db.Get(&contact, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contact by id: %w", err)
	}

	return &contact, nil
}

func (r *ContactRepo) UpdateContact(contact data.Contact) error {
	query := `
		UPDATE contacts
		SET email = :email, first_name = :first_name, last_name = :last_name,
		    company = :company, industry = :industry, updated_at = now()
		WHERE id = :id AND user_id = :user_id`

	rows, err := r.db.NamedQuery(query, contact)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *ContactRepo) SetVerification(id int, userID uuid.UUID, status string) error {
	query := `
		UPDATE contacts
		SET verification = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3`

	_, err := r.db.Exec(query, status, id, userID)
	if err != nil {
		return fmt.Errorf("set verification: %w", err)
	}

	return nil
}

func (r *ContactRepo) SetIndustry(id int, userID uuid.UUID, industry string) error {
	query := `
		UPDATE contacts
		SET industry = $1, updated_at = now()
		WHERE id = $2 AND user_id = $3`

	_, err := r.db.Exec(query, industry, id, userID)
	if err != nil {
		return fmt.Errorf("set industry: %w", err)
	}

	return nil
}

// AssignCampaign stamps the campaign onto every listed contact.
func (r *ContactRepo) AssignCampaign(contactIDs []int, userID uuid.UUID, campaignID int) error {
	if len(contactIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		UPDATE contacts
		SET campaign_id = ?, updated_at = now()
		WHERE user_id = ? AND id IN (?)`, campaignID, userID, contactIDs)
	if err != nil {
		return fmt.Errorf("build assign campaign: %w", err)
	}
	query = r.db.Rebind(query)

	_, err = r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("assign campaign: %w", err)
	}

	return nil
}

func (r *ContactRepo) DeleteContact(id int, userID uuid.UUID) error {
	query := "DELETE FROM contacts WHERE id = $1 AND user_id = $2"
	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	return nil
}
