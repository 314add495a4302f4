package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
)

type OpportunityRepo struct {
	db *sqlx.DB
}

func NewOpportunityRepo(db *sqlx.DB) *OpportunityRepo {
	return &OpportunityRepo{db}
}

func (r *OpportunityRepo) CreateOpportunity(opp data.Opportunity) (int, error) {
	query := `
		INSERT INTO opportunities (user_id, journalist_name, publication, industry, topic, notes, active, deadline)
		VALUES (:user_id, :journalist_name, :publication, :industry, :topic, :notes, :active, :deadline)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, opp)
	if err != nil {
		return 0, fmt.Errorf("create opportunity: %w", err)
	}
	defer rows.Close()

	var id int
	if rows.Next() {
		err = rows.Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("scan returned id: %w", err)
		}
	}

	return id, nil
}

func (r *OpportunityRepo) GetOpportunitiesByUserID(userID uuid.UUID) ([]data.Opportunity, error) {
	var opps []data.Opportunity
	query := `
		SELECT *
		FROM opportunities
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	err := r.db.Select(&opps, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get opportunities by user id: %w", err)
	}

	return opps, nil
}

// GetActiveOpportunities returns active rows in insertion order. Matching
// output order depends on this order being stable.
func (r *OpportunityRepo) GetActiveOpportunities(userID uuid.UUID) ([]data.Opportunity, error) {
	var opps []data.Opportunity
	query := `
		SELECT *
		FROM opportunities
		WHERE user_id = $1 AND active = true
		ORDER BY id ASC`

	err := r.db.Select(&opps, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get active opportunities: %w", err)
	}

	return opps, nil
}

func (r *OpportunityRepo) GetOpportunityByID(id int, userID uuid.UUID) (*data.Opportunity, error) {
	var opp data.Opportunity
	query := "SELECT * FROM opportunities WHERE id = $1 AND user_id = $2"

	err := r.db.Get(&opp, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opportunity by id: %w", err)
	}

	return &opp, nil
}

func (r *OpportunityRepo) UpdateOpportunity(opp data.Opportunity) error {
	query := `
		UPDATE opportunities
		SET journalist_name = :journalist_name, publication = :publication,
		    industry = :industry, topic = :topic, notes = :notes,
		    active = :active, deadline = :deadline, updated_at = now()
		WHERE id = :id AND user_id = :user_id`

	rows, err := r.db.NamedQuery(query, opp)
	if err != nil {
		return fmt.Errorf("update opportunity: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *OpportunityRepo) DeleteOpportunity(id int, userID uuid.UUID) error {
	query := "DELETE FROM opportunities WHERE id = $1 AND user_id = $2"
	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete opportunity: %w", err)
	}

	return nil
}
