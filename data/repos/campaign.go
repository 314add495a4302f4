package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
)

type CampaignRepo struct {
	db *sqlx.DB
}

func NewCampaignRepo(db *sqlx.DB) *CampaignRepo {
	return &CampaignRepo{db}
}

func (r *CampaignRepo) CreateCampaign(campaign data.Campaign) (int, error) {
	query := `
		INSERT INTO campaigns (user_id, name)
		VALUES (:user_id, :name)
		RETURNING id`

	rows, err := r.db.NamedQuery(query, campaign)
	if err != nil {
		return 0, fmt.Errorf("create campaign: %w", err)
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

func (r *CampaignRepo) GetCampaignsByUserID(userID uuid.UUID) ([]data.CampaignWithStats, error) {
	var campaigns []data.CampaignWithStats
	query := `
		SELECT c.*,
		       COUNT(q.id) FILTER (WHERE q.status IN ('pending', 'sending')) AS pending_count,
		       COUNT(q.id) FILTER (WHERE q.status = 'sent') AS sent_count,
		       COUNT(q.id) FILTER (WHERE q.status = 'failed') AS failed_count
		FROM campaigns c
		LEFT JOIN outreach_queue q ON q.campaign_id = c.id
		WHERE c.user_id = $1
		GROUP BY c.id
		ORDER BY c.created_at DESC`

	err := r.db.Select(&campaigns, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get campaigns by user id: %w", err)
	}

	return campaigns, nil
}

func (r *CampaignRepo) GetCampaignByID(id int, userID uuid.UUID) (*data.CampaignWithStats, error) {
	var campaign data.CampaignWithStats
	query := `
		SELECT c.*,
		       COUNT(q.id) FILTER (WHERE q.status IN ('pending', 'sending')) AS pending_count,
		       COUNT(q.id) FILTER (WHERE q.status = 'sent') AS sent_count,
		       COUNT(q.id) FILTER (WHERE q.status = 'failed') AS failed_count
		FROM campaigns c
		LEFT JOIN outreach_queue q ON q.campaign_id = c.id
		WHERE c.id = $1 AND c.user_id = $2
		GROUP BY c.id`

	err := r.db.Get(&campaign, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get campaign by id: %w", err)
	}

	return &campaign, nil
}
