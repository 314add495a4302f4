package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
)

type PoolRepo struct {
	db *sqlx.DB
}

func NewPoolRepo(db *sqlx.DB) *PoolRepo {
	return &PoolRepo{db}
}

func (r *PoolRepo) CreatePool(pool data.Pool) (int, error) {
	query := `
		INSERT INTO pools (user_id, name)
		VALUES (:user_id, :name)
		ON CONFLICT (user_id, name) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, pool)
	if err != nil {
		return 0, fmt.Errorf("create pool: %w", err)
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

	query = "SELECT id FROM pools WHERE user_id = $1 AND name = $2"
	err = r.db.Get(&id, query, pool.UserID, pool.Name)
	if err != nil {
		return 0, fmt.Errorf("get existing pool id: %w", err)
	}

	return id, nil
}

func (r *PoolRepo) GetPoolsByUserID(userID uuid.UUID) ([]data.PoolWithCount, error) {
	var pools []data.PoolWithCount
	query := `
		SELECT p.*, COUNT(pc.contact_id) AS contact_count
		FROM pools p
		LEFT JOIN pool_contacts pc ON pc.pool_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC`

	err := r.db.Select(&pools, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get pools by user id: %w", err)
	}

	return pools, nil
}

func (r *PoolRepo) GetPoolByID(id int, userID uuid.UUID) (*data.Pool, error) {
	var pool data.Pool
	query := "SELECT * FROM pools WHERE id = $1 AND user_id = $2"

	err := r.db.Get(&pool, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pool by id: %w", err)
	}

	return &pool, nil
}

func (r *PoolRepo) UpdatePool(pool data.Pool) error {
	query := `
		UPDATE pools
		SET name = :name, updated_at = now()
		WHERE id = :id AND user_id = :user_id`

	rows, err := r.db.NamedQuery(query, pool)
	if err != nil {
		return fmt.Errorf("update pool: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *PoolRepo) DeletePool(id int, userID uuid.UUID) error {
	query := "DELETE FROM pools WHERE id = $1 AND user_id = $2"
	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete pool: %w", err)
	}

	return nil
}

// AddContacts links contacts to a pool. Contacts already in the pool, or not
// owned by the user, are skipped silently.
func (r *PoolRepo) AddContacts(poolID int, userID uuid.UUID, contactIDs []int) error {
	if len(contactIDs) == 0 {
		return nil
	}

	query, args, err := sqlx.In(`
		INSERT INTO pool_contacts (pool_id, contact_id)
		SELECT ?, c.id
		FROM contacts c
		WHERE c.user_id = ? AND c.id IN (?)
		ON CONFLICT DO NOTHING`, poolID, userID, contactIDs)
	if err != nil {
		return fmt.Errorf("build add pool contacts: %w", err)
	}
	query = r.db.Rebind(query)

	_, err = r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("add pool contacts: %w", err)
	}

	return nil
}

func (r *PoolRepo) RemoveContact(poolID, contactID int, userID uuid.UUID) error {
	query := `
		DELETE FROM pool_contacts pc
		USING pools p
		WHERE pc.pool_id = p.id AND p.user_id = $1 AND pc.pool_id = $2 AND pc.contact_id = $3`

	_, err := r.db.Exec(query, userID, poolID, contactID)
	if err != nil {
		return fmt.Errorf("remove pool contact: %w", err)
	}

	return nil
}
