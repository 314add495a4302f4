package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
)

type TemplateRepo struct {
	db *sqlx.DB
}

func NewTemplateRepo(db *sqlx.DB) *TemplateRepo {
	return &TemplateRepo{db}
}

func (r *TemplateRepo) CreateTemplate(tmpl data.Template) (int, error) {
	query := `
		INSERT INTO templates (user_id, template_number, subject, body, enabled)
		VALUES (:user_id, :template_number, :subject, :body, :enabled)
		ON CONFLICT (user_id, template_number) DO NOTHING
		RETURNING id`

	rows, err := r.db.NamedQuery(query, tmpl)
	if err != nil {
		return 0, fmt.Errorf("create template: %w", err)
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

	return 0, ErrTemplateNumberTaken
}

// ErrTemplateNumberTaken signals a template_number collision for the user.
var ErrTemplateNumberTaken = errors.New("template number already in use")

func (r *TemplateRepo) GetTemplatesByUserID(userID uuid.UUID) ([]data.Template, error) {
	var templates []data.Template
	query := `
		SELECT *
		FROM templates
		WHERE user_id = $1
		ORDER BY template_number ASC`

	err := r.db.Select(&templates, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get templates by user id: %w", err)
	}

	return templates, nil
}

// GetEnabledTemplates returns enabled rows sorted by template_number, the
// exact sequence a campaign sends.
func (r *TemplateRepo) GetEnabledTemplates(userID uuid.UUID) ([]data.Template, error) {
	var templates []data.Template
	query := `
		SELECT *
		FROM templates
		WHERE user_id = $1 AND enabled = true
		ORDER BY template_number ASC`

	err := r.db.Select(&templates, query, userID)
	if err != nil {
		return nil, fmt.Errorf("get enabled templates: %w", err)
	}

	return templates, nil
}

func (r *TemplateRepo) CountEnabled(userID uuid.UUID) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM templates WHERE user_id = $1 AND enabled = true"

	err := r.db.Get(&count, query, userID)
	if err != nil {
		return 0, fmt.Errorf("count enabled templates: %w", err)
	}

	return count, nil
}

func (r *TemplateRepo) GetTemplateByID(id int, userID uuid.UUID) (*data.Template, error) {
	var tmpl data.Template
	query := "SELECT * FROM templates WHERE id = $1 AND user_id = $2"

	err := r.db.Get(&tmpl, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template by id: %w", err)
	}

	return &tmpl, nil
}

func (r *TemplateRepo) UpdateTemplate(tmpl data.Template) error {
	query := `
		UPDATE templates
		SET template_number = :template_number, subject = :subject,
		    body = :body, enabled = :enabled, updated_at = now()
		WHERE id = :id AND user_id = :user_id`

	rows, err := r.db.NamedQuery(query, tmpl)
	if err != nil {
		return fmt.Errorf("update template: %w", err)
	}
	defer rows.Close()

	return nil
}

func (r *TemplateRepo) DeleteTemplate(id int, userID uuid.UUID) error {
	query := "DELETE FROM templates WHERE id = $1 AND user_id = $2"
	_, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}

	return nil
}
