package repos

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/enums"
)

type QueueRepo struct {
	db *sqlx.DB
}

func NewQueueRepo(db *sqlx.DB) *QueueRepo {
	return &QueueRepo{db}
}

func (r *QueueRepo) EnqueueEmails(emails []data.QueuedEmail) error {
	if len(emails) == 0 {
		return nil
	}

	query := `
		INSERT INTO outreach_queue
			(user_id, campaign_id, contact_id, opportunity_id, template_number, subject, body, status, scheduled_at, created_at)
		VALUES
			(:user_id, :campaign_id, :contact_id, :opportunity_id, :template_number, :subject, :body, :status, :scheduled_at, now())`

	_, err := r.db.NamedExec(query, emails)
	if err != nil {
		return fmt.Errorf("enqueue emails: %w", err)
	}

	return nil
}

// GetDueJobs returns pending rows whose scheduled time has passed, joined
// with the contact and opportunity fields needed to render the email.
// FIFO by scheduled time, capped at limit.
func (r *QueueRepo) GetDueJobs(now time.Time, limit int) ([]data.OutreachJob, error) {
	var jobs []data.OutreachJob
	query := `
		SELECT q.*,
		       c.email AS recipient_email, c.first_name, c.last_name, c.company,
		       o.journalist_name, o.publication, o.topic
		FROM outreach_queue q
		JOIN contacts c ON c.id = q.contact_id
		JOIN opportunities o ON o.id = q.opportunity_id
		WHERE q.status = 'pending' AND q.scheduled_at <= $1
		ORDER BY q.scheduled_at ASC, q.id ASC
		LIMIT $2`

	err := r.db.Select(&jobs, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("get due jobs: %w", err)
	}

	return jobs, nil
}

func (r *QueueRepo) MarkSending(id int64) error {
	query := "UPDATE outreach_queue SET status = $1 WHERE id = $2"
	_, err := r.db.Exec(query, enums.QueueStatusSending, id)
	if err != nil {
		return fmt.Errorf("mark sending: %w", err)
	}

	return nil
}

func (r *QueueRepo) MarkSent(id int64, sentAt time.Time) error {
	query := "UPDATE outreach_queue SET status = $1, sent_at = $2 WHERE id = $3"
	_, err := r.db.Exec(query, enums.QueueStatusSent, sentAt, id)
	if err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	return nil
}

// MarkFailedAttempt records a failed send. The row goes back to pending with
// its scheduled time pushed out, or to failed once out of retries.
func (r *QueueRepo) MarkFailedAttempt(id int64, status enums.QueueStatus, retryAt time.Time, sendErr string) error {
	query := `
		UPDATE outreach_queue
		SET status = $1, attempts = attempts + 1, scheduled_at = $2, last_error = $3
		WHERE id = $4`

	_, err := r.db.Exec(query, status, retryAt, sendErr, id)
	if err != nil {
		return fmt.Errorf("mark failed attempt: %w", err)
	}

	return nil
}
