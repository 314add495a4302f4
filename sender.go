package main

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/pitchpool/pitchpool.api/data"
	"github.com/pitchpool/pitchpool.api/data/repos"
	"github.com/pitchpool/pitchpool.api/enums"
	"github.com/pitchpool/pitchpool.api/metrics"
	"github.com/pitchpool/pitchpool.api/notifiers"
)

const (
	senderSpec     = "@every 1m"
	senderPageSize = 50
	// senderDelay spaces out sends to stay under the SMTP relay's rate limit.
	senderDelay  = 2 * time.Second
	maxRetries   = 3
	retryBackoff = 15 * time.Minute
)

// Sender drains the outreach queue: one page of due emails per tick,
// strictly sequential. Rows move pending -> sending -> sent, or back to
// pending with a pushed-out schedule until the retry budget is spent, then
// to failed for good.
type Sender struct {
	queueRepo *repos.QueueRepo
	mailer    *notifiers.Mailer
	cron      *cron.Cron
}

func NewSender(queueRepo *repos.QueueRepo, mailer *notifiers.Mailer) *Sender {
	return &Sender{
		queueRepo: queueRepo,
		mailer:    mailer,
		cron:      cron.New(),
	}
}

func (s *Sender) Start() error {
	_, err := s.cron.AddFunc(senderSpec, func() {
		if err := s.processDue(); err != nil {
			slog.Error("sender: process due emails", "error", err)
		}
	})
	if err != nil {
		return errors.Wrap(err, "sender: add cron func")
	}

	s.cron.Start()
	slog.Info("sender started", "spec", senderSpec, "page_size", senderPageSize)
	return nil
}

func (s *Sender) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("sender stopped")
}

func (s *Sender) processDue() error {
	jobs, err := s.queueRepo.GetDueJobs(time.Now(), senderPageSize)
	if err != nil {
		return errors.Wrap(err, "get due jobs")
	}
	if len(jobs) == 0 {
		return nil
	}

	slog.Info("sender: processing due emails", "count", len(jobs))

	for i, job := range jobs {
		if i > 0 {
			time.Sleep(senderDelay)
		}
		s.processJob(job)
	}

	return nil
}

func (s *Sender) processJob(job data.OutreachJob) {
	if err := s.queueRepo.MarkSending(job.ID); err != nil {
		slog.Error("sender: mark sending", "id", job.ID, "error", err)
		return
	}

	mail, err := s.mailer.OutreachEmail(job)
	if err == nil {
		err = s.mailer.Send(mail)
	}

	if err != nil {
		status, retryAt := nextAttempt(job.Attempts, maxRetries, time.Now(), retryBackoff)
		slog.Error("sender: send failed", "id", job.ID, "attempts", job.Attempts+1, "status", status, "error", err)

		if markErr := s.queueRepo.MarkFailedAttempt(job.ID, status, retryAt, err.Error()); markErr != nil {
			slog.Error("sender: mark failed attempt", "id", job.ID, "error", markErr)
		}
		if status == enums.QueueStatusFailed {
			metrics.EmailsFailed.Inc()
		}
		return
	}

	if err := s.queueRepo.MarkSent(job.ID, time.Now()); err != nil {
		slog.Error("sender: mark sent", "id", job.ID, "error", err)
		return
	}
	metrics.EmailsSent.Inc()
}

// nextAttempt decides where a row goes after a failed send. attempts is the
// count before this failure. Retries are spaced out linearly; once the
// budget is spent the row dead-letters to failed.
func nextAttempt(attempts, budget int, now time.Time, backoff time.Duration) (enums.QueueStatus, time.Time) {
	made := attempts + 1
	if made >= budget {
		return enums.QueueStatusFailed, now
	}
	return enums.QueueStatusPending, now.Add(time.Duration(made) * backoff)
}
