package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MatchesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_matches_computed_total",
		Help: "Matched contact/opportunity pairs produced by matching passes.",
	})

	PreviewRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_preview_requests_total",
		Help: "Campaign preview requests served.",
	})

	CampaignsLaunched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_campaigns_launched_total",
		Help: "Campaigns launched.",
	})

	EmailsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_emails_sent_total",
		Help: "Outreach emails delivered by the sender.",
	})

	EmailsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_emails_failed_total",
		Help: "Outreach emails that exhausted their retry budget.",
	})

	ContactsDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pitchpool_contacts_discovered_total",
		Help: "Contacts imported through discovery search.",
	})

	Verifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchpool_verifications_total",
		Help: "Email verifications by result.",
	}, []string{"result"})
)
