package data

// OutreachJob is a queue row joined with the contact and opportunity it
// targets, everything the sender needs to render and deliver one email.
type OutreachJob struct {
	QueuedEmail
	RecipientEmail string `db:"recipient_email"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Company        string `db:"company"`
	JournalistName string `db:"journalist_name"`
	Publication    string `db:"publication"`
	Topic          string `db:"topic"`
}

// CampaignWithStats is a campaign row with aggregate queue counts.
type CampaignWithStats struct {
	Campaign
	PendingCount int `db:"pending_count"`
	SentCount    int `db:"sent_count"`
	FailedCount  int `db:"failed_count"`
}

// PoolWithCount is a pool row with its member count.
type PoolWithCount struct {
	Pool
	ContactCount int `db:"contact_count"`
}
