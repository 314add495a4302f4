package enums

type QueueStatus string

const (
	QueueStatusInvalid QueueStatus = ""

	// QueueStatusPending means the email is waiting for its scheduled time.
	// Failed sends return here until the retry budget runs out.
	QueueStatusPending QueueStatus = "pending"

	// QueueStatusSending means the sender has picked the row up.
	QueueStatusSending QueueStatus = "sending"

	// QueueStatusSent is terminal.
	QueueStatusSent QueueStatus = "sent"

	// QueueStatusFailed is terminal: the send failed more times than the
	// retry budget allows and the row will never be picked up again.
	QueueStatusFailed QueueStatus = "failed"
)
