package enums

type ContactSource string

const (
	// ContactSourceManual marks contacts entered by hand.
	ContactSourceManual ContactSource = "manual"

	// ContactSourceDiscovery marks contacts imported from the email finder.
	ContactSourceDiscovery ContactSource = "discovery"
)

type VerificationStatus string

const (
	VerificationUnknown       VerificationStatus = "unknown"
	VerificationDeliverable   VerificationStatus = "deliverable"
	VerificationRisky         VerificationStatus = "risky"
	VerificationUndeliverable VerificationStatus = "undeliverable"
)
