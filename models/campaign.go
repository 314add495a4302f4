package models

import "time"

type PreviewCampaignRequest struct {
	PoolIDs []int `json:"poolIds"`
}

type LaunchCampaignRequest struct {
	Name             string `json:"name"`
	PoolIDs          []int  `json:"poolIds"`
	SendIntervalDays int    `json:"sendIntervalDays"`
}

type PreviewEmail struct {
	Number  int    `json:"number"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type PreviewPair struct {
	Contact     Contact        `json:"contact"`
	Opportunity Opportunity    `json:"opportunity"`
	Emails      []PreviewEmail `json:"emails"`
}

type PreviewWarnings struct {
	ContactsWithoutIndustry         []Contact `json:"contactsWithoutIndustry,omitempty"`
	ContactsWithNonMatchingIndustry []Contact `json:"contactsWithNonMatchingIndustry,omitempty"`
}

type PreviewCampaignResponse struct {
	Previews            []PreviewPair   `json:"previews"`
	TotalMatches        int             `json:"totalMatches"`
	TotalEmails         int             `json:"totalEmails"`
	AvailableIndustries []string        `json:"availableIndustries"`
	Warnings            PreviewWarnings `json:"warnings"`
}

type LaunchCampaignResponse struct {
	CampaignID   int `json:"campaignId"`
	QueuedEmails int `json:"queuedEmails"`
	TotalMatches int `json:"totalMatches"`
}

type Campaign struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
	PendingCount int       `json:"pendingCount"`
	SentCount    int       `json:"sentCount"`
	FailedCount  int       `json:"failedCount"`
}

type GetCampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}
