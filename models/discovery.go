package models

type DiscoverySearchRequest struct {
	Domain string `json:"domain"`
	Limit  int    `json:"limit"`
}

type DiscoverySearchResponse struct {
	Total    int       `json:"total"`
	Imported int       `json:"imported"`
	Skipped  int       `json:"skipped"`
	Contacts []Contact `json:"contacts"`
}

type VerifyContactResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
	Cached bool   `json:"cached"`
}

type CategorizeContactResponse struct {
	Industry string `json:"industry"`
}
