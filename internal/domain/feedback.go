package domain

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	UserRole  Role      `json:"user_role,omitempty"`
	MatchID   *string   `json:"match_id,omitempty"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	IsPublic  bool      `json:"is_public"`
	CreatedOn time.Time `json:"created_on"`
}

// Statistics is the aggregate snapshot shown on the NGO dashboard and sent
// in the weekly digest.
type Statistics struct {
	TotalDonations    int32 `json:"total_donations"`
	TotalRequests     int32 `json:"total_requests"`
	SuccessfulMatches int32 `json:"successful_matches"`
	ActiveDonors      int32 `json:"active_donors"`
	FamiliesHelped    int32 `json:"families_helped"`
}
