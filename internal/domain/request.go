package domain

import (
	"fmt"
	"time"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusApproved  RequestStatus = "approved"
	RequestStatusMatched   RequestStatus = "matched"
	RequestStatusFulfilled RequestStatus = "fulfilled"
	RequestStatusRejected  RequestStatus = "rejected"
)

type UrgencyLevel string

const (
	UrgencyLow      UrgencyLevel = "low"
	UrgencyMedium   UrgencyLevel = "medium"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyCritical UrgencyLevel = "critical"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved: {RequestStatusMatched},
	RequestStatusMatched:  {RequestStatusFulfilled, RequestStatusApproved},
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s RequestStatus) CanTransition(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Request struct {
	ID            string        `json:"id"`
	RecipientID   string        `json:"recipient_id"`
	RecipientName string        `json:"recipient_name,omitempty"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Category      ItemCategory  `json:"category"`
	Quantity      int32         `json:"quantity"`
	Urgency       UrgencyLevel  `json:"urgency"`
	FamilySize    int32         `json:"family_size"`
	Situation     string        `json:"situation,omitempty"`
	Status        RequestStatus `json:"status"`
	ApprovedBy    *string       `json:"approved_by,omitempty"`
	ApprovedOn    *time.Time    `json:"approved_on,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
	UpdatedOn     time.Time     `json:"updated_on"`
}

// Transition moves the request to next, failing without side effects when
// the edge is not legal.
func (r *Request) Transition(next RequestStatus) error {
	if !r.Status.CanTransition(next) {
		return fmt.Errorf("request %s: %s -> %s: %w", r.ID, r.Status, next, ErrInvalidTransition)
	}
	r.Status = next
	return nil
}
