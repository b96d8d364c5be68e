package domain

import (
	"fmt"
	"time"
)

type MatchStatus string

const (
	MatchStatusPending    MatchStatus = "pending"
	MatchStatusConfirmed  MatchStatus = "confirmed"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusScheduled DeliveryStatus = "scheduled"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
)

// deliverySteps is the strictly linear delivery progression. No skipping,
// no reverting; delivered is terminal.
var deliverySteps = []DeliveryStatus{
	DeliveryStatusPending,
	DeliveryStatusScheduled,
	DeliveryStatusInTransit,
	DeliveryStatusDelivered,
}

// NextDeliveryStatus returns the single legal successor of s, or false when
// s is terminal or unknown.
func NextDeliveryStatus(s DeliveryStatus) (DeliveryStatus, bool) {
	for i, step := range deliverySteps {
		if step == s && i+1 < len(deliverySteps) {
			return deliverySteps[i+1], true
		}
	}
	return "", false
}

// matchStatusForDelivery derives the match status that accompanies each
// delivery stage.
var matchStatusForDelivery = map[DeliveryStatus]MatchStatus{
	DeliveryStatusPending:   MatchStatusPending,
	DeliveryStatusScheduled: MatchStatusConfirmed,
	DeliveryStatusInTransit: MatchStatusInProgress,
	DeliveryStatusDelivered: MatchStatusCompleted,
}

type Match struct {
	ID             string         `json:"id"`
	DonationID     string         `json:"donation_id"`
	RequestID      string         `json:"request_id"`
	MatchedBy      string         `json:"matched_by"`
	Status         MatchStatus    `json:"status"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	Notes          string         `json:"notes,omitempty"`
	CompletedOn    *time.Time     `json:"completed_on,omitempty"`
	CreatedOn      time.Time      `json:"created_on"`
	UpdatedOn      time.Time      `json:"updated_on"`
}

// Active reports whether the match still binds its donation and request.
// A donation or request may be linked to at most one active match.
func (m *Match) Active() bool {
	return m.Status != MatchStatusCancelled
}

// AdvanceDelivery moves the delivery one step forward and derives the match
// status for the new stage. Only the exact successor is accepted.
func (m *Match) AdvanceDelivery(next DeliveryStatus) error {
	if m.Status == MatchStatusCancelled {
		return fmt.Errorf("match %s is cancelled: %w", m.ID, ErrInvalidTransition)
	}
	legal, ok := NextDeliveryStatus(m.DeliveryStatus)
	if !ok || legal != next {
		return fmt.Errorf("match %s: delivery %s -> %s: %w", m.ID, m.DeliveryStatus, next, ErrInvalidTransition)
	}
	m.DeliveryStatus = next
	m.Status = matchStatusForDelivery[next]
	return nil
}

// Cancel voids the match so both sides can re-enter the matching pool.
// Allowed only before the item is in transit.
func (m *Match) Cancel() error {
	if m.Status == MatchStatusCancelled || m.DeliveryStatus == DeliveryStatusInTransit || m.DeliveryStatus == DeliveryStatusDelivered {
		return fmt.Errorf("match %s: cancel from %s/%s: %w", m.ID, m.Status, m.DeliveryStatus, ErrInvalidTransition)
	}
	m.Status = MatchStatusCancelled
	return nil
}
