package domain

import (
	"fmt"
	"time"
)

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusApproved  DonationStatus = "approved"
	DonationStatusMatched   DonationStatus = "matched"
	DonationStatusInTransit DonationStatus = "in_transit"
	DonationStatusDelivered DonationStatus = "delivered"
	DonationStatusRejected  DonationStatus = "rejected"
)

type ItemCategory string

const (
	CategoryClothing    ItemCategory = "clothing"
	CategoryFood        ItemCategory = "food"
	CategoryElectronics ItemCategory = "electronics"
	CategoryFurniture   ItemCategory = "furniture"
	CategoryEducation   ItemCategory = "education"
	CategoryMedical     ItemCategory = "medical"
	CategoryOther       ItemCategory = "other"
)

type ItemCondition string

const (
	ConditionNew        ItemCondition = "new"
	ConditionLikeNew    ItemCondition = "like_new"
	ConditionGood       ItemCondition = "good"
	ConditionFair       ItemCondition = "fair"
	ConditionAcceptable ItemCondition = "acceptable"
)

// donationTransitions is the closed set of legal status edges.
// matched -> approved happens only when the linked match is cancelled.
var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationStatusPending:   {DonationStatusApproved, DonationStatusRejected},
	DonationStatusApproved:  {DonationStatusMatched},
	DonationStatusMatched:   {DonationStatusInTransit, DonationStatusApproved},
	DonationStatusInTransit: {DonationStatusDelivered},
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s DonationStatus) CanTransition(next DonationStatus) bool {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Donation struct {
	ID                string         `json:"id"`
	DonorID           string         `json:"donor_id"`
	DonorName         string         `json:"donor_name,omitempty"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Category          ItemCategory   `json:"category"`
	Quantity          int32          `json:"quantity"`
	Condition         ItemCondition  `json:"condition"`
	PickupAvailable   bool           `json:"pickup_available"`
	DeliveryAvailable bool           `json:"delivery_available"`
	Status            DonationStatus `json:"status"`
	ApprovedBy        *string        `json:"approved_by,omitempty"`
	ApprovedOn        *time.Time     `json:"approved_on,omitempty"`
	CreatedOn         time.Time      `json:"created_on"`
	UpdatedOn         time.Time      `json:"updated_on"`
}

// Transition moves the donation to next, failing without side effects when
// the edge is not legal.
func (d *Donation) Transition(next DonationStatus) error {
	if !d.Status.CanTransition(next) {
		return fmt.Errorf("donation %s: %s -> %s: %w", d.ID, d.Status, next, ErrInvalidTransition)
	}
	d.Status = next
	return nil
}
