package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransition(t *testing.T) {
	tests := []struct {
		from    RequestStatus
		to      RequestStatus
		allowed bool
	}{
		{RequestStatusPending, RequestStatusApproved, true},
		{RequestStatusPending, RequestStatusRejected, true},
		{RequestStatusPending, RequestStatusMatched, false},
		{RequestStatusApproved, RequestStatusMatched, true},
		{RequestStatusApproved, RequestStatusFulfilled, false},
		{RequestStatusApproved, RequestStatusRejected, false},
		{RequestStatusMatched, RequestStatusFulfilled, true},
		{RequestStatusMatched, RequestStatusApproved, true},
		{RequestStatusFulfilled, RequestStatusApproved, false},
		{RequestStatusFulfilled, RequestStatusMatched, false},
		{RequestStatusRejected, RequestStatusApproved, false},
	}

	for _, tt := range tests {
		got := tt.from.CanTransition(tt.to)
		assert.Equal(t, tt.allowed, got, "%s -> %s", tt.from, tt.to)
	}
}

func TestRequest_Transition(t *testing.T) {
	r := &Request{ID: "r1", Status: RequestStatusMatched}
	assert.NoError(t, r.Transition(RequestStatusFulfilled))
	assert.Equal(t, RequestStatusFulfilled, r.Status)

	err := r.Transition(RequestStatusApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, RequestStatusFulfilled, r.Status)
}
