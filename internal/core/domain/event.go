package domain

import (
	"errors"
	"time"
)

var ErrInvalidFeedEvent = errors.New("invalid feed event")

// FeedEventType classifies an entry of the live-ops feed.
type FeedEventType string

const (
	FeedJobCompleted    FeedEventType = "job_completed"
	FeedPaymentReceived FeedEventType = "payment_received"
	FeedFeatureUsed     FeedEventType = "feature_used"
	FeedStaffLogin      FeedEventType = "staff_login"
	FeedTrialStarted    FeedEventType = "trial_started"
)

// FeedEventTypes lists the types the generator draws from.
var FeedEventTypes = []FeedEventType{
	FeedJobCompleted,
	FeedPaymentReceived,
	FeedFeatureUsed,
	FeedStaffLogin,
	FeedTrialStarted,
}

// FeedEvent is a synthesized activity entry shown on the live-ops page.
type FeedEvent struct {
	ID         string        `json:"id"`
	Type       FeedEventType `json:"type"`
	ClientID   string        `json:"client_id"`
	ClientName string        `json:"client_name"`
	Message    string        `json:"message"`
	Amount     float64       `json:"amount,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}
