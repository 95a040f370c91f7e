package domain

import (
	"errors"
	"time"
)

const (
	EventPredictionResolved = "prediction_resolved"
	EventFeedbackSubmitted  = "feedback_submitted"
)

var ErrUnknownEvent = errors.New("unknown event type")

// Event is the message web-svc publishes on the recommendations topic.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Locality  string    `json:"locality,omitempty"`
	Cuisine   string    `json:"cuisine,omitempty"`
	Source    string    `json:"source,omitempty"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type QueryStat struct {
	Locality string `json:"locality"`
	Cuisine  string `json:"cuisine"`
	Count    int64  `json:"count"`
}

// DailySummary counts one UTC day of resolutions by source, plus feedback sent.
type DailySummary struct {
	Date     string           `json:"date"`
	Sources  map[string]int64 `json:"sources"`
	Feedback int64            `json:"feedback"`
}
