package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Status string

const (
	StatusSuccess          Status = "success"
	StatusLocalityNotFound Status = "locality_not_found"
	StatusCuisineNotFound  Status = "cuisine_not_found"
	StatusError            Status = "error"
)

type Source string

const (
	SourceCache Source = "cache"
	SourceAPI   Source = "api"
	SourceMock  Source = "mock"
)

var ErrInvalidResult = errors.New("invalid prediction result")

// QueryKey is a trimmed, lower-cased (locality, cuisine) pair.
type QueryKey struct {
	Locality string
	Cuisine  string
}

func NewQueryKey(locality, cuisine string) QueryKey {
	return QueryKey{
		Locality: strings.ToLower(strings.TrimSpace(locality)),
		Cuisine:  strings.ToLower(strings.TrimSpace(cuisine)),
	}
}

func (k QueryKey) String() string {
	return k.Locality + "_" + k.Cuisine
}

func (k QueryKey) Empty() bool {
	return k.Locality == "" || k.Cuisine == ""
}

// DisplayLocality and DisplayCuisine title-case the normalized values so
// anything derived from them depends on the key alone.
func (k QueryKey) DisplayLocality() string {
	return cases.Title(language.English).String(k.Locality)
}

func (k QueryKey) DisplayCuisine() string {
	return cases.Title(language.English).String(k.Cuisine)
}

type Restaurant struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}

// PredictionResult mirrors the backend wire format: exactly one status case
// is populated. Treat values as immutable once built.
type PredictionResult struct {
	Status              Status       `json:"status"`
	Locality            string       `json:"locality,omitempty"`
	Cuisine             string       `json:"cuisine,omitempty"`
	PredictedRating     *float64     `json:"predicted_rating,omitempty"`
	Restaurants         []Restaurant `json:"restaurants,omitempty"`
	ModelUsed           bool         `json:"model_used,omitempty"`
	Message             string       `json:"message,omitempty"`
	SuggestedLocalities []string     `json:"suggested_localities,omitempty"`
	AvailableCuisines   []string     `json:"available_cuisines,omitempty"`
	Error               string       `json:"error,omitempty"`
}

func NewSuccess(locality, cuisine string, rating float64, restaurants []Restaurant, modelUsed bool) PredictionResult {
	return PredictionResult{
		Status:          StatusSuccess,
		Locality:        locality,
		Cuisine:         cuisine,
		PredictedRating: &rating,
		Restaurants:     append([]Restaurant(nil), restaurants...),
		ModelUsed:       modelUsed,
	}
}

func NewLocalityNotFound(message string, suggested []string) PredictionResult {
	return PredictionResult{
		Status:              StatusLocalityNotFound,
		Message:             message,
		SuggestedLocalities: append([]string(nil), suggested...),
	}
}

func NewCuisineNotFound(message, locality string, available []string) PredictionResult {
	return PredictionResult{
		Status:            StatusCuisineNotFound,
		Message:           message,
		Locality:          locality,
		AvailableCuisines: append([]string(nil), available...),
	}
}

func NewErrorResult(msg string) PredictionResult {
	return PredictionResult{Status: StatusError, Error: msg}
}

// Validate checks that the populated fields match the status tag.
func (r PredictionResult) Validate() error {
	switch r.Status {
	case StatusSuccess:
		if r.PredictedRating == nil {
			return fmt.Errorf("%w: success without predicted_rating", ErrInvalidResult)
		}
		if len(r.SuggestedLocalities) > 0 || len(r.AvailableCuisines) > 0 || r.Error != "" {
			return fmt.Errorf("%w: success carries not-found or error fields", ErrInvalidResult)
		}
		for _, rest := range r.Restaurants {
			if rest.Rating < 0 || rest.Rating > 5 {
				return fmt.Errorf("%w: rating %.1f out of range", ErrInvalidResult, rest.Rating)
			}
		}
	case StatusLocalityNotFound:
		if len(r.Restaurants) > 0 || len(r.AvailableCuisines) > 0 || r.Error != "" {
			return fmt.Errorf("%w: locality_not_found carries other fields", ErrInvalidResult)
		}
	case StatusCuisineNotFound:
		if len(r.Restaurants) > 0 || len(r.SuggestedLocalities) > 0 || r.Error != "" {
			return fmt.Errorf("%w: cuisine_not_found carries other fields", ErrInvalidResult)
		}
	case StatusError:
		if r.Error == "" {
			return fmt.Errorf("%w: error without message", ErrInvalidResult)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidResult, r.Status)
	}
	return nil
}

// Outcome is what the orchestration hands to the rendering side.
type Outcome struct {
	Result PredictionResult `json:"result"`
	Source Source           `json:"source"`
}

type FeedbackForm struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	Email     string `json:"email" validate:"required,email"`
	Feedback  string `json:"feedback"`
}

type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id,omitempty"`
	Locality  string    `json:"locality,omitempty"`
	Cuisine   string    `json:"cuisine,omitempty"`
	Source    Source    `json:"source,omitempty"`
	Email     string    `json:"email,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	EventPredictionResolved = "prediction_resolved"
	EventFeedbackSubmitted  = "feedback_submitted"
)
