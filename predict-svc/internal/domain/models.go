package domain

import "errors"

const (
	StatusSuccess          = "success"
	StatusLocalityNotFound = "locality_not_found"
	StatusCuisineNotFound  = "cuisine_not_found"
	StatusError            = "error"
)

// City is the one city the catalog covers.
const City = "Indore"

var ErrCatalogUnavailable = errors.New("catalog unavailable")

type Restaurant struct {
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	Address    string  `json:"address"`
	Cuisine    string  `json:"cuisine,omitempty"`
	CostForTwo int     `json:"cost_for_two,omitempty"`
}

// Prediction is the wire shape of POST /predict. Only the fields of its
// status are populated.
type Prediction struct {
	Status              string       `json:"status"`
	Locality            string       `json:"locality,omitempty"`
	Cuisine             string       `json:"cuisine,omitempty"`
	PredictedRating     *float64     `json:"predicted_rating,omitempty"`
	Restaurants         []Restaurant `json:"restaurants,omitempty"`
	ModelUsed           bool         `json:"model_used"`
	Message             string       `json:"message,omitempty"`
	SuggestedLocalities []string     `json:"suggested_localities,omitempty"`
	AvailableCuisines   []string     `json:"available_cuisines,omitempty"`
}

type PredictRequest struct {
	Locality string `json:"locality"`
	Cuisine  string `json:"cuisine"`
}

// CatalogEntry is one restaurant row of the catalog.
type CatalogEntry struct {
	Locality   string
	Cuisine    string
	Restaurant Restaurant
}
