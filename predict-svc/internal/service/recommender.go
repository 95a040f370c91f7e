package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"restaurant-recommender/logging"
	"restaurant-recommender/metrics"
	"restaurant-recommender/predict-svc/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrMissingInput = errors.New("locality and cuisine are required")

const suggestedLocalities = 5

// cuisineRatings backs predictions made without the catalog.
var cuisineRatings = map[string]float64{
	"north indian": 4.2,
	"south indian": 4.2,
	"chinese":      4.1,
	"italian":      4.1,
	"fast food":    3.8,
	"street food":  4.3,
	"desserts":     4.0,
	"cafe":         3.9,
	"pizza":        4.0,
	"burger":       3.9,
}

const defaultCuisineRating = 4.0

type Recommender struct {
	catalog CatalogRepository
}

func NewRecommender(catalog CatalogRepository) *Recommender {
	return &Recommender{catalog: catalog}
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(s))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// Predict answers from the catalog, or from the per-cuisine rating table when
// the catalog cannot be read.
func (r *Recommender) Predict(ctx context.Context, locality, cuisine string) (domain.Prediction, error) {
	locality, cuisine = strings.TrimSpace(locality), strings.TrimSpace(cuisine)
	if locality == "" || cuisine == "" {
		return domain.Prediction{}, ErrMissingInput
	}

	log := logging.Component("recommender").With().Str("locality", locality).Str("cuisine", cuisine).Logger()

	prediction, err := r.fromCatalog(ctx, locality, cuisine)
	if err != nil {
		if ctx.Err() != nil {
			return domain.Prediction{}, ctx.Err()
		}
		log.Warn().Err(err).Msg("catalog prediction failed, using rating table")
		prediction = Fallback(locality, cuisine)
	}

	metrics.CatalogPredictions.WithLabelValues(prediction.Status, strconv.FormatBool(prediction.ModelUsed)).Inc()
	log.Info().Str("status", prediction.Status).Bool("model_used", prediction.ModelUsed).Msg("prediction served")
	return prediction, nil
}

func (r *Recommender) fromCatalog(ctx context.Context, locality, cuisine string) (domain.Prediction, error) {
	localities, err := r.catalog.Localities(ctx)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	canonicalLocality, ok := matchName(localities, locality)
	if !ok {
		return domain.Prediction{
			Status:              domain.StatusLocalityNotFound,
			Message:             fmt.Sprintf("Locality '%s' not found", titleCase(locality)),
			SuggestedLocalities: firstN(localities, suggestedLocalities),
		}, nil
	}

	available, err := r.catalog.CuisinesFor(ctx, canonicalLocality)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}

	canonicalCuisine, ok := matchName(available, cuisine)
	if !ok {
		return domain.Prediction{
			Status:            domain.StatusCuisineNotFound,
			Message:           fmt.Sprintf("Cuisine '%s' not found in %s", titleCase(cuisine), canonicalLocality),
			Locality:          canonicalLocality,
			AvailableCuisines: available,
		}, nil
	}

	restaurants, err := r.catalog.Restaurants(ctx, canonicalLocality, canonicalCuisine)
	if err != nil {
		return domain.Prediction{}, fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, err)
	}
	if len(restaurants) == 0 {
		return domain.Prediction{}, fmt.Errorf("%w: no restaurants for %s/%s", domain.ErrCatalogUnavailable, canonicalLocality, canonicalCuisine)
	}

	var sum float64
	for _, rest := range restaurants {
		sum += rest.Rating
	}
	rating := round(sum/float64(len(restaurants)), 2)

	return domain.Prediction{
		Status:          domain.StatusSuccess,
		Locality:        canonicalLocality,
		Cuisine:         canonicalCuisine,
		PredictedRating: &rating,
		Restaurants:     restaurants,
		ModelUsed:       true,
	}, nil
}

// Fallback builds a prediction without the catalog.
func Fallback(locality, cuisine string) domain.Prediction {
	rating, ok := cuisineRatings[strings.ToLower(strings.TrimSpace(cuisine))]
	if !ok {
		rating = defaultCuisineRating
	}
	loc, cui := titleCase(locality), titleCase(cuisine)
	address := loc + ", " + domain.City

	return domain.Prediction{
		Status:          domain.StatusSuccess,
		Locality:        loc,
		Cuisine:         cui,
		PredictedRating: &rating,
		Restaurants: []domain.Restaurant{
			{Name: "Top " + cui + " Restaurant", Rating: round(rating+0.3, 1), Address: address, Cuisine: cui, CostForTwo: 500},
			{Name: "Popular " + cui + " Place", Rating: round(rating+0.1, 1), Address: address, Cuisine: cui, CostForTwo: 400},
		},
		ModelUsed: false,
	}
}

func (r *Recommender) Localities(ctx context.Context) ([]string, error) {
	return r.catalog.Localities(ctx)
}

func (r *Recommender) Cuisines(ctx context.Context) ([]string, error) {
	return r.catalog.Cuisines(ctx)
}

// CuisinesFor returns an empty list for an unknown locality.
func (r *Recommender) CuisinesFor(ctx context.Context, locality string) ([]string, error) {
	localities, err := r.catalog.Localities(ctx)
	if err != nil {
		return nil, err
	}
	canonical, ok := matchName(localities, locality)
	if !ok {
		return []string{}, nil
	}
	return r.catalog.CuisinesFor(ctx, canonical)
}

// Available reports whether the catalog can be read.
func (r *Recommender) Available(ctx context.Context) bool {
	_, err := r.catalog.Localities(ctx)
	return err == nil
}

func matchName(names []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	for _, name := range names {
		if strings.EqualFold(name, input) {
			return name, true
		}
	}
	return "", false
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		n = len(items)
	}
	return append([]string(nil), items[:n]...)
}
