// Package render turns prediction results into display-ready view models.
// It holds no state and knows nothing about transport or markup.
package render

import (
	"fmt"
	"strconv"

	"restaurant-recommender/web-svc/internal/domain"
)

type Kind string

const (
	KindRating      Kind = "rating"
	KindSuggestions Kind = "suggestions"
	KindError       Kind = "error"
)

type Card struct {
	Name    string `json:"name"`
	Rating  string `json:"rating"`
	Address string `json:"address"`
}

type View struct {
	Kind             Kind     `json:"kind"`
	RatingLine       string   `json:"rating_line,omitempty"`
	SourceLabel      string   `json:"source_label,omitempty"`
	Heading          string   `json:"heading,omitempty"`
	TopRestaurant    *Card    `json:"top_restaurant,omitempty"`
	Message          string   `json:"message,omitempty"`
	SuggestionsTitle string   `json:"suggestions_title,omitempty"`
	Suggestions      []string `json:"suggestions,omitempty"`
	Error            string   `json:"error,omitempty"`
}

// HighestRated returns the index of the best-rated restaurant; ties keep the
// earliest entry. ok is false for an empty slice.
func HighestRated(restaurants []domain.Restaurant) (index int, ok bool) {
	if len(restaurants) == 0 {
		return 0, false
	}
	for i := 1; i < len(restaurants); i++ {
		if restaurants[i].Rating > restaurants[index].Rating {
			index = i
		}
	}
	return index, true
}

func Build(result domain.PredictionResult) View {
	switch result.Status {
	case domain.StatusSuccess:
		return buildSuccess(result)
	case domain.StatusCuisineNotFound:
		return View{
			Kind:             KindSuggestions,
			Message:          result.Message,
			SuggestionsTitle: fmt.Sprintf("Available cuisines in %s:", result.Locality),
			Suggestions:      result.AvailableCuisines,
		}
	case domain.StatusLocalityNotFound:
		return View{
			Kind:             KindSuggestions,
			Message:          result.Message,
			SuggestionsTitle: "Try these popular localities:",
			Suggestions:      result.SuggestedLocalities,
		}
	case domain.StatusError:
		return View{Kind: KindError, Error: result.Error}
	default:
		return View{Kind: KindError, Error: fmt.Sprintf("Received unexpected response status %q", result.Status)}
	}
}

func buildSuccess(result domain.PredictionResult) View {
	view := View{Kind: KindRating}

	if result.PredictedRating != nil {
		view.RatingLine = "Predicted Rating: " + formatRating(*result.PredictedRating)
		view.SourceLabel = "Fallback"
		if result.ModelUsed {
			view.SourceLabel = "ML Model"
		}
	}

	if i, ok := HighestRated(result.Restaurants); ok {
		top := result.Restaurants[i]
		view.Heading = fmt.Sprintf("Highest Rated %s Restaurant in %s", result.Cuisine, result.Locality)
		view.TopRestaurant = &Card{
			Name:    top.Name,
			Rating:  "★ " + formatRating(top.Rating),
			Address: top.Address,
		}
	}
	return view
}

// formatRating prints one decimal, or two when the value needs them (backend
// averages are rounded to hundredths).
func formatRating(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	if parsed, _ := strconv.ParseFloat(s, 64); parsed != v {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	return s
}
