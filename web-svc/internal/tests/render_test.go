package tests

import (
	"testing"

	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restaurantsRated(ratings ...float64) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(ratings))
	for i, rating := range ratings {
		out = append(out, domain.Restaurant{Name: string(rune('A' + i)), Rating: rating})
	}
	return out
}

func TestHighestRated(t *testing.T) {
	tests := []struct {
		name      string
		ratings   []float64
		wantIndex int
		wantOK    bool
	}{
		{name: "clear winner", ratings: []float64{4.2, 4.9, 3.1}, wantIndex: 1, wantOK: true},
		{name: "tie keeps first", ratings: []float64{4.5, 4.5}, wantIndex: 0, wantOK: true},
		{name: "single", ratings: []float64{3.3}, wantIndex: 0, wantOK: true},
		{name: "last is best", ratings: []float64{3.0, 3.1, 4.0}, wantIndex: 2, wantOK: true},
		{name: "empty", ratings: nil, wantIndex: 0, wantOK: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			index, ok := render.HighestRated(restaurantsRated(testCase.ratings...))
			assert.Equal(t, testCase.wantOK, ok)
			assert.Equal(t, testCase.wantIndex, index)
		})
	}
}

func TestBuild_Success(t *testing.T) {
	result := domain.NewSuccess("Vijay Nagar", "Chinese", 4.2, []domain.Restaurant{
		{Name: "Golden Dragon", Rating: 4.2, Address: "123 Main Street, Vijay Nagar, Indore"},
		{Name: "Wok & Roll", Rating: 4.9, Address: "456 Park Avenue, Vijay Nagar, Indore"},
	}, false)

	view := render.Build(result)

	assert.Equal(t, render.KindRating, view.Kind)
	assert.Equal(t, "Predicted Rating: 4.2", view.RatingLine)
	assert.Equal(t, "Fallback", view.SourceLabel)
	assert.Equal(t, "Highest Rated Chinese Restaurant in Vijay Nagar", view.Heading)
	require.NotNil(t, view.TopRestaurant)
	assert.Equal(t, "Wok & Roll", view.TopRestaurant.Name)
	assert.Equal(t, "★ 4.9", view.TopRestaurant.Rating)
}

func TestBuild_ModelLabelAndTwoDecimalAverage(t *testing.T) {
	result := domain.NewSuccess("Vijay Nagar", "North Indian", 4.15, restaurantsRated(4.2, 4.1), true)

	view := render.Build(result)

	assert.Equal(t, "ML Model", view.SourceLabel)
	assert.Equal(t, "Predicted Rating: 4.15", view.RatingLine)
}

func TestBuild_NotFoundAndError(t *testing.T) {
	cuisineView := render.Build(domain.NewCuisineNotFound("Cuisine 'Thai' not found in Vijay Nagar", "Vijay Nagar", []string{"North Indian", "Chinese"}))
	assert.Equal(t, render.KindSuggestions, cuisineView.Kind)
	assert.Equal(t, "Available cuisines in Vijay Nagar:", cuisineView.SuggestionsTitle)
	assert.Equal(t, []string{"North Indian", "Chinese"}, cuisineView.Suggestions)

	localityView := render.Build(domain.NewLocalityNotFound("Locality 'Atlantis' not found", []string{"Vijay Nagar"}))
	assert.Equal(t, "Try these popular localities:", localityView.SuggestionsTitle)
	assert.Equal(t, "Locality 'Atlantis' not found", localityView.Message)

	errorView := render.Build(domain.NewErrorResult("Locality and cuisine are required"))
	assert.Equal(t, render.KindError, errorView.Kind)
	assert.Equal(t, "Locality and cuisine are required", errorView.Error)
}
