package tests

import (
	"math"
	"strings"
	"testing"

	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedHash(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "empty", input: "", want: 0},
		{name: "single char", input: "a", want: 97},
		{name: "two chars", input: "ab", want: 97*31 + 98},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.SeedHash(testCase.input))
		})
	}
}

func TestSeedHash_StableAndNonNegative(t *testing.T) {
	inputs := []string{
		"vijay nagarchinese",
		"old palasianorth indian",
		"a very long locality name that certainly overflows thirty two bits" + "street food",
		"annapurnadesserts",
	}
	for _, input := range inputs {
		first := service.SeedHash(input)
		assert.GreaterOrEqual(t, first, int64(0), input)
		assert.LessOrEqual(t, first, int64(math.MaxInt32)+1, input)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, service.SeedHash(input))
		}
	}
}

func TestSeededRandom_RangeAndPrecision(t *testing.T) {
	ranges := [][2]float64{{3.0, 5.0}, {4.0, 5.0}, {3.5, 5.0}}
	for seed := int64(0); seed < 2000; seed += 7 {
		for _, bounds := range ranges {
			v := service.SeededRandom(seed, bounds[0], bounds[1])
			assert.GreaterOrEqual(t, v, bounds[0])
			assert.LessOrEqual(t, v, bounds[1])
			assert.InDelta(t, math.Round(v*10), v*10, 1e-9, "value %v is not rounded to one decimal", v)
		}
	}
}

func TestSeededRandom_Deterministic(t *testing.T) {
	seed := service.SeedHash("vijay nagarchinese")
	assert.Equal(t, service.SeededRandom(seed, 3.0, 5.0), service.SeededRandom(seed, 3.0, 5.0))
}

func TestMockGenerator_Generate(t *testing.T) {
	generator := service.NewMockGenerator()
	key := domain.NewQueryKey("Vijay Nagar", "Chinese")

	result := generator.Generate(key)

	require.NoError(t, result.Validate())
	assert.Equal(t, domain.StatusSuccess, result.Status)
	assert.Equal(t, "Vijay Nagar", result.Locality)
	assert.Equal(t, "Chinese", result.Cuisine)
	assert.False(t, result.ModelUsed)
	require.NotNil(t, result.PredictedRating)
	assert.GreaterOrEqual(t, *result.PredictedRating, 3.0)
	assert.LessOrEqual(t, *result.PredictedRating, 5.0)

	require.Len(t, result.Restaurants, 3)
	chinese := service.CandidateNames("Chinese")
	seen := map[string]bool{}
	for i, rest := range result.Restaurants {
		assert.Contains(t, chinese, rest.Name)
		assert.False(t, seen[rest.Name], "duplicate name %s", rest.Name)
		seen[rest.Name] = true
		assert.True(t, strings.HasSuffix(rest.Address, ", Vijay Nagar, Indore"), rest.Address)
		assert.GreaterOrEqual(t, rest.Rating, []float64{4.0, 3.5, 3.0}[i])
		assert.LessOrEqual(t, rest.Rating, 5.0)
	}
}

func TestMockGenerator_ReproducibleForEquivalentKeys(t *testing.T) {
	generator := service.NewMockGenerator()

	first := generator.Generate(domain.NewQueryKey("Vijay Nagar", "Chinese"))
	second := generator.Generate(domain.NewQueryKey("  vijay NAGAR ", "chinese "))

	assert.Equal(t, first, second)
}

func TestMockGenerator_DefaultNamesForUnknownCuisine(t *testing.T) {
	result := service.NewMockGenerator().Generate(domain.NewQueryKey("Rau", "Thai"))

	require.Len(t, result.Restaurants, 3)
	defaults := service.CandidateNames("anything-unlisted")
	for _, rest := range result.Restaurants {
		assert.Contains(t, defaults, rest.Name)
	}
}
