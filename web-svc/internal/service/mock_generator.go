package service

import (
	"math"
	"math/rand"
	"strings"
	"unicode/utf16"

	"restaurant-recommender/web-svc/internal/domain"
)

var restaurantsByCuisine = map[string][]string{
	"north indian": {
		"Punjabi Tadka", "Spice Junction", "Royal Punjab", "Delhi Darbar",
		"Tandoori Nights", "Mughal Mahal", "Curry Leaf", "Masala House",
	},
	"south indian": {
		"Dosa Plaza", "Udupi Palace", "Chennai Express", "Madras Cafe",
		"Idli House", "Andhra Bhavan", "Saravana Bhavan", "Kerala Kitchen",
	},
	"chinese": {
		"Golden Dragon", "Wok & Roll", "China Town", "Chopsticks",
		"Mainland China", "Panda Express", "Asian Spice", "Noodle House",
	},
	"italian": {
		"Pizza Express", "Pasta Paradise", "Little Italy", "Olive Garden",
		"Romano's", "La Pizzeria", "Bella Italia", "Mamma Mia",
	},
	"mexican": {
		"Taco Bell", "Chili's", "El Mexicano", "Tortilla House",
		"Salsa Kitchen", "Guacamole", "Nachos & More", "Amigos",
	},
	"fast food": {
		"Burger King", "McDonald's", "KFC", "Subway",
		"Domino's", "Pizza Hut", "Wendy's", "Five Guys",
	},
}

var defaultRestaurantNames = []string{
	"Flavor House", "Spice Garden", "Food Paradise", "Gourmet Kitchen",
	"Tasty Bites", "Delicious Eats", "Foodie's Choice", "Culinary Delight",
}

var mockStreets = []string{"123 Main Street", "456 Park Avenue", "789 Food Street"}

// CandidateNames returns the name list for a cuisine, or the default list.
func CandidateNames(cuisine string) []string {
	if names, ok := restaurantsByCuisine[strings.ToLower(strings.TrimSpace(cuisine))]; ok {
		return names
	}
	return defaultRestaurantNames
}

// SeedHash folds s with hash*31 + code unit over UTF-16 code units, wrapping
// to int32 on every step, and returns the absolute value.
func SeedHash(s string) int64 {
	var hash int32
	for _, unit := range utf16.Encode([]rune(s)) {
		hash = hash*31 + int32(unit)
	}
	h := int64(hash)
	if h < 0 {
		h = -h
	}
	return h
}

// SeededRandom maps seed into [min, max], rounded to one decimal place.
func SeededRandom(seed int64, min, max float64) float64 {
	x := math.Sin(float64(seed)*9301+49297) * 233280
	frac := x - math.Floor(x)
	return roundTenth(frac*(max-min) + min)
}

func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// MockGenerator produces a plausible success result when no backend answers.
// Ratings and the name shuffle are both driven by the key's seed.
type MockGenerator struct {
	City string
}

func NewMockGenerator() *MockGenerator {
	return &MockGenerator{City: "Indore"}
}

func (g *MockGenerator) Generate(key domain.QueryKey) domain.PredictionResult {
	seed := SeedHash(key.Locality + key.Cuisine)
	locality := key.DisplayLocality()

	names := append([]string(nil), CandidateNames(key.Cuisine)...)
	shuffler := rand.New(rand.NewSource(seed))
	shuffler.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })

	ranges := [][2]float64{{4.0, 5.0}, {3.5, 5.0}, {3.0, 5.0}}
	restaurants := make([]domain.Restaurant, 0, len(ranges))
	for i, bounds := range ranges {
		restaurants = append(restaurants, domain.Restaurant{
			Name:    names[i],
			Rating:  SeededRandom(seed+int64(i)+1, bounds[0], bounds[1]),
			Address: mockStreets[i] + ", " + locality + ", " + g.City,
		})
	}

	return domain.NewSuccess(
		locality,
		key.DisplayCuisine(),
		SeededRandom(seed, 3.0, 5.0),
		restaurants,
		false,
	)
}
