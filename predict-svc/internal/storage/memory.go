package storage

import (
	"context"
	"hash/fnv"

	"restaurant-recommender/predict-svc/internal/domain"
)

var seedLocalities = []string{
	"Vijay Nagar", "Old Palasia", "New Palasia", "Sapna Sangeeta",
	"Bhawar Kuan", "Rajendra Nagar", "Sudama Nagar", "Geeta Bhawan",
	"Annapurna", "LIG Colony", "MG Road", "AB Road", "Scheme 54",
	"Scheme 78", "Rau", "Khandwa Road", "Saket", "Bombay Hospital",
}

var seedCuisines = []string{
	"North Indian", "South Indian", "Chinese", "Italian",
	"Fast Food", "Street Food", "Mughlai", "Continental",
	"Desserts", "Beverages", "Bakery", "Mithai", "Cafe",
	"Pizza", "Burger", "Biryani", "Thali", "Veg", "Non-Veg",
}

var seedEntries = []domain.CatalogEntry{
	entry("Vijay Nagar", "North Indian", "Nafees Restaurant", 4.2, "56, Scheme No 54, Vijay Nagar"),
	entry("Vijay Nagar", "North Indian", "Punjabi Tadka", 4.0, "MR 10 Road, Vijay Nagar"),
	entry("Vijay Nagar", "South Indian", "Dosa Point", 3.9, "Scheme No 78, Vijay Nagar"),
	entry("Vijay Nagar", "South Indian", "Sagar Gaire", 4.1, "AB Road, Vijay Nagar"),
	entry("Vijay Nagar", "Chinese", "Wang's Kitchen", 4.3, "Scheme No 54, Vijay Nagar"),
	entry("Vijay Nagar", "Chinese", "China Town", 3.8, "MR 10 Road, Vijay Nagar"),
	entry("Old Palasia", "North Indian", "Patiala House", 4.4, "Old Palasia Main Road"),
	entry("Old Palasia", "North Indian", "Punjabi Swad", 4.1, "Near Geeta Bhawan, Old Palasia"),
	entry("Old Palasia", "Italian", "La Pizzeria", 4.5, "AB Road, Old Palasia"),
	entry("Old Palasia", "Italian", "Pizza Palace", 4.0, "Near Geeta Bhawan, Old Palasia"),
	entry("Old Palasia", "Fast Food", "Burger Point", 3.9, "Old Palasia Main Road"),
	entry("Old Palasia", "Fast Food", "Roll Express", 4.2, "Near Geeta Bhawan, Old Palasia"),
	entry("Annapurna", "South Indian", "Madras Cafe", 4.3, "Annapurna Main Road"),
	entry("Annapurna", "South Indian", "Dosa Factory", 4.0, "Near Annapurna Temple"),
	entry("Annapurna", "Street Food", "Chappan Dukan", 4.6, "Annapurna Road"),
	entry("Annapurna", "Street Food", "Johnny Hot Dog", 4.5, "Annapurna Market"),
	entry("Annapurna", "Desserts", "Sweet Corner", 4.2, "Annapurna Main Road"),
	entry("Annapurna", "Desserts", "Ice Cream Palace", 4.1, "Near Annapurna Temple"),
}

func entry(locality, cuisine, name string, rating float64, address string) domain.CatalogEntry {
	return domain.CatalogEntry{
		Locality:   locality,
		Cuisine:    cuisine,
		Restaurant: domain.Restaurant{Name: name, Rating: rating, Address: address},
	}
}

// defaultRating maps a name onto [3.5, 4.5] in tenths, stable across restarts.
func defaultRating(name string) float64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return 3.5 + float64(h.Sum32()%11)/10
}

// SeedEntries is the built-in Indore catalog. Localities without curated
// restaurants get one North Indian and one Fast Food place.
func SeedEntries() []domain.CatalogEntry {
	entries := append([]domain.CatalogEntry(nil), seedEntries...)
	curated := make(map[string]bool)
	for _, e := range seedEntries {
		curated[e.Locality] = true
	}
	for _, loc := range seedLocalities {
		if curated[loc] {
			continue
		}
		north := "Punjabi Restaurant - " + loc
		fast := "Quick Bites - " + loc
		entries = append(entries,
			entry(loc, "North Indian", north, defaultRating(north), "Main Road, "+loc),
			entry(loc, "Fast Food", fast, defaultRating(fast), "Market Area, "+loc),
		)
	}
	return entries
}

// MemoryCatalog is a read-only catalog held in process.
type MemoryCatalog struct {
	localities []string
	cuisines   []string
	byLocality map[string][]string
	entries    map[[2]string][]domain.Restaurant
}

func NewMemoryCatalog(localities, cuisines []string, entries []domain.CatalogEntry) *MemoryCatalog {
	c := &MemoryCatalog{
		localities: localities,
		cuisines:   cuisines,
		byLocality: make(map[string][]string),
		entries:    make(map[[2]string][]domain.Restaurant),
	}
	for _, e := range entries {
		key := [2]string{e.Locality, e.Cuisine}
		if _, seen := c.entries[key]; !seen {
			c.byLocality[e.Locality] = append(c.byLocality[e.Locality], e.Cuisine)
		}
		c.entries[key] = append(c.entries[key], e.Restaurant)
	}
	return c
}

func NewSeedCatalog() *MemoryCatalog {
	return NewMemoryCatalog(SeedLocalities(), SeedCuisines(), SeedEntries())
}

func SeedLocalities() []string { return append([]string(nil), seedLocalities...) }

func SeedCuisines() []string { return append([]string(nil), seedCuisines...) }

func (c *MemoryCatalog) Localities(context.Context) ([]string, error) {
	return append([]string(nil), c.localities...), nil
}

func (c *MemoryCatalog) Cuisines(context.Context) ([]string, error) {
	return append([]string(nil), c.cuisines...), nil
}

func (c *MemoryCatalog) CuisinesFor(_ context.Context, locality string) ([]string, error) {
	return append([]string{}, c.byLocality[locality]...), nil
}

func (c *MemoryCatalog) Restaurants(_ context.Context, locality, cuisine string) ([]domain.Restaurant, error) {
	return append([]domain.Restaurant(nil), c.entries[[2]string{locality, cuisine}]...), nil
}
