package tests

import (
	"context"
	"testing"

	"restaurant-recommender/predict-svc/internal/domain"
	"restaurant-recommender/predict-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogMock(t *testing.T) (*storage.PostgresCatalog, sqlmock.Sqlmock) {
	t.Helper()
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresCatalog(db), mockDB
}

func TestPostgresCatalog_Localities(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT name FROM localities ORDER BY position").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Vijay Nagar").AddRow("Rau"))

	got, err := catalog.Localities(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Vijay Nagar", "Rau"}, got)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_CuisinesFor(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT cuisine\\s+FROM catalog_restaurants").
		WithArgs("Annapurna").
		WillReturnRows(sqlmock.NewRows([]string{"cuisine"}).AddRow("South Indian").AddRow("Desserts"))

	got, err := catalog.CuisinesFor(context.Background(), "Annapurna")

	require.NoError(t, err)
	assert.Equal(t, []string{"South Indian", "Desserts"}, got)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_Restaurants(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT name, rating, COALESCE\\(address, ''\\)").
		WithArgs("Vijay Nagar", "Chinese").
		WillReturnRows(sqlmock.NewRows([]string{"name", "rating", "address"}).
			AddRow("Wang's Kitchen", 4.3, "Scheme No 54, Vijay Nagar").
			AddRow("China Town", 3.8, ""))

	got, err := catalog.Restaurants(context.Background(), "Vijay Nagar", "Chinese")

	require.NoError(t, err)
	assert.Equal(t, []domain.Restaurant{
		{Name: "Wang's Kitchen", Rating: 4.3, Address: "Scheme No 54, Vijay Nagar"},
		{Name: "China Town", Rating: 3.8},
	}, got)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_QueryError(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT name FROM cuisines").WillReturnError(assert.AnError)

	_, err := catalog.Cuisines(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}

func TestPostgresCatalog_EnsureSchema(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS localities").WillReturnResult(sqlmock.NewResult(0, 0))
	mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS cuisines").WillReturnResult(sqlmock.NewResult(0, 0))
	mockDB.ExpectExec("CREATE TABLE IF NOT EXISTS catalog_restaurants").WillReturnError(assert.AnError)

	err := catalog.EnsureSchema(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_SeedSkipsPopulatedCatalog(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT COUNT\\(\\*\\) FROM localities").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(18))

	err := catalog.Seed(context.Background(), storage.SeedLocalities(), storage.SeedCuisines(), storage.SeedEntries())

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_SeedInsertsInOneTransaction(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT COUNT\\(\\*\\) FROM localities").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mockDB.ExpectBegin()
	mockDB.ExpectExec("INSERT INTO localities").WithArgs("Rau", 0).WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.ExpectExec("INSERT INTO cuisines").WithArgs("Cafe", 0).WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.ExpectExec("INSERT INTO catalog_restaurants").
		WithArgs("Rau", "Cafe", "Rau Chai Point", 4.1, "Main Road, Rau").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mockDB.ExpectCommit()

	err := catalog.Seed(context.Background(), []string{"Rau"}, []string{"Cafe"}, []domain.CatalogEntry{{
		Locality:   "Rau",
		Cuisine:    "Cafe",
		Restaurant: domain.Restaurant{Name: "Rau Chai Point", Rating: 4.1, Address: "Main Road, Rau"},
	}})

	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestPostgresCatalog_SeedRollsBackOnFailure(t *testing.T) {
	catalog, mockDB := newCatalogMock(t)
	mockDB.ExpectQuery("SELECT COUNT\\(\\*\\) FROM localities").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mockDB.ExpectBegin()
	mockDB.ExpectExec("INSERT INTO localities").WillReturnError(assert.AnError)
	mockDB.ExpectRollback()

	err := catalog.Seed(context.Background(), []string{"Rau"}, nil, nil)

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
