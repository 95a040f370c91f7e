package httpapi

import (
	"net/http"

	"restaurant-recommender/logging"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.AllowAll().Handler(r)
}

func StartServer(addr string, handler http.Handler) {
	logging.Info().Str("addr", addr).Msg("prediction service starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logging.Fatal().Err(err).Msg("prediction service stopped")
	}
}
