package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-recommender/agg-svc/internal/service"
	"restaurant-recommender/logging"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Insights service.InsightsInterface
}

func NewHandler(svc service.InsightsInterface) *Handler {
	return &Handler{Insights: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "agg-svc"})
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/insights/queries", h.topQueries).Methods("GET")
	r.HandleFunc("/api/insights/summary", h.summary).Methods("GET")
}

func (h *Handler) topQueries(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "limit must be a number", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	stats, err := h.Insights.TopQueries(r.Context(), r.URL.Query().Get("period"), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logging.Error().Err(err).Msg("failed to read query leaderboard")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Insights.Summary(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logging.Error().Err(err).Msg("failed to read daily summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
