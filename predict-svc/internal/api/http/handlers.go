package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"restaurant-recommender/logging"
	"restaurant-recommender/predict-svc/internal/domain"
	"restaurant-recommender/predict-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Recommender service.RecommenderInterface
}

func NewHandler(recommender service.RecommenderInterface) *Handler {
	return &Handler{Recommender: recommender}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/predict", h.predict).Methods("POST")
	r.HandleFunc("/localities", h.localities).Methods("GET")
	r.HandleFunc("/cuisines", h.cuisines).Methods("GET")
	r.HandleFunc("/cuisines/{locality}", h.cuisinesByLocality).Methods("GET")
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "healthy",
		"service":         "predict-svc",
		"model_available": h.Recommender.Available(r.Context()),
	})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req domain.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "No data provided")
		return
	}
	if strings.TrimSpace(req.Locality) == "" || strings.TrimSpace(req.Cuisine) == "" {
		writeError(w, http.StatusBadRequest, "Locality and cuisine are required")
		return
	}

	prediction, err := h.Recommender.Predict(r.Context(), req.Locality, req.Cuisine)
	if err != nil {
		if errors.Is(err, service.ErrMissingInput) {
			writeError(w, http.StatusBadRequest, "Locality and cuisine are required")
			return
		}
		logging.Error().Err(err).Msg("prediction endpoint error")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, prediction)
}

func (h *Handler) localities(w http.ResponseWriter, r *http.Request) {
	localities, err := h.Recommender.Localities(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("localities endpoint error")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     domain.StatusSuccess,
		"localities": localities,
	})
}

func (h *Handler) cuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.Recommender.Cuisines(r.Context())
	if err != nil {
		logging.Error().Err(err).Msg("cuisines endpoint error")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   domain.StatusSuccess,
		"cuisines": cuisines,
	})
}

func (h *Handler) cuisinesByLocality(w http.ResponseWriter, r *http.Request) {
	locality := mux.Vars(r)["locality"]

	cuisines, err := h.Recommender.CuisinesFor(r.Context(), locality)
	if err != nil {
		logging.Error().Err(err).Str("locality", locality).Msg("cuisines by locality endpoint error")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":   domain.StatusSuccess,
		"locality": locality,
		"cuisines": cuisines,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"error":  message,
		"status": domain.StatusError,
	})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
