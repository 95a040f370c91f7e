package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"restaurant-recommender/logging"
	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/render"
	"restaurant-recommender/web-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const sessionCookie = "session_id"

type Handler struct {
	Predictor service.PredictorInterface
	Sessions  service.SessionStoreInterface
	Feedback  service.FeedbackServiceInterface
}

func NewHandler(predictor service.PredictorInterface, sessions service.SessionStoreInterface, feedback service.FeedbackServiceInterface) *Handler {
	return &Handler{Predictor: predictor, Sessions: sessions, Feedback: feedback}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	r.HandleFunc("/api/predict", h.predict).Methods("POST")
	r.HandleFunc("/api/session", h.closeSession).Methods("DELETE")
	r.HandleFunc("/api/feedback", h.submitFeedback).Methods("POST")
	r.HandleFunc("/api/feedback/qrcode", h.feedbackQRCode).Methods("GET")
}

type predictRequest struct {
	Locality string `json:"locality"`
	Cuisine  string `json:"cuisine"`
}

type predictResponse struct {
	Result domain.PredictionResult `json:"result"`
	Source domain.Source           `json:"source"`
	View   render.View             `json:"view"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "web-svc",
	})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.session(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	outcome, err := h.Predictor.Predict(r.Context(), session, req.Locality, req.Cuisine)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingInput):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			logging.Warn().Err(err).Str("session", session.ID).Msg("prediction abandoned")
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		}
		return
	}

	writeJSON(w, http.StatusOK, predictResponse{
		Result: outcome.Result,
		Source: outcome.Source,
		View:   render.Build(outcome.Result),
	})
}

// session resolves the caller's session from its cookie, opening a new one
// when the cookie is missing or stale.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*service.Session, error) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if session, ok := h.Sessions.Get(r.Context(), cookie.Value); ok {
			return session, nil
		}
	}

	session, err := h.Sessions.Open(r.Context())
	if err != nil {
		return nil, err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return session, nil
}

func (h *Handler) closeSession(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.Sessions.Close(r.Context(), cookie.Value); err != nil {
		logging.Warn().Err(err).Str("session", cookie.Value).Msg("failed to discard session cache")
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	var form domain.FeedbackForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipt, err := h.Feedback.Submit(r.Context(), form)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"status":       "invalid",
				"button_label": service.LabelSubmit,
				"error":        validationErr.Error(),
				"fields":       validationErr.Fields,
			})
		case errors.Is(err, service.ErrSendFailed):
			writeJSON(w, http.StatusBadGateway, receipt)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) feedbackQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Feedback.QRCode()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
