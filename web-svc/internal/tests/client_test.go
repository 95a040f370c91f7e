package tests

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restaurant-recommender/web-svc/internal/client"
	"restaurant-recommender/web-svc/internal/domain"
	"restaurant-recommender/web-svc/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestPredictClient_Predict(t *testing.T) {
	tests := []struct {
		name         string
		response     *http.Response
		transportErr error
		wantErr      error
		wantStatus   domain.Status
	}{
		{
			name: "success",
			response: jsonResponse(200, `{"status":"success","locality":"Vijay Nagar","cuisine":"Chinese",
				"predicted_rating":4.1,"model_used":true,
				"restaurants":[{"name":"Chinese Wok","rating":4.3,"address":"Vijay Nagar"}]}`),
			wantStatus: domain.StatusSuccess,
		},
		{
			name:       "locality_not_found",
			response:   jsonResponse(200, `{"status":"locality_not_found","message":"Locality 'Xyz' not found","suggested_localities":["Vijay Nagar","Palasia"]}`),
			wantStatus: domain.StatusLocalityNotFound,
		},
		{
			name:     "server_error",
			response: jsonResponse(500, `{"error":"boom"}`),
			wantErr:  domain.ErrHTTPStatus,
		},
		{
			name:     "not_json",
			response: jsonResponse(200, `<html>oops</html>`),
			wantErr:  domain.ErrMalformedResponse,
		},
		{
			name:     "error_status_is_malformed",
			response: jsonResponse(200, `{"status":"error","error":"model failed"}`),
			wantErr:  domain.ErrMalformedResponse,
		},
		{
			name:     "success_without_rating",
			response: jsonResponse(200, `{"status":"success","locality":"Rau","cuisine":"Cafe"}`),
			wantErr:  domain.ErrMalformedResponse,
		},
		{
			name:         "unreachable",
			transportErr: errors.New("dial tcp: connection refused"),
			wantErr:      domain.ErrNetwork,
		},
		{
			name:         "deadline",
			transportErr: context.DeadlineExceeded,
			wantErr:      domain.ErrTimeout,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			httpClient := mocks.NewHTTPClient(t)
			httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				var body map[string]string
				_ = json.NewDecoder(req.Body).Decode(&body)
				return req.Method == http.MethodPost &&
					req.URL.String() == "http://predict.test/predict" &&
					body["locality"] == "Vijay Nagar" &&
					body["cuisine"] == "Chinese"
			})).Return(testCase.response, testCase.transportErr).Once()

			c := client.NewPredictClient("http://predict.test/", httpClient)
			result, err := c.Predict(context.Background(), " Vijay Nagar ", "Chinese")

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantStatus, result.Status)
		})
	}
}

func TestPredictClient_HTTPStatusErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := client.NewPredictClient(server.URL, server.Client()).Predict(context.Background(), "Rau", "Cafe")

	var statusErr *domain.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.Code)
	assert.Equal(t, "HTTP error! status: 502", statusErr.Error())
}

func TestPredictClient_HonoursContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.NewPredictClient(server.URL, server.Client()).Predict(ctx, "Rau", "Cafe")

	assert.ErrorIs(t, err, domain.ErrTimeout)
}

func TestPredictClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Times(5)

	c := client.NewPredictClient("http://predict.test", httpClient)
	for i := 0; i < 5; i++ {
		_, err := c.Predict(context.Background(), "Rau", "Cafe")
		require.ErrorIs(t, err, domain.ErrNetwork)
	}

	_, err := c.Predict(context.Background(), "Rau", "Cafe")
	assert.ErrorIs(t, err, domain.ErrBreakerOpen)
}

func TestEmailJSMailer_Send(t *testing.T) {
	tests := []struct {
		name         string
		response     *http.Response
		transportErr error
		wantDetail   string
	}{
		{
			name:     "accepted",
			response: jsonResponse(200, "OK"),
		},
		{
			name:       "bad_request",
			response:   jsonResponse(400, "The template ID is invalid"),
			wantDetail: "Bad request - check your template ID and parameters",
		},
		{
			name:       "unauthorized",
			response:   jsonResponse(401, ""),
			wantDetail: "Authentication error - check your user ID and service ID",
		},
		{
			name:       "other_status_keeps_body",
			response:   jsonResponse(429, "Too many requests"),
			wantDetail: "Too many requests",
		},
		{
			name:         "network",
			transportErr: errors.New("no route to host"),
			wantDetail:   "Network error - check your internet connection",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			httpClient := mocks.NewHTTPClient(t)
			httpClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				var body struct {
					ServiceID      string            `json:"service_id"`
					TemplateID     string            `json:"template_id"`
					UserID         string            `json:"user_id"`
					TemplateParams map[string]string `json:"template_params"`
				}
				_ = json.NewDecoder(req.Body).Decode(&body)
				return req.URL.Path == "/api/v1.0/email/send" &&
					body.ServiceID == "service_x" &&
					body.TemplateID == "template_y" &&
					body.UserID == "public-key" &&
					body.TemplateParams["from_name"] == "Asha Verma"
			})).Return(testCase.response, testCase.transportErr).Once()

			mailer := client.NewEmailJSMailer("https://mail.test", "public-key", "", httpClient)
			err := mailer.Send(context.Background(), "service_x", "template_y", map[string]string{"from_name": "Asha Verma"})

			if testCase.wantDetail == "" {
				assert.NoError(t, err)
				return
			}
			var mailErr *client.MailError
			require.ErrorAs(t, err, &mailErr)
			assert.Equal(t, testCase.wantDetail, mailErr.Detail())
		})
	}
}
