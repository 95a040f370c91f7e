package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MailError describes a failed send. Status 0 means the provider was never
// reached.
type MailError struct {
	Status int
	Body   string
	Err    error
}

func (e *MailError) Error() string {
	return "failed to send feedback: " + e.Detail()
}

func (e *MailError) Unwrap() error {
	return e.Err
}

// Detail gives the operator-facing reason for the failure.
func (e *MailError) Detail() string {
	switch {
	case e.Status == 0:
		return "Network error - check your internet connection"
	case e.Status == http.StatusBadRequest:
		return "Bad request - check your template ID and parameters"
	case e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden:
		return "Authentication error - check your user ID and service ID"
	case e.Body != "":
		return e.Body
	default:
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
}

// EmailJSMailer sends template mail through an EmailJS-compatible REST API.
type EmailJSMailer struct {
	baseURL     string
	publicKey   string
	accessToken string
	client      HTTPClient
}

func NewEmailJSMailer(baseURL, publicKey, accessToken string, client HTTPClient) *EmailJSMailer {
	return &EmailJSMailer{
		baseURL:     strings.TrimRight(baseURL, "/"),
		publicKey:   publicKey,
		accessToken: accessToken,
		client:      client,
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (m *EmailJSMailer) Send(ctx context.Context, serviceID, templateID string, params map[string]string) error {
	payload, err := json.Marshal(sendRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         m.publicKey,
		AccessToken:    m.accessToken,
		TemplateParams: params,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/api/v1.0/email/send", bytes.NewReader(payload))
	if err != nil {
		return &MailError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return &MailError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &MailError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
			Err:    errors.New(http.StatusText(resp.StatusCode)),
		}
	}
	return nil
}
