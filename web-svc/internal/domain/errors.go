package domain

import (
	"errors"
	"fmt"
)

// Prediction backend failures. All of them are recovered by the mock fallback.
var (
	ErrNetwork           = errors.New("prediction backend unreachable")
	ErrTimeout           = errors.New("prediction backend timed out")
	ErrHTTPStatus        = errors.New("prediction backend returned an error status")
	ErrMalformedResponse = errors.New("invalid response format from prediction backend")
	ErrBreakerOpen       = errors.New("prediction backend circuit open")
)

type HTTPStatusError struct {
	Code int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

func (e *HTTPStatusError) Unwrap() error {
	return ErrHTTPStatus
}
