package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrMissingModel  = errors.New("missing model")
	ErrEmptyPrompt   = errors.New("empty prompt")
	ErrEmptyResponse = errors.New("empty provider response")
	ErrNoImage       = errors.New("provider returned no image")
)

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Provider string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s api error: status %d: %s", e.Provider, e.Code, e.Body)
}

const (
	textTimeout  = 60 * time.Second
	imageTimeout = 90 * time.Second
	maxErrorBody = 512
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
