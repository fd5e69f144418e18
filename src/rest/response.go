package rest

import (
	"fmt"
	"net/http"
)

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Err returns an *APIError for a non-2xx response and nil otherwise.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return &APIError{StatusCode: r.StatusCode, Body: string(r.Body)}
}

// DecodeJSON unmarshals the body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("rest: decode response: %w", err)
	}
	return nil
}

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rest: %d %s - %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}
