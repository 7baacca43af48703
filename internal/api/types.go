package api

import (
	"encoding/json"
	"net/http"
)

// Request is a fully assembled request handed to a Transport.
type Request struct {
	Method string
	URL    string
	// Header keys are sent exactly as given; no canonicalization is applied.
	Header map[string]string
	// Body is nil when no body should be sent.
	Body []byte
}

// Response is the raw HTTP response returned by a Transport.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
