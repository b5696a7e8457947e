// Package upstream is the thin HTTP client for the external academic
// scheduling API. It issues one GET per (classroom, building, date), decodes
// the JSON body, and reports failures as typed errors. It never retries;
// retry policy, if any, belongs to the caller.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/url"
	"time"
)

const lessonsPath = "/api/Impegni/getImpegniPublic"

// ErrorKind classifies a fetch failure.
type ErrorKind string

const (
	KindNetwork        ErrorKind = "network"
	KindTimeout        ErrorKind = "timeout"
	KindBadStatus      ErrorKind = "bad_status"
	KindBadContentType ErrorKind = "bad_content_type"
	KindMalformedJSON  ErrorKind = "malformed_json"
)

// Error is a typed fetch failure. It is the only error the client returns.
type Error struct {
	Kind   ErrorKind
	URL    string
	Status int // HTTP status, set for bad_status only
	Err    error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream %s: %s (status %d)", e.Kind, e.URL, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %s: %v", e.Kind, e.URL, e.Err)
	}
	return fmt.Sprintf("upstream %s: %s", e.Kind, e.URL)
}

func (e *Error) Unwrap() error { return e.Err }

// Client fetches raw lesson records from the scheduling API.
type Client struct {
	http    *http.Client
	baseURL *url.URL
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a Client for the given base URL with a bounded request timeout.
func New(rawBaseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	u, err := url.Parse(rawBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", rawBaseURL, err)
	}
	c := &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: u,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// FetchDay retrieves all lesson records for a classroom over the full
// calendar day (00:00:00 through 23:59:59). The returned error, when not
// nil, is always a *Error.
func (c *Client) FetchDay(ctx context.Context, classroomID, buildingID, date string) ([]RawLesson, error) {
	u := *c.baseURL
	u.Path = lessonsPath
	q := url.Values{}
	q.Set("aula", classroomID)
	q.Set("edificio", buildingID)
	q.Set("dataInizio", date+"T00:00:00")
	q.Set("dataFine", date+"T23:59:59")
	u.RawQuery = q.Encode()
	target := u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, URL: target, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: classifyTransportError(err), URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Kind: KindBadStatus, URL: target, Status: resp.StatusCode}
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		return nil, &Error{
			Kind: KindBadContentType,
			URL:  target,
			Err:  fmt.Errorf("content type %q", resp.Header.Get("Content-Type")),
		}
	}

	var lessons []RawLesson
	if err := json.NewDecoder(resp.Body).Decode(&lessons); err != nil {
		return nil, &Error{Kind: KindMalformedJSON, URL: target, Err: err}
	}
	return lessons, nil
}

func classifyTransportError(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindTimeout
	}
	return KindNetwork
}

func isJSONContentType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}
