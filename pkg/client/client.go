// Package client is a thin typed wrapper over the people HTTP API.
//
// One network call per repository operation; any non-success response
// surfaces as a single *APIError with a human-readable message. The client
// does not retry and does not cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"socialnetwork-backend/pkg/graph"
)

// Person mirrors the API wire form. Connections stays double-encoded (a
// JSON string containing an array of ids); use Graph to parse it.
type Person struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	Location    *string   `json:"location"`
	MetSince    time.Time `json:"metSince"`
	Connections string    `json:"connections"`
}

// PersonInput is the create/update payload. Location and Connections are
// optional; the server defaults connections to "[]".
type PersonInput struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
	Location    *string `json:"location,omitempty"`
	Connections *string `json:"connections,omitempty"`
}

// Stats is the aggregate counts document.
type Stats struct {
	Total        int64 `json:"total"`
	BestFriend   int64 `json:"bestFriend"`
	Friend       int64 `json:"friend"`
	Acquaintance int64 `json:"acquaintance"`
}

// APIError is the generic failure for any non-success response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// errorEnvelope matches the server's error body shape.
type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client issues the people API calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL (e.g. "http://localhost:8080").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// List fetches all people.
func (c *Client) List(ctx context.Context) ([]Person, error) {
	var people []Person
	if err := c.do(ctx, http.MethodGet, "/api/people", nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// Get fetches one person by id.
func (c *Client) Get(ctx context.Context, id int64) (*Person, error) {
	var p Person
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/people/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create adds a new person and returns it with the assigned id.
func (c *Client) Create(ctx context.Context, input PersonInput) (*Person, error) {
	var p Person
	if err := c.do(ctx, http.MethodPost, "/api/people", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update fully replaces a person's mutable fields.
func (c *Client) Update(ctx context.Context, id int64, input PersonInput) (*Person, error) {
	var p Person
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/people/%d", id), input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus patches only the closeness tier.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status string) (*Person, error) {
	body := map[string]string{"status": status}

	var p Person
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/people/%d/status", id), body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a person.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/people/%d", id), nil, nil)
}

// Stats fetches the aggregate counts.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.do(ctx, http.MethodGet, "/api/people/stats", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Graph derives the network-map node/edge set from an already-fetched
// (and possibly filtered) person list. Runs locally, no network call.
func (c *Client) Graph(people []Person) graph.Graph {
	views := make([]graph.Person, len(people))
	for i, p := range people {
		views[i] = graph.Person{
			ID:          p.ID,
			Name:        p.Name,
			Type:        p.Type,
			Status:      p.Status,
			Connections: p.Connections,
		}
	}
	return graph.Derive(views)
}

// do issues one request and decodes the response into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.asAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// asAPIError shapes any failed response into a generic APIError, using the
// server's error envelope message when one is present.
func (c *Client) asAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil &&
		envelope.Error != nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
