// Package weather fetches the current conditions shown on the start page
// from OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the OpenWeatherMap v2.5 API root
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// Timeout bounds the single weather request
	Timeout = 10 * time.Second
)

// ErrNoConditions is returned when the response carries no weather entries.
var ErrNoConditions = errors.New("response has no weather conditions")

// Reading is the part of a weather response the start page displays.
type Reading struct {
	Temperature float64
	Description string
}

// Query identifies what to fetch.
type Query struct {
	City   string
	Units  string
	APIKey string
}

// Fetcher returns the current reading for a query.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (Reading, error)
}

// Client talks to the OpenWeatherMap current-weather endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL points the client at another API root
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the request timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates an OpenWeatherMap client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: Timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// RequestURL returns the URL Fetch requests for q.
func (c *Client) RequestURL(q Query) string {
	params := url.Values{}
	params.Add("q", q.City)
	params.Add("units", q.Units)
	params.Add("appid", q.APIKey)
	return fmt.Sprintf("%s/weather?%s", c.baseURL, params.Encode())
}

// Fetch performs one GET and decodes the reading. Non-2xx statuses,
// transport errors, the timeout, undecodable bodies and bodies without a
// weather entry are errors. There is no retry.
func (c *Client) Fetch(ctx context.Context, q Query) (Reading, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(q), nil)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Reading{}, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response struct {
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return Reading{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if response.Main == nil || response.Main.Temp == nil {
		return Reading{}, errors.New("failed to parse response: missing main.temp")
	}
	if len(response.Weather) == 0 {
		return Reading{}, ErrNoConditions
	}

	return Reading{
		Temperature: *response.Main.Temp,
		Description: response.Weather[0].Description,
	}, nil
}
