// Package weather fetches current conditions from the Open-Meteo forecast
// API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public Open-Meteo API.
const DefaultBaseURL = "https://api.open-meteo.com"

// DefaultTimeout bounds a single forecast request.
const DefaultTimeout = 10 * time.Second

// ErrNoCurrentWeather is returned when the provider answered but the
// response carried no current_weather section.
var ErrNoCurrentWeather = errors.New("weather: response has no current_weather")

// RequestError marks transport-level failures (connection errors, bad HTTP
// status) so callers can report them separately from everything else.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string { return e.Err.Error() }

func (e *RequestError) Unwrap() error { return e.Err }

// CurrentWeather holds the fields of Open-Meteo's current_weather object
// that the weather tool reports on.
type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

// Provider returns current conditions for a coordinate pair.
type Provider interface {
	Current(ctx context.Context, latitude, longitude float64) (*CurrentWeather, error)
}

// Client is a Provider backed by the Open-Meteo forecast endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for the given endpoint. An empty baseURL or a
// zero timeout falls back to the package defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Current fetches current conditions for the given coordinates. Transport
// failures come back as *RequestError; a response without a current_weather
// object yields ErrNoCurrentWeather.
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*CurrentWeather, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	query.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/forecast?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather: building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var payload struct {
		CurrentWeather *CurrentWeather `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather: decoding response: %w", err)
	}
	if payload.CurrentWeather == nil {
		return nil, ErrNoCurrentWeather
	}

	return payload.CurrentWeather, nil
}
