package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCurrentParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("current_weather"); got != "true" {
			t.Errorf("query current_weather = %q, want %q", got, "true")
		}
		if got := r.URL.Query().Get("latitude"); got != "51.5" {
			t.Errorf("query latitude = %q, want %q", got, "51.5")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"latitude": 51.5,
			"longitude": -0.12,
			"current_weather": {"temperature": 17.3, "windspeed": 11.5, "weathercode": 3}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	current, err := client.Current(context.Background(), 51.5, -0.12)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if current.Temperature != 17.3 {
		t.Errorf("Temperature = %v, want 17.3", current.Temperature)
	}
	if current.WindSpeed != 11.5 {
		t.Errorf("WindSpeed = %v, want 11.5", current.WindSpeed)
	}
	if current.WeatherCode != 3 {
		t.Errorf("WeatherCode = %v, want 3", current.WeatherCode)
	}
}

func TestCurrentMissingCurrentWeather(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"latitude": 51.5, "longitude": -0.12}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Current(context.Background(), 51.5, -0.12)
	if !errors.Is(err, ErrNoCurrentWeather) {
		t.Fatalf("Current error = %v, want ErrNoCurrentWeather", err)
	}
}

func TestCurrentBadStatusIsRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Current(context.Background(), 51.5, -0.12)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Current error = %v, want *RequestError", err)
	}
}

func TestCurrentTransportFailureIsRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, 0)
	_, err := client.Current(context.Background(), 51.5, -0.12)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("Current error = %v, want *RequestError", err)
	}
}
