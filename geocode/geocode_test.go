package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGeocodeFirstResult(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		if got := r.URL.Query().Get("q"); got != "London" {
			t.Errorf("query q = %q, want %q", got, "London")
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("query format = %q, want %q", got, "json")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "51.5074456", "lon": "-0.1277653", "display_name": "London, Greater London, England, United Kingdom"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "travelbuddy-test/1.0", 5*time.Second)
	location, err := client.Geocode(context.Background(), "London")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if location == nil {
		t.Fatal("Geocode returned nil location for a known city")
	}
	if location.Latitude != 51.5074456 {
		t.Errorf("Latitude = %v, want 51.5074456", location.Latitude)
	}
	if location.Longitude != -0.1277653 {
		t.Errorf("Longitude = %v, want -0.1277653", location.Longitude)
	}
	if gotUserAgent != "travelbuddy-test/1.0" {
		t.Errorf("User-Agent = %q, want %q", gotUserAgent, "travelbuddy-test/1.0")
	}
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	location, err := client.Geocode(context.Background(), "Nowhereville")
	if err != nil {
		t.Fatalf("Geocode returned error: %v", err)
	}
	if location != nil {
		t.Errorf("Geocode = %+v, want nil for an unknown place", location)
	}
}

func TestGeocodeBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	if _, err := client.Geocode(context.Background(), "London"); err == nil {
		t.Fatal("Geocode did not return an error on HTTP 429")
	}
}

func TestGeocodeMalformedCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "0"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 0)
	if _, err := client.Geocode(context.Background(), "London"); err == nil {
		t.Fatal("Geocode did not return an error for unparsable coordinates")
	}
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", "", 0)
	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", client.baseURL, DefaultBaseURL)
	}
	if client.userAgent != DefaultUserAgent {
		t.Errorf("userAgent = %q, want %q", client.userAgent, DefaultUserAgent)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
}
