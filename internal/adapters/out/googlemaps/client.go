// Package googlemaps implements the Geocoder port against the Google Maps
// Geocoding and Distance Matrix web services.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"pizzaria/internal/core/domain/model/kernel"
)

const (
	// DefaultBaseURL is the production Google Maps API host.
	DefaultBaseURL = "https://maps.googleapis.com"

	// requestTimeout bounds each outbound call so a slow provider cannot
	// hold a checkout request indefinitely.
	requestTimeout = 12 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// Client calls the Geocoding API and the Distance Matrix API. The base URL
// is configurable so tests can point it at a local stub server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given base URL. An empty base URL
// means the production host.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves an address to coordinates. ZERO_RESULTS (or an OK
// response with no results) reports found=false rather than an error, so
// callers can distinguish "bad address" from a provider fault.
func (c *Client) Geocode(ctx context.Context, apiKey, address string) (kernel.Coordinates, bool, error) {
	query := url.Values{}
	query.Set("address", address)
	query.Set("key", apiKey)

	var resp geocodeResponse
	if err := c.getJSON(ctx, "/maps/api/geocode/json", query, &resp); err != nil {
		return kernel.Coordinates{}, false, err
	}

	if resp.Status == statusZeroResults || (resp.Status == statusOK && len(resp.Results) == 0) {
		return kernel.Coordinates{}, false, nil
	}
	if resp.Status != statusOK {
		return kernel.Coordinates{}, false, fmt.Errorf("geocoding failed with status %s", resp.Status)
	}

	location := resp.Results[0].Geometry.Location
	coords, err := kernel.NewCoordinates(location.Lat, location.Lng)
	if err != nil {
		return kernel.Coordinates{}, false, err
	}
	return coords, true, nil
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// RouteDistance returns the driving distance in meters between two
// coordinate pairs. A zero return means the provider found no route.
func (c *Client) RouteDistance(
	ctx context.Context, apiKey string, origin, destination kernel.Coordinates,
) (int, error) {
	query := url.Values{}
	query.Set("origins", origin.String())
	query.Set("destinations", destination.String())
	query.Set("mode", "driving")
	query.Set("key", apiKey)

	var resp distanceMatrixResponse
	if err := c.getJSON(ctx, "/maps/api/distancematrix/json", query, &resp); err != nil {
		return 0, err
	}

	if resp.Status != statusOK {
		return 0, fmt.Errorf("distance matrix failed with status %s", resp.Status)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, nil
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != statusOK {
		return 0, nil
	}
	return element.Distance.Value, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build maps request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call maps api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps api returned HTTP %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode maps response: %w", err)
	}
	return nil
}
