package country

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Defaults for the REST Countries API.
const (
	DefaultBaseURL = "https://restcountries.com/v2"
	DefaultTimeout = 30 * time.Second

	// fieldSelection limits the payload to what the table shows.
	fieldSelection = "name,region,area"

	// maxErrorBody caps how much of an error response is kept for diagnostics.
	maxErrorBody = 512
)

// Client fetches countries from a REST Countries compatible endpoint.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// NewClient returns a client for baseURL. An empty baseURL selects the
// public API; a non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  "countrytable",
	}
}

// AllURL returns the URL used to list every country.
func (c *Client) AllURL() string {
	return c.BaseURL + "/all?fields=" + fieldSelection
}

// FetchCountries retrieves every country with its name, region and area.
func (c *Client) FetchCountries(ctx context.Context) ([]Record, error) {
	endpoint := c.AllURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Op: OpRequest, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Op: OpRequest, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &FetchError{
			Op:         OpStatus,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrUnexpectedStatus, strings.TrimSpace(string(body))),
		}
	}

	var records []Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, &FetchError{Op: OpDecode, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}
	return records, nil
}
