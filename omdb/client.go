// Package omdb resolves movie titles against the OMDb API.
package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"movieapi/movie"
	"movieapi/pkg/metrics"
)

const (
	DefaultBaseURL = "http://www.omdbapi.com/"

	defaultTimeout = 30 * time.Second
	// OMDb reports absent fields as "N/A".
	notAvailable = "N/A"
)

// Client implements movie.MetadataProvider.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(c *Client)

// WithHTTPClient replaces the default client, which times out after 30s.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupByTitle returns the canonical metadata for title, or
// movie.ErrMovieNotFound when OMDb has no match.
func (c *Client) LookupByTitle(ctx context.Context, title string) (movie.Metadata, error) {
	start := time.Now()
	md, err := c.lookup(ctx, title)
	switch {
	case err == nil:
		metrics.RecordMetadataLookup("found", time.Since(start))
	case errors.Is(err, movie.ErrMovieNotFound):
		metrics.RecordMetadataLookup("not_found", time.Since(start))
	default:
		metrics.RecordMetadataLookup("error", time.Since(start))
	}
	return md, err
}

func (c *Client) lookup(ctx context.Context, title string) (movie.Metadata, error) {
	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", c.apiKey)

	body, err := c.doRequest(ctx, params)
	if err != nil {
		return movie.Metadata{}, err
	}

	if !gjson.ValidBytes(body) {
		return movie.Metadata{}, fmt.Errorf("omdb: malformed response payload")
	}
	res := gjson.ParseBytes(body)
	if !res.IsObject() {
		return movie.Metadata{}, fmt.Errorf("omdb: unexpected response payload")
	}
	if strings.EqualFold(res.Get("Response").String(), "False") {
		return movie.Metadata{}, movie.ErrMovieNotFound
	}

	year, err := parseYear(res.Get("Year").String())
	if err != nil {
		return movie.Metadata{}, err
	}

	return movie.Metadata{
		Title: available(res.Get("Title").String()),
		Genre: available(res.Get("Genre").String()),
		Year:  year,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("omdb: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("omdb: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("omdb: failed to read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("omdb: unexpected status %d", resp.StatusCode)
	}
	return body, nil
}

// parseYear reads the leading four digits, so a series range such as
// "2011–2019" yields 2011.
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == notAvailable {
		return 0, nil
	}
	if len(s) < 4 {
		return 0, fmt.Errorf("omdb: invalid year %q", s)
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0, fmt.Errorf("omdb: invalid year %q", s)
	}
	return year, nil
}

func available(s string) string {
	s = strings.TrimSpace(s)
	if s == notAvailable {
		return ""
	}
	return s
}
