// Package newsapi is a thin client for the upstream news aggregation API.
// All failures are reported as ErrUpstreamUnavailable, the detail goes to the log only.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
)

// ErrUpstreamUnavailable is returned for any failed upstream call
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// defaults for the client
const (
	DefaultBaseURL = "https://newsapi.org/v2"
	DefaultTimeout = 10 * time.Second
)

// Record is an upstream article as is, fields are controlled by upstream
type Record map[string]any

// Params for the client
type Params struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  lgr.L
}

// Client makes calls to the upstream API
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	l       lgr.L
}

type articlesResponse struct {
	Status   string   `json:"status"`
	Articles []Record `json:"articles"`
}

// New makes a client
func New(p Params) *Client {
	if p.BaseURL == "" {
		p.BaseURL = DefaultBaseURL
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	if p.Logger == nil {
		p.Logger = lgr.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(p.BaseURL, "/"),
		apiKey:  p.APIKey,
		client:  &http.Client{Timeout: p.Timeout},
		l:       p.Logger,
	}
}

// Search returns articles from /everything for the generic "news" query
func (c *Client) Search(ctx context.Context, page, pageSize int) ([]Record, error) {
	params := url.Values{}
	params.Set("q", "news")
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))
	return c.get(ctx, "/everything", params)
}

// ByCountry returns top headlines for the country. Positive limit is passed as pageSize.
func (c *Client) ByCountry(ctx context.Context, country string, limit int) ([]Record, error) {
	params := url.Values{}
	params.Set("country", country)
	if limit > 0 {
		params.Set("pageSize", strconv.Itoa(limit))
	}
	return c.get(ctx, "/top-headlines", params)
}

// BySource returns top headlines of the source
func (c *Client) BySource(ctx context.Context, source string) ([]Record, error) {
	params := url.Values{}
	params.Set("sources", source)
	return c.get(ctx, "/top-headlines", params)
}

// Filtered returns top headlines filtered by country or source. Upstream doesn't allow
// both filters together, source wins and country is dropped.
func (c *Client) Filtered(ctx context.Context, country, source string) ([]Record, error) {
	params := url.Values{}
	switch {
	case country != "" && source != "":
		c.l.Logf("[WARN] both country %q and source %q requested, using source only", country, source)
		params.Set("sources", source)
	case source != "":
		params.Set("sources", source)
	case country != "":
		params.Set("country", country)
	}
	return c.get(ctx, "/top-headlines", params)
}

// get makes GET request to the endpoint and extracts articles
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]Record, error) {
	params.Set("apiKey", c.apiKey)
	reqURL := c.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		c.l.Logf("[ERROR] can't make request to %s: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, endpoint)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "newsgate/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		// url.Error carries the full url with api key, log the cause only
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		c.l.Logf("[ERROR] upstream request %s failed: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.l.Logf("[ERROR] upstream %s responded with status %d: %s", endpoint, resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, endpoint)
	}

	var res articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		c.l.Logf("[ERROR] can't decode upstream %s response: %v", endpoint, err)
		return nil, fmt.Errorf("%w: %s", ErrUpstreamUnavailable, endpoint)
	}

	if res.Articles == nil {
		return []Record{}, nil
	}
	c.l.Logf("[DEBUG] upstream %s returned %d articles", endpoint, len(res.Articles))
	return res.Articles, nil
}
