// Package publisher pushes generated documents to the Postman API.
//
// Two primitives are exposed: existence lookup by resource type and name
// (FindUID), and create-or-update (CreateOrUpdate, POST without a uid,
// PUT with one). Calls carry no retry or backoff; any HTTP failure
// propagates to the caller as a *pmerrors.HTTPError.
package publisher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/apibridge/swag2postman/pmerrors"
	"github.com/apibridge/swag2postman/spec"
)

// DefaultBaseURL is the Postman API endpoint used when none is configured.
const DefaultBaseURL = "https://api.getpostman.com"

// Resource type constants matching the Postman API path segments.
const (
	ResourceCollections  = "collections"
	ResourceEnvironments = "environments"
)

// maxErrorBodyBytes bounds how much of an error response body is kept
// in the returned HTTPError.
const maxErrorBodyBytes = 512

// Client is a minimal Postman API client.
type Client struct {
	// BaseURL is the API endpoint (defaults to DefaultBaseURL).
	BaseURL string
	// APIKey is sent in the X-Api-Key header on every request.
	APIKey string
	// HTTPClient is the HTTP client used for requests.
	// If nil, a default client with a 30-second timeout is used.
	HTTPClient *http.Client
	// UserAgent is the User-Agent string sent on every request.
	UserAgent string
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default).
	Logger spec.Logger
}

// New creates a new Client with default settings.
func New(apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimSuffix(c.BaseURL, "/")
	}
	return DefaultBaseURL
}

// log returns the configured logger, or a no-op logger if none is set.
func (c *Client) log() spec.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return spec.NopLogger{}
}

// resourceListing is the shape of GET /{resource} responses: the items
// live under a key named after the resource type.
type resourceListing map[string][]struct {
	Name string `json:"name"`
	UID  string `json:"uid"`
}

// FindUID looks up an existing resource by name. Returns the uid and
// true when a resource with that exact name exists, or false when none
// does. The first match wins when names collide.
func (c *Client) FindUID(ctx context.Context, resource, name string) (string, bool, error) {
	url := c.baseURL() + "/" + resource

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, &pmerrors.HTTPError{Method: http.MethodGet, URL: url, Cause: err}
	}
	c.setHeaders(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", false, &pmerrors.HTTPError{Method: http.MethodGet, URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", false, httpError(http.MethodGet, url, resp)
	}

	var listing resourceListing
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return "", false, &pmerrors.HTTPError{
			Method: http.MethodGet, URL: url, StatusCode: resp.StatusCode, Cause: err,
		}
	}

	for _, item := range listing[resource] {
		if item.Name == name {
			c.log().Debug("resource exists", "resource", resource, "name", name, "uid", item.UID)
			return item.UID, true, nil
		}
	}
	return "", false, nil
}

// CreateOrUpdate pushes a document to the Postman API: POST when uid is
// empty (create), PUT to the uid's endpoint otherwise (update). The
// document is wrapped under the singular resource key as the API
// requires.
func (c *Client) CreateOrUpdate(ctx context.Context, resource, uid string, document any) error {
	method := http.MethodPost
	url := c.baseURL() + "/" + resource
	if uid != "" {
		method = http.MethodPut
		url += "/" + uid
	}

	payload, err := json.Marshal(map[string]any{singular(resource): document})
	if err != nil {
		return &pmerrors.HTTPError{Method: method, URL: url, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return &pmerrors.HTTPError{Method: method, URL: url, Cause: err}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return &pmerrors.HTTPError{Method: method, URL: url, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(method, url, resp)
	}

	c.log().Debug("resource published", "resource", resource, "method", method, "url", url)
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("X-Api-Key", c.APIKey)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
}

// singular maps a resource path segment to the payload wrapper key:
// "collections" -> "collection".
func singular(resource string) string {
	return strings.TrimSuffix(resource, "s")
}

// httpError builds an HTTPError from a non-2xx response, keeping a
// bounded snippet of the response body for diagnostics.
func httpError(method, url string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	return &pmerrors.HTTPError{
		Method:     method,
		URL:        url,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
