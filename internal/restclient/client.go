// Package restclient is the authenticated HTTP layer between the console
// and the restaurant platform backend. It attaches the stored bearer token
// to every request, evicts the session on 401, and normalizes failures into
// a small error taxonomy.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/spicetable/admin-console/internal/token"
)

const defaultMaxBodyBytes = 8 << 20

// Config configures the client.
type Config struct {
	// BaseURL is the single authoritative backend prefix. Endpoint paths
	// passed to Request never repeat it.
	BaseURL string
	// Tokens supplies the bearer token and receives the clear on 401.
	Tokens token.Store
	// OnUnauthorized fires after a 401 has cleared the token, letting the
	// hosting shell decide how to send the operator back to login.
	OnUnauthorized func()
	// HTTPClient is used to execute requests. When nil, http.DefaultClient
	// semantics apply: no timeout, per the backend contract a hung request
	// hangs its caller.
	HTTPClient *http.Client
	// MaxBodyBytes caps response bodies to prevent memory exhaustion.
	MaxBodyBytes int64
	Logger       *logrus.Logger
}

// Client issues authenticated JSON and multipart requests.
type Client struct {
	baseURL        string
	tokens         token.Store
	onUnauthorized func()
	httpClient     *http.Client
	maxBodyBytes   int64
	log            *logrus.Logger
}

// New validates the base URL and builds a client.
func New(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("restclient: BaseURL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("restclient: BaseURL must be a valid URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("restclient: BaseURL scheme must be http or https")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("restclient: Tokens store is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	maxBodyBytes := cfg.MaxBodyBytes
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	return &Client{
		baseURL:        baseURL,
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		httpClient:     httpClient,
		maxBodyBytes:   maxBodyBytes,
		log:            log,
	}, nil
}

// Request issues one call and returns the parsed JSON body. body may be
// nil, any JSON-serializable value, or a *MultipartForm.
//
// A 401 clears the token store, fires the unauthorized hook, and returns
// ErrUnauthorized. Any other non-2xx status returns a *RequestError whose
// message prefers the backend's "message" field. Transport failures return
// a *NetworkError. A body that does not parse as JSON degrades to an empty
// object rather than an error.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any, headers map[string]string) (json.RawMessage, error) {
	var (
		bodyReader  io.Reader
		contentType string
	)

	switch b := body.(type) {
	case nil:
		contentType = "application/json"
	case *MultipartForm:
		buf, ct, err := b.encode()
		if err != nil {
			return nil, fmt.Errorf("restclient: encode multipart body: %w", err)
		}
		bodyReader = buf
		contentType = ct
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("restclient: marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("restclient: create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.log.WithFields(logrus.Fields{"method": method, "endpoint": endpoint}).Debug("request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Evict the stale session for this and all future calls, then let
		// the shell route the operator back to login.
		if clearErr := c.tokens.Clear(); clearErr != nil {
			c.log.WithError(clearErr).Warn("failed to clear token after 401")
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, ErrUnauthorized
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	payload := json.RawMessage(raw)
	if !json.Valid(raw) {
		payload = json.RawMessage("{}")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := gjson.GetBytes(payload, "message").String()
		if msg == "" {
			msg = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: msg}
	}

	return payload, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, endpoint, nil, nil)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, endpoint, body, nil)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, endpoint, body, nil)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, nil, nil)
}
