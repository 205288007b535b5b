package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound reports that a record identifier no longer resolves, e.g. the
// book was deleted by someone else between listing and editing.
var ErrNotFound = errors.New("book not found")

// Store defines the record store operations the rest of the application
// consumes. Implemented by *Client; test doubles implement it too.
type Store interface {
	List(ctx context.Context) ([]Book, error)
	Get(ctx context.Context, id string) (Book, error)
	Create(ctx context.Context, draft Draft) (Book, error)
	Update(ctx context.Context, id string, edit Edit) (Book, error)
	Delete(ctx context.Context, id string) error
}

var _ Store = (*Client)(nil)

// Client talks to the record store's HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://127.0.0.1:4000"
	defaultUserAgent = "stacks/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty value falls back
// to the default local record store address.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// List retrieves the full book collection in server order.
func (c *Client) List(ctx context.Context) ([]Book, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload []Book
	if err := c.do(ctx, http.MethodGet, "/books", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Get retrieves a single book by identifier. Returns ErrNotFound when the
// identifier no longer resolves.
func (c *Client) Get(ctx context.Context, id string) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Book{}, fmt.Errorf("book id required")
	}
	var payload Book
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id), nil, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// Create submits a new book. The returned record carries the store-assigned
// identifier.
func (c *Client) Create(ctx context.Context, draft Draft) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	var payload Book
	if err := c.do(ctx, http.MethodPost, "/books", draft, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// Update replaces the mutable fields of an existing book.
func (c *Client) Update(ctx context.Context, id string, edit Edit) (Book, error) {
	if c == nil {
		return Book{}, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return Book{}, fmt.Errorf("book id required")
	}
	var payload Book
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id), edit, &payload); err != nil {
		return Book{}, err
	}
	return payload, nil
}

// Delete removes a book by identifier.
func (c *Client) Delete(ctx context.Context, id string) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("book id required")
	}
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, rel.Path, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s %s returned status %d", method, rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
