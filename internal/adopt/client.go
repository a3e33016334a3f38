package adopt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Fetcher defines the read operations the rest of pawprint needs from the API.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	FetchPets(ctx context.Context, query PetQuery) (Page, error)
	FetchPet(ctx context.Context, id string) (Pet, error)
	FetchBreeds(ctx context.Context, species Species, name string) ([]BreedData, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// ErrNotFound is returned when the API answers 404 for a single resource.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned for pet IDs that are not UUIDs.
var ErrInvalidID = errors.New("invalid pet id")

// StatusError describes a non-success HTTP response.
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}

// Client talks to the adoption HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "http://localhost:8080"
	defaultUserAgent = "pawprint/0.1"
	defaultTimeout   = 5 * time.Second
	maxBodyBytes     = 8 << 20
)

// NewClient builds a Client for the API rooted at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchPets retrieves one page of pets and normalizes the response shape.
func (c *Client) FetchPets(ctx context.Context, query PetQuery) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/pets", RawQuery: query.Values().Encode()}
	body, err := c.get(ctx, rel)
	if err != nil {
		return Page{}, err
	}
	return DecodePage(body, query)
}

// FetchPet retrieves a single pet by ID.
func (c *Client) FetchPet(ctx context.Context, id string) (Pet, error) {
	if c == nil {
		return Pet{}, fmt.Errorf("client is nil")
	}
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return Pet{}, fmt.Errorf("%w %q: %v", ErrInvalidID, id, err)
	}
	rel := &url.URL{Path: "/api/pets/" + parsed.String()}
	body, err := c.get(ctx, rel)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return Pet{}, fmt.Errorf("pet %s: %w", parsed, ErrNotFound)
		}
		return Pet{}, err
	}
	var pet Pet
	if err := json.Unmarshal(body, &pet); err != nil {
		return Pet{}, fmt.Errorf("decode response: %w", err)
	}
	return pet, nil
}

// FetchBreeds retrieves breed reference data for a species, optionally narrowed by name.
func (c *Client) FetchBreeds(ctx context.Context, species Species, name string) ([]BreedData, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	segment := species.PathSegment()
	if segment == "" {
		return nil, fmt.Errorf("species required")
	}
	values := url.Values{}
	if n := strings.TrimSpace(name); n != "" {
		values.Set("name", n)
	}
	rel := &url.URL{Path: "/api/breeds/" + segment, RawQuery: values.Encode()}
	body, err := c.get(ctx, rel)
	if err != nil {
		return nil, err
	}
	var breeds []BreedData
	if err := json.Unmarshal(body, &breeds); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return breeds, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Path: rel.Path, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
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
