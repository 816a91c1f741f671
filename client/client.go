// Package client is a small data-access adapter for the portfolio API. Read
// calls are cached in memory for a short window so page renders that hit the
// same resources repeatedly do not refetch; every read accepts a bypass flag
// to force a fresh request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/aTrapDeer/portfolio-api/internal/models"
)

const (
	defaultCacheTTL   = 5 * time.Minute
	defaultCacheSweep = 10 * time.Minute
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = cache.New(ttl, defaultCacheSweep) }
}

// New returns a client for the API at baseURL, e.g. "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		cache:      cache.New(defaultCacheTTL, defaultCacheSweep),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListOptions control list reads. Bypass skips the cache for this call.
type ListOptions struct {
	Featured  *bool  // projects only
	Category  string // skills only
	Published *bool  // blog only
	Limit     int    // blog only
	Offset    int    // blog only
	Bypass    bool
}

func (c *Client) Projects(ctx context.Context, opts ListOptions) ([]models.Project, error) {
	q := url.Values{}
	if opts.Featured != nil {
		q.Set("featured", strconv.FormatBool(*opts.Featured))
	}
	var projects []models.Project
	if err := c.get(ctx, "/api/projects", q, opts.Bypass, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *Client) Project(ctx context.Context, id uint, bypass bool) (*models.Project, error) {
	var project models.Project
	if err := c.get(ctx, fmt.Sprintf("/api/projects/%d", id), nil, bypass, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) Skills(ctx context.Context, opts ListOptions) ([]models.Skill, error) {
	q := url.Values{}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	var skills []models.Skill
	if err := c.get(ctx, "/api/skills", q, opts.Bypass, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (c *Client) SkillCategories(ctx context.Context, bypass bool) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/api/skills/categories", nil, bypass, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) BlogPosts(ctx context.Context, opts ListOptions) ([]models.BlogPost, error) {
	q := url.Values{}
	if opts.Published != nil {
		q.Set("published", strconv.FormatBool(*opts.Published))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	var posts []models.BlogPost
	if err := c.get(ctx, "/api/blog", q, opts.Bypass, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// BlogPost fetches a post by numeric id or slug.
func (c *Client) BlogPost(ctx context.Context, identifier string, bypass bool) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := c.get(ctx, "/api/blog/"+url.PathEscape(identifier), nil, bypass, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ContactSubmission is the contact form payload.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
}

// SubmitContact sends a contact message and returns the new message id.
// Writes are never cached.
func (c *Client) SubmitContact(ctx context.Context, submission ContactSubmission) (uint, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return 0, fmt.Errorf("encode contact submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return 0, err
	}

	var result struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("decode contact response: %w", err)
	}
	return result.ID, nil
}

// get fetches path (with query), consulting the TTL cache first unless
// bypass is set. Responses are cached as raw bytes keyed by the full URL.
func (c *Client) get(ctx context.Context, path string, q url.Values, bypass bool, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	if !bypass {
		if cached, found := c.cache.Get(u); found {
			return json.Unmarshal(cached.([]byte), out)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return err
	}

	c.cache.Set(u, body, cache.DefaultExpiration)
	return json.Unmarshal(body, out)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var parsed struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.Error != "" {
			apiErr.Message = parsed.Error
		}
		return nil, apiErr
	}
	return body, nil
}
