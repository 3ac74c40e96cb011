// Package fetch retrieves the external posts feed and drives a poststore
// through one load.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/johnsonav1992/remix-v3-experimental/internal/model"
)

// DefaultURL is the public feed the posts screen reads.
const DefaultURL = "https://jsonplaceholder.typicode.com/todos?_limit=5"

// Fetcher returns the posts of one request.
type Fetcher interface {
	FetchPosts(ctx context.Context) ([]model.Post, error)
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Client is an HTTP Fetcher.
type Client struct {
	url           string
	authorization string
	http          *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithAuthorization sets the Authorization header value sent with each request.
func WithAuthorization(header string) Option {
	return func(c *Client) { c.authorization = header }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient returns a client for url, or DefaultURL when url is empty.
func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	c := &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Client) URL() string { return c.url }

// FetchPosts issues one GET and decodes a JSON array of posts.
func (c *Client) FetchPosts(ctx context.Context) ([]model.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.authorization != "" {
		req.Header.Set("Authorization", c.authorization)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get posts: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Code: res.StatusCode}
	}

	var posts []model.Post
	if err := json.NewDecoder(res.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}
