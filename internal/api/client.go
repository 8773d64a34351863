package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/threadlet/threadlet/internal/thread"
)

const (
	requestTimeout = 10 * time.Second
	maxConcurrent  = 10
)

// Client talks to the platform's REST API.
type Client struct {
	base string
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a client for the API rooted at base.
func NewClient(base string, log zerolog.Logger) *Client {
	return &Client{
		base: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		log: log,
	}
}

// get fetches a URL and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, url string, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "threadlet/1.0")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	c.log.Debug().Str("url", url).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("api request")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}
	return nil
}

// GetPost fetches a single post by ID.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	u := fmt.Sprintf("%s/api/v1/posts/%s", c.base, url.PathEscape(id))
	var post Post
	if err := c.get(ctx, u, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// GetComments fetches the flat comment list for a post. Records arrive in
// server order; tree assembly and ranking happen client-side.
func (c *Client) GetComments(ctx context.Context, postID string) ([]thread.CommentRecord, error) {
	u := fmt.Sprintf("%s/api/v1/posts/%s/comments", c.base, url.PathEscape(postID))
	var records []thread.CommentRecord
	if err := c.get(ctx, u, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// BatchGetPosts fetches multiple posts concurrently with a concurrency
// limit. Results keep input order; failed fetches are nil.
func (c *Client) BatchGetPosts(ctx context.Context, ids []string) ([]*Post, error) {
	results := make([]*Post, len(ids))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			post, err := c.GetPost(ctx, id)
			if err != nil {
				// Non-fatal: individual posts can fail.
				c.log.Warn().Str("post", id).Err(err).Msg("post fetch failed")
				return nil
			}
			mu.Lock()
			results[i] = post
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
