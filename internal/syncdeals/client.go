package syncdeals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/coursespeak/coursespeak/internal/logger"
	"github.com/coursespeak/coursespeak/internal/model"
)

const (
	syncPageSize      = 50
	defaultMaxPages   = 50
	maxEmptyPages     = 10
	fetchAttempts     = 3
	backoffStep       = time.Second
	requestTimeout    = 30 * time.Second
	requestsPerSecond = 5
)

// Client pages through a live deployment's public deals API and accumulates
// the full collection. Pagination stops at the page cap, on the first short
// page, or after ten consecutive empty pages. A failed page (after retries)
// stops pagination instead of failing the whole run, matching the incremental
// nature of a sync: whatever was fetched so far is still usable.
type Client struct {
	base    string
	http    *http.Client
	limiter *rate.Limiter
	log     *logger.Logger
}

// NewClient creates a sync client for the given site base URL.
func NewClient(base string, log *logger.Logger) *Client {
	return &Client{
		base:    base,
		http:    &http.Client{Timeout: requestTimeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		log:     log.With("component", "sync"),
	}
}

type pageResponse struct {
	Items []model.Deal `json:"items"`
	Total int          `json:"total"`
}

// FetchAll pages through the API. maxPages <= 0 uses the default cap.
func (c *Client) FetchAll(ctx context.Context, maxPages int) ([]model.Deal, error) {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}

	var all []model.Deal
	emptyPages := 0
	for page := 1; page <= maxPages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return all, err
		}

		items, err := c.fetchPage(ctx, page)
		if err != nil {
			c.log.Warn("page fetch failed, stopping pagination", "page", page, "error", err)
			break
		}
		all = append(all, items...)
		c.log.Info("fetched page", "page", page, "items", len(items), "total", len(all))

		if len(items) == 0 {
			emptyPages++
			if emptyPages >= maxEmptyPages {
				c.log.Info("consecutive empty pages, stopping pagination", "pages", emptyPages)
				break
			}
			continue
		}
		emptyPages = 0
		if len(items) < syncPageSize {
			break
		}
	}
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]model.Deal, error) {
	u := fmt.Sprintf("%s/api/deals?%s", c.base, url.Values{
		"page":     {strconv.Itoa(page)},
		"pageSize": {strconv.Itoa(syncPageSize)},
	}.Encode())

	var out pageResponse
	err := retryLinear(ctx, fetchAttempts, backoffStep, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		out = pageResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return fmt.Errorf("failed to decode page: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if out.Items == nil {
		return nil, fmt.Errorf("invalid response format: missing items")
	}
	return out.Items, nil
}
