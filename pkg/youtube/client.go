package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pilates-club/pkg/config"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const cacheKeyPrefix = "youtube:video:"

type VideoDetails struct {
	ID                string `json:"id"`
	Duration          string `json:"duration"`
	FormattedDuration string `json:"formatted_duration"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	PublishedAt       string `json:"published_at"`
	ViewCount         int64  `json:"view_count"`
}

type apiResponse struct {
	Items []struct {
		ID             string `json:"id"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
		} `json:"snippet"`
		Statistics struct {
			ViewCount string `json:"viewCount"`
		} `json:"statistics"`
	} `json:"items"`
}

type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	cache    *redis.Client
	cacheTTL time.Duration
}

// NewClient builds a Data API client. cache may be nil.
func NewClient(cfg config.YouTubeConfig, cache *redis.Client) *Client {
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 5
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
		},
		limiter:  rate.NewLimiter(rate.Limit(limit), 1),
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// GetVideoDetails returns nil, nil when no API key is configured or the
// video does not exist.
func (c *Client) GetVideoDetails(ctx context.Context, id string) (*VideoDetails, error) {
	if !c.Enabled() || id == "" {
		return nil, nil
	}

	if details := c.cached(ctx, id); details != nil {
		return details, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("id", id)
	query.Set("part", "contentDetails,snippet,statistics")
	query.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/videos?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request error: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube api status %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response error: %w", err)
	}

	if len(body.Items) == 0 {
		return nil, nil
	}

	item := body.Items[0]
	duration := item.ContentDetails.Duration
	if duration == "" {
		duration = "PT0S"
	}
	views, _ := strconv.ParseInt(item.Statistics.ViewCount, 10, 64)

	details := &VideoDetails{
		ID:                id,
		Duration:          duration,
		FormattedDuration: FormatDuration(duration),
		Title:             item.Snippet.Title,
		Description:       item.Snippet.Description,
		PublishedAt:       item.Snippet.PublishedAt,
		ViewCount:         views,
	}

	c.store(ctx, details)
	return details, nil
}

func (c *Client) cached(ctx context.Context, id string) *VideoDetails {
	if c.cache == nil {
		return nil
	}

	data, err := c.cache.Get(ctx, cacheKeyPrefix+id).Bytes()
	if err != nil {
		return nil
	}

	var details VideoDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil
	}
	return &details
}

func (c *Client) store(ctx context.Context, details *VideoDetails) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(details)
	if err != nil {
		return
	}
	// a failed write only costs an extra API call next time
	_ = c.cache.Set(ctx, cacheKeyPrefix+details.ID, data, c.cacheTTL).Err()
}
