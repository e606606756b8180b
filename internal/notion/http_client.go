package notion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"
	apiVersion     = "2022-06-28"
	pageSize       = 100
)

type httpClient struct {
	cfg        Config
	httpClient *http.Client

	throttleMutex sync.Mutex
	lastRequest   time.Time
}

func newHTTPClient(cfg Config) *httpClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = 350 * time.Millisecond
	}
	return &httpClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// throttle spaces consecutive requests by the configured delay. The
// client is shared by concurrent fetches, so the lock is held across
// the whole check/sleep/stamp sequence.
func (c *httpClient) throttle() {
	c.throttleMutex.Lock()
	defer c.throttleMutex.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.cfg.RequestDelay {
		wait := c.cfg.RequestDelay - elapsed
		log.Debug().Dur("wait", wait).Msg("Throttling query request")
		time.Sleep(wait)
	}
	c.lastRequest = time.Now()
}

type queryRequest struct {
	Filter      *FilterDTO `json:"filter,omitempty"`
	Sorts       []SortDTO  `json:"sorts,omitempty"`
	PageSize    int        `json:"page_size"`
	StartCursor string     `json:"start_cursor,omitempty"`
}

// QueryDatabase runs one filtered/sorted query and follows the cursor
// until the result set is exhausted. Missing credentials or database ids
// surface here, on first use.
func (c *httpClient) QueryDatabase(databaseID string, query Query) ([]PageDTO, error) {
	if c.cfg.Token == "" {
		return nil, fmt.Errorf("service token is not configured")
	}
	if databaseID == "" {
		return nil, fmt.Errorf("database id is not configured")
	}

	var pages []PageDTO
	cursor := ""

	for {
		result, err := c.queryPage(databaseID, query, cursor)
		if err != nil {
			return nil, err
		}
		pages = append(pages, result.Results...)

		if !result.HasMore {
			break
		}
		cursor = result.NextCursor
	}

	log.Debug().Str("database", databaseID).Int("records", len(pages)).Msg("Database query complete")
	return pages, nil
}

func (c *httpClient) queryPage(databaseID string, query Query, cursor string) (*QueryResponse, error) {
	c.throttle()

	body, err := json.Marshal(queryRequest{
		Filter:      query.Filter,
		Sorts:       query.Sorts,
		PageSize:    pageSize,
		StartCursor: cursor,
	})
	if err != nil {
		return nil, err
	}

	queryURL := fmt.Sprintf("%s/databases/%s/query", c.cfg.BaseURL, databaseID)
	req, err := http.NewRequest("POST", queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", apiVersion)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("service authentication failed (401/403), check the API token")
		case http.StatusNotFound:
			return nil, fmt.Errorf("database %s not found or not shared with the integration", databaseID)
		case http.StatusTooManyRequests:
			retryAfter := resp.Header.Get("Retry-After")
			if retryAfter != "" {
				return nil, fmt.Errorf("service rate limit exceeded (429), retry after %s seconds", retryAfter)
			}
			return nil, fmt.Errorf("service rate limit exceeded (429)")
		default:
			return nil, fmt.Errorf("service API returned status %d for database %s", resp.StatusCode, databaseID)
		}
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return &result, nil
}
