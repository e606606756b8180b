package notion

import (
	"time"
)

// Query describes one database query: an optional filter plus optional
// server-side sorts. Pagination is handled by the client.
type Query struct {
	Filter *FilterDTO
	Sorts  []SortDTO
}

// Client is the interface for querying the record-keeping service.
type Client interface {
	QueryDatabase(databaseID string, query Query) ([]PageDTO, error)
}

// Config holds the connection settings for the service.
type Config struct {
	// BaseURL overrides the public API endpoint, mainly for tests.
	BaseURL string

	Token string

	// RequestDelay spaces consecutive requests to stay inside the
	// service's rate limit.
	RequestDelay time.Duration
}

// NewClient creates a client for the hosted API.
func NewClient(cfg Config) Client {
	return newHTTPClient(cfg)
}

// ExcludeArchived is the standard filter keeping archived records out of
// every fetched collection.
func ExcludeArchived() *FilterDTO {
	return &FilterDTO{
		Property: "Status",
		Status:   &StatusConditionDTO{DoesNotEqual: StatusArchived},
	}
}
