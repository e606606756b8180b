package notion

import "time"

// QueryResponse is the top-level container for a database query page.
type QueryResponse struct {
	Results    []PageDTO `json:"results"`
	HasMore    bool      `json:"has_more"`
	NextCursor string    `json:"next_cursor"`
}

// PageDTO represents a single record in a database query response.
type PageDTO struct {
	ID          string                 `json:"id"`
	CreatedTime string                 `json:"created_time"`
	Properties  map[string]PropertyDTO `json:"properties"`
}

// PropertyDTO is the union of the property payloads we care about. Exactly
// one of the fields is populated depending on the property's configured
// type; absent keys decode to the zero value, which the mapper treats as
// the documented default.
type PropertyDTO struct {
	Title    []RichTextDTO `json:"title,omitempty"`
	People   []PersonDTO   `json:"people,omitempty"`
	Status   *StatusDTO    `json:"status,omitempty"`
	Date     *DateDTO      `json:"date,omitempty"`
	Relation []RelationDTO `json:"relation,omitempty"`
	Rollup   *RollupDTO    `json:"rollup,omitempty"`
	Formula  *FormulaDTO   `json:"formula,omitempty"`
}

// RichTextDTO is a single run of a rich-text value.
type RichTextDTO struct {
	PlainText string `json:"plain_text"`
}

// PersonDTO is a referenced workspace member.
type PersonDTO struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// StatusDTO is a named status value.
type StatusDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DateDTO is a date range; either bound may be empty.
type DateDTO struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// RelationDTO is a reference to another record.
type RelationDTO struct {
	ID string `json:"id"`
}

// RollupDTO is an upstream-computed aggregate. The wrapper's declared type
// decides which value field is trustworthy.
type RollupDTO struct {
	Type    string         `json:"type"`
	Number  *float64       `json:"number,omitempty"`
	Boolean *bool          `json:"boolean,omitempty"`
	Array   []RollupItemDTO `json:"array,omitempty"`
}

// RollupItemDTO is one element of an array rollup.
type RollupItemDTO struct {
	Type   string     `json:"type"`
	Status *StatusDTO `json:"status,omitempty"`
}

// FormulaDTO is an upstream-computed formula value.
type FormulaDTO struct {
	Type    string `json:"type"`
	Boolean *bool  `json:"boolean,omitempty"`
}

// FilterDTO is a server-side query filter on a single property.
type FilterDTO struct {
	Property string              `json:"property"`
	Status   *StatusConditionDTO `json:"status,omitempty"`
}

// StatusConditionDTO is the status-property condition of a filter.
type StatusConditionDTO struct {
	DoesNotEqual string `json:"does_not_equal,omitempty"`
}

// SortDTO is a server-side sort instruction.
type SortDTO struct {
	Property  string `json:"property"`
	Direction string `json:"direction"`
}

// ParseDate parses the date-only and timestamp forms a date property may
// carry.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// ParseTimestamp parses record metadata timestamps (created_time).
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
