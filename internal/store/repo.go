package store

import (
	"context"
	"time"
)

// SavedTest is one entry of the saved-test list: a paper that was exported
// successfully. Entries are never mutated.
type SavedTest struct {
	// ID is a UUIDv7, so it also sorts by creation time.
	ID    string
	Title string
	// Date is the display date, e.g. "Jan 2, 2006".
	Date      string
	FileName  string
	CreatedAt time.Time
}

// SavedTestRepo is the append-only list of exported papers.
type SavedTestRepo interface {
	// Append adds t to the end of the list. IDs must be unique.
	Append(ctx context.Context, t SavedTest) error

	// List returns every entry in creation order.
	List(ctx context.Context) ([]SavedTest, error)

	// Delete removes the entry with the given ID and reports whether one
	// existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// QueryOpts filters and pages event queries.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // id > After
	Before  int64     // id < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates requests sharing a purpose.
type LLMUsageStats struct {
	Purpose      string `bun:"purpose"`
	Calls        int    `bun:"calls"`
	InputTokens  int    `bun:"input_tokens"`
	OutputTokens int    `bun:"output_tokens"`
	AvgLatencyMs int64  `bun:"avg_latency_ms"`
}

// LLMModelUsage aggregates requests served by one model.
type LLMModelUsage struct {
	Model        string `bun:"model"`
	Calls        int    `bun:"calls"`
	InputTokens  int    `bun:"input_tokens"`
	OutputTokens int    `bun:"output_tokens"`
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
