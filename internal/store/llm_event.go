package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type llmEventModel struct {
	bun.BaseModel `bun:"table:llm_request_events,alias:e"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Timestamp    time.Time `bun:"timestamp,notnull"`
	Provider     string    `bun:"provider,notnull"`
	Model        string    `bun:"model,notnull"`
	Purpose      string    `bun:"purpose,notnull"`
	InputTokens  int       `bun:"input_tokens,notnull"`
	OutputTokens int       `bun:"output_tokens,notnull"`
	LatencyMs    int64     `bun:"latency_ms,notnull"`
	Success      bool      `bun:"success,notnull"`
	ErrorMessage string    `bun:"error_message"`
	RequestBody  string    `bun:"request_body"`
	ResponseBody string    `bun:"response_body"`
}

func (m *llmEventModel) record() LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        int(m.ID),
		Timestamp: m.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     m.Provider,
			Model:        m.Model,
			Purpose:      m.Purpose,
			InputTokens:  m.InputTokens,
			OutputTokens: m.OutputTokens,
			LatencyMs:    m.LatencyMs,
			Success:      m.Success,
			ErrorMessage: m.ErrorMessage,
			RequestBody:  m.RequestBody,
			ResponseBody: m.ResponseBody,
		},
	}
}

type eventRepo struct {
	db  *bun.DB
	now func() time.Time
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	now := time.Now
	if r.now != nil {
		now = r.now
	}

	m := &llmEventModel{
		Timestamp:    now().UTC(),
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}
	if _, err := r.db.NewInsert().Model(m).Exec(ctx); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	var models []llmEventModel
	q := r.db.NewSelect().Model(&models).Order("id DESC")

	if opts.After > 0 {
		q = q.Where("id > ?", opts.After)
	}
	if opts.Before > 0 {
		q = q.Where("id < ?", opts.Before)
	}
	if !opts.From.IsZero() {
		q = q.Where("timestamp >= ?", opts.From.UTC())
	}
	if !opts.To.IsZero() {
		q = q.Where("timestamp <= ?", opts.To.UTC())
	}
	if opts.Purpose != "" {
		q = q.Where("purpose = ?", opts.Purpose)
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEventRecord, len(models))
	for i := range models {
		out[i] = models[i].record()
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	m := new(llmEventModel)
	err := r.db.NewSelect().Model(m).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	rec := m.record()
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	var stats []LLMUsageStats
	err := r.db.NewSelect().
		Model((*llmEventModel)(nil)).
		ColumnExpr("purpose").
		ColumnExpr("COUNT(*) AS calls").
		ColumnExpr("COALESCE(SUM(input_tokens), 0) AS input_tokens").
		ColumnExpr("COALESCE(SUM(output_tokens), 0) AS output_tokens").
		ColumnExpr("CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER) AS avg_latency_ms").
		Group("purpose").
		Order("purpose ASC").
		Scan(ctx, &stats)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}
	return stats, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var usage []LLMModelUsage
	err := r.db.NewSelect().
		Model((*llmEventModel)(nil)).
		ColumnExpr("model").
		ColumnExpr("COUNT(*) AS calls").
		ColumnExpr("COALESCE(SUM(input_tokens), 0) AS input_tokens").
		ColumnExpr("COALESCE(SUM(output_tokens), 0) AS output_tokens").
		Group("model").
		Order("model ASC").
		Scan(ctx, &usage)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}
	return usage, nil
}
