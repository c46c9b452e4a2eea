package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedEvents(t *testing.T, repo EventRepo) {
	t.Helper()
	ctx := context.Background()
	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "paper-shape", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "paper-shape", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "guess-paper", InputTokens: 80, OutputTokens: 900, LatencyMs: 1000, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "guess-paper", LatencyMs: 50, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}
}

func TestEventRepo_QueryNewestFirst(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, 4, all[0].ID)
	assert.Equal(t, "rate limited", all[0].ErrorMessage)
	assert.False(t, all[0].Success)

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	shaped, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "paper-shape"})
	require.NoError(t, err)
	assert.Len(t, shaped, 2)

	window, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 1, Before: 4})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, 3, window[0].ID)
	assert.Equal(t, 2, window[1].ID)
}

func TestEventRepo_TimeFilter(t *testing.T) {
	s := openTestStore(t)
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := &eventRepo{db: s.db, now: func() time.Time { return clock }}
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "early"}))
	clock = clock.Add(time.Hour)
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "late"}))

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{From: clock.Add(-time.Minute)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "late", got[0].Purpose)
	assert.True(t, got[0].Timestamp.Equal(clock))
}

func TestEventRepo_GetLLMEvent(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku-4-5-20251001",
		Purpose:      "paper-shape",
		Success:      true,
		RequestBody:  "[user]\nTitle: Algebra Quiz",
		ResponseBody: `{"testTitle":"Algebra Quiz"}`,
	}))

	e, err := repo.GetLLMEvent(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, "[user]\nTitle: Algebra Quiz", e.RequestBody)
	assert.Equal(t, `{"testTitle":"Algebra Quiz"}`, e.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_UsageAggregates(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	seedEvents(t, repo)
	ctx := context.Background()

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)

	assert.Equal(t, LLMUsageStats{Purpose: "guess-paper", Calls: 2, InputTokens: 80, OutputTokens: 900, AvgLatencyMs: 525}, byPurpose[0])
	assert.Equal(t, LLMUsageStats{Purpose: "paper-shape", Calls: 2, InputTokens: 400, OutputTokens: 200, AvgLatencyMs: 300}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, LLMModelUsage{Model: "gemini-2.5-flash", Calls: 2, InputTokens: 80, OutputTokens: 900}, byModel[0])
	assert.Equal(t, LLMModelUsage{Model: "gpt-4o-mini", Calls: 2, InputTokens: 400, OutputTokens: 200}, byModel[1])
}

func TestEventRepo_EmptyAggregates(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	stats, err := repo.LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
