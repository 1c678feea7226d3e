package pagination

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedFetcher serves a fixed sequence of pages and counts calls.
type pagedFetcher struct {
	pages []Page[string]
	calls int
}

func (p *pagedFetcher) fetch(ctx context.Context, pageToken string) (Page[string], error) {
	if p.calls >= len(p.pages) {
		return Page[string]{}, fmt.Errorf("unexpected fetch with token %q", pageToken)
	}
	page := p.pages[p.calls]
	p.calls++
	return page, nil
}

func noSleep(ctx context.Context, d time.Duration) error {
	return nil
}

func TestCollect_AllPagesInOrder(t *testing.T) {
	f := &pagedFetcher{pages: []Page[string]{
		{Items: []string{"a1", "a2"}, NextPageToken: "t1"},
		{Items: []string{"b1"}, NextPageToken: "t2"},
		{Items: []string{"c1", "c2"}, NextPageToken: ""},
	}}

	items, err := collect(context.Background(), f.fetch, Options{}, noSleep)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1", "a2", "b1", "c1", "c2"}, items)
	assert.Equal(t, 3, f.calls, "expected exactly one fetch per page")
}

func TestCollect_EmptyPageIsNotTermination(t *testing.T) {
	f := &pagedFetcher{pages: []Page[string]{
		{Items: []string{"a"}, NextPageToken: "t1"},
		{Items: nil, NextPageToken: "t2"},
		{Items: []string{"b"}, NextPageToken: ""},
	}}

	items, err := collect(context.Background(), f.fetch, Options{}, noSleep)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.Equal(t, 3, f.calls, "empty page with a next token must not terminate the run")
}

func TestCollect_MaxItemsTruncates(t *testing.T) {
	f := &pagedFetcher{pages: []Page[string]{
		{Items: []string{"a", "b"}, NextPageToken: "t1"},
		{Items: []string{"c", "d"}, NextPageToken: "t2"},
		{Items: []string{"e"}, NextPageToken: ""},
	}}

	items, err := collect(context.Background(), f.fetch, Options{MaxItems: 3}, noSleep)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, items, "truncated, never reordered")
	assert.Equal(t, 2, f.calls, "no further pages after the cap is reached")
}

func TestCollect_ProgressPerPage(t *testing.T) {
	f := &pagedFetcher{pages: []Page[string]{
		{Items: []string{"a", "b"}, NextPageToken: "t1"},
		{Items: []string{"c"}, NextPageToken: ""},
	}}

	type call struct{ items, page int }
	var calls []call
	_, err := collect(context.Background(), f.fetch, Options{
		Progress: func(itemsSoFar, pageNumber int) {
			calls = append(calls, call{itemsSoFar, pageNumber})
		},
	}, noSleep)
	require.NoError(t, err)
	assert.Equal(t, []call{{2, 1}, {3, 2}}, calls)
}

func TestCollect_FetchErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	fetch := func(ctx context.Context, pageToken string) (Page[string], error) {
		calls++
		if calls == 2 {
			return Page[string]{}, boom
		}
		return Page[string]{Items: []string{"a"}, NextPageToken: "t"}, nil
	}

	items, err := collect(context.Background(), fetch, Options{}, noSleep)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, items, "partial accumulation is discarded on error")
}

func TestCollect_SafetyLimitStops(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context, pageToken string) (Page[string], error) {
		calls++
		// Misbehaving source: never returns an empty token.
		return Page[string]{Items: []string{"x"}, NextPageToken: "again"}, nil
	}

	items, err := collect(context.Background(), fetch, Options{}, noSleep)
	require.NoError(t, err)
	assert.Equal(t, MaxPages, calls)
	assert.Len(t, items, MaxPages)
}

func TestCollect_PausesEveryTenthPage(t *testing.T) {
	f := &pagedFetcher{}
	for i := 0; i < 25; i++ {
		token := fmt.Sprintf("t%d", i)
		if i == 24 {
			token = ""
		}
		f.pages = append(f.pages, Page[string]{Items: []string{"x"}, NextPageToken: token})
	}

	pauses := 0
	sleep := func(ctx context.Context, d time.Duration) error {
		pauses++
		assert.Equal(t, pauseFor, d)
		return nil
	}

	_, err := collect(context.Background(), f.fetch, Options{}, sleep)
	require.NoError(t, err)
	assert.Equal(t, 2, pauses, "pages 10 and 20 pause; the final page does not")
}

func TestCollect_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	fetch := func(ctx context.Context, pageToken string) (Page[string], error) {
		calls++
		cancel()
		return Page[string]{Items: []string{"x"}, NextPageToken: "t"}, nil
	}

	_, err := collect(ctx, fetch, Options{}, noSleep)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls, "cancellation is observed before the next page")
}

func TestSleepContext_CancelWakes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sleepContext(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
