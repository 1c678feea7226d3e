package pagination

import (
	"context"
	"fmt"
	"time"

	"casetree/pkg/logging"
)

const (
	// MaxPages is the hard safety limit on pages fetched in one Collect
	// run. A source that never returns an empty next-page token would
	// otherwise loop forever; hitting the limit truncates the result and
	// logs a warning.
	MaxPages = 1000

	// pauseEvery and pauseFor pace very large pulls: after every 10th
	// page Collect sleeps briefly before requesting the next page. The
	// pause never changes the result, only its pacing.
	pauseEvery = 10
	pauseFor   = 100 * time.Millisecond
)

// Page is one batch of a cursor-paginated collection. NextPageToken is an
// opaque, source-issued string; an empty token is the sole termination
// signal. Item counts never decide termination: empty-but-not-final pages
// are valid.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// FetchFunc retrieves one page. pageToken is empty for the first call and
// the previous page's NextPageToken afterwards.
type FetchFunc[T any] func(ctx context.Context, pageToken string) (Page[T], error)

// Options tunes one Collect run.
type Options struct {
	// MaxItems, when positive, truncates the accumulated items (never
	// reorders them) once reached and stops fetching further pages.
	MaxItems int

	// Progress, when set, is invoked once per completed page, after its
	// items have been appended.
	Progress func(itemsSoFar, pageNumber int)
}

// Collect drives fetch until the source reports exhaustion (empty next
// token), MaxItems is reached, or the MaxPages safety limit trips. Items
// are returned in source order, each exactly once. A fetch error
// propagates immediately and discards everything accumulated so far.
// Cancellation is checked once per page.
func Collect[T any](ctx context.Context, fetch FetchFunc[T], opts Options) ([]T, error) {
	return collect(ctx, fetch, opts, sleepContext)
}

func collect[T any](ctx context.Context, fetch FetchFunc[T], opts Options, sleep func(context.Context, time.Duration) error) ([]T, error) {
	var items []T
	token := ""

	for pageNum := 1; ; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := fetch(ctx, token)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", pageNum, err)
		}

		items = append(items, page.Items...)
		truncated := opts.MaxItems > 0 && len(items) >= opts.MaxItems
		if truncated {
			items = items[:opts.MaxItems]
		}

		if opts.Progress != nil {
			opts.Progress(len(items), pageNum)
		}

		if truncated || page.NextPageToken == "" {
			return items, nil
		}

		if pageNum >= MaxPages {
			logging.Warn("Paginator", "Stopped after %d pages with more data available; results are truncated", MaxPages)
			return items, nil
		}

		if pageNum%pauseEvery == 0 {
			if err := sleep(ctx, pauseFor); err != nil {
				return nil, err
			}
		}
	}
}

// sleepContext sleeps for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
