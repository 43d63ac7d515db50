package fetch

import (
	"context"

	"github.com/shortlist-tui/shortlist/internal/listapi"
)

// Result is the outcome of a guarded list query.
//
// A failed or superseded query resolves to an empty page instead of an
// error; Apply() tells the caller whether the page may be merged into
// state. Zero items from a stale or failed fetch mean "ignore me", not
// "the list is empty".
type Result struct {
	Page   listapi.Page
	Query  listapi.PageQuery
	Gen    uint64
	Stale  bool
	Failed bool
	Err    error
}

// Apply reports whether the result is current and successful and may
// therefore be applied to state.
func (r Result) Apply() bool {
	return !r.Stale && !r.Failed
}

// Loader issues list queries through a Guard so that only the most
// recently issued query's response survives.
type Loader struct {
	fetcher listapi.Fetcher
	guard   Guard
}

// NewLoader wraps fetcher with a fresh guard.
func NewLoader(fetcher listapi.Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Begin supersedes any in-flight query and reserves the next
// generation, returning the context the query must run under. It is
// synchronous, so calling it from the event loop pins generation order
// to issue order before the query's goroutine gets scheduled.
func (l *Loader) Begin(parent context.Context) (context.Context, uint64) {
	return l.guard.Next(parent)
}

// Load runs a query under a generation reserved by Begin and
// classifies the response. It blocks until the query finishes, so it
// is meant to run inside an asynchronous command.
func (l *Loader) Load(ctx context.Context, gen uint64, query listapi.PageQuery) Result {
	page, err := l.fetcher.FetchPage(ctx, query)
	result := Result{
		Page:  page,
		Query: query,
		Gen:   gen,
		Stale: !l.guard.Current(gen),
	}
	if err != nil {
		result.Page = listapi.Page{}
		result.Failed = true
		result.Err = err
	}
	return result
}

// LoadPage issues a query under a freshly reserved generation. The
// staleness it reports is a snapshot taken when the response returned;
// callers that buffer results (message queues) must re-check with
// Current before applying.
func (l *Loader) LoadPage(ctx context.Context, query listapi.PageQuery) Result {
	reqCtx, gen := l.guard.Next(ctx)
	return l.Load(reqCtx, gen, query)
}

// Current reports whether gen is still the latest issued query. State
// mutation driven by a Result must be gated on this at apply time, not
// on the Stale snapshot alone: a response can return while current and
// be superseded before it is processed.
func (l *Loader) Current(gen uint64) bool {
	return l.guard.Current(gen)
}

// Cancel aborts the in-flight list query, if any.
func (l *Loader) Cancel() {
	l.guard.CancelActive()
}
