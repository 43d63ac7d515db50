package pager

// DefaultPageSize is the fixed list query page size.
const DefaultPageSize = 20

// DefaultThreshold is how many rows from the end of the list still
// count as "near bottom" (one row height).
const DefaultThreshold = 1

// Pager decides when the next page of the current query context should
// be requested. It tracks a single in-flight load; paging concurrency
// beyond that is the fetch guard's business.
type Pager struct {
	PageSize  int
	Threshold int

	inFlight bool
}

// New returns a Pager with the default page size and threshold.
func New() *Pager {
	return &Pager{PageSize: DefaultPageSize, Threshold: DefaultThreshold}
}

// NearBottom reports whether the viewport has scrolled close enough to
// the end of the loaded rows to warrant loading more:
// scrollTop + visibleRows >= totalRows - threshold.
func (p *Pager) NearBottom(scrollTop, visibleRows, totalRows int) bool {
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return scrollTop+visibleRows >= totalRows-threshold
}

// ShouldLoad reports whether a next-page request is warranted: the
// viewport is near the bottom, no load is in flight, and the server
// has more items (total < 0 means no response yet, so the first page
// is always allowed).
func (p *Pager) ShouldLoad(scrollTop, visibleRows, totalRows, offset, total int) bool {
	if p.inFlight {
		return false
	}
	if total >= 0 && offset >= total {
		return false
	}
	return p.NearBottom(scrollTop, visibleRows, totalRows)
}

// Begin marks a page load as in flight.
func (p *Pager) Begin() { p.inFlight = true }

// Finish clears the in-flight mark, whatever the load's outcome.
func (p *Pager) Finish() { p.inFlight = false }

// InFlight reports whether a page load is outstanding.
func (p *Pager) InFlight() bool { return p.inFlight }

// Limit returns the configured page size.
func (p *Pager) Limit() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}
