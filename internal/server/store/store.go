// Package store defines the storage interfaces for the item service.
// It provides abstractions over item and UI-state persistence with an
// in-memory implementation for tests and development and a SQLite
// implementation for durable deployments.
package store

import (
	"sort"
	"strings"

	"github.com/shortlist-tui/shortlist/internal/listapi"
)

// ListQuery configures an item listing.
type ListQuery struct {
	// Search substring-filters items by value; empty matches all.
	Search string

	// Offset and Limit page the filtered result. Limit <= 0 means no
	// limit.
	Offset int
	Limit  int

	// SortedIDs, when non-empty, orders matching items by their
	// position in this slice first; matches not listed follow in id
	// order.
	SortedIDs []int64
}

// ItemStore manages item persistence.
type ItemStore interface {
	// List returns one page of items matching the query plus the total
	// count of the filtered set.
	List(query ListQuery) ([]listapi.Item, int, error)

	// GetByIDs retrieves specific items; unknown ids are skipped and
	// the result preserves the requested order.
	GetByIDs(ids []int64) ([]listapi.Item, error)

	// Put inserts or replaces items, used for seeding.
	Put(items []listapi.Item) error

	// Count returns the number of stored items.
	Count() (int, error)
}

// StateStore manages persisted UI state records, one per session.
type StateStore interface {
	// Get retrieves a session's record; ok is false when none exists.
	Get(session string) (record listapi.StateRecord, ok bool, err error)

	// Set stores a session's record, replacing any previous one.
	Set(session string, record listapi.StateRecord) error
}

// Store combines item and state storage and manages their lifecycle as
// a single unit.
type Store interface {
	Items() ItemStore
	States() StateStore
	Close() error
}

// Matches reports whether an item passes the substring filter.
func Matches(item listapi.Item, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(item.Value, search)
}

// OrderAndPage applies the shared ordering and paging semantics to a
// filtered, id-ordered item slice: saved-ordering ids first (in saved
// order), the rest in id order, then the offset/limit window. Both
// store implementations use it so list semantics cannot drift.
func OrderAndPage(items []listapi.Item, query ListQuery) ([]listapi.Item, int) {
	total := len(items)

	if len(query.SortedIDs) > 0 {
		position := make(map[int64]int, len(query.SortedIDs))
		for i, id := range query.SortedIDs {
			position[id] = i
		}
		sort.SliceStable(items, func(i, j int) bool {
			pi, iSaved := position[items[i].ID]
			pj, jSaved := position[items[j].ID]
			switch {
			case iSaved && jSaved:
				return pi < pj
			case iSaved:
				return true
			case jSaved:
				return false
			default:
				return items[i].ID < items[j].ID
			}
		})
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []listapi.Item{}, total
	}
	items = items[offset:]
	if query.Limit > 0 && len(items) > query.Limit {
		items = items[:query.Limit]
	}
	return items, total
}
