package liststate

import (
	"github.com/shortlist-tui/shortlist/internal/listapi"
)

// State is the authoritative local record of which item ids are
// selected and in what order the active list renders. It is a pure
// data structure: transitions mutate it, but all I/O (fetching,
// persisting) belongs to the caller.
type State struct {
	selected  map[int64]struct{}
	order     []int64
	items     map[int64]listapi.Item
	offset    int
	total     int
	search    string
	scrollTop int
}

// New returns an empty State. Callers normally overwrite it right away
// with Rehydrate.
func New() *State {
	return &State{
		selected: make(map[int64]struct{}),
		items:    make(map[int64]listapi.Item),
		total:    -1,
	}
}

// Toggle flips membership of id in the selection set. Toggling twice
// is a no-op. Selection is independent of ordering and filtering; it
// is never cleared implicitly.
func (s *State) Toggle(id int64) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return
	}
	s.selected[id] = struct{}{}
}

// Selected reports whether id is in the selection set.
func (s *State) Selected(id int64) bool {
	_, ok := s.selected[id]
	return ok
}

// SelectionCount returns the size of the selection set.
func (s *State) SelectionCount() int {
	return len(s.selected)
}

// Reorder removes the id at from and reinserts it at to, both indices
// into the currently active ordering. Out-of-range indices make the
// call a no-op; it reports whether the ordering changed.
func (s *State) Reorder(from, to int) bool {
	if from < 0 || from >= len(s.order) || to < 0 || to >= len(s.order) || from == to {
		return false
	}
	id := s.order[from]
	s.order = append(s.order[:from], s.order[from+1:]...)
	s.order = append(s.order[:to], append([]int64{id}, s.order[to:]...)...)
	return true
}

// ReplaceOrdering discards the previous ordering and installs ids as
// the new one, dropping duplicate ids. It returns the ids that lack a
// cached item so the caller can schedule a bulk-by-id hydration.
func (s *State) ReplaceOrdering(ids []int64) (missing []int64) {
	s.order = dedupe(ids)
	for _, id := range s.order {
		if _, ok := s.items[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// MergeAppend appends ids to the active ordering, dropping ids already
// present and preserving fetch order for the rest. It returns the
// number of newly appended ids, which is the unit the pagination
// offset advances by.
func (s *State) MergeAppend(ids []int64) (added int) {
	present := make(map[int64]struct{}, len(s.order))
	for _, id := range s.order {
		present[id] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; ok {
			continue
		}
		present[id] = struct{}{}
		s.order = append(s.order, id)
		added++
	}
	return added
}

// Hydrate adds items to the cache. The cache is never evicted during a
// session.
func (s *State) Hydrate(items []listapi.Item) {
	for _, item := range items {
		s.items[item.ID] = item
	}
}

// Item looks up a cached item by id.
func (s *State) Item(id int64) (listapi.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Rows derives the renderable list: the active ordering mapped through
// the item cache, with ids that are not yet hydrated filtered out.
// Raw unhydrated ids are never rendered.
func (s *State) Rows() []listapi.Item {
	rows := make([]listapi.Item, 0, len(s.order))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			rows = append(rows, item)
		}
	}
	return rows
}

// Order returns a copy of the active ordering.
func (s *State) Order() []int64 {
	return append([]int64(nil), s.order...)
}

// Len returns the length of the active ordering, hydrated or not.
func (s *State) Len() int {
	return len(s.order)
}

// Offset returns the count of items loaded so far for the current
// query context.
func (s *State) Offset() int { return s.offset }

// Advance moves the offset forward by n newly merged items.
func (s *State) Advance(n int) {
	if n > 0 {
		s.offset += n
	}
}

// ResetOffset rewinds the offset, used when the query context changes.
func (s *State) ResetOffset() { s.offset = 0 }

// Total returns the server-reported count for the current query
// context, or -1 when no response has been applied yet.
func (s *State) Total() int { return s.total }

// SetTotal records the server-reported count.
func (s *State) SetTotal(total int) { s.total = total }

// Exhausted reports whether every item for the current query context
// has been loaded.
func (s *State) Exhausted() bool {
	return s.total >= 0 && s.offset >= s.total
}

// Search returns the settled search term.
func (s *State) Search() string { return s.search }

// SetSearch records a settled search term. The caller resets offset
// and scroll and replaces the ordering; SetSearch itself only stores
// the term.
func (s *State) SetSearch(term string) { s.search = term }

// ScrollTop returns the persisted scroll position in rows.
func (s *State) ScrollTop() int { return s.scrollTop }

// SetScrollTop records the scroll position.
func (s *State) SetScrollTop(top int) {
	if top < 0 {
		top = 0
	}
	s.scrollTop = top
}

// Record converts the state into the persisted wire record. The
// returned slices are copies.
func (s *State) Record() listapi.StateRecord {
	selected := make([]int64, 0, len(s.selected))
	for _, id := range s.order {
		if _, ok := s.selected[id]; ok {
			selected = append(selected, id)
		}
	}
	// Selected ids that fell out of the active ordering still persist.
	inOrder := make(map[int64]struct{}, len(s.order))
	for _, id := range s.order {
		inOrder[id] = struct{}{}
	}
	for id := range s.selected {
		if _, ok := inOrder[id]; !ok {
			selected = append(selected, id)
		}
	}
	return listapi.StateRecord{
		SelectedIDs: selected,
		SortedIDs:   append([]int64{}, s.order...),
		Offset:      s.offset,
		Search:      s.search,
		ScrollTop:   s.scrollTop,
	}
}

// Rehydrate overwrites the state from a persisted record and returns
// the ordering ids that lack a cached item, so the caller can fetch
// them before first render.
func (s *State) Rehydrate(record listapi.StateRecord) (missing []int64) {
	s.selected = make(map[int64]struct{}, len(record.SelectedIDs))
	for _, id := range record.SelectedIDs {
		s.selected[id] = struct{}{}
	}
	s.offset = record.Offset
	if s.offset < 0 {
		s.offset = 0
	}
	s.search = record.Search
	s.SetScrollTop(record.ScrollTop)
	s.total = -1
	return s.ReplaceOrdering(record.SortedIDs)
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
