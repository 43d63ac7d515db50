package listapi

// Item is a single list entry. Identity is ID; items are immutable
// once fetched.
type Item struct {
	ID    int64  `json:"id"`
	Value string `json:"value"`
}

// Page mirrors the payload returned by GET /items. Total is the
// server-side count for the query, not the page length.
type Page struct {
	Items []Item `json:"items"`
	Total int    `json:"total"`
}

// BulkRequest is the body of POST /items/bulk.
type BulkRequest struct {
	IDs []int64 `json:"ids"`
}

// BulkResponse mirrors the payload returned by POST /items/bulk.
// Unknown ids are skipped, so len(Items) may be less than the number
// of requested ids.
type BulkResponse struct {
	Items []Item `json:"items"`
}

// StateRecord is the persisted UI state, one logical record per
// session. It is the single source of truth on reload.
type StateRecord struct {
	SelectedIDs []int64 `json:"selectedIds"`
	SortedIDs   []int64 `json:"sortedIds"`
	Offset      int     `json:"offset"`
	Search      string  `json:"search"`
	ScrollTop   int     `json:"scrollTop"`
}

// DefaultState returns the record used when no remote state exists or
// the fetch fails: empty selection and ordering, offset 0, empty
// search, scroll 0.
func DefaultState() StateRecord {
	return StateRecord{
		SelectedIDs: []int64{},
		SortedIDs:   []int64{},
	}
}
