// Package liststate holds the selection and ordering state for the
// shortlist UI.
//
// # Overview
//
// This package is the single owner of the client's mutable list
// state: the set of selected item ids, the
// active display ordering, the pagination offset, the settled search
// term, and the scroll position. All mutation goes through explicit
// transition functions (Toggle, Reorder, ReplaceOrdering, MergeAppend)
// so no other component holds uncoordinated copies of this data.
//
// # Invariants
//
//   - The ordering never contains duplicate ids.
//   - Reorder is a permutation: the multiset of ids is unchanged.
//   - Selection is a pure set: toggling twice is a no-op, and nothing
//     but Toggle ever mutates it. Filtering and paging never clear it.
//   - Rendering consumes Rows(), the ordering mapped through the item
//     cache with unhydrated ids filtered out. Raw ids never render.
//
// # Item cache
//
// Items enter the cache when any fetch returns them and are never
// evicted for the lifetime of the session. The cache is local to this
// State; a full restart discards it and rehydrates from the persisted
// record.
//
// # Concurrency
//
// State is not safe for concurrent use. It lives inside the Bubble Tea
// event loop, which is single-threaded; fetch results enter as
// messages, so no locking is needed here.
package liststate
