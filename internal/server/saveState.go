package server

import (
	"context"
	"fmt"

	"github.com/fulldump/box"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

// statePatch carries a partial state update. Absent fields leave the
// stored value untouched, so clients may persist a single field
// without clobbering the rest of the record.
type statePatch struct {
	SelectedIDs *[]int64 `json:"selectedIds"`
	SortedIDs   *[]int64 `json:"sortedIds"`
	Offset      *int     `json:"offset"`
	Search      *string  `json:"search"`
	ScrollTop   *int     `json:"scrollTop"`
}

type saveStateResponse struct {
	Saved bool `json:"saved"`
}

func saveState(s store.Store) interface{} {
	return func(ctx context.Context, input *statePatch) (*saveStateResponse, error) {

		session := sessionFrom(box.GetRequest(ctx))

		record, ok, err := s.States().Get(session)
		if err != nil {
			return nil, fmt.Errorf("read state: %w", err)
		}
		if !ok {
			record = listapi.DefaultState()
		}

		if input.SelectedIDs != nil {
			record.SelectedIDs = *input.SelectedIDs
		}
		if input.SortedIDs != nil {
			record.SortedIDs = *input.SortedIDs
		}
		if input.Offset != nil {
			record.Offset = *input.Offset
		}
		if input.Search != nil {
			record.Search = *input.Search
		}
		if input.ScrollTop != nil {
			record.ScrollTop = *input.ScrollTop
		}

		if record.SelectedIDs == nil {
			record.SelectedIDs = []int64{}
		}
		if record.SortedIDs == nil {
			record.SortedIDs = []int64{}
		}

		if err := s.States().Set(session, record); err != nil {
			return nil, fmt.Errorf("write state: %w", err)
		}

		return &saveStateResponse{Saved: true}, nil
	}
}
