package server

import (
	"fmt"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

func bulkItems(s store.Store) interface{} {
	return func(input *listapi.BulkRequest) (*listapi.BulkResponse, error) {

		items, err := s.Items().GetByIDs(input.IDs)
		if err != nil {
			return nil, fmt.Errorf("fetch items by id: %w", err)
		}
		if items == nil {
			items = []listapi.Item{}
		}

		return &listapi.BulkResponse{
			Items: items,
		}, nil
	}
}
