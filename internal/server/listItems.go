package server

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fulldump/box"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

const defaultListLimit = 20

func listItems(s store.Store) interface{} {
	return func(ctx context.Context) (*listapi.Page, error) {

		r := box.GetRequest(ctx)
		params := r.URL.Query()

		query := store.ListQuery{
			Search: params.Get("search"),
			Limit:  defaultListLimit,
		}

		if raw := params.Get("offset"); raw != "" {
			offset, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid offset %q", raw)
			}
			query.Offset = offset
		}

		if raw := params.Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid limit %q", raw)
			}
			if limit > 0 {
				query.Limit = limit
			}
		}

		if params.Get("useSorted") == "true" {
			record, ok, err := s.States().Get(sessionFrom(r))
			if err != nil {
				return nil, fmt.Errorf("read saved ordering: %w", err)
			}
			if ok {
				query.SortedIDs = record.SortedIDs
			}
		}

		items, total, err := s.Items().List(query)
		if err != nil {
			return nil, fmt.Errorf("list items: %w", err)
		}

		return &listapi.Page{
			Items: items,
			Total: total,
		}, nil
	}
}
