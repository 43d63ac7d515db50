package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/fulldump/box"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

var ErrStateNotFound = errors.New("no saved state for session")

func getState(s store.Store) interface{} {
	return func(ctx context.Context) (*listapi.StateRecord, error) {

		session := sessionFrom(box.GetRequest(ctx))

		record, ok, err := s.States().Get(session)
		if err != nil {
			return nil, fmt.Errorf("read state: %w", err)
		}
		if !ok {
			return nil, ErrStateNotFound
		}

		return &record, nil
	}
}
