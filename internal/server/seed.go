package server

import (
	"fmt"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

// DefaultSeedCount is how many items an empty store is populated with.
const DefaultSeedCount = 100

// Seed populates an empty store with numbered items. Stores that
// already hold items are left alone so restarts do not duplicate data.
func Seed(s store.Store, count int) error {

	existing, err := s.Items().Count()
	if err != nil {
		return fmt.Errorf("count items: %w", err)
	}
	if existing > 0 {
		return nil
	}

	items := make([]listapi.Item, 0, count)
	for i := 1; i <= count; i++ {
		items = append(items, listapi.Item{
			ID:    int64(i),
			Value: fmt.Sprintf("Item %d", i),
		})
	}

	if err := s.Items().Put(items); err != nil {
		return fmt.Errorf("seed items: %w", err)
	}

	return nil
}
