// Package memstore provides an in-memory implementation of the store
// interfaces, used by tests and by shortlistd when no data directory
// is configured. Data exists only for the lifetime of the process.
package memstore

import (
	"sync"

	"github.com/google/btree"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

// MemoryStore is an in-memory implementation of store.Store. Items
// live in a btree ordered by id so listing scans them in stable id
// order without re-sorting; state records live in a plain map.
type MemoryStore struct {
	items  *memoryItemStore
	states *memoryStateStore
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: &memoryItemStore{
			tree: btree.NewG(32, func(a, b listapi.Item) bool {
				return a.ID < b.ID
			}),
		},
		states: &memoryStateStore{
			records: make(map[string]listapi.StateRecord),
		},
	}
}

// Items returns the item store.
func (m *MemoryStore) Items() store.ItemStore { return m.items }

// States returns the state store.
func (m *MemoryStore) States() store.StateStore { return m.states }

// Close releases resources (no-op for the memory store).
func (m *MemoryStore) Close() error { return nil }

type memoryItemStore struct {
	mu   sync.RWMutex
	tree *btree.BTreeG[listapi.Item]
}

func (s *memoryItemStore) List(query store.ListQuery) ([]listapi.Item, int, error) {
	s.mu.RLock()
	matched := make([]listapi.Item, 0, s.tree.Len())
	s.tree.Ascend(func(item listapi.Item) bool {
		if store.Matches(item, query.Search) {
			matched = append(matched, item)
		}
		return true
	})
	s.mu.RUnlock()

	page, total := store.OrderAndPage(matched, query)
	return page, total, nil
}

func (s *memoryItemStore) GetByIDs(ids []int64) ([]listapi.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]listapi.Item, 0, len(ids))
	for _, id := range ids {
		if item, ok := s.tree.Get(listapi.Item{ID: id}); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memoryItemStore) Put(items []listapi.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.tree.ReplaceOrInsert(item)
	}
	return nil
}

func (s *memoryItemStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tree.Len(), nil
}

type memoryStateStore struct {
	mu      sync.RWMutex
	records map[string]listapi.StateRecord
}

func (s *memoryStateStore) Get(session string) (listapi.StateRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[session]
	if !ok {
		return listapi.StateRecord{}, false, nil
	}
	return cloneRecord(record), true, nil
}

func (s *memoryStateStore) Set(session string, record listapi.StateRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[session] = cloneRecord(record)
	return nil
}

func cloneRecord(record listapi.StateRecord) listapi.StateRecord {
	record.SelectedIDs = append([]int64{}, record.SelectedIDs...)
	record.SortedIDs = append([]int64{}, record.SortedIDs...)
	return record
}
