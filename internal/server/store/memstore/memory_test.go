package memstore

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store"
)

func seed(t *testing.T, s store.Store, n int) {
	t.Helper()
	items := make([]listapi.Item, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, listapi.Item{ID: int64(i), Value: fmt.Sprintf("Item %d", i)})
	}
	if err := s.Items().Put(items); err != nil {
		t.Fatalf("Put: %v", err)
	}
}

func TestList_PagesInIDOrder(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s, 45)

	page, total, err := s.Items().List(store.ListQuery{Offset: 20, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 45 {
		t.Fatalf("total = %d, want 45", total)
	}
	if len(page) != 20 || page[0].ID != 21 || page[19].ID != 40 {
		t.Fatalf("page = ids %d..%d len %d, want 21..40 len 20", page[0].ID, page[len(page)-1].ID, len(page))
	}

	// Last partial page.
	page, total, err = s.Items().List(store.ListQuery{Offset: 40, Limit: 20})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 45 || len(page) != 5 || page[4].ID != 45 {
		t.Fatalf("last page = %d items total %d, want 5 items total 45", len(page), total)
	}
}

func TestList_SubstringFilter(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s, 100)

	// "5" matches Item 5, 15, 25, ..., 95 plus 50..59: 19 items.
	page, total, err := s.Items().List(store.ListQuery{Search: "5", Limit: 100})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 19 || len(page) != 19 {
		t.Fatalf("filtered total = %d len %d, want 19", total, len(page))
	}
	if page[0].ID != 5 || page[1].ID != 15 {
		t.Fatalf("filtered page starts %d, %d, want 5, 15", page[0].ID, page[1].ID)
	}
}

func TestList_SavedOrderingApplied(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s, 5)

	page, _, err := s.Items().List(store.ListQuery{SortedIDs: []int64{3, 1}, Limit: 5})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := make([]int64, 0, len(page))
	for _, item := range page {
		got = append(got, item.ID)
	}
	if !reflect.DeepEqual(got, []int64{3, 1, 2, 4, 5}) {
		t.Fatalf("ordered page = %v, want [3 1 2 4 5]", got)
	}
}

func TestGetByIDs_SkipsUnknownPreservesOrder(t *testing.T) {
	s := NewMemoryStore()
	seed(t, s, 10)

	items, err := s.Items().GetByIDs([]int64{7, 99, 2})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(items) != 2 || items[0].ID != 7 || items[1].ID != 2 {
		t.Fatalf("GetByIDs = %#v, want items 7 then 2", items)
	}
}

func TestStates_RoundTripAndIsolation(t *testing.T) {
	s := NewMemoryStore()

	if _, ok, err := s.States().Get("a"); err != nil || ok {
		t.Fatalf("Get on empty store = ok %v err %v, want absent", ok, err)
	}

	record := listapi.StateRecord{
		SelectedIDs: []int64{2, 4},
		SortedIDs:   []int64{4, 2, 1},
		Offset:      20,
		Search:      "it",
		ScrollTop:   3,
	}
	if err := s.States().Set("a", record); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, ok, err := s.States().Get("a")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v err %v, want present", ok, err)
	}
	if !reflect.DeepEqual(got, record) {
		t.Fatalf("Get = %#v, want %#v", got, record)
	}

	// Mutating the returned record must not affect the stored one.
	got.SortedIDs[0] = 99
	again, _, _ := s.States().Get("a")
	if again.SortedIDs[0] != 4 {
		t.Fatal("stored record must be isolated from caller mutation")
	}

	// Sessions are independent.
	if _, ok, _ := s.States().Get("b"); ok {
		t.Fatal("session b must not see session a's record")
	}
}
