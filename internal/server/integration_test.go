package server

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/fulldump/box"

	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/server/store/memstore"
	"github.com/shortlist-tui/shortlist/internal/syncer"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	s := memstore.NewMemoryStore()
	if err := Seed(s, 45); err != nil {
		t.Fatalf("seed: %v", err)
	}

	b := Build(s, "test")
	b.WithInterceptors(
		RecoverFromPanic,
		PrettyErrorInterceptor,
	)

	srv := httptest.NewServer(box.Box2Http(b))
	t.Cleanup(srv.Close)
	return srv
}

func TestClientAgainstServer(t *testing.T) {
	srv := startTestServer(t)

	client, err := listapi.NewClient(srv.URL, "session-x")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	ctx := context.Background()

	page, err := client.FetchPage(ctx, listapi.PageQuery{Limit: 20})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}
	if page.Total != 45 {
		t.Fatalf("total = %d, want 45", page.Total)
	}
	if len(page.Items) != 20 || page.Items[0].Value != "Item 1" {
		t.Fatalf("unexpected first page: %d items", len(page.Items))
	}

	items, err := client.FetchByIDs(ctx, []int64{7, 3})
	if err != nil {
		t.Fatalf("FetchByIDs: %v", err)
	}
	if len(items) != 2 || items[0].ID != 7 || items[1].ID != 3 {
		t.Fatalf("bulk items = %v, want ids [7 3]", items)
	}

	if _, err := client.FetchState(ctx); !errors.Is(err, listapi.ErrNoState) {
		t.Fatalf("FetchState before save = %v, want ErrNoState", err)
	}

	record := listapi.StateRecord{
		SelectedIDs: []int64{3},
		SortedIDs:   []int64{3, 7, 1},
		Offset:      20,
		Search:      "",
		ScrollTop:   2,
	}
	if err := client.SaveState(ctx, record); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got, err := client.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState after save: %v", err)
	}
	if len(got.SortedIDs) != 3 || got.SortedIDs[0] != 3 {
		t.Fatalf("restored SortedIDs = %v, want [3 7 1]", got.SortedIDs)
	}
	if got.ScrollTop != 2 || got.Offset != 20 {
		t.Fatalf("restored scrollTop/offset = %d/%d, want 2/20", got.ScrollTop, got.Offset)
	}

	// Saved ordering leads the unfiltered list.
	page, err = client.FetchPage(ctx, listapi.PageQuery{Limit: 5, UseSorted: true})
	if err != nil {
		t.Fatalf("FetchPage with sorted: %v", err)
	}
	wantLead := []int64{3, 7, 1, 2, 4}
	for i, id := range wantLead {
		if page.Items[i].ID != id {
			t.Fatalf("sorted page ids = %v at %d, want %v", page.Items[i].ID, i, wantLead)
		}
	}
}

func TestSyncerAgainstServer(t *testing.T) {
	srv := startTestServer(t)

	client, err := listapi.NewClient(srv.URL, "session-y")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	sync := syncer.New(client)

	// No saved state yet: load degrades to empty defaults.
	record := sync.Load(context.Background())
	if len(record.SelectedIDs) != 0 || record.Search != "" {
		t.Fatalf("fresh load = %+v, want defaults", record)
	}

	sync.Save(listapi.StateRecord{
		SelectedIDs: []int64{1, 2},
		SortedIDs:   []int64{2, 1},
		Offset:      2,
	})
	sync.Flush()

	record = sync.Load(context.Background())
	if len(record.SelectedIDs) != 2 || record.Offset != 2 {
		t.Fatalf("reloaded record = %+v, want saved fields back", record)
	}
}
