package listapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotPageQuery url.Values
	var gotBulkBody BulkRequest
	var gotSavedState StateRecord
	var gotSession string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = r.Header.Get(SessionHeader)
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/items":
			gotPageQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Page{Items: []Item{{ID: 5, Value: "Item 5"}}, Total: 45})
		case "/items/bulk":
			_ = json.NewDecoder(r.Body).Decode(&gotBulkBody)
			_ = json.NewEncoder(w).Encode(BulkResponse{Items: []Item{{ID: 7, Value: "Item 7"}}})
		case "/get-state":
			_ = json.NewEncoder(w).Encode(StateRecord{SortedIDs: []int64{3, 1}, Offset: 20, Search: "it", ScrollTop: 4})
		case "/save-state":
			_ = json.NewDecoder(r.Body).Decode(&gotSavedState)
			_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "session-1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.FetchPage(ctx, PageQuery{Search: "5", Offset: 20, Limit: 20, UseSorted: true})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if page.Total != 45 || len(page.Items) != 1 || page.Items[0].ID != 5 {
		t.Fatalf("FetchPage payload = %#v, want total=45 one item id=5", page)
	}
	if gotPageQuery.Get("search") != "5" || gotPageQuery.Get("offset") != "20" ||
		gotPageQuery.Get("limit") != "20" || gotPageQuery.Get("useSorted") != "true" {
		t.Fatalf("page query = %v, want search/offset/limit/useSorted encoded", gotPageQuery)
	}
	if gotSession != "session-1" {
		t.Fatalf("session header = %q, want session-1", gotSession)
	}

	items, err := c.FetchByIDs(ctx, []int64{7, 9})
	if err != nil {
		t.Fatalf("FetchByIDs returned error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 7 {
		t.Fatalf("FetchByIDs items = %#v, want one item id=7", items)
	}
	if len(gotBulkBody.IDs) != 2 || gotBulkBody.IDs[0] != 7 || gotBulkBody.IDs[1] != 9 {
		t.Fatalf("bulk body = %#v, want ids [7 9]", gotBulkBody)
	}

	record, err := c.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState returned error: %v", err)
	}
	if record.Offset != 20 || record.Search != "it" || len(record.SortedIDs) != 2 {
		t.Fatalf("FetchState record = %#v", record)
	}

	saved := DefaultState()
	saved.SelectedIDs = []int64{2}
	saved.ScrollTop = 9
	if err := c.SaveState(ctx, saved); err != nil {
		t.Fatalf("SaveState returned error: %v", err)
	}
	if len(gotSavedState.SelectedIDs) != 1 || gotSavedState.SelectedIDs[0] != 2 || gotSavedState.ScrollTop != 9 {
		t.Fatalf("saved state = %#v, want selected [2] scrollTop 9", gotSavedState)
	}
}

func TestClient_FetchPage_SearchTermSentVerbatim(t *testing.T) {
	t.Parallel()

	var gotSearch string
	var hasSearch bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hasSearch = r.URL.Query()["search"]
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Page{})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	if _, err := c.FetchPage(context.Background(), PageQuery{Search: " 5 "}); err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if gotSearch != " 5 " {
		t.Fatalf("search param = %q, want %q untouched", gotSearch, " 5 ")
	}

	if _, err := c.FetchPage(context.Background(), PageQuery{Search: ""}); err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if hasSearch {
		t.Fatal("empty search term should omit the search param")
	}
}

func TestClient_FetchByIDs_EmptySkipsRequest(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	items, err := c.FetchByIDs(context.Background(), nil)
	if err != nil || items != nil {
		t.Fatalf("FetchByIDs(nil) = %v, %v, want nil, nil", items, err)
	}
	if called {
		t.Fatal("empty bulk fetch should not hit the network")
	}
}

func TestClient_FetchState_MissingRecordIsErrNoState(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchState(context.Background())
	if !errors.Is(err, ErrNoState) {
		t.Fatalf("FetchState error = %v, want ErrNoState", err)
	}
}

func TestClient_ServerErrorIsReported(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, "")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchPage(context.Background(), PageQuery{}); err == nil {
		t.Fatal("FetchPage should surface HTTP 500 as an error")
	}
}
