package server

import (
	"net/http"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/shortlist-tui/shortlist/internal/server/store/memstore"
)

type JSON = map[string]interface{}

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := memstore.NewMemoryStore()
		biff.AssertNil(Seed(s, 45))

		b := Build(s, "test")
		b.WithInterceptors(
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(b)

		a.Alternative("List first page", func(a *biff.A) {
			resp := api.Request("GET", "/items").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJson().(map[string]interface{})
			biff.AssertEqualJson(body["total"], 45)

			items := body["items"].([]interface{})
			biff.AssertEqual(len(items), 20)
			biff.AssertEqualJson(items[0], JSON{"id": 1, "value": "Item 1"})
			biff.AssertEqualJson(items[19], JSON{"id": 20, "value": "Item 20"})
		})

		a.Alternative("List with offset and limit", func(a *biff.A) {
			resp := api.Request("GET", "/items").
				WithQuery("offset", "40").
				WithQuery("limit", "20").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJson().(map[string]interface{})
			biff.AssertEqualJson(body["total"], 45)

			items := body["items"].([]interface{})
			biff.AssertEqual(len(items), 5)
			biff.AssertEqualJson(items[0], JSON{"id": 41, "value": "Item 41"})
		})

		a.Alternative("List with search filter", func(a *biff.A) {
			resp := api.Request("GET", "/items").
				WithQuery("search", "4").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJson().(map[string]interface{})
			biff.AssertEqualJson(body["total"], 10)

			items := body["items"].([]interface{})
			biff.AssertEqual(len(items), 10)
			biff.AssertEqualJson(items[0], JSON{"id": 4, "value": "Item 4"})
			biff.AssertEqualJson(items[1], JSON{"id": 14, "value": "Item 14"})
		})

		a.Alternative("List offset past end", func(a *biff.A) {
			resp := api.Request("GET", "/items").
				WithQuery("offset", "100").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJson().(map[string]interface{})
			biff.AssertEqualJson(body["total"], 45)
			biff.AssertEqualJson(body["items"], []JSON{})
		})

		a.Alternative("List with invalid offset", func(a *biff.A) {
			resp := api.Request("GET", "/items").
				WithQuery("offset", "potato").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
		})

		a.Alternative("Bulk fetch preserves request order", func(a *biff.A) {
			resp := api.Request("POST", "/items/bulk").
				WithBodyJson(JSON{
					"ids": []int64{3, 999, 1},
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"items": []JSON{
					{"id": 3, "value": "Item 3"},
					{"id": 1, "value": "Item 1"},
				},
			})
		})

		a.Alternative("Get state before any save", func(a *biff.A) {
			resp := api.Request("GET", "/get-state").
				WithHeader("X-Session", "session-a").
				Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})

		a.Alternative("Save state", func(a *biff.A) {
			resp := api.Request("POST", "/save-state").
				WithHeader("X-Session", "session-a").
				WithBodyJson(JSON{
					"selectedIds": []int64{2, 5},
					"sortedIds":   []int64{5, 2, 1},
					"offset":      20,
					"search":      "it",
					"scrollTop":   7,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"saved": true})

			a.Alternative("Get saved state", func(a *biff.A) {
				resp := api.Request("GET", "/get-state").
					WithHeader("X-Session", "session-a").
					Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"selectedIds": []int64{2, 5},
					"sortedIds":   []int64{5, 2, 1},
					"offset":      20,
					"search":      "it",
					"scrollTop":   7,
				})
			})

			a.Alternative("Partial save keeps other fields", func(a *biff.A) {
				resp := api.Request("POST", "/save-state").
					WithHeader("X-Session", "session-a").
					WithBodyJson(JSON{
						"scrollTop": 12,
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				resp = api.Request("GET", "/get-state").
					WithHeader("X-Session", "session-a").
					Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"selectedIds": []int64{2, 5},
					"sortedIds":   []int64{5, 2, 1},
					"offset":      20,
					"search":      "it",
					"scrollTop":   12,
				})
			})

			a.Alternative("Sessions are independent", func(a *biff.A) {
				resp := api.Request("GET", "/get-state").
					WithHeader("X-Session", "session-b").
					Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("List with saved ordering", func(a *biff.A) {
				resp := api.Request("GET", "/items").
					WithHeader("X-Session", "session-a").
					WithQuery("useSorted", "true").
					WithQuery("limit", "5").
					Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				body := resp.BodyJson().(map[string]interface{})
				biff.AssertEqualJson(body["total"], 45)
				biff.AssertEqualJson(body["items"], []JSON{
					{"id": 5, "value": "Item 5"},
					{"id": 2, "value": "Item 2"},
					{"id": 1, "value": "Item 1"},
					{"id": 3, "value": "Item 3"},
					{"id": 4, "value": "Item 4"},
				})
			})
		})

		a.Alternative("Save state without session header uses default", func(a *biff.A) {
			resp := api.Request("POST", "/save-state").
				WithBodyJson(JSON{
					"search": "abc",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			resp = api.Request("GET", "/get-state").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"selectedIds": []int64{},
				"sortedIds":   []int64{},
				"offset":      0,
				"search":      "abc",
				"scrollTop":   0,
			})
		})
	})
}
