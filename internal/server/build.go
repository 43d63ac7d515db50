package server

import (
	"net/http"

	"github.com/fulldump/box"

	"github.com/shortlist-tui/shortlist/internal/server/store"
)

// DefaultSession is the record key used when a request carries no
// session header, which keeps single-user development setups working
// without any client configuration.
const DefaultSession = "default"

// Build assembles the item service API.
func Build(s store.Store, version string) *box.B {

	b := box.NewBox()

	b.Resource("/items").
		WithInterceptors(box.SetResponseHeader("Content-Type", "application/json")).
		WithActions(
			box.Get(listItems(s)),
		)

	b.Resource("/items/bulk").
		WithInterceptors(box.SetResponseHeader("Content-Type", "application/json")).
		WithActions(
			box.Post(bulkItems(s)),
		)

	b.Resource("/get-state").
		WithInterceptors(box.SetResponseHeader("Content-Type", "application/json")).
		WithActions(
			box.Get(getState(s)),
		)

	b.Resource("/save-state").
		WithInterceptors(box.SetResponseHeader("Content-Type", "application/json")).
		WithActions(
			box.Post(saveState(s)),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	return b
}

// sessionFrom extracts the session key from the request.
func sessionFrom(r *http.Request) string {
	if session := r.Header.Get("X-Session"); session != "" {
		return session
	}
	return DefaultSession
}
