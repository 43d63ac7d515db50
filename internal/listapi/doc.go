// Package listapi provides an HTTP client for the item service API.
//
// # Overview
//
// This package defines the API client used by the TUI to talk to the
// item service. It handles HTTP communication, JSON serialization, and
// the type-safe representation of items, pages, and the persisted UI
// state record.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the item service API schema
//
// # API Endpoints
//
// The client supports four endpoints:
//
//   - GET /items: One page of items, substring-filtered and paged
//   - POST /items/bulk: Specific items by id (ordering hydration)
//   - GET /get-state: Persisted UI state record for the session
//   - POST /save-state: Persist the UI state record
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent headers
//   - Carry the session id in the X-Session header when configured
//   - Have a 5-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// A missing state record is reported as ErrNoState so callers can
// substitute defaults without treating it as a failure. All other
// errors (network, HTTP status >= 400, malformed JSON) are plain
// errors; the caller decides how to degrade. The client itself never
// retries.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying
// http.Client handles connection pooling internally.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (the state layer owns the item cache)
//   - No retries (every failure degrades to defaults upstream)
//   - No cancellation bookkeeping (the fetch guard owns generations)
package listapi
