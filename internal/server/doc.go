// Package server exposes the item service HTTP API.
//
// # Endpoints
//
// GET /items returns a page of items. Query parameters: search
// (substring filter), offset, limit, and useSorted (when "true" the
// session's saved ordering is applied before paging). The response is
// a listapi.Page carrying the window of items plus the total count of
// matches.
//
// POST /items/bulk resolves a set of item ids to full items. Unknown
// ids are skipped rather than reported as errors, since clients
// routinely hold ids for items that have since been removed.
//
// GET /get-state and POST /save-state read and write the per-session
// UI state record. Saves are partial: only fields present in the
// request body are updated, so a client can persist a scroll position
// without resending its selection. Sessions are identified by the
// X-Session request header and fall back to a shared default when the
// header is absent.
//
// Handlers return typed values and errors; the PrettyErrorInterceptor
// shapes errors into JSON payloads with an appropriate status code.
package server
