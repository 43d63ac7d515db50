// Package ui renders the shortlist terminal interface.
//
// # Input pipeline
//
// Keystrokes in the search box restart a debounce window; only the
// settled value commits, resetting pagination and scroll before the
// fresh page request goes out. Cursor movement follows the scroll
// window and asks the pager whether the next page is warranted, with a
// throttle limiting request bursts during held-key scrolling.
//
// # Page results
//
// Page loads run through a fetch.Loader, so responses for superseded
// queries resolve as non-applicable and never touch the list. A fresh
// result (offset zero) replaces the active ordering; an append result
// merges, skipping ids already present, and advances the offset by the
// count actually added.
//
// # Persistence
//
// Every selection, ordering, scroll, and search mutation snapshots the
// state record and hands it to the background synchronizer. The UI
// never blocks on saves and ignores their failures.
package ui
