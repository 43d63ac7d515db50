// Package app wires configuration, the session identity, the API
// client, state restoration, and the background synchronizer into the
// running TUI.
package app
