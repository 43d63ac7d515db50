// Package config handles loading the shortlist client configuration.
//
// # Overview
//
// This package reads the client's TOML configuration to discover the
// item service endpoint and the list tuning knobs. All fields are
// optional; a missing file yields working defaults so the client runs
// out of the box against a local shortlistd.
//
// # Default Values
//
//   - Config file: ~/.config/shortlist/config.toml
//   - API endpoint: 127.0.0.1:7607
//   - Page size: 20 items per list query
//   - Debounce window: 200 ms of keyboard silence before a search fires
//   - Throttle interval: at most one scroll-driven page check per 200 ms
//
// # TOML Format
//
// Example config.toml:
//
//	api_bind = "127.0.0.1:7607"
//	page_size = 20
//	debounce_ms = 200
//	throttle_ms = 200
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files,
// and TOML parse errors. A file that simply does not exist is NOT an
// error - defaults are used instead. Zero or negative numeric values
// also fall back to defaults.
//
// The config package is read-only and stateless: it loads once at
// startup and returns an immutable Config struct.
package config
