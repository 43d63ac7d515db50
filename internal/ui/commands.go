package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shortlist-tui/shortlist/internal/fetch"
	"github.com/shortlist-tui/shortlist/internal/listapi"
)

// spinnerDelay is how long a page load must run before the spinner
// appears. Fast responses never flash it.
const spinnerDelay = 800 * time.Millisecond

// Messages

type debounceMsg struct{ seq int }

type pageMsg fetch.Result

type hydrateMsg struct {
	items []listapi.Item
	err   error
}

type spinnerShowMsg struct{ seq int }

type scrollSettleMsg struct{ seq int }

// Commands

func debounceCmd(wait time.Duration, seq int) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func spinnerDelayCmd(seq int) tea.Cmd {
	return tea.Tick(spinnerDelay, func(time.Time) tea.Msg {
		return spinnerShowMsg{seq: seq}
	})
}

func scrollSettleCmd(wait time.Duration, seq int) tea.Cmd {
	return tea.Tick(wait, func(time.Time) tea.Msg {
		return scrollSettleMsg{seq: seq}
	})
}

func loadPageCmd(ctx context.Context, loader *fetch.Loader, gen uint64, query listapi.PageQuery) tea.Cmd {
	return func() tea.Msg {
		return pageMsg(loader.Load(ctx, gen, query))
	}
}

func hydrateCmd(ctx context.Context, fetcher listapi.Fetcher, ids []int64) tea.Cmd {
	return func() tea.Msg {
		items, err := fetcher.FetchByIDs(ctx, ids)
		return hydrateMsg{items: items, err: err}
	}
}
