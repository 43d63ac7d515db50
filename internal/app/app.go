package app

import (
	"context"
	"fmt"

	"github.com/shortlist-tui/shortlist/internal/config"
	"github.com/shortlist-tui/shortlist/internal/listapi"
	"github.com/shortlist-tui/shortlist/internal/liststate"
	"github.com/shortlist-tui/shortlist/internal/session"
	"github.com/shortlist-tui/shortlist/internal/syncer"
	"github.com/shortlist-tui/shortlist/internal/ui"
)

// Options configure the shortlist application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/shortlist/config.toml
	SessionPath string // empty uses default ~/.config/shortlist/session.toml
}

// Run boots the shortlist TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sess, err := session.Load(opts.SessionPath)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	client, err := listapi.NewClient(cfg.APIBind, sess.ID)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	sync := syncer.New(client)

	// Restore persisted state before the UI starts, then hydrate any
	// restored ids whose items are not yet cached so the first render
	// shows rows instead of gaps.
	state := liststate.New()
	missing := state.Rehydrate(sync.Load(ctx))
	if len(missing) > 0 {
		if items, err := client.FetchByIDs(ctx, missing); err == nil {
			state.Hydrate(items)
		}
	}

	err = ui.Run(ui.Options{
		Context: ctx,
		Fetcher: client,
		State:   state,
		Sync:    sync,
		Config:  &cfg,
	})

	// Let in-flight saves land before exit.
	sync.Flush()

	return err
}
