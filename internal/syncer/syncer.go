package syncer

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/shortlist-tui/shortlist/internal/listapi"
)

const saveTimeout = 5 * time.Second

// Syncer pushes the UI state record to the remote store after every
// meaningful mutation and pulls it back once at startup.
//
// Saves are fire-and-forget: the local mutation is already applied and
// stays authoritative for the session; the remote copy is best-effort
// for the next session. Failures are logged and dropped, never
// retried, and last-write-wins is acceptable because every save
// carries the full current record.
type Syncer struct {
	fetcher listapi.Fetcher
	logf    func(format string, args ...any)
	wg      sync.WaitGroup
}

// New builds a Syncer over the given remote store client.
func New(fetcher listapi.Fetcher) *Syncer {
	return &Syncer{
		fetcher: fetcher,
		logf:    log.Printf,
	}
}

// Save persists the record asynchronously and returns immediately.
func (s *Syncer) Save(record listapi.StateRecord) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := s.fetcher.SaveState(ctx, record); err != nil {
			s.logf("state save failed: %v", err)
		}
	}()
}

// Flush blocks until all in-flight saves have finished. Called on
// shutdown so the final state change gets its chance to land.
func (s *Syncer) Flush() {
	s.wg.Wait()
}

// Load fetches the persisted record once. A missing record or any
// failure substitutes empty defaults rather than failing the session;
// genuine failures are logged.
func (s *Syncer) Load(ctx context.Context) listapi.StateRecord {
	record, err := s.fetcher.FetchState(ctx)
	if err != nil {
		if !errors.Is(err, listapi.ErrNoState) {
			s.logf("state fetch failed, starting from defaults: %v", err)
		}
		return listapi.DefaultState()
	}
	if record.SelectedIDs == nil {
		record.SelectedIDs = []int64{}
	}
	if record.SortedIDs == nil {
		record.SortedIDs = []int64{}
	}
	return record
}
