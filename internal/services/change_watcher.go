package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const DefaultRefreshInterval = time.Second

type RevisionReader interface {
	Revision(ctx context.Context) (int64, error)
}

// ChangeWatcher polls a store revision and calls its subscribers whenever the
// revision moves. The engine itself never polls.
type ChangeWatcher struct {
	source   RevisionReader
	interval time.Duration
	logger   zerolog.Logger

	mu          sync.Mutex
	subscribers []func(ChangeToken)
	last        ChangeToken
	primed      bool
}

func NewChangeWatcher(source RevisionReader, interval time.Duration, logger zerolog.Logger) *ChangeWatcher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &ChangeWatcher{
		source:   source,
		interval: interval,
		logger:   logger.With().Str("component", "change_watcher").Logger(),
	}
}

func (watcher *ChangeWatcher) Subscribe(callback func(ChangeToken)) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.subscribers = append(watcher.subscribers, callback)
}

// Run blocks until ctx is done. The first poll records the current revision
// without notifying anyone.
func (watcher *ChangeWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(watcher.interval)
	defer ticker.Stop()

	watcher.Poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			watcher.Poll(ctx)
		}
	}
}

func (watcher *ChangeWatcher) Poll(ctx context.Context) bool {
	revision, err := watcher.source.Revision(ctx)
	if err != nil {
		watcher.logger.Error().Err(err).Msg("poll revision failed")
		return false
	}

	current := ChangeToken(revision)
	watcher.mu.Lock()
	changed := watcher.primed && current != watcher.last
	watcher.primed = true
	watcher.last = current
	subscribers := append([]func(ChangeToken){}, watcher.subscribers...)
	watcher.mu.Unlock()

	if !changed {
		return false
	}
	watcher.logger.Debug().Int64("revision", revision).Msg("store changed")
	for _, callback := range subscribers {
		callback(current)
	}
	return true
}
