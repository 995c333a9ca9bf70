package service

import (
	"context"
	"log"
	"time"

	"github.com/pavelromci25/nebula-server/internal/config"
)

type presenceStore interface {
	MarkStaleUsersOffline(ctx context.Context, cutoff time.Time) (int64, error)
}

// PresenceWorker periodically flips users offline when their last login is
// older than the online window. This is the one push-based sweep in the
// system; promotion expiry stays pull-based on catalog reads.
type PresenceWorker struct {
	store presenceStore
	now   func() time.Time
}

func NewPresenceWorker(store presenceStore) *PresenceWorker {
	return &PresenceWorker{store: store, now: time.Now}
}

func (w *PresenceWorker) Start(ctx context.Context) {
	log.Printf("[Presence Worker] Started, checking every %v", config.PresenceCheckInterval)

	ticker := time.NewTicker(config.PresenceCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Presence Worker] Stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *PresenceWorker) sweep(ctx context.Context) {
	cutoff := w.now().Add(-config.OnlineTimeout)
	n, err := w.store.MarkStaleUsersOffline(ctx, cutoff)
	if err != nil {
		log.Printf("[Presence Worker] Failed to sweep stale users: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[Presence Worker] Marked %d users offline", n)
	}
}
