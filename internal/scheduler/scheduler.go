// Package scheduler wraps robfig/cron to run history retention pruning.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/yourusername/lexicode/internal/history"
)

// Engine manages the cron scheduler.
type Engine struct {
	cron      *cron.Cron
	store     *history.Store
	spec      string
	retention time.Duration
}

// New creates a cron-based Engine. cronSpec uses the 6-field form with
// seconds, e.g. "0 0 3 * * *" for 03:00 daily.
func New(store *history.Store, cronSpec string, retentionDays int) *Engine {
	return &Engine{
		cron:      cron.New(cron.WithSeconds()),
		store:     store,
		spec:      cronSpec,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start registers the prune job and begins the cron engine.
func (e *Engine) Start(ctx context.Context) error {
	if _, err := e.cron.AddFunc(e.spec, e.prune); err != nil {
		return fmt.Errorf("scheduler.Start: parse cron %q: %w", e.spec, err)
	}
	e.cron.Start()
	go func() {
		<-ctx.Done()
		e.cron.Stop()
	}()
	return nil
}

func (e *Engine) prune() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := e.store.Prune(ctx, e.retention)
	if err != nil {
		log.Printf("scheduler: prune history: %v", err)
		return
	}
	if n > 0 {
		log.Printf("scheduler: pruned %d history rows older than %s", n, e.retention)
	}
}
