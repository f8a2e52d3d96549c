package keywords

import (
	"context"
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/retrace/store"
)

// Refresher runs discovery passes in the background, gated on the
// dictionary staleness flag. Index builds mark the flag; the refresher
// clears it only after a pass succeeds, so a failed pass retries on the
// next schedule. Failures are logged, never surfaced to the caller.
type Refresher struct {
	discovery *Discovery
	flag      store.StalenessFlag
	pool      *ants.Pool
	logger    *slog.Logger
}

// NewRefresher creates a Refresher with a single-worker pool so at most
// one discovery pass runs at a time.
func NewRefresher(discovery *Discovery, flag store.StalenessFlag) (*Refresher, error) {
	pool, err := ants.NewPool(1, ants.WithNonblocking(true))
	if err != nil {
		return nil, err
	}
	return &Refresher{
		discovery: discovery,
		flag:      flag,
		pool:      pool,
		logger:    slog.Default().With("component", "keyword-refresher"),
	}, nil
}

// Release shuts the worker pool down.
func (r *Refresher) Release() {
	r.pool.Release()
}

// ScheduleIfStale submits a background discovery pass when the dictionary
// is flagged stale. Returns true if a pass was scheduled. A full pool
// means a pass is already running, which satisfies the schedule.
func (r *Refresher) ScheduleIfStale(ctx context.Context) (bool, error) {
	stale, err := r.flag.IsStale(ctx)
	if err != nil {
		return false, err
	}
	if !stale {
		return false, nil
	}

	err = r.pool.Submit(func() {
		bg := context.Background()
		if _, runErr := r.discovery.Run(bg); runErr != nil {
			r.logger.Error("discovery pass failed", "err", runErr)
			return
		}
		if clearErr := r.flag.Clear(bg); clearErr != nil {
			r.logger.Error("error clearing staleness flag", "err", clearErr)
		}
	})
	if err != nil {
		if err == ants.ErrPoolOverload {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// RunNow performs a synchronous discovery pass and clears the flag.
func (r *Refresher) RunNow(ctx context.Context) (int, error) {
	n, err := r.discovery.Run(ctx)
	if err != nil {
		return 0, err
	}
	if err := r.flag.Clear(ctx); err != nil {
		return n, err
	}
	return n, nil
}
