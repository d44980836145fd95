package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval      = 5 * time.Second
	poolWaitWarningThreshold = 50 * time.Millisecond
)

// poolMonitor logs connection pool contention between two stats samples.
type poolMonitor struct {
	logger        *slog.Logger
	interval      time.Duration
	warnThreshold time.Duration
}

func newPoolMonitor(logger *slog.Logger) *poolMonitor {
	return &poolMonitor{
		logger:        logger,
		interval:      poolMonitorInterval,
		warnThreshold: poolWaitWarningThreshold,
	}
}

// run samples stats every interval until ctx is done.
func (m *poolMonitor) run(ctx context.Context, stats func() sql.DBStats) {
	if m.logger == nil || stats == nil {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe reports waits that happened between prev and cur, if any.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("wait_count", waits),
		slog.Duration("wait_duration", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
