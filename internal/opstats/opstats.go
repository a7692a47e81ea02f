// Package opstats is an ambient operational signal: a background goroutine
// that periodically samples system-wide memory usage and logs it alongside
// keyspace size. It is purely informational and adds nothing to the wire protocol.
package opstats

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ridgewood-io/respkv/internal/applog"
)

// DefaultInterval is how often the reporter samples and logs.
const DefaultInterval = time.Minute

// Reporter periodically logs system-wide memory usage (used and total; not
// this process's own footprint) alongside the current keyspace size.
type Reporter struct {
	log      *applog.Logger
	interval time.Duration
	keyCount func() int
}

// New builds a Reporter. keyCount is polled on each tick to report keyspace
// size; interval <= 0 uses DefaultInterval.
func New(log *applog.Logger, interval time.Duration, keyCount func() int) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{log: log, interval: interval, keyCount: keyCount}
}

// Run samples and logs on a fixed interval until ctx is cancelled. Intended
// to be run in its own goroutine.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sample()
		}
	}
}

func (r *Reporter) sample() {
	vm, err := mem.VirtualMemory()
	if err != nil {
		r.log.Warn("opstats: failed to sample system memory: %v", err)
		return
	}
	keys := 0
	if r.keyCount != nil {
		keys = r.keyCount()
	}
	r.log.Info("opstats: keys=%d system_mem_used=%d system_mem_total=%d", keys, vm.Used, vm.Total)
}
