package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

const perfStatsInterval = time.Second * 30

// InstrumentPerfStats records process health gauges on an interval
// until the context is cancelled.
func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(perfStatsInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				recordPerfStats(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func recordPerfStats(ctx context.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	memoryGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
	liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))

	// interval=0 reports usage since the previous call instead of
	// blocking the sampler for a whole measurement window
	usage, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		slog.WarnContext(ctx, "failed to read cpu usage", "err", err)
		return
	}
	if len(usage) > 0 {
		cpuGauge.Record(ctx, usage[0])
	}
}
