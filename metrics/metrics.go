package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EventsIngestedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "zilswap_events_ingested_total", Help: "Ledger events written"},
		[]string{"kind"},
	)
	DuplicateEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "zilswap_duplicate_events_total", Help: "Redelivered events skipped by dedup"},
		[]string{"kind"},
	)
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "zilswap_errors_total", Help: "Errors count"},
		[]string{"stage"},
	)
	BlockIngestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "zilswap_block_ingest_duration_seconds", Help: "Per-block ingest duration", Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5}},
	)
	LastBlock = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "zilswap_last_block", Help: "Last processed block height"},
	)
	PoolLiquidity = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "zilswap_pool_liquidity", Help: "Net pool liquidity (approximate, gauges are floats)"},
		[]string{"pool"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		EventsIngestedTotal,
		DuplicateEventsTotal,
		ErrorsTotal,
		BlockIngestDuration,
		LastBlock,
		PoolLiquidity,
	)
}

func AddIngested(kind string, n int) {
	EventsIngestedTotal.WithLabelValues(kind).Add(float64(n))
}

func AddDuplicates(kind string, n int) {
	DuplicateEventsTotal.WithLabelValues(kind).Add(float64(n))
}

func IncError(stage string) { ErrorsTotal.WithLabelValues(stage).Inc() }

func ObserveBlockIngest(seconds float64) { BlockIngestDuration.Observe(seconds) }

func SetLastBlock(height int64) {
	LastBlock.Set(float64(height))
}

func SetPoolLiquidity(pool string, amount float64) {
	PoolLiquidity.WithLabelValues(pool).Set(amount)
}
