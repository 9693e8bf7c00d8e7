// Package jobs holds the scheduled maintenance work. Nothing here owns
// state: jobs recompute from the ledger and export, the ledger stays
// the single source of truth.
package jobs

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/log"
	"github.com/robfig/cron/v3"

	"zilswap-indexer/metrics"
	"zilswap-indexer/storage"
)

// StartLiquidityGauge schedules a periodic recomputation of per-pool
// liquidity and publishes it to the prometheus gauge. The gauge is a
// float approximation for dashboards only; exact values come from the
// query surface.
func StartLiquidityGauge(ctx context.Context, dbc *storage.DBClient, spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		refreshCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()

		rows, err := dbc.GetLiquidity(refreshCtx, -1, "")
		if err != nil {
			log.Error("jobs", "liquidity gauge err", err.Error())
			metrics.IncError("liquidity_gauge")
			return
		}
		for _, row := range rows {
			metrics.SetPoolLiquidity(row.Pool, row.Amount.InexactFloat64())
		}
		log.Debug("jobs", "liquidity gauge pools", len(rows))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	return c, nil
}
