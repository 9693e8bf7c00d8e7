package aggregate

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"zilswap-indexer/models"
)

// LiquidityAccumulator maintains per-pool liquidity incrementally. It is
// plain caller-held state, not a process-wide singleton: feed it the
// ledger records above its watermark and it converges to the same totals
// as a full SumLiquidity over everything it has seen.
//
// The watermark is the highest fully applied block height. Callers must
// feed whole blocks (all records of a height at once, in one Apply or
// several), since a later Apply refuses records at or below the
// watermark.
type LiquidityAccumulator struct {
	totals    map[string]decimal.Decimal
	watermark int64
}

func NewLiquidityAccumulator() *LiquidityAccumulator {
	return &LiquidityAccumulator{
		totals:    make(map[string]decimal.Decimal),
		watermark: -1,
	}
}

// Watermark is the highest block height folded in so far, -1 when empty.
func (a *LiquidityAccumulator) Watermark() int64 {
	return a.watermark
}

// Apply folds changes above the current watermark into the totals and
// advances the watermark to the highest height seen. Records at or below
// the watermark mean the caller re-fetched an already aggregated range;
// the accumulator rejects the whole batch untouched rather than double
// count.
func (a *LiquidityAccumulator) Apply(changes []*models.LiquidityChange) error {
	next := a.watermark
	for _, change := range changes {
		if change.BlockHeight <= a.watermark {
			return fmt.Errorf("liquidity accumulator: height %d already aggregated (watermark %d)",
				change.BlockHeight, a.watermark)
		}
		if err := checkScale(change.ChangeAmount); err != nil {
			return err
		}
		if change.BlockHeight > next {
			next = change.BlockHeight
		}
	}

	for _, change := range changes {
		a.totals[change.TokenAddress] = a.totals[change.TokenAddress].Add(change.ChangeAmount)
	}
	a.watermark = next
	return nil
}

// Snapshot returns the current totals as Liquidity rows, pool ascending.
func (a *LiquidityAccumulator) Snapshot() []*models.Liquidity {
	out := make([]*models.Liquidity, 0, len(a.totals))
	for pool, amount := range a.totals {
		out = append(out, &models.Liquidity{Pool: pool, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pool < out[j].Pool })
	return out
}
