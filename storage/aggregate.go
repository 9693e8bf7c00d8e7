package storage

import (
	"context"

	"zilswap-indexer/aggregate"
	"zilswap-indexer/models"
)

// Aggregate reads fetch the matching ledger rows and fold them with the
// aggregate package. Summation happens in Go on exact decimals so the
// result is identical on every backend; the store only has to do an
// indexed range scan. Reads never touch ledger state, cancelling a
// context mid-aggregation is always safe.

// GetLiquidity computes net liquidity per pool over all changes with
// block_height <= asOf (asOf < 0 means the full ledger). Empty pool
// means every pool, otherwise one.
func (db *DBClient) GetLiquidity(ctx context.Context, asOf int64, pool string) ([]*models.Liquidity, error) {
	changes, err := db.LiquidityChangesUpTo(ctx, asOf, pool, "")
	if err != nil {
		return nil, err
	}
	return aggregate.SumLiquidity(changes)
}

// GetLiquidityFromProvider computes net liquidity per (pool, provider).
func (db *DBClient) GetLiquidityFromProvider(ctx context.Context, asOf int64, pool, provider string) ([]*models.LiquidityFromProvider, error) {
	changes, err := db.LiquidityChangesUpTo(ctx, asOf, pool, provider)
	if err != nil {
		return nil, err
	}
	return aggregate.SumLiquidityByProvider(changes)
}

// GetVolume computes per-pool swap volume over block heights in
// [from, to], both ends inclusive.
func (db *DBClient) GetVolume(ctx context.Context, from, to int64, pool string) ([]*models.Volume, error) {
	swaps, err := db.SwapsInRange(ctx, from, to, pool, "")
	if err != nil {
		return nil, err
	}
	return aggregate.SumVolume(swaps)
}

// GetVolumeForUser computes per-(pool, initiator) ZIL volume over the
// inclusive height range.
func (db *DBClient) GetVolumeForUser(ctx context.Context, from, to int64, pool, user string) ([]*models.VolumeForUser, error) {
	swaps, err := db.SwapsInRange(ctx, from, to, pool, user)
	if err != nil {
		return nil, err
	}
	return aggregate.SumVolumeByUser(swaps)
}
