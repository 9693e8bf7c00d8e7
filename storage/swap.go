package storage

import (
	"context"

	"gorm.io/gorm/clause"

	"zilswap-indexer/models"
)

// BatchResult accounts one batch of independent inserts. Duplicates are
// not failures, they are counted and skipped.
type BatchResult struct {
	Inserted   int
	Duplicates int
}

// SaveSwap inserts one swap in a single atomic statement. If a row with
// the same (transaction_hash, event_sequence) already exists the insert
// is a no-op and ErrDuplicateEvent is returned; the ledger row is never
// touched. On success the assigned id is returned.
func (db *DBClient) SaveSwap(swap *models.Swap) (string, error) {
	res := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_hash"}, {Name: "event_sequence"}},
		DoNothing: true,
	}).Create(swap)
	if res.Error != nil {
		return "", storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrDuplicateEvent
	}
	return swap.ID, nil
}

// SaveSwapBatch inserts each swap independently, preserving slice order.
// A duplicate skips that event only. A storage fault stops the batch and
// leaves previously committed siblings committed; the result still
// reports what got in.
func (db *DBClient) SaveSwapBatch(swaps []*models.Swap) (*BatchResult, error) {
	result := &BatchResult{}
	for _, swap := range swaps {
		_, err := db.SaveSwap(swap)
		switch {
		case err == nil:
			result.Inserted++
		case err == ErrDuplicateEvent:
			result.Duplicates++
		default:
			return result, err
		}
	}
	return result, nil
}

type SwapFilter struct {
	TransactionHash  string
	TokenAddress     string
	InitiatorAddress string
	FromHeight       *int64
	ToHeight         *int64
	Limit            int
	OffSet           int
}

// FindSwaps lists swaps in canonical ledger order (block height, then
// in-block event sequence) with the usual filter and paging knobs.
func (db *DBClient) FindSwaps(filter *SwapFilter) ([]*models.Swap, int64, error) {
	q := db.DB.Model(&models.Swap{}).Where(&models.Swap{
		TransactionHash:  filter.TransactionHash,
		TokenAddress:     filter.TokenAddress,
		InitiatorAddress: filter.InitiatorAddress,
	})
	if filter.FromHeight != nil {
		q = q.Where("block_height >= ?", *filter.FromHeight)
	}
	if filter.ToHeight != nil {
		q = q.Where("block_height <= ?", *filter.ToHeight)
	}

	total := int64(0)
	swaps := make([]*models.Swap, 0)
	err := q.Count(&total).
		Order("block_height asc, event_sequence asc").
		Limit(filter.Limit).
		Offset(filter.OffSet).
		Find(&swaps).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return swaps, total, nil
}

// SwapsInRange streams the swaps with block_height in [from, to], both
// ends inclusive, for the aggregation engine. Empty pool or initiator
// means no filter on that column.
func (db *DBClient) SwapsInRange(ctx context.Context, from, to int64, pool, initiator string) ([]*models.Swap, error) {
	q := db.DB.WithContext(ctx).
		Where("block_height >= ? and block_height <= ?", from, to)
	if pool != "" {
		q = q.Where("token_address = ?", pool)
	}
	if initiator != "" {
		q = q.Where("initiator_address = ?", initiator)
	}

	swaps := make([]*models.Swap, 0)
	err := q.Order("block_height asc, event_sequence asc").Find(&swaps).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return swaps, nil
}
