package storage

import (
	"context"

	"gorm.io/gorm/clause"

	"zilswap-indexer/models"
)

// SaveLiquidityChange inserts one liquidity change with the same
// write-once semantics as SaveSwap.
func (db *DBClient) SaveLiquidityChange(change *models.LiquidityChange) (string, error) {
	res := db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "transaction_hash"}, {Name: "event_sequence"}},
		DoNothing: true,
	}).Create(change)
	if res.Error != nil {
		return "", storageErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", ErrDuplicateEvent
	}
	return change.ID, nil
}

func (db *DBClient) SaveLiquidityChangeBatch(changes []*models.LiquidityChange) (*BatchResult, error) {
	result := &BatchResult{}
	for _, change := range changes {
		_, err := db.SaveLiquidityChange(change)
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

type LiquidityChangeFilter struct {
	TransactionHash  string
	TokenAddress     string
	InitiatorAddress string
	FromHeight       *int64
	ToHeight         *int64
	Limit            int
	OffSet           int
}

func (db *DBClient) FindLiquidityChanges(filter *LiquidityChangeFilter) ([]*models.LiquidityChange, int64, error) {
	q := db.DB.Model(&models.LiquidityChange{}).Where(&models.LiquidityChange{
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
	changes := make([]*models.LiquidityChange, 0)
	err := q.Count(&total).
		Order("block_height asc, event_sequence asc").
		Limit(filter.Limit).
		Offset(filter.OffSet).
		Find(&changes).Error
	if err != nil {
		return nil, 0, storageErr(err)
	}
	return changes, total, nil
}

// LiquidityChangesUpTo streams changes with block_height <= asOf for the
// aggregation engine. asOf < 0 means the full ledger.
func (db *DBClient) LiquidityChangesUpTo(ctx context.Context, asOf int64, pool, provider string) ([]*models.LiquidityChange, error) {
	q := db.DB.WithContext(ctx).Model(&models.LiquidityChange{})
	if asOf >= 0 {
		q = q.Where("block_height <= ?", asOf)
	}
	if pool != "" {
		q = q.Where("token_address = ?", pool)
	}
	if provider != "" {
		q = q.Where("initiator_address = ?", provider)
	}

	changes := make([]*models.LiquidityChange, 0)
	err := q.Order("block_height asc, event_sequence asc").Find(&changes).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return changes, nil
}
