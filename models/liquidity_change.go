package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LiquidityChange is one deposit into or withdrawal from a pool.
// ChangeAmount is signed: positive adds liquidity, negative removes it.
type LiquidityChange struct {
	ID               string          `gorm:"primarykey;size:36" json:"id"`
	TransactionHash  string          `gorm:"size:66;not null;uniqueIndex:idx_liquidity_changes_tx_seq" json:"transaction_hash"`
	EventSequence    int             `gorm:"not null;uniqueIndex:idx_liquidity_changes_tx_seq" json:"event_sequence"`
	BlockHeight      int64           `gorm:"not null;index:idx_liquidity_changes_height" json:"block_height"`
	BlockTimestamp   time.Time       `gorm:"not null" json:"block_timestamp"`
	InitiatorAddress string          `gorm:"size:42;not null;index:idx_liquidity_changes_initiator" json:"initiator_address"`
	TokenAddress     string          `gorm:"size:42;not null;index:idx_liquidity_changes_token" json:"token_address"`
	ChangeAmount     decimal.Decimal `gorm:"type:decimal(65,18);not null" json:"change_amount"`
}

func (LiquidityChange) TableName() string {
	return "liquidity_changes"
}

// Noop reports a zero-amount change. Such events are accepted by the
// writer (the contract can emit them) and contribute nothing to sums.
func (lc *LiquidityChange) Noop() bool {
	return lc.ChangeAmount.IsZero()
}
