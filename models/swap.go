package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Swap is one ZIL<->token exchange through a pool, as emitted by the
// contract event log. Rows are append-only: written once per
// (transaction_hash, event_sequence), never updated.
type Swap struct {
	ID               string          `gorm:"primarykey;size:36" json:"id"`
	TransactionHash  string          `gorm:"size:66;not null;uniqueIndex:idx_swaps_tx_seq" json:"transaction_hash"`
	EventSequence    int             `gorm:"not null;uniqueIndex:idx_swaps_tx_seq" json:"event_sequence"`
	BlockHeight      int64           `gorm:"not null;index:idx_swaps_height" json:"block_height"`
	BlockTimestamp   time.Time       `gorm:"not null" json:"block_timestamp"`
	InitiatorAddress string          `gorm:"size:42;not null;index:idx_swaps_initiator" json:"initiator_address"`
	TokenAddress     string          `gorm:"size:42;not null;index:idx_swaps_token" json:"token_address"`
	TokenAmount      decimal.Decimal `gorm:"type:decimal(65,18);not null" json:"token_amount"`
	ZilAmount        decimal.Decimal `gorm:"type:decimal(65,18);not null" json:"zil_amount"`
	IsSendingZil     bool            `gorm:"not null" json:"is_sending_zil"`
}

func (Swap) TableName() string {
	return "swaps"
}
