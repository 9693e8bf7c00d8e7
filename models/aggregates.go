package models

import (
	"github.com/shopspring/decimal"
)

// Aggregate rows computed from the ledger. The json names are the wire
// contract consumed by the API layer, do not rename them.

// Liquidity is the net pool balance: sum of all change amounts for the
// pool's token address.
type Liquidity struct {
	Pool   string          `json:"pool"`
	Amount decimal.Decimal `json:"amount"`
}

// LiquidityFromProvider is the net liquidity one address contributed to
// one pool.
type LiquidityFromProvider struct {
	Pool    string          `json:"pool"`
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amount"`
}

// VolumeForUser shares the shape of LiquidityFromProvider: per-pool,
// per-address ZIL volume.
type VolumeForUser = LiquidityFromProvider

// Volume is per-pool swap flow split by direction. A swap where the
// initiator sends ZIL adds to InZilAmount/OutTokenAmount; one where the
// initiator sends the token adds to OutZilAmount/InTokenAmount. In/out
// are with respect to the pool.
type Volume struct {
	Pool           string          `json:"pool"`
	InZilAmount    decimal.Decimal `json:"in_zil_amount"`
	OutTokenAmount decimal.Decimal `json:"out_token_amount"`
	OutZilAmount   decimal.Decimal `json:"out_zil_amount"`
	InTokenAmount  decimal.Decimal `json:"in_token_amount"`
}
