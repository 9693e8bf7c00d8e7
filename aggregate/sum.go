// Package aggregate folds ledger records into the derived views. All
// arithmetic is exact decimal; nothing here is allowed to pass through
// binary floating point. Sums are associative and commutative, so the
// fetch order of the input records does not matter.
package aggregate

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"zilswap-indexer/models"
)

// ErrInconsistentAggregate fires when an input amount carries a finer
// scale than the ledger columns hold. Ingestion rejects such amounts, so
// this is a defense-in-depth check that should never trip in operation.
var ErrInconsistentAggregate = errors.New("inconsistent aggregate: amount scale exceeds ledger precision")

func checkScale(amt decimal.Decimal) error {
	if amt.Exponent() < -models.MaxAmountScale {
		return ErrInconsistentAggregate
	}
	return nil
}

// SumLiquidity nets the change amounts per pool. Pools with no matching
// records are absent from the result; pools whose records net to zero
// are present with a zero amount.
func SumLiquidity(changes []*models.LiquidityChange) ([]*models.Liquidity, error) {
	totals := make(map[string]decimal.Decimal)
	for _, change := range changes {
		if err := checkScale(change.ChangeAmount); err != nil {
			return nil, err
		}
		totals[change.TokenAddress] = totals[change.TokenAddress].Add(change.ChangeAmount)
	}

	out := make([]*models.Liquidity, 0, len(totals))
	for pool, amount := range totals {
		out = append(out, &models.Liquidity{Pool: pool, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pool < out[j].Pool })
	return out, nil
}

type poolProvider struct {
	pool    string
	address string
}

// SumLiquidityByProvider nets the change amounts per (pool, initiator).
func SumLiquidityByProvider(changes []*models.LiquidityChange) ([]*models.LiquidityFromProvider, error) {
	totals := make(map[poolProvider]decimal.Decimal)
	for _, change := range changes {
		if err := checkScale(change.ChangeAmount); err != nil {
			return nil, err
		}
		key := poolProvider{pool: change.TokenAddress, address: change.InitiatorAddress}
		totals[key] = totals[key].Add(change.ChangeAmount)
	}

	out := make([]*models.LiquidityFromProvider, 0, len(totals))
	for key, amount := range totals {
		out = append(out, &models.LiquidityFromProvider{Pool: key.pool, Address: key.address, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pool != out[j].Pool {
			return out[i].Pool < out[j].Pool
		}
		return out[i].Address < out[j].Address
	})
	return out, nil
}

// SumVolume totals swap flow per pool, split by direction. Each swap
// feeds exactly one of the two amount pairs, chosen by IsSendingZil,
// never by the sign of the amounts.
func SumVolume(swaps []*models.Swap) ([]*models.Volume, error) {
	totals := make(map[string]*models.Volume)
	for _, swap := range swaps {
		if err := checkScale(swap.TokenAmount); err != nil {
			return nil, err
		}
		if err := checkScale(swap.ZilAmount); err != nil {
			return nil, err
		}

		v, ok := totals[swap.TokenAddress]
		if !ok {
			v = &models.Volume{Pool: swap.TokenAddress}
			totals[swap.TokenAddress] = v
		}
		if swap.IsSendingZil {
			v.InZilAmount = v.InZilAmount.Add(swap.ZilAmount)
			v.OutTokenAmount = v.OutTokenAmount.Add(swap.TokenAmount)
		} else {
			v.OutZilAmount = v.OutZilAmount.Add(swap.ZilAmount)
			v.InTokenAmount = v.InTokenAmount.Add(swap.TokenAmount)
		}
	}

	out := make([]*models.Volume, 0, len(totals))
	for _, v := range totals {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pool < out[j].Pool })
	return out, nil
}

// SumVolumeByUser totals the ZIL side of swap flow per (pool, initiator),
// both directions combined.
func SumVolumeByUser(swaps []*models.Swap) ([]*models.VolumeForUser, error) {
	totals := make(map[poolProvider]decimal.Decimal)
	for _, swap := range swaps {
		if err := checkScale(swap.ZilAmount); err != nil {
			return nil, err
		}
		key := poolProvider{pool: swap.TokenAddress, address: swap.InitiatorAddress}
		totals[key] = totals[key].Add(swap.ZilAmount)
	}

	out := make([]*models.VolumeForUser, 0, len(totals))
	for key, amount := range totals {
		out = append(out, &models.VolumeForUser{Pool: key.pool, Address: key.address, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Pool != out[j].Pool {
			return out[i].Pool < out[j].Pool
		}
		return out[i].Address < out[j].Address
	})
	return out, nil
}
