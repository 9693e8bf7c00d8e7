package explorer

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"zilswap-indexer/models"
	"zilswap-indexer/zilliqa"
)

// ZilSwap contract event names.
const (
	eventSwapped = "Swapped"
	eventMint    = "Mint"
	eventBurnt   = "Burnt"
)

type coins struct {
	Denom  string `json:"denom"` // "zil" or the token contract address
	Amount string `json:"amount"`
}

// decodeTransaction turns the swap-contract events of one confirmed
// transaction into ledger records. The event's position in the
// transaction's emitted list is its sequence; positions are kept even
// when unrelated events sit between swap events, so reingesting a block
// always produces the same (transaction_hash, event_sequence) pairs.
func decodeTransaction(tx *zilliqa.Transaction, height int64, blockTime time.Time, contract string) ([]*models.Swap, []*models.LiquidityChange, error) {
	if !tx.Receipt.Success {
		return nil, nil, nil
	}

	txHash := "0x" + tx.ID
	swaps := make([]*models.Swap, 0)
	changes := make([]*models.LiquidityChange, 0)

	for seq, ev := range tx.Receipt.EventLogs {
		if !sameAddress(ev.Address, contract) {
			continue
		}

		switch ev.EventName {
		case eventSwapped:
			swap, err := decodeSwapped(&ev, txHash, seq, height, blockTime)
			if err != nil {
				return nil, nil, fmt.Errorf("decode %s seq %d: %w", txHash, seq, err)
			}
			swaps = append(swaps, swap)

		case eventMint, eventBurnt:
			change, err := decodeLiquidity(&ev, txHash, seq, height, blockTime)
			if err != nil {
				return nil, nil, fmt.Errorf("decode %s seq %d: %w", txHash, seq, err)
			}
			changes = append(changes, change)
		}
	}
	return swaps, changes, nil
}

func decodeSwapped(ev *zilliqa.EventLog, txHash string, seq int, height int64, blockTime time.Time) (*models.Swap, error) {
	var pool, address string
	var input, output coins
	if !ev.Param("pool", &pool) {
		return nil, fmt.Errorf("missing pool param")
	}
	if !ev.Param("address", &address) {
		return nil, fmt.Errorf("missing address param")
	}
	if !ev.Param("input", &input) || !ev.Param("output", &output) {
		return nil, fmt.Errorf("missing input/output coins")
	}

	isSendingZil := input.Denom == "zil"
	zilSide, tokenSide := input, output
	if !isSendingZil {
		zilSide, tokenSide = output, input
	}
	if zilSide.Denom != "zil" {
		return nil, fmt.Errorf("neither side is zil: %s / %s", input.Denom, output.Denom)
	}

	zilAmount, err := decimal.NewFromString(zilSide.Amount)
	if err != nil {
		return nil, fmt.Errorf("zil amount %q: %v", zilSide.Amount, err)
	}
	tokenAmount, err := decimal.NewFromString(tokenSide.Amount)
	if err != nil {
		return nil, fmt.Errorf("token amount %q: %v", tokenSide.Amount, err)
	}

	return models.NewSwap(txHash, seq, height, blockTime, address, pool, tokenAmount, zilAmount, isSendingZil)
}

func decodeLiquidity(ev *zilliqa.EventLog, txHash string, seq int, height int64, blockTime time.Time) (*models.LiquidityChange, error) {
	var pool, address, rawAmount string
	if !ev.Param("pool", &pool) {
		return nil, fmt.Errorf("missing pool param")
	}
	if !ev.Param("address", &address) {
		return nil, fmt.Errorf("missing address param")
	}
	if !ev.Param("amount", &rawAmount) {
		return nil, fmt.Errorf("missing amount param")
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("amount %q: %v", rawAmount, err)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("contract emitted negative amount %s", amount)
	}
	if ev.EventName == eventBurnt {
		amount = amount.Neg()
	}

	return models.NewLiquidityChange(txHash, seq, height, blockTime, address, pool, amount)
}

func sameAddress(a, b string) bool {
	return normalizeHex(a) == normalizeHex(b)
}

func normalizeHex(s string) string {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
