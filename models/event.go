package models

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Amount columns are decimal(65,18): up to 47 integer digits and 18
// fractional digits. Anything finer would be silently rounded by the
// store, so it is rejected here instead.
const (
	MaxAmountScale  = 18
	MaxAmountDigits = 65
)

// NewSwap validates raw decoded event fields and builds a Swap record
// with a fresh id. Pure construction, nothing is written.
func NewSwap(txHash string, eventSequence int, blockHeight int64, blockTimestamp time.Time,
	initiator, token string, tokenAmount, zilAmount decimal.Decimal, isSendingZil bool) (*Swap, error) {

	txHash, err := normalizeTxHash(txHash)
	if err != nil {
		return nil, err
	}
	if err := checkSequence(eventSequence, blockHeight); err != nil {
		return nil, err
	}
	initiator, err = normalizeAddress("initiator_address", initiator)
	if err != nil {
		return nil, err
	}
	token, err = normalizeAddress("token_address", token)
	if err != nil {
		return nil, err
	}
	if tokenAmount.IsNegative() {
		return nil, validationErr("token_amount", "must not be negative, got %s", tokenAmount)
	}
	if zilAmount.IsNegative() {
		return nil, validationErr("zil_amount", "must not be negative, got %s", zilAmount)
	}
	if err := checkAmount("token_amount", tokenAmount); err != nil {
		return nil, err
	}
	if err := checkAmount("zil_amount", zilAmount); err != nil {
		return nil, err
	}

	return &Swap{
		ID:               uuid.New().String(),
		TransactionHash:  txHash,
		EventSequence:    eventSequence,
		BlockHeight:      blockHeight,
		BlockTimestamp:   blockTimestamp,
		InitiatorAddress: initiator,
		TokenAddress:     token,
		TokenAmount:      tokenAmount,
		ZilAmount:        zilAmount,
		IsSendingZil:     isSendingZil,
	}, nil
}

// NewLiquidityChange validates raw decoded event fields and builds a
// LiquidityChange record. A zero change amount is accepted, see Noop.
func NewLiquidityChange(txHash string, eventSequence int, blockHeight int64, blockTimestamp time.Time,
	initiator, token string, changeAmount decimal.Decimal) (*LiquidityChange, error) {

	txHash, err := normalizeTxHash(txHash)
	if err != nil {
		return nil, err
	}
	if err := checkSequence(eventSequence, blockHeight); err != nil {
		return nil, err
	}
	initiator, err = normalizeAddress("initiator_address", initiator)
	if err != nil {
		return nil, err
	}
	token, err = normalizeAddress("token_address", token)
	if err != nil {
		return nil, err
	}
	if err := checkAmount("change_amount", changeAmount); err != nil {
		return nil, err
	}

	return &LiquidityChange{
		ID:               uuid.New().String(),
		TransactionHash:  txHash,
		EventSequence:    eventSequence,
		BlockHeight:      blockHeight,
		BlockTimestamp:   blockTimestamp,
		InitiatorAddress: initiator,
		TokenAddress:     token,
		ChangeAmount:     changeAmount,
	}, nil
}

func normalizeTxHash(h string) (string, error) {
	raw := strings.TrimPrefix(h, "0x")
	if len(raw) != 64 || !isHex(raw) {
		return "", validationErr("transaction_hash", "want 32-byte hex string, got %q", h)
	}
	return "0x" + strings.ToLower(raw), nil
}

// normalizeAddress accepts a Zilliqa base16 address (20 bytes, same shape
// as an EVM address) and lowercases it.
func normalizeAddress(field, addr string) (string, error) {
	if !common.IsHexAddress(addr) {
		return "", validationErr(field, "want 20-byte hex address, got %q", addr)
	}
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		addr = "0x" + addr
	}
	return strings.ToLower(addr), nil
}

func checkSequence(eventSequence int, blockHeight int64) error {
	if eventSequence < 0 {
		return validationErr("event_sequence", "must not be negative, got %d", eventSequence)
	}
	if blockHeight < 0 {
		return validationErr("block_height", "must not be negative, got %d", blockHeight)
	}
	return nil
}

func checkAmount(field string, amt decimal.Decimal) error {
	if amt.Exponent() < -MaxAmountScale {
		return validationErr(field, "scale %d exceeds column scale %d", -amt.Exponent(), MaxAmountScale)
	}
	digits := len(amt.Coefficient().String())
	if amt.IsNegative() {
		digits--
	}
	if digits > MaxAmountDigits {
		return validationErr(field, "%d digits exceed column precision %d", digits, MaxAmountDigits)
	}
	return nil
}

func isHex(s string) bool {
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
