package zilliqa

import (
	"encoding/json"
	"strconv"
	"time"
)

// TxBlock is the part of a Zilliqa transaction block this indexer needs.
// The API returns numeric header fields as strings.
type TxBlock struct {
	Header TxBlockHeader `json:"header"`
}

type TxBlockHeader struct {
	BlockNum  string `json:"BlockNum"`
	Timestamp string `json:"Timestamp"` // microseconds since epoch
	NumTxns   int64  `json:"NumTxns"`
}

func (h *TxBlockHeader) Height() (int64, error) {
	return strconv.ParseInt(h.BlockNum, 10, 64)
}

func (h *TxBlockHeader) Time() (time.Time, error) {
	micros, err := strconv.ParseInt(h.Timestamp, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMicro(micros).UTC(), nil
}

// Transaction is a confirmed transaction with its receipt.
type Transaction struct {
	ID      string  `json:"ID"` // hash without 0x prefix
	ToAddr  string  `json:"toAddr"`
	Receipt Receipt `json:"receipt"`
}

type Receipt struct {
	Success   bool       `json:"success"`
	EventLogs []EventLog `json:"event_logs"`
}

// EventLog is one event emitted by a contract during the transaction.
// The position inside EventLogs is the event sequence used by the ledger.
type EventLog struct {
	EventName string       `json:"_eventname"`
	Address   string       `json:"address"`
	Params    []EventParam `json:"params"`
}

type EventParam struct {
	VName string          `json:"vname"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Param finds a named event parameter and unmarshals its value into out.
func (e *EventLog) Param(vname string, out interface{}) bool {
	for _, p := range e.Params {
		if p.VName == vname {
			return json.Unmarshal(p.Value, out) == nil
		}
	}
	return false
}
