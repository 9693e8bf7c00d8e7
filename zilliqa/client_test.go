package zilliqa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func rpcServer(t *testing.T, handler func(method string, params []interface{}) (interface{}, *rpcError)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
			return
		}
		result, rpcErr := handler(req.Method, req.Params)
		resp := map[string]interface{}{"id": req.ID, "jsonrpc": "2.0"}
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGetLatestTxBlock(t *testing.T) {
	srv := rpcServer(t, func(method string, params []interface{}) (interface{}, *rpcError) {
		if method != "GetLatestTxBlock" {
			t.Errorf("unexpected method %s", method)
		}
		return map[string]interface{}{
			"header": map[string]interface{}{
				"BlockNum":  "1523412",
				"Timestamp": "1614837123456789",
				"NumTxns":   3,
			},
		}, nil
	})
	defer srv.Close()

	block, err := NewClient(srv.URL).GetLatestTxBlock(context.Background())
	if err != nil {
		t.Fatalf("GetLatestTxBlock: %v", err)
	}
	height, err := block.Header.Height()
	if err != nil || height != 1523412 {
		t.Errorf("height %d err %v", height, err)
	}
	ts, err := block.Header.Time()
	if err != nil {
		t.Fatalf("timestamp: %v", err)
	}
	if ts.UnixMicro() != 1614837123456789 {
		t.Errorf("timestamp %v", ts)
	}
}

func TestGetTxnBodiesEventLogs(t *testing.T) {
	srv := rpcServer(t, func(method string, params []interface{}) (interface{}, *rpcError) {
		return []map[string]interface{}{
			{
				"ID":     "ab12cd34ef5678901234567890123456789012345678901234567890123456ab",
				"toAddr": "9f8e7d6c5b4a39281706f5e4d3c2b1a098765432",
				"receipt": map[string]interface{}{
					"success": true,
					"event_logs": []map[string]interface{}{
						{
							"_eventname": "Swapped",
							"address":    "0x9f8e7d6c5b4a39281706f5e4d3c2b1a098765432",
							"params": []map[string]interface{}{
								{"vname": "pool", "type": "ByStr20", "value": "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"},
								{"vname": "input", "type": "Coins", "value": map[string]string{"denom": "zil", "amount": "10000000"}},
							},
						},
					},
				},
			},
		}, nil
	})
	defer srv.Close()

	txns, err := NewClient(srv.URL).GetTxnBodiesForTxBlock(context.Background(), 100)
	if err != nil {
		t.Fatalf("GetTxnBodiesForTxBlock: %v", err)
	}
	if len(txns) != 1 || len(txns[0].Receipt.EventLogs) != 1 {
		t.Fatalf("unexpected shape: %+v", txns)
	}

	ev := txns[0].Receipt.EventLogs[0]
	if ev.EventName != "Swapped" {
		t.Errorf("event name %s", ev.EventName)
	}
	var pool string
	if !ev.Param("pool", &pool) || pool != "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Errorf("pool param: %q", pool)
	}
	var input struct {
		Denom  string `json:"denom"`
		Amount string `json:"amount"`
	}
	if !ev.Param("input", &input) || input.Denom != "zil" || input.Amount != "10000000" {
		t.Errorf("input param: %+v", input)
	}
}

func TestEmptyBlockIsNotAnError(t *testing.T) {
	srv := rpcServer(t, func(method string, params []interface{}) (interface{}, *rpcError) {
		return nil, &rpcError{Code: -1, Message: "TxBlock has no transactions"}
	})
	defer srv.Close()

	txns, err := NewClient(srv.URL).GetTxnBodiesForTxBlock(context.Background(), 100)
	if err != nil {
		t.Fatalf("expected empty result, got %v", err)
	}
	if len(txns) != 0 {
		t.Fatalf("expected no transactions, got %d", len(txns))
	}
}
