// Package zilliqa is a thin JSON-RPC client for the handful of node
// methods the indexer consumes. The node is treated as an at-least-once
// event source; redelivered blocks are harmless because the ledger
// writes are idempotent.
package zilliqa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type rpcRequest struct {
	ID      string        `json:"id"`
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

func (c *Client) call(ctx context.Context, method string, params []interface{}, out interface{}) error {
	body, err := json.Marshal(&rpcRequest{ID: "1", JSONRPC: "2.0", Method: method, Params: params})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: http %d", method, resp.StatusCode)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: decode: %v", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: %w", method, envelope.Error)
	}
	return json.Unmarshal(envelope.Result, out)
}

func (c *Client) GetLatestTxBlock(ctx context.Context) (*TxBlock, error) {
	block := &TxBlock{}
	if err := c.call(ctx, "GetLatestTxBlock", []interface{}{}, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (c *Client) GetTxBlock(ctx context.Context, height int64) (*TxBlock, error) {
	block := &TxBlock{}
	if err := c.call(ctx, "GetTxBlock", []interface{}{strconv.FormatInt(height, 10)}, block); err != nil {
		return nil, err
	}
	return block, nil
}

// GetTxnBodiesForTxBlock returns the confirmed transactions of a block
// with their receipts. A block without transactions is an empty slice,
// not an error, even though the node reports it as one.
func (c *Client) GetTxnBodiesForTxBlock(ctx context.Context, height int64) ([]Transaction, error) {
	txns := make([]Transaction, 0)
	err := c.call(ctx, "GetTxnBodiesForTxBlock", []interface{}{strconv.FormatInt(height, 10)}, &txns)
	if err != nil {
		if strings.Contains(err.Error(), "TxBlock has no transactions") {
			return nil, nil
		}
		return nil, err
	}
	return txns, nil
}
