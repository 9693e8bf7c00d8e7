package explorer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/log"

	"zilswap-indexer/metrics"
	"zilswap-indexer/storage"
	"zilswap-indexer/zilliqa"
)

var ErrChainNetwork = errors.New("chain network error")

// Explorer walks tx blocks in order and feeds decoded swap-contract
// events into the ledger. Inserts are idempotent, so crashing anywhere
// and replaying from the checkpoint is safe; redelivered events only
// bump the duplicate counter.
type Explorer struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	node       *zilliqa.Client
	dbc        *storage.DBClient
	checkpoint *storage.LevelDB
	contract   string
	fromBlock  int64
	interval   time.Duration
}

func NewExplorer(ctx context.Context, wg *sync.WaitGroup, node *zilliqa.Client, dbc *storage.DBClient,
	checkpoint *storage.LevelDB, contract string, fromBlock int64, interval time.Duration) *Explorer {
	return &Explorer{
		ctx:        ctx,
		wg:         wg,
		node:       node,
		dbc:        dbc,
		checkpoint: checkpoint,
		contract:   contract,
		fromBlock:  fromBlock,
		interval:   interval,
	}
}

func (e *Explorer) Start() {
	defer e.wg.Done()

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		if err := e.sync(); err != nil {
			log.Error("explorer", "sync err", err.Error())
			metrics.IncError("sync")
		}

		select {
		case <-e.ctx.Done():
			log.Info("explorer", "stop", "context cancelled")
			return
		case <-ticker.C:
		}
	}
}

// sync catches the ledger up to the chain tip, one block at a time.
func (e *Explorer) sync() error {
	next := e.fromBlock
	last, ok, err := e.checkpoint.LastHeight()
	if err != nil {
		return err
	}
	if ok && last+1 > next {
		next = last + 1
	}

	latest, err := e.node.GetLatestTxBlock(e.ctx)
	if err != nil {
		return ErrChainNetwork
	}
	tip, err := latest.Header.Height()
	if err != nil {
		return err
	}

	for height := next; height <= tip; height++ {
		select {
		case <-e.ctx.Done():
			return nil
		default:
		}

		if err := e.ProcessBlock(height); err != nil {
			return err
		}
		if err := e.checkpoint.SetLastHeight(height); err != nil {
			return err
		}
		metrics.SetLastBlock(height)
	}
	return nil
}

// ProcessBlock ingests every swap-contract event of one block. Exported
// for the backfill tool, which drives it over an explicit height range.
func (e *Explorer) ProcessBlock(height int64) error {
	start := time.Now()

	block, err := e.node.GetTxBlock(e.ctx, height)
	if err != nil {
		return ErrChainNetwork
	}
	blockTime, err := block.Header.Time()
	if err != nil {
		return err
	}

	txns, err := e.node.GetTxnBodiesForTxBlock(e.ctx, height)
	if err != nil {
		return ErrChainNetwork
	}

	for i := range txns {
		swaps, changes, err := decodeTransaction(&txns[i], height, blockTime, e.contract)
		if err != nil {
			// A malformed event never becomes well-formed on retry.
			// Log it, count it, keep the block moving.
			log.Error("explorer", "decode err", err.Error(), "height", height)
			metrics.IncError("decode")
			continue
		}

		swapResult, err := e.dbc.SaveSwapBatch(swaps)
		if swapResult != nil {
			metrics.AddIngested("swap", swapResult.Inserted)
			metrics.AddDuplicates("swap", swapResult.Duplicates)
		}
		if err != nil {
			return err
		}

		changeResult, err := e.dbc.SaveLiquidityChangeBatch(changes)
		if changeResult != nil {
			metrics.AddIngested("liquidity_change", changeResult.Inserted)
			metrics.AddDuplicates("liquidity_change", changeResult.Duplicates)
		}
		if err != nil {
			return err
		}
	}

	metrics.ObserveBlockIngest(time.Since(start).Seconds())
	log.Debug("explorer", "block done", height, "txns", len(txns), "elapsed", time.Since(start).String())
	return nil
}
