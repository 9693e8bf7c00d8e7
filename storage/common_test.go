package storage

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"zilswap-indexer/models"
)

var (
	testPoolA     = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	testPoolB     = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	testAlice     = "0x1111111111111111111111111111111111111111"
	testBob       = "0x2222222222222222222222222222222222222222"
	testTimestamp = time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
)

var testDBSeq int64

func testClient(t *testing.T) *DBClient {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared",
		t.Name(), atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	client := NewClient(db)
	if err := client.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return client
}

func testHash(t *testing.T, n int) string {
	t.Helper()
	return fmt.Sprintf("0x%064x", n)
}

func testDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func testSwap(t *testing.T, txn, seq int, height int64, pool, initiator, tokenAmt, zilAmt string, sendingZil bool) *models.Swap {
	t.Helper()
	s, err := models.NewSwap(testHash(t, txn), seq, height, testTimestamp, initiator, pool,
		testDec(t, tokenAmt), testDec(t, zilAmt), sendingZil)
	if err != nil {
		t.Fatalf("NewSwap: %v", err)
	}
	return s
}

func testChange(t *testing.T, txn, seq int, height int64, pool, provider, amount string) *models.LiquidityChange {
	t.Helper()
	lc, err := models.NewLiquidityChange(testHash(t, txn), seq, height, testTimestamp, provider, pool,
		testDec(t, amount))
	if err != nil {
		t.Fatalf("NewLiquidityChange: %v", err)
	}
	return lc
}
