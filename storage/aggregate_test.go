package storage

import (
	"context"
	"testing"

	"zilswap-indexer/models"
)

func TestGetLiquidityScenario(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	if _, err := db.SaveLiquidityChange(testChange(t, 1, 0, 100, testPoolA, testAlice, "100")); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if _, err := db.SaveLiquidityChange(testChange(t, 2, 0, 101, testPoolA, testAlice, "-30")); err != nil {
		t.Fatalf("withdrawal: %v", err)
	}

	rows, err := db.GetLiquidity(ctx, -1, "")
	if err != nil {
		t.Fatalf("GetLiquidity: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 pool, got %d", len(rows))
	}
	if !rows[0].Amount.Equal(testDec(t, "70")) {
		t.Errorf("expected 70, got %s", rows[0].Amount)
	}
}

func TestGetLiquidityAsOfInclusive(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveLiquidityChange(testChange(t, 1, 0, 100, testPoolA, testAlice, "100"))
	db.SaveLiquidityChange(testChange(t, 2, 0, 101, testPoolA, testAlice, "-30"))
	db.SaveLiquidityChange(testChange(t, 3, 0, 102, testPoolA, testAlice, "5"))

	rows, err := db.GetLiquidity(ctx, 101, "")
	if err != nil {
		t.Fatalf("GetLiquidity: %v", err)
	}
	// Height 101 included, 102 not yet.
	if !rows[0].Amount.Equal(testDec(t, "70")) {
		t.Errorf("as-of 101: expected 70, got %s", rows[0].Amount)
	}
}

func TestGetLiquidityZeroChangeIsNoop(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveLiquidityChange(testChange(t, 1, 0, 100, testPoolA, testAlice, "100"))
	if _, err := db.SaveLiquidityChange(testChange(t, 2, 0, 101, testPoolA, testAlice, "0")); err != nil {
		t.Fatalf("zero change must be accepted: %v", err)
	}

	rows, err := db.GetLiquidity(ctx, -1, "")
	if err != nil {
		t.Fatalf("GetLiquidity: %v", err)
	}
	if !rows[0].Amount.Equal(testDec(t, "100")) {
		t.Errorf("expected 100, got %s", rows[0].Amount)
	}
}

func TestGetLiquidityFromProvider(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveLiquidityChange(testChange(t, 1, 0, 100, testPoolA, testAlice, "100"))
	db.SaveLiquidityChange(testChange(t, 2, 0, 100, testPoolA, testBob, "40"))
	db.SaveLiquidityChange(testChange(t, 3, 0, 101, testPoolA, testAlice, "-25"))

	rows, err := db.GetLiquidityFromProvider(ctx, -1, testPoolA, testAlice)
	if err != nil {
		t.Fatalf("GetLiquidityFromProvider: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].Address != testAlice || !rows[0].Amount.Equal(testDec(t, "75")) {
		t.Errorf("got %s=%s", rows[0].Address, rows[0].Amount)
	}
}

func TestGetVolumeScenario(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	if _, err := db.SaveSwap(testSwap(t, 0xA, 0, 100, testPoolA, testAlice, "5.000000", "10.000000", true)); err != nil {
		t.Fatalf("SaveSwap: %v", err)
	}

	rows, err := db.GetVolume(ctx, 100, 100, testPoolA)
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	v := rows[0]
	if !v.InZilAmount.Equal(testDec(t, "10.000000")) ||
		!v.OutTokenAmount.Equal(testDec(t, "5.000000")) ||
		!v.OutZilAmount.IsZero() ||
		!v.InTokenAmount.IsZero() {
		t.Errorf("volume row wrong: %+v", v)
	}
}

func TestGetVolumeRangeBoundaries(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveSwap(testSwap(t, 1, 0, 99, testPoolA, testAlice, "1", "1", true))
	db.SaveSwap(testSwap(t, 2, 0, 100, testPoolA, testAlice, "1", "2", true))
	db.SaveSwap(testSwap(t, 3, 0, 150, testPoolA, testAlice, "1", "4", true))
	db.SaveSwap(testSwap(t, 4, 0, 200, testPoolA, testAlice, "1", "8", true))
	db.SaveSwap(testSwap(t, 5, 0, 201, testPoolA, testAlice, "1", "16", true))

	rows, err := db.GetVolume(ctx, 100, 200, testPoolA)
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	// Both boundaries inclusive: 2 + 4 + 8, neighbours excluded.
	if !rows[0].InZilAmount.Equal(testDec(t, "14")) {
		t.Errorf("expected 14, got %s", rows[0].InZilAmount)
	}
}

func TestGetVolumeEmptyRangeOmitsRows(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveSwap(testSwap(t, 1, 0, 100, testPoolA, testAlice, "1", "1", true))

	rows, err := db.GetVolume(ctx, 500, 600, "")
	if err != nil {
		t.Fatalf("GetVolume: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows for empty range, got %d", len(rows))
	}
}

func TestGetVolumeForUser(t *testing.T) {
	db := testClient(t)
	ctx := context.Background()

	db.SaveSwap(testSwap(t, 1, 0, 100, testPoolA, testAlice, "5", "10", true))
	db.SaveSwap(testSwap(t, 2, 0, 100, testPoolA, testAlice, "3", "6", false))
	db.SaveSwap(testSwap(t, 3, 0, 100, testPoolA, testBob, "1", "2", true))

	rows, err := db.GetVolumeForUser(ctx, 100, 100, testPoolA, testAlice)
	if err != nil {
		t.Fatalf("GetVolumeForUser: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if !rows[0].Amount.Equal(testDec(t, "16")) {
		t.Errorf("expected 16, got %s", rows[0].Amount)
	}
}

func TestAggregationInsertionOrderIndependent(t *testing.T) {
	a := testClient(t)

	changes := []*models.LiquidityChange{
		testChange(t, 1, 0, 100, testPoolA, testAlice, "0.000000000000000001"),
		testChange(t, 2, 0, 101, testPoolA, testBob, "123456789.5"),
		testChange(t, 3, 0, 102, testPoolB, testAlice, "-7.25"),
		testChange(t, 4, 0, 103, testPoolA, testAlice, "-0.5"),
	}
	for _, lc := range changes {
		if _, err := a.SaveLiquidityChange(lc); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	b := testClient(t)
	for i := len(changes) - 1; i >= 0; i-- {
		lc := changes[i]
		clone, err := models.NewLiquidityChange(lc.TransactionHash, lc.EventSequence, lc.BlockHeight,
			lc.BlockTimestamp, lc.InitiatorAddress, lc.TokenAddress, lc.ChangeAmount)
		if err != nil {
			t.Fatalf("clone: %v", err)
		}
		if _, err := b.SaveLiquidityChange(clone); err != nil {
			t.Fatalf("insert reversed: %v", err)
		}
	}

	ctx := context.Background()
	rowsA, err := a.GetLiquidity(ctx, -1, "")
	if err != nil {
		t.Fatalf("GetLiquidity a: %v", err)
	}
	rowsB, err := b.GetLiquidity(ctx, -1, "")
	if err != nil {
		t.Fatalf("GetLiquidity b: %v", err)
	}

	if len(rowsA) != len(rowsB) {
		t.Fatalf("row counts differ: %d vs %d", len(rowsA), len(rowsB))
	}
	for i := range rowsA {
		if rowsA[i].Pool != rowsB[i].Pool || !rowsA[i].Amount.Equal(rowsB[i].Amount) {
			t.Errorf("row %d differs: %s=%s vs %s=%s",
				i, rowsA[i].Pool, rowsA[i].Amount, rowsB[i].Pool, rowsB[i].Amount)
		}
	}
}
