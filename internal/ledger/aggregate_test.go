package ledger

import (
	"math"
	"testing"
	"time"

	"khata/internal/model"

	"github.com/google/uuid"
)

func txn(t *testing.T, day string, amount float64, cat model.Category) model.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("parse date %q: %v", day, err)
	}
	return model.Transaction{
		ID:       uuid.New(),
		Date:     d,
		Amount:   amount,
		Category: cat,
		Channel:  model.ChannelUPI,
	}
}

func TestSpendSoFarExcludesInflows(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-03", 120, model.CategoryMess),
		txn(t, "2025-06-04", -500, model.CategoryMisc), // top-up
		txn(t, "2025-06-05", 80, model.CategoryOutings),
	}

	got := SpendSoFar(txns)
	if got != 200 {
		t.Fatalf("SpendSoFar = %.2f, want 200", got)
	}
}

func TestSpendByCategoryHasAllKeys(t *testing.T) {
	byCat := SpendByCategory(nil)
	if len(byCat) != len(model.Categories) {
		t.Fatalf("category count = %d, want %d", len(byCat), len(model.Categories))
	}
	for _, c := range model.Categories {
		v, ok := byCat[c]
		if !ok {
			t.Fatalf("missing category %q", c)
		}
		if v != 0 {
			t.Fatalf("category %q = %.2f, want 0", c, v)
		}
	}
}

func TestSpendByCategorySumsMatchSpendSoFar(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-01", 120, model.CategoryMess),
		txn(t, "2025-06-02", 340, model.CategoryOutings),
		txn(t, "2025-06-02", 60, model.CategoryOutings),
		txn(t, "2025-06-09", -200, model.CategoryMisc),
		txn(t, "2025-06-10", 45, model.CategoryTravel),
	}

	byCat := SpendByCategory(txns)
	var sum float64
	for _, v := range byCat {
		sum += v
	}
	if math.Abs(sum-SpendSoFar(txns)) > 1e-9 {
		t.Fatalf("category sum = %.2f, SpendSoFar = %.2f", sum, SpendSoFar(txns))
	}
	if byCat[model.CategoryOutings] != 400 {
		t.Fatalf("Outings = %.2f, want 400", byCat[model.CategoryOutings])
	}
}

func TestDailySeriesBuckets(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 5, 18, 30, 0, 0, time.UTC)

	txns := []model.Transaction{
		txn(t, "2025-06-01", 120, model.CategoryMess),
		txn(t, "2025-06-01", 30, model.CategoryMisc),
		txn(t, "2025-06-05", 75, model.CategoryTravel),
		txn(t, "2025-05-28", 999, model.CategoryMess),  // before month start: dropped
		txn(t, "2025-06-20", 999, model.CategoryMess),  // after today: dropped
		txn(t, "2025-06-02", -400, model.CategoryMisc), // inflow: dropped
	}

	series := DailySeries(txns, monthStart, today)
	if len(series) != 5 {
		t.Fatalf("series length = %d, want 5", len(series))
	}
	want := []float64{150, 0, 0, 0, 75}
	for i, v := range want {
		if series[i] != v {
			t.Fatalf("series[%d] = %.2f, want %.2f", i, v, want[i])
		}
	}
}

func TestDailySeriesSingleDay(t *testing.T) {
	monthStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	today := monthStart

	series := DailySeries([]model.Transaction{
		txn(t, "2025-06-01", 120, model.CategoryMess),
	}, monthStart, today)

	if len(series) != 1 || series[0] != 120 {
		t.Fatalf("series = %v, want [120]", series)
	}
}

func TestSpendByChannel(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-01", 100, model.CategoryMess),
		txn(t, "2025-06-02", 50, model.CategoryMisc),
	}
	txns[1].Channel = model.ChannelCash

	byCh := SpendByChannel(txns)
	if byCh[model.ChannelUPI] != 100 || byCh[model.ChannelCash] != 50 || byCh[model.ChannelCard] != 0 {
		t.Fatalf("byChannel = %v", byCh)
	}
}

func TestFilterByMonth(t *testing.T) {
	txns := []model.Transaction{
		txn(t, "2025-06-15", 10, model.CategoryMess),
		txn(t, "2025-05-31", 20, model.CategoryMess),
		txn(t, "2025-07-01", 30, model.CategoryMess),
	}

	got := FilterByMonth(txns, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC))
	if len(got) != 1 || got[0].Amount != 10 {
		t.Fatalf("FilterByMonth returned %d txns, want 1 (the June one)", len(got))
	}
}
