package store

import (
	"testing"
	"time"

	"khata/internal/model"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInsertAndListTransactions(t *testing.T) {
	s := openTestStore(t)

	first := model.Transaction{
		ID:       uuid.New(),
		Date:     time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		Amount:   120,
		Category: model.CategoryMess,
		Channel:  model.ChannelUPI,
		Note:     "lunch",
	}
	second := model.Transaction{
		ID:       uuid.New(),
		Date:     time.Date(2025, 6, 5, 20, 0, 0, 0, time.UTC),
		Amount:   -500,
		Category: model.CategoryMisc,
		Channel:  model.ChannelUPI,
	}

	if err := s.InsertTransaction(first); err != nil {
		t.Fatalf("InsertTransaction: %v", err)
	}
	if err := s.InsertTransaction(second); err != nil {
		t.Fatalf("InsertTransaction: %v", err)
	}

	txns, err := s.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if len(txns) != 2 {
		t.Fatalf("transaction count = %d, want 2", len(txns))
	}
	// Newest first.
	if txns[0].ID != second.ID {
		t.Fatalf("first listed = %s, want newest entry", txns[0].ID)
	}
	if txns[1].Note != "lunch" || txns[1].Category != model.CategoryMess {
		t.Fatalf("round-trip lost fields: %+v", txns[1])
	}
}

func TestSquadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	g := model.Group{
		ID:      uuid.New(),
		Name:    "Goa trip",
		Members: []string{"Aman", "Priya", "Rahul"},
	}
	if err := s.InsertSquad(g); err != nil {
		t.Fatalf("InsertSquad: %v", err)
	}

	exp := model.GroupTransaction{
		ID:          uuid.New(),
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Description: "hostel",
		Amount:      300,
		PaidBy:      "Aman",
		SplitWith:   []string{"Aman", "Priya", "Rahul"},
	}
	if err := s.InsertSquadTxn(g.ID, exp); err != nil {
		t.Fatalf("InsertSquadTxn: %v", err)
	}

	squads, err := s.LoadSquads()
	if err != nil {
		t.Fatalf("LoadSquads: %v", err)
	}
	if len(squads) != 1 {
		t.Fatalf("squad count = %d, want 1", len(squads))
	}

	got := squads[0]
	if got.Name != "Goa trip" {
		t.Fatalf("name = %q", got.Name)
	}
	if len(got.Members) != 3 || got.Members[0] != "Aman" || got.Members[2] != "Rahul" {
		t.Fatalf("members = %v, want display order preserved", got.Members)
	}
	if len(got.Txns) != 1 {
		t.Fatalf("txn count = %d, want 1", len(got.Txns))
	}
	if len(got.Txns[0].SplitWith) != 3 {
		t.Fatalf("split_with = %v", got.Txns[0].SplitWith)
	}
}

func TestSquadLookup(t *testing.T) {
	s := openTestStore(t)

	g := model.Group{ID: uuid.New(), Name: "flatmates", Members: []string{"A", "B"}}
	if err := s.InsertSquad(g); err != nil {
		t.Fatalf("InsertSquad: %v", err)
	}

	found, ok, err := s.Squad(g.ID)
	if err != nil || !ok {
		t.Fatalf("Squad: ok=%v err=%v", ok, err)
	}
	if found.Name != "flatmates" {
		t.Fatalf("name = %q", found.Name)
	}

	_, ok, err = s.Squad(uuid.New())
	if err != nil {
		t.Fatalf("Squad(miss): %v", err)
	}
	if ok {
		t.Fatal("lookup of unknown squad reported ok")
	}
}

func TestTransactionCount(t *testing.T) {
	s := openTestStore(t)

	n, err := s.TransactionCount()
	if err != nil || n != 0 {
		t.Fatalf("empty count = %d, err %v", n, err)
	}

	_ = s.InsertTransaction(model.Transaction{
		ID: uuid.New(), Date: time.Now(), Amount: 10,
		Category: model.CategoryMisc, Channel: model.ChannelCash,
	})

	n, err = s.TransactionCount()
	if err != nil || n != 1 {
		t.Fatalf("count = %d, err %v, want 1", n, err)
	}
}
