// Package store keeps the session's ledger and squads in an in-memory
// SQLite database. Nothing here touches disk: the database lives and
// dies with the screen, it just gives the session a real transaction
// log to recompute aggregates from.
package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"khata/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // register sqlite driver
)

// MemoryDSN is the in-memory database every session opens.
const MemoryDSN = ":memory:"

// Store holds the session's mutable ledger state.
type Store struct {
	db *sql.DB
}

// Open creates the store. Pass MemoryDSN for normal use; tests may do
// the same.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn+"?_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	// A second pool connection would get its own empty :memory: db.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// InsertTransaction appends one ledger entry.
func (s *Store) InsertTransaction(t model.Transaction) error {
	_, err := s.db.Exec(`INSERT INTO transactions (id, date, amount, category, channel, note)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID.String(), t.Date.UTC().Format(time.RFC3339), t.Amount,
		string(t.Category), string(t.Channel), t.Note,
	)
	return err
}

// ListTransactions returns the full ledger, newest first.
func (s *Store) ListTransactions() ([]model.Transaction, error) {
	rows, err := s.db.Query(`SELECT id, date, amount, category, channel, note
		FROM transactions ORDER BY date DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var id, date string
		var note sql.NullString
		var cat, ch string
		if err := rows.Scan(&id, &date, &t.Amount, &cat, &ch, &note); err != nil {
			return nil, err
		}
		t.ID, _ = uuid.Parse(id)
		t.Date, _ = time.Parse(time.RFC3339, date)
		t.Category = model.Category(cat)
		t.Channel = model.Channel(ch)
		if note.Valid {
			t.Note = note.String
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// InsertSquad stores a new squad with its member list.
func (s *Store) InsertSquad(g model.Group) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO squads (id, name, created_at) VALUES (?, ?, ?)`,
		g.ID.String(), g.Name, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, m := range g.Members {
		_, err = tx.Exec(`INSERT INTO squad_members (squad_id, position, name) VALUES (?, ?, ?)`,
			g.ID.String(), i, m)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// InsertSquadTxn appends a shared expense to a squad.
func (s *Store) InsertSquadTxn(squadID uuid.UUID, t model.GroupTransaction) error {
	_, err := s.db.Exec(`INSERT INTO squad_txns (id, squad_id, date, description, amount, paid_by, split_with)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID.String(), squadID.String(), t.Date.UTC().Format(time.RFC3339),
		t.Description, t.Amount, t.PaidBy, strings.Join(t.SplitWith, "|"),
	)
	return err
}

// LoadSquads returns all squads in creation order, members in display
// order, expenses in insertion order.
func (s *Store) LoadSquads() ([]model.Group, error) {
	rows, err := s.db.Query(`SELECT id, name FROM squads ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var squads []model.Group
	idx := make(map[string]int)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		g := model.Group{Name: name}
		g.ID, _ = uuid.Parse(id)
		idx[id] = len(squads)
		squads = append(squads, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	memberRows, err := s.db.Query(`SELECT squad_id, name FROM squad_members ORDER BY squad_id, position`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = memberRows.Close() }()

	for memberRows.Next() {
		var sid, name string
		if err := memberRows.Scan(&sid, &name); err != nil {
			return nil, err
		}
		if i, ok := idx[sid]; ok {
			squads[i].Members = append(squads[i].Members, name)
		}
	}
	if err := memberRows.Err(); err != nil {
		return nil, err
	}

	txnRows, err := s.db.Query(`SELECT id, squad_id, date, description, amount, paid_by, split_with
		FROM squad_txns ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = txnRows.Close() }()

	for txnRows.Next() {
		var t model.GroupTransaction
		var id, sid, date, splitWith string
		var desc sql.NullString
		if err := txnRows.Scan(&id, &sid, &date, &desc, &t.Amount, &t.PaidBy, &splitWith); err != nil {
			return nil, err
		}
		t.ID, _ = uuid.Parse(id)
		t.Date, _ = time.Parse(time.RFC3339, date)
		if desc.Valid {
			t.Description = desc.String
		}
		t.SplitWith = strings.Split(splitWith, "|")
		if i, ok := idx[sid]; ok {
			squads[i].Txns = append(squads[i].Txns, t)
		}
	}
	return squads, txnRows.Err()
}

// Squad returns one squad by ID.
func (s *Store) Squad(id uuid.UUID) (model.Group, bool, error) {
	squads, err := s.LoadSquads()
	if err != nil {
		return model.Group{}, false, err
	}
	for _, g := range squads {
		if g.ID == id {
			return g, true, nil
		}
	}
	return model.Group{}, false, nil
}

// TransactionCount returns the number of ledger entries.
func (s *Store) TransactionCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM transactions`).Scan(&count)
	return count, err
}
