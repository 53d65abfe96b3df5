// Package session owns all screen-lifetime state: the ledger, jars,
// squads, events, mode, and allowance. Every mutation goes through a
// method here, and every derived value (aggregates, forecast, nudges)
// is eagerly recomputed from the full transaction set afterwards.
//
// One goroutine drives a Session; there is no locking because there is
// nothing concurrent to lock against.
package session

import (
	"fmt"
	"strings"
	"time"

	"khata/internal/config"
	"khata/internal/forecast"
	"khata/internal/ledger"
	"khata/internal/model"
	"khata/internal/nudge"
	"khata/internal/settle"
	"khata/internal/store"

	"github.com/google/uuid"
)

// MicroSaveAmount is the automatic chai-jar deposit made on every
// discretionary spend.
const MicroSaveAmount = 5

// Session is the single state store behind the screen.
type Session struct {
	store *store.Store
	now   func() time.Time

	allowance   float64
	mode        model.Mode
	baseBudgets map[model.Category]float64
	sideIncome  float64

	jars   []model.Jar
	events []model.Event

	// Derived snapshot, refreshed by recompute after every mutation.
	txns       []model.Transaction
	spendSoFar float64
	byCategory map[model.Category]float64
	byChannel  map[model.Channel]float64
	series     []float64
	fc         forecast.Forecast
	nudges     []string
}

// Option configures a Session at construction.
type Option func(*Session)

// WithClock overrides the session clock. Tests pin "today" with this.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New opens a fresh session seeded from config. The ledger starts empty
// every launch; only preferences come from disk.
func New(cfg config.Config, opts ...Option) (*Session, error) {
	st, err := store.Open(store.MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	s := &Session{
		store:       st,
		now:         time.Now,
		allowance:   cfg.General.Allowance,
		mode:        cfg.Mode(),
		baseBudgets: cfg.BaseBudgets(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.recompute(); err != nil {
		_ = st.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the backing store.
func (s *Session) Close() error {
	return s.store.Close()
}

// recompute reloads the ledger and refreshes every derived value. Pure
// function calls all the way down; no caching, no staleness.
func (s *Session) recompute() error {
	txns, err := s.store.ListTransactions()
	if err != nil {
		return fmt.Errorf("reloading ledger: %w", err)
	}
	s.txns = txns

	today := s.now()
	s.spendSoFar = ledger.SpendSoFar(txns)
	s.byCategory = ledger.SpendByCategory(txns)
	s.byChannel = ledger.SpendByChannel(txns)
	s.series = ledger.DailySeries(txns, ledger.MonthStart(today), today)
	s.fc = forecast.Project(s.allowance, s.sideIncome, s.spendSoFar, s.series, today)
	s.nudges = nudge.Evaluate(nudge.Input{
		SpendByCategory: s.byCategory,
		Budgets:         s.Budgets(),
		DaysLeft:        s.fc.DaysLeft,
		Unbounded:       s.fc.Unbounded,
		Jars:            s.jars,
	})
	return nil
}

// AddTransaction records a spend (or refund, when amount is negative).
// Discretionary spends drip MicroSaveAmount into the chai jar.
func (s *Session) AddTransaction(amount float64, date time.Time, cat model.Category, ch model.Channel, note string) error {
	t := model.Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   amount,
		Category: cat,
		Channel:  ch,
		Note:     note,
	}
	if err := s.store.InsertTransaction(t); err != nil {
		return fmt.Errorf("recording transaction: %w", err)
	}

	if amount > 0 && cat.Discretionary() {
		s.depositJar(model.JarChai, MicroSaveAmount)
	}

	return s.recompute()
}

// TopUp records side income: a negative Misc/UPI ledger entry plus a
// bump to the running side-income total.
func (s *Session) TopUp(amount float64, note string) error {
	t := model.Transaction{
		ID:       uuid.New(),
		Date:     s.now(),
		Amount:   -amount,
		Category: model.CategoryMisc,
		Channel:  model.ChannelUPI,
		Note:     note,
	}
	if err := s.store.InsertTransaction(t); err != nil {
		return fmt.Errorf("recording top-up: %w", err)
	}

	s.sideIncome += amount
	return s.recompute()
}

// CreateJar adds a savings jar with saved=0. The key is derived from
// the name; a duplicate key is a silent no-op.
func (s *Session) CreateJar(name string, target float64) {
	key := jarKey(name)
	for _, j := range s.jars {
		if j.Key == key {
			return
		}
	}
	s.jars = append(s.jars, model.Jar{Key: key, Name: name, Target: target})
	_ = s.recompute()
}

// AdjustJar moves a jar's saved amount by delta, flooring at zero.
// Unknown keys are a silent no-op.
func (s *Session) AdjustJar(key string, delta float64) {
	for i := range s.jars {
		if s.jars[i].Key != key {
			continue
		}
		s.jars[i].Saved += delta
		if s.jars[i].Saved < 0 {
			s.jars[i].Saved = 0
		}
		_ = s.recompute()
		return
	}
}

// depositJar adds to a jar without the zero floor (amounts here are
// always positive). Missing jars are a silent no-op.
func (s *Session) depositJar(key string, amount float64) {
	for i := range s.jars {
		if s.jars[i].Key == key {
			s.jars[i].Saved += amount
			return
		}
	}
}

// CreateGroup starts a new squad and returns its ID.
func (s *Session) CreateGroup(name string, members []string) (uuid.UUID, error) {
	g := model.Group{ID: uuid.New(), Name: name, Members: members}
	if err := s.store.InsertSquad(g); err != nil {
		return uuid.Nil, fmt.Errorf("creating squad: %w", err)
	}
	return g.ID, nil
}

// AddGroupTransaction records a shared expense. splitWith must be a
// non-empty subset of the squad's members; the forms enforce that
// before calling in.
func (s *Session) AddGroupTransaction(groupID uuid.UUID, amount float64, description string, date time.Time, paidBy string, splitWith []string) error {
	t := model.GroupTransaction{
		ID:          uuid.New(),
		Date:        date,
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitWith:   splitWith,
	}
	if err := s.store.InsertSquadTxn(groupID, t); err != nil {
		return fmt.Errorf("recording squad expense: %w", err)
	}
	return nil
}

// CreateEvent adds a calendar event with nothing reserved yet.
func (s *Session) CreateEvent(name string, date time.Time, expectedSpend float64) uuid.UUID {
	e := model.Event{ID: uuid.New(), Name: name, Date: date, ExpectedSpend: expectedSpend}
	s.events = append(s.events, e)
	return e.ID
}

// ReserveForEvent sets money aside for an event and mirrors the same
// amount into the fest jar. No cap: over-reserving is allowed.
func (s *Session) ReserveForEvent(eventID uuid.UUID, amount float64) {
	for i := range s.events {
		if s.events[i].ID == eventID {
			s.events[i].Reserved += amount
			s.depositJar(model.JarFest, amount)
			_ = s.recompute()
			return
		}
	}
}

// SetMode switches the global budget-tightness mode.
func (s *Session) SetMode(m model.Mode) {
	s.mode = m
	_ = s.recompute()
}

// SetAllowance updates the monthly allowance.
func (s *Session) SetAllowance(amount float64) {
	s.allowance = amount
	_ = s.recompute()
}

// Forecast returns the current run-out projection.
func (s *Session) Forecast() forecast.Forecast { return s.fc }

// SpendSoFar returns total positive spend this session.
func (s *Session) SpendSoFar() float64 { return s.spendSoFar }

// SpendByCategory returns per-category spend totals (all 7 keys present).
func (s *Session) SpendByCategory() map[model.Category]float64 { return s.byCategory }

// SpendByChannel returns per-channel spend totals.
func (s *Session) SpendByChannel() map[model.Channel]float64 { return s.byChannel }

// DailySeries returns the month-to-date daily spend buckets.
func (s *Session) DailySeries() []float64 { return s.series }

// Budgets returns category budgets with the mode multiplier applied.
func (s *Session) Budgets() map[model.Category]float64 {
	mult := s.mode.Multiplier()
	budgets := make(map[model.Category]float64, len(s.baseBudgets))
	for c, v := range s.baseBudgets {
		budgets[c] = v * mult
	}
	return budgets
}

// Settlements computes the transfer plan for one squad, fresh from its
// current transaction list.
func (s *Session) Settlements(groupID uuid.UUID) ([]model.Transfer, error) {
	g, ok, err := s.store.Squad(groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return settle.Plan(g), nil
}

// Nets computes per-member balances for one squad.
func (s *Session) Nets(groupID uuid.UUID) (map[string]float64, error) {
	g, ok, err := s.store.Squad(groupID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return settle.Net(g), nil
}

// Nudges returns the current advisory messages, never empty.
func (s *Session) Nudges() []string { return s.nudges }

// Transactions returns the ledger, newest first.
func (s *Session) Transactions() []model.Transaction { return s.txns }

// Jars returns the savings jars in creation order.
func (s *Session) Jars() []model.Jar { return s.jars }

// Groups returns all squads.
func (s *Session) Groups() ([]model.Group, error) { return s.store.LoadSquads() }

// Events returns the calendar events in creation order.
func (s *Session) Events() []model.Event { return s.events }

// Mode returns the active spending mode.
func (s *Session) Mode() model.Mode { return s.mode }

// Allowance returns the monthly allowance.
func (s *Session) Allowance() float64 { return s.allowance }

// SideIncome returns the running top-up total.
func (s *Session) SideIncome() float64 { return s.sideIncome }

// Today returns the session clock's current time.
func (s *Session) Today() time.Time { return s.now() }

// jarKey derives a stable lookup key from a display name.
func jarKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
