package session

import (
	"testing"
	"time"

	"khata/internal/config"
	"khata/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, today time.Time) *Session {
	t.Helper()
	s, err := New(config.DefaultConfig(), WithClock(func() time.Time { return today }))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestScenarioAEndToEnd(t *testing.T) {
	// Day 1 of the month, allowance 8000, one 120 Mess spend over UPI.
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := newTestSession(t, today)

	require.NoError(t, s.AddTransaction(120, today, model.CategoryMess, model.ChannelUPI, "mess"))

	assert.Equal(t, []float64{120}, s.DailySeries())

	fc := s.Forecast()
	assert.Equal(t, 7880.0, fc.Balance)
	assert.Equal(t, 120.0, fc.Burn)
	assert.Equal(t, 65, fc.DaysLeft)
	require.NotNil(t, fc.RunoutDate)
	assert.Equal(t, today.AddDate(0, 0, 65), *fc.RunoutDate)
}

func TestDiscretionarySpendFeedsChaiJar(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := newTestSession(t, today)
	s.CreateJar("Chai", 500)

	require.NoError(t, s.AddTransaction(200, today, model.CategoryOutings, model.ChannelUPI, ""))

	jars := s.Jars()
	require.Len(t, jars, 1)
	assert.Equal(t, float64(MicroSaveAmount), jars[0].Saved)

	// Non-discretionary spend leaves the jar alone.
	require.NoError(t, s.AddTransaction(200, today, model.CategoryMess, model.ChannelUPI, ""))
	assert.Equal(t, float64(MicroSaveAmount), s.Jars()[0].Saved)
}

func TestChaiDepositWithoutJarIsNoOp(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := newTestSession(t, today)

	require.NoError(t, s.AddTransaction(200, today, model.CategoryTravel, model.ChannelUPI, ""))
	assert.Empty(t, s.Jars())
}

func TestTopUpRecordsInflowAndSideIncome(t *testing.T) {
	today := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	s := newTestSession(t, today)

	require.NoError(t, s.TopUp(500, "freelance"))

	assert.Equal(t, 500.0, s.SideIncome())
	assert.Equal(t, 0.0, s.SpendSoFar(), "top-ups are not spend")

	txns := s.Transactions()
	require.Len(t, txns, 1)
	assert.Equal(t, -500.0, txns[0].Amount)
	assert.Equal(t, model.CategoryMisc, txns[0].Category)
	assert.Equal(t, model.ChannelUPI, txns[0].Channel)

	// balance = 8000 + 500 - 0
	assert.Equal(t, 8500.0, s.Forecast().Balance)
}

func TestAdjustJarFloorsAtZero(t *testing.T) {
	s := newTestSession(t, time.Now())
	s.CreateJar("Emergency", 5000)

	s.AdjustJar(model.JarEmergency, 300)
	s.AdjustJar(model.JarEmergency, -1000)

	assert.Equal(t, 0.0, s.Jars()[0].Saved)

	// Unknown key: silent no-op.
	s.AdjustJar("vacation", 100)
	assert.Len(t, s.Jars(), 1)
}

func TestDuplicateJarKeyIsNoOp(t *testing.T) {
	s := newTestSession(t, time.Now())
	s.CreateJar("Chai", 500)
	s.CreateJar("chai", 900)

	jars := s.Jars()
	require.Len(t, jars, 1)
	assert.Equal(t, 500.0, jars[0].Target)
}

func TestReserveForEventMirrorsFestJar(t *testing.T) {
	s := newTestSession(t, time.Now())
	s.CreateJar("Fest", 3000)
	id := s.CreateEvent("College fest", time.Now().AddDate(0, 1, 0), 1500)

	s.ReserveForEvent(id, 400)
	s.ReserveForEvent(id, 1200) // over the expected spend: allowed

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, 1600.0, events[0].Reserved)
	assert.Equal(t, 1600.0, s.Jars()[0].Saved)
}

func TestReserveWithoutFestJarStillTracksEvent(t *testing.T) {
	s := newTestSession(t, time.Now())
	id := s.CreateEvent("Fest", time.Now(), 1000)

	s.ReserveForEvent(id, 250)

	assert.Equal(t, 250.0, s.Events()[0].Reserved)
	assert.Empty(t, s.Jars())
}

func TestBudgetsApplyModeMultiplier(t *testing.T) {
	s := newTestSession(t, time.Now())

	normal := s.Budgets()[model.CategoryMess]

	s.SetMode(model.ModeTight)
	assert.InDelta(t, normal*0.75, s.Budgets()[model.CategoryMess], 1e-9)

	s.SetMode(model.ModeChill)
	assert.InDelta(t, normal*1.15, s.Budgets()[model.CategoryMess], 1e-9)
}

func TestSettlementsScenarioB(t *testing.T) {
	s := newTestSession(t, time.Now())

	id, err := s.CreateGroup("trip", []string{"A", "B", "C"})
	require.NoError(t, err)
	require.NoError(t, s.AddGroupTransaction(id, 300, "dinner", time.Now(), "A", []string{"A", "B", "C"}))

	plan, err := s.Settlements(id)
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, model.Transfer{From: "B", To: "A", Amount: 100}, plan[0])
	assert.Equal(t, model.Transfer{From: "C", To: "A", Amount: 100}, plan[1])

	// Idempotent without mutation.
	again, err := s.Settlements(id)
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}

func TestNudgesScenarioC(t *testing.T) {
	s := newTestSession(t, time.Now())
	s.CreateJar("Emergency", 5000)
	s.AdjustJar(model.JarEmergency, 500)

	found := false
	for _, msg := range s.Nudges() {
		if msg == "Emergency jar is under ₹1000. Top it up when you can." {
			found = true
		}
	}
	assert.True(t, found, "expected emergency nudge in %v", s.Nudges())
}

func TestNudgesNeverEmpty(t *testing.T) {
	s := newTestSession(t, time.Now())
	assert.NotEmpty(t, s.Nudges())
}

func TestSeedExercisesEveryModule(t *testing.T) {
	today := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := newTestSession(t, today)
	require.NoError(t, Seed(s))

	assert.Greater(t, s.SpendSoFar(), 0.0)
	assert.NotEmpty(t, s.Jars())
	assert.NotEmpty(t, s.Events())
	assert.NotEmpty(t, s.Nudges())
	assert.False(t, s.Forecast().Unbounded)

	groups, err := s.Groups()
	require.NoError(t, err)
	require.Len(t, groups, 1)

	plan, err := s.Settlements(groups[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, plan)
}
