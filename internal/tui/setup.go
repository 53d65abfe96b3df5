package tui

import (
	"fmt"
	"strconv"
	"strings"

	"khata/internal/config"
	"khata/internal/model"
	"khata/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// setupValues collects the first-run wizard answers.
type setupValues struct {
	allowance string
	mode      string
	theme     string
}

func newSetupValues() *setupValues {
	cfg := config.DefaultConfig()
	return &setupValues{
		allowance: fmt.Sprintf("%.0f", cfg.General.Allowance),
		mode:      cfg.General.Mode,
		theme:     cfg.Appearance.Theme,
	}
}

// newSetupForm builds the first-run wizard shown when no config exists.
func newSetupForm(v *setupValues) *huh.Form {
	themeOpts := make([]huh.Option[string], len(theme.All))
	for i, t := range theme.All {
		themeOpts[i] = huh.NewOption(t.Name, t.Name)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to khata").
				Description("A pocket ledger for the month. Two quick questions."),
			huh.NewInput().
				Title("Monthly allowance (₹)").
				Description("What lands in your account at the start of the month").
				Validate(validAmount).
				Value(&v.allowance),
			huh.NewSelect[string]().
				Title("Spending mode").
				Options(
					huh.NewOption("Tight (exams or broke, budgets at 75%)", string(model.ModeTight)),
					huh.NewOption("Normal (budgets as configured)", string(model.ModeNormal)),
					huh.NewOption("Chill (fest season, budgets at 115%)", string(model.ModeChill)),
				).
				Value(&v.mode),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&v.theme),
		),
	)
}

// saveSetupConfig persists the wizard answers and applies them to the
// live session. Save failures are non-fatal; the choices still apply
// for this run.
func (a *App) saveSetupConfig() {
	if a.setupVals == nil {
		return
	}

	cfg := loadConfigOrDefault()

	if amt, err := strconv.ParseFloat(strings.TrimSpace(a.setupVals.allowance), 64); err == nil && amt > 0 {
		cfg.General.Allowance = amt
		a.sess.SetAllowance(amt)
	}

	if m := model.Mode(a.setupVals.mode); m.Valid() {
		cfg.General.Mode = a.setupVals.mode
		a.sess.SetMode(m)
	}

	cfg.Appearance.Theme = a.setupVals.theme
	theme.SetActive(a.setupVals.theme)

	_ = config.Save(cfg)
}
