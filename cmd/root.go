// Package cmd implements the khata CLI commands.
package cmd

import (
	"fmt"
	"os"

	"khata/internal/config"
	"khata/internal/model"
	"khata/internal/session"
	"khata/internal/tui"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagAllowance float64
	flagMode      string
	flagTheme     string
)

var rootCmd = &cobra.Command{
	Use:   "khata",
	Short: "A one-screen pocket ledger for the month",
	Long: "Track spending against a monthly allowance: burn rate, run-out date,\n" +
		"savings jars, squad settle-ups, and event reserves. Everything lives in\n" +
		"memory for the session; only preferences are saved.",
	RunE: runRoot,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64VarP(&flagAllowance, "allowance", "a", 0, "Override the monthly allowance for this run")
	rootCmd.PersistentFlags().StringVarP(&flagMode, "mode", "m", "", "Spending mode: tight, normal, or chill")
	rootCmd.PersistentFlags().StringVarP(&flagTheme, "theme", "t", "", "Color theme for this run")
}

func runRoot(_ *cobra.Command, _ []string) error {
	return launchTUI(false)
}

// sessionConfig builds the effective config: file settings with any
// flag overrides applied on top.
func sessionConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	if flagAllowance > 0 {
		cfg.General.Allowance = flagAllowance
	}
	if m := model.Mode(flagMode); m.Valid() {
		cfg.General.Mode = flagMode
	}
	if flagTheme != "" {
		cfg.Appearance.Theme = flagTheme
	}

	return cfg
}

// launchTUI opens a session (optionally demo-seeded) and runs the screen.
func launchTUI(seed bool) error {
	cfg := sessionConfig()
	theme.SetActive(cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	sess, err := session.New(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	if seed {
		if err := session.Seed(sess); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	p := tea.NewProgram(tui.NewApp(sess), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
