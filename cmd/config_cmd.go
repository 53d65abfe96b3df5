package cmd

import (
	"fmt"

	"khata/internal/cli"
	"khata/internal/config"
	"khata/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Allowance: %s\n", cli.FormatMoney(cfg.General.Allowance))
	mode := cfg.Mode()
	fmt.Printf("    Mode:      %s (budgets ×%.2f)\n", mode.Label(), mode.Multiplier())
	fmt.Println()

	fmt.Println("  [Budgets]")
	budgets := cfg.BaseBudgets()
	for _, c := range model.Categories {
		fmt.Printf("    %-10s %s\n", string(c), cli.FormatMoney(budgets[c]))
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  The first launch without a config file runs a quick setup.")
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Printf("  Config already exists at %s\n", config.ConfigPath())
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote defaults to %s\n", config.ConfigPath())
	return nil
}
