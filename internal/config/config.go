// Package config loads and saves khata preferences. Only preferences
// live here: the ledger itself is session-scoped and never persisted.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"khata/internal/model"

	"github.com/BurntSushi/toml"
)

// Config holds all khata configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Budgets    map[string]float64 `toml:"budgets,omitempty"`
	Appearance AppearanceConfig   `toml:"appearance"`
}

// GeneralConfig holds the monthly allowance and spending mode.
type GeneralConfig struct {
	Allowance float64 `toml:"allowance"`
	Mode      string  `toml:"mode"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// defaultBudgets are the baseline monthly category budgets before the
// mode multiplier is applied.
var defaultBudgets = map[model.Category]float64{
	model.CategoryMess:      2500,
	model.CategoryOutings:   1200,
	model.CategoryGroceries: 800,
	model.CategoryTravel:    600,
	model.CategoryAcademics: 500,
	model.CategoryShopping:  700,
	model.CategoryMisc:      400,
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	budgets := make(map[string]float64, len(defaultBudgets))
	for c, v := range defaultBudgets {
		budgets[string(c)] = v
	}
	return Config{
		General: GeneralConfig{
			Allowance: 8000,
			Mode:      string(model.ModeNormal),
		},
		Budgets: budgets,
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// BaseBudgets returns the configured per-category budgets, falling back
// to defaults for categories the file leaves out.
func (c Config) BaseBudgets() map[model.Category]float64 {
	budgets := make(map[model.Category]float64, len(model.Categories))
	for _, cat := range model.Categories {
		if v, ok := c.Budgets[string(cat)]; ok {
			budgets[cat] = v
		} else {
			budgets[cat] = defaultBudgets[cat]
		}
	}
	return budgets
}

// Mode returns the configured spending mode, defaulting to normal for
// unknown values.
func (c Config) Mode() model.Mode {
	m := model.Mode(c.General.Mode)
	for _, known := range model.Modes {
		if m == known {
			return m
		}
	}
	return model.ModeNormal
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "khata")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "khata")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
