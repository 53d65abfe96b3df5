package tui

import (
	"fmt"
	"strconv"
	"strings"

	"khata/internal/cli"
	"khata/internal/config"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldAllowance = iota
	settingsFieldMode
	settingsFieldTheme
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 20
	return ti
}

func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
		return a, nil, true
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true
	case "enter":
		m, cmd := a.settingsActivate()
		return m, cmd, true
	}
	return a, nil, false
}

// settingsActivate edits the allowance or cycles mode/theme in place.
func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	a.settings.saved = false

	switch a.settings.cursor {
	case settingsFieldAllowance:
		ti := newSettingsInput()
		ti.Placeholder = "8000"
		ti.SetValue(fmt.Sprintf("%.0f", a.sess.Allowance()))
		ti.Focus()
		a.settings.editing = true
		a.settings.input = ti
		return a, ti.Cursor.BlinkCmd()

	case settingsFieldMode:
		next := a.sess.Mode().Next()
		a.sess.SetMode(next)
		cfg := loadConfigOrDefault()
		cfg.General.Mode = string(next)
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		return a, nil

	case settingsFieldTheme:
		cur := 0
		for i, t := range theme.All {
			if t.Name == theme.Active.Name {
				cur = i
				break
			}
		}
		next := theme.All[(cur+1)%len(theme.All)]
		theme.SetActive(next.Name)
		cfg := loadConfigOrDefault()
		cfg.Appearance.Theme = next.Name
		a.settings.saveErr = config.Save(cfg)
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	}

	return a, nil
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "enter":
		val := strings.TrimSpace(a.settings.input.Value())
		if amt, err := strconv.ParseFloat(val, 64); err == nil && amt > 0 {
			a.sess.SetAllowance(amt)
			cfg := loadConfigOrDefault()
			cfg.General.Allowance = amt
			a.settings.saveErr = config.Save(cfg)
			a.settings.saved = a.settings.saveErr == nil
		}
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceHover).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover)

	type field struct {
		label string
		value string
	}

	fields := []field{
		{"Allowance", cli.FormatMoney(a.sess.Allowance())},
		{"Mode", fmt.Sprintf("%s (budgets ×%.2f)", a.sess.Mode().Label(), a.sess.Mode().Multiplier())},
		{"Theme", theme.Active.Name},
	}

	var formBody strings.Builder
	for i, f := range fields {
		// Show text input if currently editing this field
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-12s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-12s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker)
			formBody.WriteString(label)
			formBody.WriteString(value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			innerW := components.CardInnerWidth(cw)
			padLen := innerW - usedWidth
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceHover).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-12s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit or cycle  [Esc] cancel"))

	// Session info card
	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.ConfigPath()) + "\n")
	infoBody.WriteString(labelStyle.Render("Transactions: ") + valueStyle.Render(cli.FormatNumber(int64(len(a.sess.Transactions())))) + "\n")
	infoBody.WriteString(labelStyle.Render("Side income:  ") + valueStyle.Render(cli.FormatMoney(a.sess.SideIncome())) + "\n")
	infoBody.WriteString(labelStyle.Render("Note:         ") + valueStyle.Render("the ledger lives in memory and resets on quit"))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Session", infoBody.String(), cw))

	return b.String()
}
