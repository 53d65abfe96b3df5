// Package tui provides the interactive Bubble Tea screen for khata.
package tui

import (
	"fmt"
	"strings"

	"khata/internal/cli"
	"khata/internal/config"
	"khata/internal/session"
	"khata/internal/tui/components"
	"khata/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// App is the root Bubble Tea model.
type App struct {
	sess *session.Session

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	status    string

	// Modal action form (huh). formVals is a pointer so the form keeps
	// writing into the same struct across Bubble Tea model copies.
	form     *huh.Form
	formKind formKind
	formVals *formValues

	// Per-tab state
	ledState   ledgerState
	jarState   jarsState
	squadState squadsState
	eventState eventsState
	settings   settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

const (
	minTerminalWidth = 72
	compactWidth     = 100
	maxContentWidth  = 130

	minContentHeight = 5
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the screen can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app model around an open session.
func NewApp(sess *session.Session) App {
	return App{
		sess:      sess,
		needSetup: !config.Exists(),
	}
}

// Init implements tea.Model. The setup form, when needed, is created on
// the first WindowSizeMsg so it can be sized to the terminal.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.needSetup && a.setupForm == nil {
			a.setupVals = newSetupValues()
			a.setupForm = newSetupForm(a.setupVals)
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
			return a, a.setupForm.Init()
		}
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// Active action form intercepts all keys
		if a.form != nil {
			return a.updateActionForm(msg)
		}

		// Settings tab text input intercepts keys while editing
		if a.activeTab == 5 && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		// Any keypress clears the last action status
		a.status = ""

		// Per-tab keybindings
		switch a.activeTab {
		case 1:
			if m, cmd, handled := a.updateLedgerKeys(key); handled {
				return m, cmd
			}
		case 2:
			if m, cmd, handled := a.updateJarsKeys(key); handled {
				return m, cmd
			}
		case 3:
			if m, cmd, handled := a.updateSquadsKeys(key); handled {
				return m, cmd
			}
		case 4:
			if m, cmd, handled := a.updateEventsKeys(key); handled {
				return m, cmd
			}
		case 5:
			if m, cmd, handled := a.updateSettingsKeys(key); handled {
				return m, cmd
			}
		}

		if key == "q" {
			return a, tea.Quit
		}

		// Tab navigation
		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}
		switch key {
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		}
		return a, nil
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.form != nil {
		return a.updateActionForm(msg)
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.saveSetupConfig()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) updateActionForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		a.status = a.applyForm()
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

// openForm activates a modal form sized to the current terminal.
func (a App) openForm(kind formKind, build func(v *formValues) *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.formVals = &formValues{}
	form := build(a.formVals)
	if a.width > 0 {
		form = form.WithWidth(a.width).WithHeight(a.height)
	}
	a.form = form
	return a, form.Init()
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.form != nil {
		return a.viewForm()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  khata needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	card := cardStyle.Render(a.form.View())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Blue).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o l j s e x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"a", "Add spend (Ledger)"},
		{"t", "Record top-up (Ledger)"},
		{"n", "New jar / squad / event"},
		{"+ -", "Adjust selected jar"},
		{"r", "Reserve for event (Events)"},
		{"Enter", "Edit / Confirm"},
		{"Esc", "Back / Cancel"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-12s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + mode pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pillAccentStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	fc := a.sess.Forecast()
	pill := pillStyle.Render(" ") +
		pillAccentStyle.Render(a.sess.Mode().Label()) +
		pillStyle.Render(" │ ") +
		pillAccentStyle.Render(cli.FormatMoney(fc.Balance)) +
		pillStyle.Render(" left ")

	pillRowStyle := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		pillRowStyle.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.status)

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderLedgerTab(cw, contentH)
	case 2:
		content = a.renderJarsTab(cw)
	case 3:
		content = a.renderSquadsTab(cw)
	case 4:
		content = a.renderEventsTab(cw)
	case 5:
		content = a.renderSettingsTab(cw)
	}

	// 5. Truncate + pad to exactly contentH lines
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content (handles centering when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// dayLabels builds X-axis labels "1".."n" for the month-to-date series.
func dayLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d", i+1)
	}
	return labels
}
