// Package tui provides the interactive Bubble Tea calculator for worthit.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/worthit/internal/config"
	"github.com/theirongolddev/worthit/internal/store"
	"github.com/theirongolddev/worthit/internal/tui/components"
	"github.com/theirongolddev/worthit/internal/tui/theme"
)

// PreferenceStore persists the schedule between runs.
type PreferenceStore interface {
	SavePreferences(p store.Preferences) error
}

// Options configures NewApp.
type Options struct {
	Config    config.Config
	Prefs     PreferenceStore
	PrefsPath string
	Schedule  store.Preferences // loaded preferences
	Defaults  store.Preferences // what [r] resets to
	FirstRun  bool
}

// App is the root Bubble Tea model.
type App struct {
	cfg       config.Config
	prefs     PreferenceStore
	prefsPath string
	sched     store.Preferences
	defaults  store.Preferences

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab state
	calc     calcState
	settings settingsState

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	setupErr  error
	needSetup bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 110
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	theme.SetActive(config.GetTheme(opts.Config))

	a := App{
		cfg:       opts.Config,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		sched:     opts.Schedule,
		defaults:  opts.Defaults,
		needSetup: opts.FirstRun,
		calc:      calcState{vals: &calcValues{}},
	}

	if a.needSetup {
		a.setupVals = &setupValues{
			Period: string(a.sched.SalaryPeriod),
			Days:   a.sched.WorkDaysPerWeek,
			Hours:  a.sched.WorkHoursPerDay,
			Theme:  theme.Active.Name,
		}
		a.setupForm = newSetupForm(a.setupVals)
	} else {
		a.startCalc()
	}
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion}
	switch {
	case a.setupForm != nil:
		cmds = append(cmds, a.setupForm.Init())
	case a.calc.form != nil:
		cmds = append(cmds, a.calc.form.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		if a.calc.form != nil {
			a.calc.form = a.calc.form.WithWidth(components.CardInnerWidth(a.contentWidth()))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil {
			return a, nil
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup wizard intercepts all keys
		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		// An open calculator form owns the keyboard; esc hands it back.
		if a.activeTab == components.TabCalculator && a.calc.form != nil {
			if key == "esc" {
				a.calc.form = nil
				return a, nil
			}
			return a.updateCalcForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activeTab == components.TabSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "l", "right", "+", "enter", " ":
				a.settingsAdjust(1)
				return a, nil
			case "h", "left", "-":
				a.settingsAdjust(-1)
				return a, nil
			case "r":
				a.settingsReset()
				return a, nil
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "t":
			a.setTheme(theme.Toggled(theme.Active))
			return a, nil
		case "n", "enter":
			a.activeTab = components.TabCalculator
			a.startCalc()
			return a, a.calc.form.Init()
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, etc.) to an open form.
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.calc.form != nil {
		return a.updateCalcForm(msg)
	}
	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.setupErr = a.saveSetup()
		a.finishSetup()
		return a, a.calc.form.Init()
	case huh.StateAborted:
		a.finishSetup()
		return a, a.calc.form.Init()
	}

	return a, cmd
}

func (a *App) finishSetup() {
	a.needSetup = false
	a.setupForm = nil
	a.startCalc()
}

func (a App) updateCalcForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.calc.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.calc.form = f
	}

	switch a.calc.form.State {
	case huh.StateCompleted:
		a.submitCalc()
		return a, nil
	case huh.StateAborted:
		a.calc.form = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.setupForm != nil {
		return a.setupForm.View()
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
		"\n  Terminal too narrow (%d cols)\n\n  worthit needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"c s", "Jump to tab"},
			{"tab", "Next tab"},
			{"j k", "Move between settings"},
			{"h l", "Adjust a setting"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"n", "New calculation"},
			{"esc", "Leave the form"},
			{"r", "Reset schedule (settings)"},
			{"t", "Toggle light / dark"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-6s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) scheduleLabel() string {
	return fmt.Sprintf("%s · %dd × %dh", a.sched.SalaryPeriod, a.sched.WorkDaysPerWeek, a.sched.WorkHoursPerDay)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	hints := "[?]help  [n]ew  [t]heme  [q]uit"
	if a.calc.form != nil && a.activeTab == components.TabCalculator {
		hints = "[enter]next  [esc]leave form  [ctrl+c]quit"
	}
	statusBar := components.RenderStatusBar(w, hints, a.scheduleLabel())

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case components.TabCalculator:
		content = a.renderCalculatorTab(cw)
	case components.TabSettings:
		content = a.renderSettingsTab(cw)
	}
	if a.setupErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		content = warn.Render(fmt.Sprintf("Could not save setup: %s (applies to this session only)", a.setupErr)) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

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
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
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

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
