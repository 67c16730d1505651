package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkaganek/tick/internal/config"
	"github.com/mkaganek/tick/internal/db"
	"github.com/mkaganek/tick/internal/parser"
	"github.com/mkaganek/tick/internal/syncer"
	"github.com/mkaganek/tick/internal/timer"
)

// DashboardModel is the TUI model for the live multi-timer dashboard. One
// shared tick refreshes every running timer; there are no per-timer
// schedules to leak.
type DashboardModel struct {
	width  int
	height int

	adapter *syncer.Adapter
	cfg     *config.Config

	// Timer table state
	records []timer.Record
	cursor  int

	// New-timer form state
	formActive bool
	form       *huh.Form
	formEntry  *string

	// Cached lookups so the render loop stays off the database
	projectNames map[uint]string
	tagNames     map[uint]string

	notice   string
	noticeAt time.Time
	quitting bool
}

// dashTickMsg drives the shared refresh for all running timers
type dashTickMsg time.Time

// NewDashboardModel creates the dashboard over a loaded sync adapter.
func NewDashboardModel(adapter *syncer.Adapter, cfg *config.Config) DashboardModel {
	entry := ""
	return DashboardModel{
		adapter:      adapter,
		cfg:          cfg,
		records:      adapter.Set().List(),
		formEntry:    &entry,
		projectNames: make(map[uint]string),
		tagNames:     make(map[uint]string),
	}
}

// Init starts the shared ticker
func (m DashboardModel) Init() tea.Cmd {
	return m.tick()
}

func (m DashboardModel) tick() tea.Cmd {
	return tea.Tick(m.cfg.TickInterval, func(t time.Time) tea.Msg {
		return dashTickMsg(t)
	})
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashTickMsg:
		m.adapter.Tick(time.Time(msg))
		m.records = m.adapter.Set().List()
		if m.cursor >= len(m.records) {
			m.cursor = max(0, len(m.records)-1)
		}
		if err := m.adapter.LastError(); err != nil {
			m.setNotice(fmt.Sprintf("⚠ %v", err))
		} else if m.notice != "" && time.Since(m.noticeAt) > 5*time.Second {
			m.notice = ""
		}
		if m.quitting {
			return m, nil
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.formActive {
			return m.updateForm(msg)
		}
		return m.handleKeys(msg)
	}

	if m.formActive {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m DashboardModel) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.New):
		return m.openForm()

	case key.Matches(msg, keys.Pause):
		if rec, ok := m.selected(); ok {
			var err error
			if rec.Running {
				err = m.adapter.Pause(rec.ID)
			} else {
				err = m.adapter.Resume(rec.ID)
			}
			m.reportAction(err)
			m.records = m.adapter.Set().List()
		}

	case key.Matches(msg, keys.Stop):
		if rec, ok := m.selected(); ok {
			snap, err := m.adapter.Stop(rec.ID)
			if err == nil {
				m.setNotice(fmt.Sprintf("⏹ Recorded %s (%s)", snap.Name, timer.FormatDuration(snap.Duration)))
			}
			m.reportAction(err)
			m.records = m.adapter.Set().List()
		}

	case key.Matches(msg, keys.Cancel):
		if rec, ok := m.selected(); ok {
			err := m.adapter.Cancel(rec.ID)
			if err == nil {
				m.setNotice(fmt.Sprintf("🗑 Discarded %s", rec.Name))
			}
			m.reportAction(err)
			m.records = m.adapter.Set().List()
		}
	}
	return m, nil
}

func (m DashboardModel) openForm() (tea.Model, tea.Cmd) {
	*m.formEntry = ""
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("New timer").
			Description("Write report @acme #deep,writing").
			Value(m.formEntry),
	))
	m.formActive = true
	return m, m.form.Init()
}

func (m DashboardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.formActive = false
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.startFromEntry(*m.formEntry)
		m.form = nil
		m.records = m.adapter.Set().List()
	} else if m.form != nil && m.form.State == huh.StateAborted {
		m.formActive = false
		m.form = nil
	}
	return m, cmd
}

// startFromEntry parses the smart-syntax entry and starts the timer.
func (m *DashboardModel) startFromEntry(input string) {
	parsed := parser.ParseTitle(input)
	if len(parsed.Errors) > 0 {
		m.setNotice("⚠ " + strings.Join(parsed.Errors, ", "))
		return
	}

	var projectID *uint
	if parsed.Project != "" {
		project, err := db.FindOrCreateProject(m.cfg.User, parsed.Project)
		if err != nil {
			m.setNotice(fmt.Sprintf("⚠ %v", err))
			return
		}
		projectID = &project.ID
	}

	var tagIDs []uint
	if len(parsed.Tags) > 0 {
		tags, err := db.FindOrCreateTags(parsed.Tags)
		if err != nil {
			m.setNotice(fmt.Sprintf("⚠ %v", err))
			return
		}
		tagIDs = db.TagIDs(tags)
	}

	if _, err := m.adapter.StartNew(parsed.Description, projectID, tagIDs); err != nil {
		m.reportAction(err)
		return
	}
	m.setNotice("⏱ Started " + parsed.Description)
}

func (m *DashboardModel) selected() (timer.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.records) {
		return timer.Record{}, false
	}
	return m.records[m.cursor], true
}

func (m *DashboardModel) setNotice(s string) {
	m.notice = s
	m.noticeAt = time.Now()
}

func (m *DashboardModel) reportAction(err error) {
	if err != nil {
		m.setNotice(fmt.Sprintf("⚠ %v", err))
	}
}

// projectName memoizes project lookups for the render loop.
func (m *DashboardModel) projectName(id uint) string {
	if name, ok := m.projectNames[id]; ok {
		return name
	}
	name := "?"
	if p, err := db.GetProjectByID(id); err == nil {
		name = p.Name
	}
	m.projectNames[id] = name
	return name
}

// tagLabel memoizes tag lookups for the render loop.
func (m *DashboardModel) tagLabel(ids []uint) string {
	var names []string
	var missing []uint
	for _, id := range ids {
		if name, ok := m.tagNames[id]; ok {
			names = append(names, "#"+name)
		} else {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		if tags, err := db.GetTagsByIDs(missing); err == nil {
			for _, tag := range tags {
				m.tagNames[tag.ID] = tag.Name
				names = append(names, "#"+tag.Name)
			}
		}
	}
	return strings.Join(names, " ")
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)
	header := titleStyle.Render("tick — active timers")

	var body string
	if m.formActive && m.form != nil {
		body = m.form.View()
	} else {
		body = m.renderTable()
	}

	sections := []string{header, "", body}
	if m.notice != "" {
		noticeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning))
		if strings.HasPrefix(m.notice, "⚠") {
			noticeStyle = noticeStyle.Foreground(lipgloss.Color(ColorError))
		}
		sections = append(sections, "", noticeStyle.Render(m.notice))
	}
	sections = append(sections, "", m.renderHelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderTable() string {
	if len(m.records) == 0 {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText)).
			Render("No active timers. Press n to start one.")
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentBright)).
		Bold(true)
	runningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	metaStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	var rows []string
	for i, rec := range m.records {
		marker := "  "
		if i == m.cursor {
			marker = "❯ "
		}

		state := "▶"
		style := runningStyle
		if !rec.Running {
			state = "⏸"
			style = pausedStyle
		}
		if i == m.cursor {
			style = selectedStyle
		}

		name := rec.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		var meta []string
		if rec.ProjectID != nil {
			meta = append(meta, "@"+m.projectName(*rec.ProjectID))
		}
		if label := m.tagLabel(rec.Tags()); label != "" {
			meta = append(meta, label)
		}

		line := fmt.Sprintf("%s%s %-42s %10s", marker, state, name, timer.FormatClock(rec.Elapsed))
		row := style.Render(line)
		if len(meta) > 0 {
			row += "  " + metaStyle.Render(strings.Join(meta, " "))
		}
		rows = append(rows, row)
	}

	return strings.Join(rows, "\n")
}

// renderHelpBar renders the key hints at the bottom
func (m DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	hints := []string{
		"n new",
		"space pause/resume",
		"s stop",
		"d discard",
		"↑/↓ select",
		"q quit",
	}
	return helpStyle.Render(strings.Join(hints, "  •  "))
}
