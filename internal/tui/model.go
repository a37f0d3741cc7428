// Package tui provides the Bubble Tea live analyzer interface.
package tui

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/textscope/internal/analyze"
	"github.com/verte-zerg/textscope/internal/model"
	"github.com/verte-zerg/textscope/internal/report"
	"github.com/verte-zerg/textscope/internal/store"
)

const sidebarWidth = 30

var (
	sidebarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	levelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB069"))
	promptStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 1)
)

// Model implements the Bubble Tea live analyzer UI. The full pipeline is
// re-run from scratch on every edit; there is no incremental update.
type Model struct {
	opts  model.Options
	store *store.Store

	editor    textarea.Model
	reportVP  viewport.Model
	labelIn   textinput.Model
	stats     model.TextStatistics
	statusMsg string

	width  int
	height int

	showReport bool
	labelMode  bool
}

// NewModel constructs a live analyzer model with the given starting text.
func NewModel(opts model.Options, st *store.Store, initial string) *Model {
	editor := textarea.New()
	editor.Placeholder = "Type or paste text to analyze..."
	editor.CharLimit = 0
	editor.SetValue(initial)
	editor.Focus()

	labelIn := textinput.New()
	labelIn.Placeholder = "snapshot label"
	labelIn.CharLimit = 64

	m := &Model{
		opts:    opts.Normalize(),
		store:   st,
		editor:  editor,
		labelIn: labelIn,
	}
	m.recompute()
	return m
}

// Stats exposes the current statistics record.
func (m *Model) Stats() model.TextStatistics {
	return m.stats
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		if m.labelMode {
			return m.updateLabelPrompt(msg)
		}
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m.startLabelPrompt()
		case tea.KeyCtrlR:
			m.showReport = !m.showReport
			if m.showReport {
				m.renderReport()
			}
			return m, nil
		}
		if m.showReport {
			var cmd tea.Cmd
			m.reportVP, cmd = m.reportVP.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.recompute()
		return m, cmd
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.labelMode {
		prompt := promptStyle.Render("Save snapshot as:\n" + m.labelIn.View())
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
	}

	footer := m.renderFooter()
	bodyHeight := m.height - 1
	var body string
	if m.showReport {
		body = m.reportVP.View()
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.editor.View(), m.renderSidebar(bodyHeight))
	}
	return body + "\n" + footer
}

func (m *Model) updateLabelPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.labelMode = false
		m.labelIn.Blur()
		return m, nil
	case tea.KeyEnter:
		label := strings.TrimSpace(m.labelIn.Value())
		m.labelMode = false
		m.labelIn.Blur()
		m.saveSnapshot(label)
		return m, nil
	}
	var cmd tea.Cmd
	m.labelIn, cmd = m.labelIn.Update(msg)
	return m, cmd
}

func (m *Model) startLabelPrompt() (tea.Model, tea.Cmd) {
	if m.stats.Words == 0 {
		m.statusMsg = "nothing to save"
		return m, nil
	}
	m.labelMode = true
	m.labelIn.SetValue("")
	return m, m.labelIn.Focus()
}

func (m *Model) saveSnapshot(label string) {
	if m.store == nil {
		m.statusMsg = "history store unavailable"
		return
	}
	ctx := context.Background()
	id, err := m.store.InsertSnapshot(ctx, time.Now(), label, m.stats)
	if err != nil {
		logErrf("failed to save snapshot: %v\n", err)
		m.statusMsg = "save failed"
		return
	}
	m.statusMsg = fmt.Sprintf("saved snapshot #%d", id)
}

func (m *Model) recompute() {
	m.stats = analyze.Text(m.editor.Value(), m.opts)
	if m.showReport {
		m.renderReport()
	}
}

func (m *Model) renderReport() {
	var buf bytes.Buffer
	if err := report.Render(&buf, m.stats, m.width); err != nil {
		// Rendering to a buffer cannot fail in practice.
		_ = err
	}
	m.reportVP.SetContent(buf.String())
}

func (m *Model) resize() {
	editorWidth := m.width - sidebarWidth - 2
	if editorWidth < 20 {
		editorWidth = m.width - 2
	}
	bodyHeight := m.height - 1
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.editor.SetWidth(editorWidth)
	m.editor.SetHeight(bodyHeight)
	m.reportVP.Width = m.width
	m.reportVP.Height = bodyHeight
	if m.showReport {
		m.renderReport()
	}
}

func (m *Model) renderSidebar(height int) string {
	level := m.stats.ReadabilityLevel
	if level == "" {
		level = "n/a"
	}
	rows := []string{
		card("Words", fmt.Sprintf("%d", m.stats.Words)),
		card("Characters", fmt.Sprintf("%d", m.stats.Characters)),
		card("Sentences", fmt.Sprintf("%d", m.stats.Sentences)),
		card("Paragraphs", fmt.Sprintf("%d", m.stats.Paragraphs)),
		card("Unique words", fmt.Sprintf("%d", m.stats.UniqueWords)),
		card("Diversity", fmt.Sprintf("%.1f%%", m.stats.LexicalDiversity)),
		card("Reading ease", fmt.Sprintf("%.1f", m.stats.FleschReadingEase)),
		card("Grade", fmt.Sprintf("%.1f", m.stats.FleschKincaidGrade)),
		cardTitleStyle.Render("Level") + " " + levelStyle.Render(level),
	}
	if len(m.stats.TopWords) > 0 {
		rows = append(rows, "", cardTitleStyle.Render("Top words"))
		limit := 5
		if limit > len(m.stats.TopWords) {
			limit = len(m.stats.TopWords)
		}
		for _, e := range m.stats.TopWords[:limit] {
			rows = append(rows, fmt.Sprintf("%s %s",
				cardValueStyle.Render(fmt.Sprintf("%3d", e.Count)), e.Word))
		}
	}
	content := strings.Join(rows, "\n")
	return sidebarStyle.Width(sidebarWidth).Height(height - 2).Render(content)
}

func card(title, value string) string {
	return cardTitleStyle.Render(title) + " " + cardValueStyle.Render(value)
}

func (m *Model) renderFooter() string {
	segments := []string{"ctrl+s save", "ctrl+r report", "ctrl+c quit"}
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.statusMsg != "" {
		footer += "  " + statusStyle.Render(m.statusMsg)
	}
	return footer
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
