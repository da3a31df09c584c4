package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"toqst/internal/generator"
	"toqst/internal/model"
	"toqst/internal/session"
	"toqst/internal/stats"
)

const tickInterval = 250 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	metricStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)

type phase int

const (
	phaseTyping phase = iota
	phaseResults
)

type tickMsg time.Time

// Model implements the Bubble Tea typing UI. It owns the session exclusively;
// every event is applied in full before the next one is read.
type Model struct {
	config model.Config
	gen    *generator.Generator
	pool   []string

	width  int
	height int

	phase   phase
	sess    *session.Session
	summary model.Summary
	results table.Model
}

// NewModel constructs a typing TUI model over the given word pool.
func NewModel(cfg model.Config, gen *generator.Generator, pool []string) *Model {
	m := &Model{config: cfg, gen: gen, pool: pool}
	m.startSession()
	return m
}

func (m *Model) startSession() {
	targets := m.gen.Generate(m.pool, m.config.Words, m.config.CapsPct, m.config.PunctPct, []rune(m.config.PunctSet))
	m.sess = session.New(targets, m.config.Timeout)
	m.phase = phaseTyping
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.phase != phaseTyping {
			return m, nil
		}
		if m.sess.TimedOut() {
			m.finish(true)
			return m, nil
		}
		return m, tick()
	case tea.KeyMsg:
		if m.phase == phaseResults {
			return m.updateResults(msg)
		}
		return m.updateTyping(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace, tea.KeyDelete:
		if !m.sess.Done() {
			m.sess.Backspace()
		}
		return m, nil
	case tea.KeySpace:
		m.applySpace()
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.sess.Done() {
				break
			}
			if r == ' ' {
				m.applySpace()
				continue
			}
			m.sess.TypeRune(r)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) applySpace() {
	if m.sess.Done() {
		return
	}
	m.sess.NextWord()
	if m.sess.Completed() {
		m.finish(false)
	}
}

func (m *Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc:
		return m, tea.Quit
	case msg.String() == "q":
		return m, tea.Quit
	case msg.String() == "r":
		m.startSession()
		return m, tick()
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *Model) finish(timedOut bool) {
	m.summary = stats.Summarize(m.sess, time.Now(), timedOut)
	m.results = buildResultsTable(m.summary.Words, m.height)
	m.phase = phaseResults
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.phase == phaseResults {
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	styledWords := buildStyledWords(m.sess)
	if m.width == 0 || m.height == 0 {
		return wrapWords(styledWords, 0)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapWords(styledWords, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	footer := m.typingFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	bodyHeight := m.height - 1
	body := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) typingFooter() string {
	segments := []string{fmt.Sprintf("Word %d/%d", m.progressWord(), m.sess.WordCount())}
	if !m.sess.Started() {
		segments = append(segments, "Type to start")
		if m.config.Timeout > 0 {
			segments = append(segments, fmt.Sprintf("%.0fs limit", m.config.Timeout.Seconds()))
		}
	} else if m.config.Timeout > 0 {
		segments = append(segments, fmt.Sprintf("%.1fs left", m.sess.Remaining().Seconds()))
	} else {
		segments = append(segments, fmt.Sprintf("%.1fs", m.sess.Elapsed().Seconds()))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) progressWord() int {
	wordIdx, _ := m.sess.Position()
	if wordIdx >= m.sess.WordCount() {
		return m.sess.WordCount()
	}
	return wordIdx + 1
}

func (m *Model) viewResults() string {
	wpm, cpm, acc := stats.SessionMetrics(m.summary.Correct, m.summary.Incorrect, m.summary.DurationMs())

	title := "Session complete"
	if m.summary.TimedOut {
		title = "Time is up"
	}
	metrics := fmt.Sprintf("%s WPM  %s CPM  %s accuracy  %s",
		metricStyle.Render(fmt.Sprintf("%.1f", wpm)),
		metricStyle.Render(fmt.Sprintf("%.1f", cpm)),
		metricStyle.Render(fmt.Sprintf("%.1f%%", acc*100)),
		metricStyle.Render(fmt.Sprintf("%.1fs", float64(m.summary.DurationMs())/1000)),
	)
	help := footerStyle.Render("r restart  q quit")

	content := strings.Join([]string{
		titleStyle.Render(title),
		"",
		metrics,
		"",
		m.results.View(),
		"",
		help,
	}, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func buildResultsTable(words []model.WordSummary, height int) table.Model {
	columns := []table.Column{
		{Title: "Word", Width: 18},
		{Title: "Correct", Width: 7},
		{Title: "Mistyped", Width: 8},
		{Title: "Extra", Width: 5},
		{Title: "Missed", Width: 6},
	}
	rows := make([]table.Row, 0, len(words))
	for _, w := range words {
		rows = append(rows, table.Row{
			w.Target,
			strconv.Itoa(w.Correct),
			strconv.Itoa(w.Mistype),
			strconv.Itoa(w.Extra),
			strconv.Itoa(w.Missed),
		})
	}
	tableHeight := len(rows) + 1
	if height > 10 && tableHeight > height-8 {
		tableHeight = height - 8
	}
	if tableHeight < 2 {
		tableHeight = 2
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}
