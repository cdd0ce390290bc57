package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/cluso-animator/pkg/session"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	tableBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FF00")).
			MarginRight(2)

	detailBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(1, 2).
			Width(44)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

const keyframeMarker = "●"

type model struct {
	session    *session.Session
	frameTable table.Model
	help       help.Model
	keys       keyMap
	width      int
	height     int
	message    string
	messageErr bool
}

func initialModel(s *session.Session) model {
	columns := []table.Column{
		{Title: "Frame", Width: 7},
		{Title: "Nodes", Width: 7},
		{Title: "Edges", Width: 7},
		{Title: "Key", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color("#00FF00")).
		Bold(false)
	t.SetStyles(st)

	m := model{
		session:    s,
		frameTable: t,
		help:       help.New(),
		keys:       keys,
	}
	m.refresh()
	return m
}

// frameRows builds one row per frame, extended so the current frame always
// has a row even past the end of the sequence.
func frameRows(s *session.Session) []table.Row {
	seq := s.Sequence()
	n := max(seq.Len(), s.Current()+1)
	rows := make([]table.Row, 0, n)
	for i := 0; i < n; i++ {
		nodes, edges, marker := 0, 0, ""
		if f, ok := seq.Frame(i); ok {
			nodes, edges = f.Len(), len(f.Edges())
			if !f.IsEmpty() {
				marker = keyframeMarker
			}
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i),
			strconv.Itoa(nodes),
			strconv.Itoa(edges),
			marker,
		})
	}
	return rows
}

func (m *model) refresh() {
	m.frameTable.SetRows(frameRows(m.session))
	m.frameTable.SetCursor(m.session.Current())
}

func (m *model) report(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageErr = false
}

func (m *model) fail(err error) {
	m.message = err.Error()
	m.messageErr = true
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if h := msg.Height - 14; h > 3 {
			m.frameTable.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Next):
			m.navigate(m.session.Next)
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.navigate(m.session.Prev)
			return m, nil

		case key.Matches(msg, m.keys.Repeat):
			if m.session.Repeat() {
				m.report("Repeated keyframe into frame %d", m.session.Current())
			} else {
				m.report("Nothing to repeat into frame %d", m.session.Current())
			}

		case key.Matches(msg, m.keys.Interpolate):
			m.report("Interpolated %d frames", m.session.Interpolate())

		case key.Matches(msg, m.keys.Clear):
			if m.session.ClearFrame() {
				m.report("Cleared frame %d", m.session.Current())
			} else {
				m.report("Frame %d is already empty", m.session.Current())
			}

		case key.Matches(msg, m.keys.Undo):
			if m.session.Undo() {
				m.report("Undone")
			} else {
				m.report("Nothing to undo")
			}

		case key.Matches(msg, m.keys.Redo):
			if m.session.Redo() {
				m.report("Redone")
			} else {
				m.report("Nothing to redo")
			}

		case key.Matches(msg, m.keys.Save):
			if err := m.session.Save(""); err != nil {
				m.fail(err)
			} else {
				m.report("Saved %s", m.session.Path())
			}

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.frameTable, cmd = m.frameTable.Update(msg)
			if err := m.session.Seek(m.frameTable.Cursor()); err != nil {
				m.fail(err)
			}
			return m, cmd

		default:
			return m, nil
		}
		m.refresh()
	}

	return m, nil
}

func (m *model) navigate(step func() error) {
	if err := step(); err != nil {
		m.fail(err)
		return
	}
	m.message = ""
	m.refresh()
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("🎬 Animator - " + m.title()))
	s.WriteString("\n\n")

	tableBox := tableBoxStyle.Render(m.frameTable.View())
	detailBox := detailBoxStyle.Render(m.renderDetail())
	s.WriteString(contentStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tableBox, detailBox)))

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return s.String()
}

func (m model) title() string {
	if p := m.session.Path(); p != "" {
		return p
	}
	return "untitled"
}

func (m model) renderDetail() string {
	var s strings.Builder
	cur := m.session.Current()

	s.WriteString(headerStyle.Render(fmt.Sprintf("Frame %d", cur)))
	s.WriteString("\n\n")

	f, ok := m.session.Frame()
	if !ok || f.IsEmpty() {
		s.WriteString("Empty frame\n")
	} else {
		for i, n := range f.Nodes() {
			mark := " "
			if n.Selected {
				mark = "*"
			}
			s.WriteString(fmt.Sprintf("%s node %-3d (%d, %d)\n", mark, i, n.X, n.Y))
		}
		edges := f.Edges()
		if len(edges) > 0 {
			s.WriteString("\n")
		}
		for j, e := range edges {
			s.WriteString(fmt.Sprintf("  edge %-3d (%d, %d) --> %s\n", j, e.From, e.To, e.Kind))
		}
	}

	st := m.session.Sequence().Stats()
	pos, total := m.session.HistoryStats()
	s.WriteString(fmt.Sprintf("\nFrames: %d  Keyframes: %d\nHistory: %d/%d", st.Frames, st.Keyframes, pos, total))
	if src := m.session.Source(); src != nil {
		s.WriteString(fmt.Sprintf("\nRaster: %s (%d frames)", src.Path(), src.Len()))
	}
	return s.String()
}
