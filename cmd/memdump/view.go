package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/wippyai/memory/buffer"
	"github.com/wippyai/memory/handle"
)

var cmdView = &cobra.Command{
	Use:   "view FILE",
	Short: "Page through a file as a hex dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runView(args[0])
	},
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateBrowse viewState = iota
	stateGoto
)

type viewModel struct {
	notice   error // last goto failure
	buf      *buffer.Buffer
	filename string
	input    textinput.Model
	top      int64 // first displayed row
	width    int
	rows     int
	state    viewState
}

func newViewModel(filename string, buf *buffer.Buffer, width, rows int) *viewModel {
	ti := textinput.New()
	ti.Prompt = "offset: "
	ti.Placeholder = "decimal or 0x hex"
	ti.Width = 24
	return &viewModel{
		buf:      buf,
		filename: filename,
		input:    ti,
		width:    width,
		rows:     rows,
	}
}

func (m *viewModel) Init() tea.Cmd {
	return nil
}

func (m *viewModel) totalRows() int64 {
	w := int64(m.width)
	return (m.buf.Capacity() + w - 1) / w
}

func (m *viewModel) scroll(delta int64) {
	last := max(m.totalRows()-int64(m.rows), 0)
	m.top = min(max(m.top+delta, 0), last)
}

func (m *viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > 4 {
			m.rows = msg.Height - 4
			m.scroll(0)
		}

	case tea.KeyMsg:
		if m.state == stateGoto {
			return m.updateGoto(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			// runView releases the handle once the program has exited.
			return m, tea.Quit
		case "down", "j":
			m.scroll(1)
		case "up", "k":
			m.scroll(-1)
		case "pgdown", " ":
			m.scroll(int64(m.rows))
		case "pgup":
			m.scroll(-int64(m.rows))
		case "home":
			m.top = 0
		case "end":
			m.scroll(m.totalRows())
		case "g":
			m.state = stateGoto
			m.notice = nil
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}
	return m, nil
}

func (m *viewModel) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateBrowse
		m.input.Blur()
		return m, nil
	case "enter":
		m.state = stateBrowse
		m.input.Blur()
		off, err := parseOffset(m.input.Value())
		if err == nil && (off < 0 || off >= max(m.buf.Capacity(), 1)) {
			err = fmt.Errorf("offset %d outside file of %d bytes", off, m.buf.Capacity())
		}
		if err != nil {
			m.notice = err
			return m, nil
		}
		m.top = 0
		m.scroll(off / int64(m.width))
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func parseOffset(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		return strconv.ParseInt(hex, 16, 64)
	}
	return strconv.ParseInt(s, 10, 64)
}

func (m *viewModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("memdump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString(" ")
	b.WriteString(humanize.IBytes(uint64(m.buf.Capacity())))
	b.WriteString("\n\n")

	start := m.top * int64(m.width)
	n := min(int64(m.rows*m.width), m.buf.Capacity()-start)
	if n > 0 {
		var rows strings.Builder
		if err := m.buf.WriteHex(&rows, "", start, n, m.width); err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		} else {
			// drop the descriptor line
			_, body, _ := strings.Cut(rows.String(), "\n")
			b.WriteString(body)
		}
	}

	b.WriteString("\n")
	switch {
	case m.state == stateGoto:
		b.WriteString(m.input.View())
	case m.notice != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.notice)))
	default:
		b.WriteString(helpStyle.Render("j/k scroll • pgup/pgdn page • g goto • q quit"))
	}
	return b.String()
}

func runView(filename string) error {
	opts := handle.DefaultOptions()
	opts.ReadOnly = true
	h, err := handle.MapWholeFile(filename, opts)
	return handle.Use(h, err, func(h *handle.Handle) error {
		buf, err := h.Get()
		if err != nil {
			return err
		}
		m := newViewModel(filename, buf, cfg.Width, max(terminalRows(cfg.PageRows+4)-4, 1))
		_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
		return err
	})
}
