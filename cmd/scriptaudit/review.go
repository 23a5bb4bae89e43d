package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/seradco/scriptaudit/audit"
)

// runReview runs the audit pipeline without writing a report, then opens an
// interactive browser over the comparison entries.
func runReview(cfg *audit.Config) error {
	eff, err := cfg.Resolve()
	if err != nil {
		return err
	}

	eff.Report = ""

	result, err := audit.Run(eff)
	if err != nil {
		return err
	}

	if len(result.Entries) == 0 {
		fmt.Println("nothing to review: no scripts scanned and no inventory rows")

		return nil
	}

	// Probe the terminal once for the initial layout; WindowSizeMsg keeps
	// it current afterwards.
	width, height := 80, 24

	w, h, sizeErr := term.GetSize(int(os.Stdout.Fd()))
	if sizeErr == nil {
		width, height = w, h
	}

	p := tea.NewProgram(newReviewModel(result.Entries, width, height))

	_, err = p.Run()
	if err != nil {
		return fmt.Errorf("review ui: %w", err)
	}

	return nil
}

// reviewModel is the bubbletea model for the result browser: a scrolling
// list of entries, with a per-entry detail page.
type reviewModel struct {
	entries []audit.Entry
	index   int
	width   int
	height  int
	detail  bool
}

func newReviewModel(entries []audit.Entry, width, height int) *reviewModel {
	return &reviewModel{
		entries: entries,
		width:   width,
		height:  height,
	}
}

// Init implements tea.Model.
func (m *reviewModel) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m *reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.detail {
				m.detail = false

				return m, nil
			}

			return m, tea.Quit

		case "enter", " ":
			m.detail = !m.detail

		case "up", "k":
			if m.index > 0 {
				m.index--
			}

		case "down", "j":
			if m.index < len(m.entries)-1 {
				m.index++
			}

		case "g":
			m.index = 0

		case "G":
			m.index = len(m.entries) - 1
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders either the entry list or the detail page.
func (m *reviewModel) View() tea.View {
	var b strings.Builder

	if m.detail {
		m.renderDetail(&b)
	} else {
		m.renderList(&b)
	}

	v := tea.NewView(b.String())
	v.AltScreen = true

	return v
}

func (m *reviewModel) renderList(b *strings.Builder) {
	fmt.Fprintf(b, "%-40s %-8s %7s  %s\n", "FILENAME", "TYPE", "MATCH%", "STATUS")

	// Keep the cursor visible within the rows that fit on screen.
	rows := m.height - 3
	if rows < 1 {
		rows = 1
	}

	start := 0
	if m.index >= rows {
		start = m.index - rows + 1
	}

	end := start + rows
	if end > len(m.entries) {
		end = len(m.entries)
	}

	for i := start; i < end; i++ {
		entry := m.entries[i]

		cursor := "  "
		if i == m.index {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-38s %-8s %7.2f  %s",
			cursor, entry.Filename, string(entry.Type), entry.TitleMatch, entry.Status)
		b.WriteString(truncate(line, m.width))
		b.WriteByte('\n')
	}

	fmt.Fprintf(b, "\n%d/%d  enter: details  q: quit\n", m.index+1, len(m.entries))
}

func (m *reviewModel) renderDetail(b *strings.Builder) {
	entry := m.entries[m.index]

	fmt.Fprintf(b, "%s (%s)\n", entry.Filename, string(entry.Type))
	fmt.Fprintf(b, "status: %s   title match: %.2f%%\n\n", entry.Status, entry.TitleMatch)

	if len(entry.FileRemarks) > 0 {
		fmt.Fprintf(b, "file remarks:      %s\n", strings.Join(entry.FileRemarks, "; "))
	}

	if len(entry.InventoryRemarks) > 0 {
		fmt.Fprintf(b, "inventory remarks: %s\n", strings.Join(entry.InventoryRemarks, "; "))
	}

	if len(entry.FileRemarks)+len(entry.InventoryRemarks) > 0 {
		b.WriteByte('\n')
	}

	fields := make([]string, 0, len(entry.Fields))
	for field := range entry.Fields {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	for _, field := range fields {
		// Multi-line values stay readable by indenting continuations.
		value := strings.ReplaceAll(entry.Fields[field], "\n", "\n    ")
		fmt.Fprintf(b, "%s: %s\n", field, value)
	}

	b.WriteString("\nesc: back  q: quit\n")
}

func truncate(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}

	return s[:width]
}
