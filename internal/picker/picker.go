// Package picker presents the installed Ollama models as an
// interactive list and reports the user's choice.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Locotir/EnhanceOutput/internal/ollama"
)

// ErrNoModels is returned when the service reports an empty model list.
var ErrNoModels = errors.New("no models installed")

var docStyle = lipgloss.NewStyle().Margin(1, 2)

var titleCaser = cases.Title(language.English)

type item struct {
	model ollama.Model
}

func (i item) Title() string { return i.model.Name }

func (i item) Description() string {
	var parts []string
	if i.model.Size > 0 {
		parts = append(parts, formatSize(i.model.Size))
	}
	if family := strings.TrimSpace(i.model.Details.Family); family != "" {
		parts = append(parts, titleCaser.String(family))
	}
	if len(parts) == 0 {
		return "no details"
	}
	return strings.Join(parts, " · ")
}

func (i item) FilterValue() string { return i.model.Name }

type model struct {
	list     list.Model
	choice   string
	canceled bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.model.Name
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return docStyle.Render(m.list.View())
}

// Run shows the list and blocks until the user picks a model or
// cancels. The bool reports whether a choice was made.
func Run(models []ollama.Model) (string, bool, error) {
	if len(models) == 0 {
		return "", false, ErrNoModels
	}

	items := make([]list.Item, len(models))
	for i, m := range models {
		items[i] = item{model: m}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select an Ollama model"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	final, err := tea.NewProgram(model{list: l}, tea.WithAltScreen()).Run()
	if err != nil {
		return "", false, fmt.Errorf("running model picker: %w", err)
	}

	m, ok := final.(model)
	if !ok || m.canceled || m.choice == "" {
		return "", false, nil
	}
	return m.choice, true, nil
}

func formatSize(bytes int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%.1f GB", float64(bytes)/gb)
	case bytes >= mb:
		return fmt.Sprintf("%.1f MB", float64(bytes)/mb)
	case bytes >= kb:
		return fmt.Sprintf("%.1f KB", float64(bytes)/kb)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
