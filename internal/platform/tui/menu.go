package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/playcell/internal/registry"
)

var menuStyle = lipgloss.NewStyle().Margin(1, 2)

// menuItem is one selectable program.
type menuItem struct {
	id    string
	title string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.id }
func (i menuItem) FilterValue() string { return i.id }

// MenuModel is the Bubble Tea model for the program picker.
type MenuModel struct {
	list     list.Model
	choice   string
	quitting bool
}

// NewMenuModel creates a picker over all registered programs.
func NewMenuModel(infos []registry.Info) MenuModel {
	items := make([]list.Item, 0, len(infos))
	for _, info := range infos {
		items = append(items, menuItem{id: info.ID, title: info.Title})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "playcell programs"

	return MenuModel{list: l}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles menu navigation and selection.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(menuItem); ok {
				m.choice = item.id
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		h, v := menuStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	return menuStyle.Render(m.list.View())
}

// Choice returns the selected program id, or empty if the user backed out.
func (m MenuModel) Choice() string {
	return m.choice
}

// RunMenu shows the program picker and returns the chosen program id.
// An empty id means the user quit without choosing.
func RunMenu() (string, error) {
	model := NewMenuModel(registry.List())

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	if m, ok := final.(MenuModel); ok {
		return m.Choice(), nil
	}
	return "", nil
}
