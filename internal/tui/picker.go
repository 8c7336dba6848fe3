package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parterm/parterm/internal/theme"
	"github.com/parterm/parterm/internal/tui/styles"
)

// RunPicker launches the theme picker program.
func RunPicker(manager *theme.Manager, registry *Registry) error {
	model, err := newPickerModel(manager, registry)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

type themeItem string

func (i themeItem) Title() string       { return string(i) }
func (i themeItem) Description() string { return "" }
func (i themeItem) FilterValue() string { return string(i) }

type pickerModel struct {
	manager  *theme.Manager
	registry *Registry
	list     list.Model
	width    int
	height   int
	status   string
}

func newPickerModel(manager *theme.Manager, registry *Registry) (pickerModel, error) {
	options, err := manager.ThemeSelectOptions()
	if err != nil {
		return pickerModel{}, err
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Label < options[j].Label })

	items := make([]list.Item, 0, len(options))
	for _, option := range options {
		items = append(items, themeItem(option.Value))
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	themeList := list.New(items, delegate, 0, 0)
	themeList.Title = "Themes"
	themeList.SetShowHelp(true)
	themeList.SetFilteringEnabled(true)

	return pickerModel{
		manager:  manager,
		registry: registry,
		list:     themeList,
	}, nil
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(themeItem); ok {
				if err := m.manager.ChangeTheme(string(item)); err != nil {
					m.status = fmt.Sprintf("Cannot apply %s: %v", item, err)
				} else {
					m.status = fmt.Sprintf("Applied %s", item)
				}
			}
			return m, nil
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	current := m.registry.Styles()

	left := m.list.View()
	right := m.previewPane()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	status := m.status
	if status == "" {
		status = fmt.Sprintf("Active: %s", activeLabel(m.registry))
	}

	return body + "\n" + current.Muted.Render(status) + "\n"
}

// previewPane renders the hovered theme with its own styles so the user
// sees the palette before applying it.
func (m pickerModel) previewPane() string {
	item, ok := m.list.SelectedItem().(themeItem)
	if !ok {
		return ""
	}

	available := m.registry.AvailableThemes()
	selected, ok := available[string(item)]
	if !ok {
		return ""
	}

	preview := styles.BuildStyles(selected)
	lines := []string{
		preview.Title.Render(selected.Name),
		"",
		preview.Text.Render("Text sample"),
		preview.Muted.Render("Muted sample"),
		preview.Accent.Render("Accent sample"),
		preview.Success.Render("Success sample"),
		preview.Warning.Render("Warning sample"),
		preview.Error.Render("Error sample"),
		preview.Info.Render("Info sample"),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activeLabel(registry *Registry) string {
	if active := registry.ActiveTheme(); active != "" {
		return active
	}
	return "(fallback)"
}
