package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fraudscope/models"
)

// PromptAnalysisRequest shows the three-field analysis form, pre-filled with
// the given defaults. It returns the entered request, or cancelled=true if
// the user backed out.
func PromptAnalysisRequest(defaults models.AnalysisRequest) (models.AnalysisRequest, bool, error) {
	m := newFormModel(defaults)

	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return models.AnalysisRequest{}, false, fmt.Errorf("error running form: %w", err)
	}

	result := finalModel.(formModel)
	if result.quit {
		return models.AnalysisRequest{}, true, nil
	}
	return result.request(), false, nil
}

const (
	fieldCustomerName = iota
	fieldIndustry
	fieldDescription
	fieldCount
)

// formModel is the Bubble Tea model for the analysis input form
type formModel struct {
	inputs  []textinput.Model
	labels  []string
	focused int
	done    bool
	quit    bool
}

func newFormModel(defaults models.AnalysisRequest) formModel {
	labels := []string{"Customer Name", "Industry Domain", "Description (optional)"}
	values := []string{defaults.CustomerName, defaults.Industry, defaults.Description}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.SetValue(values[i])
		ti.CharLimit = 512
		ti.Width = 50
		inputs[i] = ti
	}
	inputs[fieldCustomerName].Focus()

	return formModel{inputs: inputs, labels: labels}
}

func (m formModel) request() models.AnalysisRequest {
	return models.AnalysisRequest{
		CustomerName: m.inputs[fieldCustomerName].Value(),
		Industry:     m.inputs[fieldIndustry].Value(),
		Description:  m.inputs[fieldDescription].Value(),
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		case tea.KeyEnter:
			// Enter on the last field submits, elsewhere it advances
			if m.focused == fieldCount-1 {
				m.done = true
				return m, tea.Quit
			}
			m.setFocus(m.focused + 1)
			return m, textinput.Blink
		case tea.KeyTab, tea.KeyDown:
			m.setFocus((m.focused + 1) % fieldCount)
			return m, textinput.Blink
		case tea.KeyShiftTab, tea.KeyUp:
			m.setFocus((m.focused + fieldCount - 1) % fieldCount)
			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *formModel) setFocus(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}

func (m formModel) View() string {
	s := "\n" + StyleTitle.Render("🔍 AI-Powered Fraud Risk Analyzer") + "\n\n"

	for i, input := range m.inputs {
		label := m.labels[i]
		if m.focused == i {
			s += StylePrimary.Render("▶ "+label) + "\n"
		} else {
			s += StyleSubtle.Render("  "+label) + "\n"
		}
		s += "  " + input.View() + "\n\n"
	}

	s += StyleSubtle.Render("tab/↑↓ move • enter on last field to run • esc cancel") + "\n"
	return s
}
