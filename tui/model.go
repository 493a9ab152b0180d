package main

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BhanuPrakash-01/fake-news-detector/client"
	"github.com/BhanuPrakash-01/fake-news-detector/models"
)

const minTextLength = 10

// Local validation messages. These never trigger a network call.
const (
	msgEmptyText = "Please enter some text to analyze"
	msgTooShort  = "Text must be at least 10 characters long"
)

// uiState is the interaction state machine. Exactly one state is active;
// result and errMsg are mutually exclusive, and entering stateLoading clears
// both.
type uiState int

const (
	stateIdle uiState = iota
	stateLoading
	stateSuccess
	stateFailure
)

type analyzeResultMsg struct {
	result *models.AnalyzeResponse
}

type analyzeErrMsg struct {
	err error
}

type model struct {
	gateway *client.Client

	input textarea.Model
	spin  spinner.Model

	state  uiState
	result *models.AnalyzeResponse
	errMsg string

	width int
}

func newModel(gateway *client.Client) model {
	ta := textarea.New()
	ta.Placeholder = "Paste a news headline or article..."
	ta.CharLimit = 10000
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		gateway: gateway,
		input:   ta,
		spin:    sp,
		state:   stateIdle,
	}
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

// submit validates the input and, when valid, transitions to stateLoading and
// returns the command that performs the single outbound request. Invalid
// input fails locally with a nil command. A nil return with stateLoading
// already active means the in-flight request is left alone.
func (m *model) submit() tea.Cmd {
	if m.state == stateLoading {
		return nil
	}

	trimmed := strings.TrimSpace(m.input.Value())
	if trimmed == "" {
		m.state = stateFailure
		m.result = nil
		m.errMsg = msgEmptyText
		return nil
	}
	if len([]rune(trimmed)) < minTextLength {
		m.state = stateFailure
		m.result = nil
		m.errMsg = msgTooShort
		return nil
	}

	m.state = stateLoading
	m.result = nil
	m.errMsg = ""
	m.input.Blur()

	text := m.input.Value()
	gateway := m.gateway
	return func() tea.Msg {
		result, err := gateway.Analyze(context.Background(), text)
		if err != nil {
			return analyzeErrMsg{err: err}
		}
		return analyzeResultMsg{result: result}
	}
}

// clear resets the controller to its initial state, from any state.
func (m *model) clear() {
	m.input.Reset()
	m.state = stateIdle
	m.result = nil
	m.errMsg = ""
	m.input.Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(min(msg.Width-4, 100))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			if cmd := m.submit(); cmd != nil {
				return m, tea.Batch(m.spin.Tick, cmd)
			}
			return m, nil
		case "ctrl+l":
			m.clear()
			return m, nil
		}

	case analyzeResultMsg:
		m.state = stateSuccess
		m.result = msg.result
		m.errMsg = ""
		m.input.Focus()
		return m, nil

	case analyzeErrMsg:
		m.state = stateFailure
		m.result = nil
		m.errMsg = msg.err.Error()
		if m.errMsg == "" {
			m.errMsg = client.ErrAnalyzeFailed.Error()
		}
		m.input.Focus()
		return m, nil

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Text edits only reach the textarea outside stateLoading: the input is
	// blurred while a request is in flight.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🔍 Fake News Detector"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(m.spin.View() + " Analyzing...")
	case stateSuccess:
		b.WriteString(FormatResult(m.result))
	case stateFailure:
		b.WriteString(errorStyle.Render("⚠ " + m.errMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+s analyze • ctrl+l clear • esc quit"))
	return b.String()
}
