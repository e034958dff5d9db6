package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage represents the current startup stage
type Stage int

const (
	StageLoadConfig Stage = iota
	StageLoadEmbeddings
	StageLoadDataset
	StageTrain
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageLoadConfig:
		return "Loading configuration..."
	case StageLoadEmbeddings:
		return "Loading word embeddings..."
	case StageLoadDataset:
		return "Loading dataset..."
	case StageTrain:
		return "Training classifier..."
	case StageDone:
		return "Ready"
	default:
		return ""
	}
}

// Message types for updating the model
type (
	StageMsg     Stage
	OperationMsg string
	StepStartMsg string
	StepDoneMsg  struct{}
	DoneMsg      struct{ Err error }
	StepCountMsg int
)

// Model is the Bubbletea model for progress display
type Model struct {
	stage     Stage
	spinner   spinner.Model
	progress  progress.Model
	currentOp string
	stepCount int
	stepsDone int
	width     int
	quitting  bool
	err       error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageLoadConfig,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		m.currentOp = ""
		return m, nil

	case OperationMsg:
		m.currentOp = string(msg)
		return m, nil

	case StepStartMsg:
		m.currentOp = string(msg)
		return m, nil

	case StepCountMsg:
		m.stepCount = int(msg)
		m.stepsDone = 0
		return m, nil

	case StepDoneMsg:
		m.stepsDone++
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	if m.stage == StageTrain && m.stepCount > 1 {
		pct := float64(m.stepsDone) / float64(m.stepCount)
		sb.WriteString(m.progress.ViewAs(pct))
		sb.WriteString("\n")
	}

	sb.WriteString(m.spinner.View())
	sb.WriteString(" ")
	sb.WriteString(m.stage.String())
	if m.currentOp != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", m.currentOp))
	}

	return sb.String()
}
