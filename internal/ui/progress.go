package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
	done    chan struct{}
}

// StartProgress starts the progress display if in interactive mode
// Returns nil if not in interactive mode
func (ui *UI) StartProgress() *ProgressController {
	if ui.Mode != OutputModeInteractive {
		return nil
	}

	m := NewModel()
	// The conversation owns stdin, so the spinner must not read it.
	p := tea.NewProgram(m, tea.WithOutput(ui.ErrWriter), tea.WithInput(nil))

	ctrl := &ProgressController{
		ui:      ui,
		program: p,
		done:    make(chan struct{}),
	}

	// Run the program in a goroutine
	go func() {
		if _, err := p.Run(); err != nil {
			// Silently handle program errors
			_ = err
		}
		close(ctrl.done)
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetOperation updates the current operation description
func (pc *ProgressController) SetOperation(op string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(OperationMsg(op))
	}
}

// SetStepCount sets the total number of steps in the current stage
func (pc *ProgressController) SetStepCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StepCountMsg(count))
	}
}

// StepStart indicates a step has started
func (pc *ProgressController) StepStart(name string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StepStartMsg(fmt.Sprintf("%s...", name)))
	}
}

// StepDone indicates a step has completed
func (pc *ProgressController) StepDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(StepDoneMsg{})
	}
}

// Done signals that all work is complete and waits for the display to clear
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		<-pc.done
		pc.program = nil
	}
}
