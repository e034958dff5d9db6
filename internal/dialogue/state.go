package dialogue

import (
	"errors"
	"fmt"
)

// State is a step of the conversation.
type State int

const (
	Welcome State = iota
	CollectInfo
	HealthCheck
	StylisticAnalysis
	MenuCheck
	Quit
)

func (s State) String() string {
	switch s {
	case Welcome:
		return "welcome"
	case CollectInfo:
		return "collect-info"
	case HealthCheck:
		return "health-check"
	case StylisticAnalysis:
		return "stylistic-analysis"
	case MenuCheck:
		return "menu-check"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is the outcome of running a state.
type Event int

const (
	EventGreeted Event = iota
	EventProfileAccepted
	// EventInitialHealthChecked ends the mandatory first health check.
	EventInitialHealthChecked
	// EventHealthChecked ends a health check requested from the menu.
	EventHealthChecked
	EventStyleAnalyzed
	EventQuitRequested
	EventHealthCheckRequested
	EventStyleAnalysisRequested
	// EventInputClosed is raised when the user's input stream ends.
	EventInputClosed
)

func (e Event) String() string {
	switch e {
	case EventGreeted:
		return "greeted"
	case EventProfileAccepted:
		return "profile-accepted"
	case EventInitialHealthChecked:
		return "initial-health-checked"
	case EventHealthChecked:
		return "health-checked"
	case EventStyleAnalyzed:
		return "style-analyzed"
	case EventQuitRequested:
		return "quit-requested"
	case EventHealthCheckRequested:
		return "health-check-requested"
	case EventStyleAnalysisRequested:
		return "style-analysis-requested"
	case EventInputClosed:
		return "input-closed"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned for a (state, event) pair the
// conversation does not define.
var ErrInvalidTransition = errors.New("invalid transition")

var transitions = map[State]map[Event]State{
	Welcome: {
		EventGreeted: CollectInfo,
	},
	CollectInfo: {
		EventProfileAccepted: HealthCheck,
	},
	HealthCheck: {
		EventInitialHealthChecked: StylisticAnalysis,
		EventHealthChecked:        MenuCheck,
	},
	StylisticAnalysis: {
		EventStyleAnalyzed: MenuCheck,
	},
	MenuCheck: {
		EventQuitRequested:          Quit,
		EventHealthCheckRequested:   HealthCheck,
		EventStyleAnalysisRequested: StylisticAnalysis,
	},
}

// Transition returns the state that follows s when e occurs. Any
// non-terminal state moves to Quit when the input is closed.
func Transition(s State, e Event) (State, error) {
	if s != Quit && e == EventInputClosed {
		if _, ok := transitions[s]; ok {
			return Quit, nil
		}
	}
	if next, ok := transitions[s][e]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}
