package dialogue

import (
	"errors"
	"testing"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		from  State
		event Event
		want  State
	}{
		{Welcome, EventGreeted, CollectInfo},
		{CollectInfo, EventProfileAccepted, HealthCheck},
		{HealthCheck, EventInitialHealthChecked, StylisticAnalysis},
		{HealthCheck, EventHealthChecked, MenuCheck},
		{StylisticAnalysis, EventStyleAnalyzed, MenuCheck},
		{MenuCheck, EventQuitRequested, Quit},
		{MenuCheck, EventHealthCheckRequested, HealthCheck},
		{MenuCheck, EventStyleAnalysisRequested, StylisticAnalysis},
		{Welcome, EventInputClosed, Quit},
		{CollectInfo, EventInputClosed, Quit},
		{HealthCheck, EventInputClosed, Quit},
		{StylisticAnalysis, EventInputClosed, Quit},
		{MenuCheck, EventInputClosed, Quit},
	}

	for _, tt := range tests {
		got, err := Transition(tt.from, tt.event)
		if err != nil {
			t.Errorf("Transition(%s, %s) error = %v", tt.from, tt.event, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Transition(%s, %s) = %s, want %s", tt.from, tt.event, got, tt.want)
		}
	}
}

func TestTransition_Invalid(t *testing.T) {
	tests := []struct {
		from  State
		event Event
	}{
		{Welcome, EventProfileAccepted},
		{CollectInfo, EventQuitRequested},
		{StylisticAnalysis, EventHealthChecked},
		{MenuCheck, EventGreeted},
		{Quit, EventGreeted},
		{Quit, EventInputClosed},
	}

	for _, tt := range tests {
		got, err := Transition(tt.from, tt.event)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("Transition(%s, %s) error = %v, want ErrInvalidTransition", tt.from, tt.event, err)
		}
		if got != tt.from {
			t.Errorf("Transition(%s, %s) = %s, want state unchanged", tt.from, tt.event, got)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Welcome, "welcome"},
		{CollectInfo, "collect-info"},
		{HealthCheck, "health-check"},
		{StylisticAnalysis, "stylistic-analysis"},
		{MenuCheck, "menu-check"},
		{Quit, "quit"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
