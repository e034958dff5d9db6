package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all lipgloss styles for terminal output
type Styles struct {
	enabled bool

	// Conversation styles
	Bot       lipgloss.Style
	Prompt    lipgloss.Style
	Apology   lipgloss.Style
	Healthy   lipgloss.Style
	Unhealthy lipgloss.Style
	Correlate lipgloss.Style
	Banner    lipgloss.Style

	// Report styles
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
	Separator lipgloss.Style

	// Icons (degraded to ASCII when not interactive)
	IconBullet  string
	IconWarning string
	IconSuccess string
}

// NewStyles creates a new Styles instance
// When enabled is false, styles return text unchanged (for non-TTY output)
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Bot = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))               // Blue
		s.Prompt = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")) // White bold
		s.Apology = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))           // Yellow
		s.Healthy = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))           // Green
		s.Unhealthy = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))          // Red
		s.Correlate = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))         // Cyan
		s.Banner = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)

		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Subheader = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		s.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconBullet = "\u2022"  // •
		s.IconWarning = "\u26a0" // ⚠
		s.IconSuccess = "\u2713" // ✓
	} else {
		// No-op styles for non-TTY (plain text output)
		s.Bot = lipgloss.NewStyle()
		s.Prompt = lipgloss.NewStyle()
		s.Apology = lipgloss.NewStyle()
		s.Healthy = lipgloss.NewStyle()
		s.Unhealthy = lipgloss.NewStyle()
		s.Correlate = lipgloss.NewStyle()
		s.Banner = lipgloss.NewStyle()

		s.Header = lipgloss.NewStyle()
		s.Subheader = lipgloss.NewStyle()
		s.Warning = lipgloss.NewStyle()
		s.Success = lipgloss.NewStyle()
		s.Separator = lipgloss.NewStyle()

		s.IconBullet = "-"
		s.IconWarning = "WARN:"
		s.IconSuccess = "OK:"
	}

	return s
}

// Enabled returns whether styling is enabled
func (s *Styles) Enabled() bool {
	return s.enabled
}
