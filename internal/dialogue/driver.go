// Package dialogue runs the CareBot conversation: a small state machine
// whose states prompt the user on a line-oriented console.
package dialogue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/pthm/carebot/internal/classifier"
	"github.com/pthm/carebot/internal/embedding"
	"github.com/pthm/carebot/internal/intent"
	"github.com/pthm/carebot/internal/logging"
	"github.com/pthm/carebot/internal/style"
	"github.com/pthm/carebot/internal/ui"
	"github.com/pthm/carebot/internal/userinfo"
)

// Defaults used when the matching Options field is zero.
const (
	DefaultMenuRetryBound     = 5
	DefaultMinStylisticLength = 20
)

// HealthClassifier maps a free-text health statement to a label, 0 for
// healthy and 1 for unhealthy.
type HealthClassifier interface {
	Classify(ctx context.Context, text string) (int, error)
}

// Options configures a Driver.
type Options struct {
	Classifier         HealthClassifier
	Tagger             style.Tagger
	WordThreshold      int
	WPSThreshold       float64
	MenuRetryBound     int
	MinStylisticLength int
	Logger             *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.WordThreshold <= 0 {
		o.WordThreshold = style.DefaultWordThreshold
	}
	if o.WPSThreshold <= 0 {
		o.WPSThreshold = style.DefaultWPSThreshold
	}
	if o.MenuRetryBound <= 0 {
		o.MenuRetryBound = DefaultMenuRetryBound
	}
	if o.MinStylisticLength <= 0 {
		o.MinStylisticLength = DefaultMinStylisticLength
	}
	if o.Tagger == nil {
		o.Tagger = style.NewProseTagger()
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// Driver runs one conversation.
type Driver struct {
	console *console
	styles  *ui.Styles
	opts    Options
	log     *slog.Logger

	profile userinfo.Profile
}

// New creates a Driver reading from in and writing to out.
func New(in io.Reader, out io.Writer, styles *ui.Styles, opts Options) *Driver {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	opts = opts.withDefaults()
	return &Driver{
		console: newConsole(in, out),
		styles:  styles,
		opts:    opts,
		log:     opts.Logger,
	}
}

// Profile returns the profile collected so far.
func (d *Driver) Profile() userinfo.Profile {
	return d.profile
}

// Run drives the conversation from Welcome until Quit. The farewell is
// printed exactly once, also when the input ends early.
func (d *Driver) Run(ctx context.Context) error {
	if d.opts.Classifier == nil {
		return errors.New("dialogue: no health classifier configured")
	}

	state := Welcome
	prev := EventGreeted
	for state != Quit {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := d.step(ctx, state, prev)
		if errors.Is(err, errInputClosed) {
			ev = EventInputClosed
		} else if err != nil {
			return err
		}

		next, err := Transition(state, ev)
		if err != nil {
			return err
		}
		d.log.Debug("transition", "from", state, "event", ev, "to", next)
		state, prev = next, ev
	}

	d.console.say(d.styles.Bot, farewellText)
	return nil
}

func (d *Driver) step(ctx context.Context, state State, prev Event) (Event, error) {
	switch state {
	case Welcome:
		d.welcome()
		return EventGreeted, nil
	case CollectInfo:
		return d.collectInfo()
	case HealthCheck:
		return d.healthCheck(ctx, prev == EventProfileAccepted)
	case StylisticAnalysis:
		return d.stylisticAnalysis()
	case MenuCheck:
		return d.menuCheck()
	}
	return 0, fmt.Errorf("%w: no handler for %s", ErrInvalidTransition, state)
}

func (d *Driver) welcome() {
	d.console.say(d.styles.Banner, bannerText)
	d.console.say(d.styles.Bot, welcomeText)
	d.console.blank()
}

// collectInfo asks for name and date of birth until both parse. Each
// missing field gets its own message, name first.
func (d *Driver) collectInfo() (Event, error) {
	for {
		text, err := d.console.ask(d.styles.Prompt, infoPrompt)
		if err != nil {
			return 0, err
		}

		profile, ok := userinfo.Parse(text)
		if profile.Name == "" {
			d.console.say(d.styles.Apology, badNameText)
		}
		if profile.DateOfBirth == "" {
			d.console.say(d.styles.Apology, badDOBText)
		}
		if !ok {
			continue
		}

		d.profile = profile
		d.log.Debug("profile accepted", "name", profile.Name, "dob", profile.DateOfBirth)
		d.console.say(d.styles.Bot, fmt.Sprintf(profileText, userinfo.FirstName(profile.Name), profile.DateOfBirth))
		d.console.blank()
		return EventProfileAccepted, nil
	}
}

// healthCheck classifies the user's health statement.
func (d *Driver) healthCheck(ctx context.Context, first bool) (Event, error) {
	label, err := d.readHealthLabel(ctx)
	if err != nil {
		return 0, err
	}

	switch label {
	case classifier.Healthy:
		d.console.say(d.styles.Healthy, healthyText)
	case classifier.Unhealthy:
		d.console.say(d.styles.Unhealthy, unhealthyText)
	default:
		d.console.say(d.styles.Apology, fmt.Sprintf(oddLabelText, label))
	}
	d.console.blank()

	if first {
		return EventInitialHealthChecked, nil
	}
	return EventHealthChecked, nil
}

func (d *Driver) readHealthLabel(ctx context.Context) (int, error) {
	prompt := healthPrompt
	for {
		text, err := d.console.ask(d.styles.Prompt, prompt)
		if err != nil {
			return 0, err
		}
		prompt = repeatPrompt
		if text == "" {
			continue
		}

		label, err := d.opts.Classifier.Classify(ctx, text)
		if errors.Is(err, embedding.ErrNoTokens) {
			d.log.Debug("health statement has no tokens", "text", text)
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("classifying health statement: %w", err)
		}
		d.log.Debug("health classified", "label", label)
		return label, nil
	}
}

// stylisticAnalysis reports the three strongest correlates of the user's
// writing style.
func (d *Driver) stylisticAnalysis() (Event, error) {
	prompt := stylePrompt
	var text string
	for {
		var err error
		text, err = d.console.ask(d.styles.Prompt, prompt)
		if err != nil {
			return 0, err
		}
		if text == "" {
			prompt = repeatPrompt
			continue
		}
		if utf8.RuneCountInString(text) < d.opts.MinStylisticLength {
			prompt = moreDetailText
			continue
		}
		break
	}

	features, err := style.Analyze(d.opts.Tagger, text)
	if err != nil {
		return 0, fmt.Errorf("analyzing style: %w", err)
	}
	d.log.Debug("style analyzed", "features", features)

	th := style.Thresholds{Words: d.opts.WordThreshold, WPS: d.opts.WPSThreshold}
	d.console.say(d.styles.Bot, correlatesText)
	for _, label := range style.Summarize(features, th) {
		d.console.say(d.styles.Correlate, d.styles.IconBullet+" "+label)
	}
	d.console.blank()
	return EventStyleAnalyzed, nil
}

// menuCheck asks what to do next. Empty answers are reprompted within the
// round; unrecognised answers use up a round. Running out of rounds quits.
func (d *Driver) menuCheck() (Event, error) {
	prompt := menuPrompt
	for round := 1; round <= d.opts.MenuRetryBound; {
		text, err := d.console.ask(d.styles.Prompt, prompt)
		if err != nil {
			return 0, err
		}
		if text == "" {
			prompt = menuEmptyText + "\n" + menuPrompt
			continue
		}

		in := intent.Resolve(text)
		d.log.Debug("menu intent", "round", round, "intent", in)
		switch in {
		case intent.Quit:
			return EventQuitRequested, nil
		case intent.RedoHealthCheck:
			return EventHealthCheckRequested, nil
		case intent.RedoStylisticAnalysis:
			return EventStyleAnalysisRequested, nil
		}

		round++
		prompt = rephraseText
	}

	d.console.say(d.styles.Apology, apologyText)
	return EventQuitRequested, nil
}
