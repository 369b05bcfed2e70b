package pipeline

import "github.com/dmitrymomot/frontdoor/pkg/statemachine"

// State is a step of the pre-render pipeline.
type State int

const (
	ResolvingLocale State = iota
	Redirecting
	LocaleFixed
	TrackingAttribution
	Rendering
)

func (s State) String() string {
	switch s {
	case ResolvingLocale:
		return "resolving_locale"
	case Redirecting:
		return "redirecting"
	case LocaleFixed:
		return "locale_fixed"
	case TrackingAttribution:
		return "tracking_attribution"
	case Rendering:
		return "rendering"
	}
	return "unknown"
}

// flow is shared by every run; Redirecting and Rendering are terminal.
var flow = statemachine.NewTable[State]().
	Allow(ResolvingLocale, Redirecting, LocaleFixed).
	Allow(LocaleFixed, TrackingAttribution).
	Allow(TrackingAttribution, Rendering)

// Outcome is what a run decided.
type Outcome struct {
	State      State
	Locale     string
	SessionID  string // empty when no session could be issued
	GCLID      string // validated gclid of this request, if any
	RedirectTo string // set only when State is Redirecting
}

// Redirected reports whether the request was answered with a redirect.
func (o Outcome) Redirected() bool { return o.State == Redirecting }
