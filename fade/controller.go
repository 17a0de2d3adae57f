package fade

import "math"

// State identifies the controller's current fade phase.
type State int

const (
	Idle State = iota
	FadingIn
	FadingOut
)

// Controller linearly ramps the redirected output weight of one
// director toward 0 or 1, advanced once per host tick. At most one fade
// session is active per controller; starting a new one discards the old
// session without completing it. Controllers are not safe for
// concurrent use; a multi-threaded host must serialize calls itself.
type Controller struct {
	director Director
	redirect OutputRedirector

	state State
	rate  float64 // signed weight change per second, +-1/duration

	onFadeOutComplete []func()
}

// NewController binds a controller to its director for the controller's
// lifetime. The director is observed and commanded, never owned.
func NewController(d Director) *Controller {
	return &Controller{director: d}
}

// OnFadeOutComplete registers fn to be called synchronously from within
// Advance (or FadeOut, for instantaneous fades) each time a fade-out
// reaches zero weight. Fires at most once per FadeOut call.
func (c *Controller) OnFadeOutComplete(fn func()) {
	if c == nil || fn == nil {
		return
	}
	c.onFadeOutComplete = append(c.onFadeOutComplete, fn)
}

// Setup establishes output redirection without starting a fade.
func (c *Controller) Setup() {
	if c == nil {
		return
	}
	c.redirect.Setup(c.director)
}

// FadeIn ramps weight from 0 to 1 over duration seconds and resumes
// playback. The ramp always restarts from zero weight so the entrance
// is deterministic regardless of prior state. Any active fade is
// cancelled without completing. Non-positive or non-finite durations
// snap the weight to 1 immediately.
func (c *Controller) FadeIn(duration float64) {
	if c == nil {
		return
	}
	c.redirect.Setup(c.director)
	if c.director != nil {
		c.director.Resume()
	}
	c.cancel()
	if instantaneous(duration) {
		c.redirect.SetWeight(1)
		return
	}
	c.redirect.SetWeight(0)
	c.rate = 1 / duration
	c.state = FadingIn
}

// FadeOut ramps weight from its current value to 0 over duration
// seconds, pausing playback and notifying completion listeners once it
// gets there. The weight is not reset first, so a fade-out can pick up
// mid-way through a fade-in. Any active fade is cancelled without
// completing. Non-positive or non-finite durations snap to 0, pause,
// and notify immediately.
func (c *Controller) FadeOut(duration float64) {
	if c == nil {
		return
	}
	c.cancel()
	if instantaneous(duration) {
		c.redirect.SetWeight(0)
		if c.director != nil {
			c.director.Pause()
		}
		c.notifyFadeOutComplete()
		return
	}
	c.rate = -1 / duration
	c.state = FadingOut
}

// Advance moves an active fade forward by dt seconds. Call once per
// frame from the host loop; a no-op while idle.
func (c *Controller) Advance(dt float64) {
	if c == nil || c.state == Idle {
		return
	}
	w := c.redirect.Weight() + c.rate*dt
	switch {
	case c.state == FadingIn && w >= 1:
		c.redirect.SetWeight(1)
		c.cancel()
	case c.state == FadingOut && w <= 0:
		c.redirect.SetWeight(0)
		if c.director != nil {
			c.director.Pause()
		}
		c.cancel()
		c.notifyFadeOutComplete()
	default:
		c.redirect.SetWeight(w)
	}
}

// Weight returns the redirected output's blend weight, or 0 when
// redirection is not in place.
func (c *Controller) Weight() float64 {
	if c == nil {
		return 0
	}
	return c.redirect.Weight()
}

// SetWeight writes directly to the redirected output. Dropped when
// redirection is not in place.
func (c *Controller) SetWeight(w float64) {
	if c == nil {
		return
	}
	c.redirect.SetWeight(w)
}

// IsFading reports whether any fade session is active.
func (c *Controller) IsFading() bool { return c != nil && c.state != Idle }

// IsFadingIn reports whether a fade-in session is active.
func (c *Controller) IsFadingIn() bool { return c != nil && c.state == FadingIn }

// IsFadingOut reports whether a fade-out session is active.
func (c *Controller) IsFadingOut() bool { return c != nil && c.state == FadingOut }

func (c *Controller) cancel() {
	c.state = Idle
	c.rate = 0
}

func (c *Controller) notifyFadeOutComplete() {
	for _, fn := range c.onFadeOutComplete {
		fn()
	}
}

// instantaneous reports whether duration should snap instead of ramp.
// Negative and non-finite durations would otherwise produce unbounded
// or stuck rates, so they snap too.
func instantaneous(duration float64) bool {
	return duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0)
}
