package shell

import "hcdigital.dev/web/internal/i18n"

// Mounter creates and discards contact form mounts.
type Mounter interface {
	Mount() (string, error)
	Exists(id string) bool
	Discard(id string)
}

// Controller owns the shell state for one request. Transitions go through it
// so that form mounts follow the panel lifecycle.
type Controller struct {
	state   State
	changed bool
	forms   Mounter
}

// NewController wraps s. forms may be nil when no contact form is served.
func NewController(s State, forms Mounter) *Controller {
	return &Controller{state: Normalize(s), forms: forms}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Changed reports whether any transition modified the state.
func (c *Controller) Changed() bool { return c.changed }

func (c *Controller) Select(p Page) { c.apply(Select(c.state, p)) }

func (c *Controller) ToggleMenu() { c.apply(ToggleMenu(c.state)) }

func (c *Controller) ToggleLocale() { c.apply(ToggleLocale(c.state)) }

// SetLocale is used by explicit ?hl= links.
func (c *Controller) SetLocale(l i18n.Locale) {
	if !l.Valid() || l == c.state.Locale {
		return
	}
	next := c.state
	next.Locale = l
	c.apply(next)
}

// EnsureMount returns the mount id of the contact panel, creating a fresh
// mount when the panel has none or its mount has expired.
func (c *Controller) EnsureMount() (string, error) {
	if c.state.Page != Contact || c.forms == nil {
		return "", nil
	}
	if c.state.Mount != "" && c.forms.Exists(c.state.Mount) {
		return c.state.Mount, nil
	}
	id, err := c.forms.Mount()
	if err != nil {
		return "", err
	}
	next := c.state
	next.Mount = id
	c.apply(next)
	return id, nil
}

// ConsumeScroll clears and returns the pending scroll-to-top effect.
func (c *Controller) ConsumeScroll() bool {
	if !c.state.ScrollTop {
		return false
	}
	next := c.state
	next.ScrollTop = false
	c.apply(next)
	return true
}

func (c *Controller) apply(next State) {
	if c.state.Mount != "" && next.Mount != c.state.Mount && c.forms != nil {
		c.forms.Discard(c.state.Mount)
	}
	if next != c.state {
		c.changed = true
	}
	c.state = next
}
