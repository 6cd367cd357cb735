// Package shell holds the per-visitor view state of the site and the
// transitions user actions apply to it.
package shell

import (
	"strings"

	"hcdigital.dev/web/internal/i18n"
)

// Page is one of the mutually exclusive top-level panels.
type Page string

const (
	Home     Page = "home"
	Services Page = "services"
	Contact  Page = "contact"
)

// Pages lists every page in navigation order.
var Pages = []Page{Home, Services, Contact}

// ParsePage accepts only members of the closed page set.
func ParsePage(s string) (Page, bool) {
	switch p := Page(strings.ToLower(strings.TrimSpace(s))); p {
	case Home, Services, Contact:
		return p, true
	}
	return "", false
}

func (p Page) String() string { return string(p) }

// State is the serialisable shell state of one page-view session.
type State struct {
	Locale   i18n.Locale `json:"locale"`
	Page     Page        `json:"page"`
	MenuOpen bool        `json:"menu,omitempty"`
	// ScrollTop is a one-shot render effect set by navigation.
	ScrollTop bool `json:"scroll,omitempty"`
	// Mount identifies the mounted contact form; empty when the contact panel is not mounted.
	Mount string `json:"mount,omitempty"`
}

// Initial is the state of a fresh session.
func Initial(l i18n.Locale) State {
	if !l.Valid() {
		l = i18n.Default
	}
	return State{Locale: l, Page: Home}
}

// Normalize repairs values decoded from an untrusted cookie.
func Normalize(s State) State {
	if !s.Locale.Valid() {
		s.Locale = i18n.Default
	}
	if _, ok := ParsePage(string(s.Page)); !ok {
		s.Page = Home
		s.Mount = ""
	}
	if s.Page != Contact {
		s.Mount = ""
	}
	return s
}

// Navigate makes p the active page and requests a scroll to the top.
// Leaving the contact page unmounts its form.
func Navigate(s State, p Page) State {
	if _, ok := ParsePage(string(p)); !ok {
		return s
	}
	if s.Page != p && s.Page == Contact {
		s.Mount = ""
	}
	s.Page = p
	s.ScrollTop = true
	return s
}

// Select is a navigation from a menu entry: navigate and close the mobile menu.
func Select(s State, p Page) State {
	s = Navigate(s, p)
	s.MenuOpen = false
	return s
}

// ToggleMenu flips the mobile menu.
func ToggleMenu(s State) State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// ToggleLocale flips the display language; nothing else changes.
func ToggleLocale(s State) State {
	s.Locale = s.Locale.Toggle()
	return s
}

// Dir is the text direction of the active locale.
func (s State) Dir() string { return s.Locale.Dir() }
