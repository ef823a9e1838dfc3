// Package router selects the top-level screen.
//
// Navigation is a plain setter: any page is reachable from any other, there
// is no history and no guard. Every call resets the scroll position.
package router

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/vidcash/internal/session"
)

// Page is one top-level screen.
type Page string

const (
	Landing           Page = "landing"
	Auth              Page = "auth"
	Dashboard         Page = "dashboard"
	YouTuberDashboard Page = "youtuber-dashboard"
	Rules             Page = "rules"
	FAQ               Page = "faq"
	Terms             Page = "terms"
	Privacy           Page = "privacy"
)

// ErrUnknownPage is returned by ParsePage.
var ErrUnknownPage = errors.New("unknown page")

// Pages lists every page in menu order.
func Pages() []Page {
	return []Page{Landing, Auth, Dashboard, YouTuberDashboard, Rules, FAQ, Terms, Privacy}
}

// Known reports whether p is one of Pages().
func (p Page) Known() bool {
	for _, q := range Pages() {
		if p == q {
			return true
		}
	}
	return false
}

// Resolve maps unknown pages to Landing.
func (p Page) Resolve() Page {
	if p.Known() {
		return p
	}
	return Landing
}

// ParsePage accepts a canonical page name. Unknown names get the closest
// known name as a suggestion.
func ParsePage(s string) (Page, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if p := Page(name); p.Known() {
		return p, nil
	}
	best, bestDist := Landing, -1
	for _, p := range Pages() {
		d := levenshtein.ComputeDistance(name, string(p))
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownPage, s, best)
}

// Scroller is reset to the top on each navigation.
type Scroller interface {
	ScrollToTop()
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func()

func (f ScrollerFunc) ScrollToTop() { f() }

// Router holds the current page.
type Router struct {
	current  Page
	scroller Scroller
}

// New starts at start (resolved to Landing if unknown). scroller may be nil.
func New(start Page, scroller Scroller) *Router {
	return &Router{current: start.Resolve(), scroller: scroller}
}

// Current returns the page being shown.
func (r *Router) Current() Page { return r.current }

// Navigate switches to page and scrolls to the top.
func (r *Router) Navigate(page Page) {
	if r.scroller != nil {
		r.scroller.ScrollToTop()
	}
	r.current = page.Resolve()
}

// DashboardFor returns the page a freshly signed-in role lands on.
func DashboardFor(role session.Role) Page {
	if role == session.YouTuber {
		return YouTuberDashboard
	}
	return Dashboard
}
