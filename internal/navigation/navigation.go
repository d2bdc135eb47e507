// Package navigation models which page is shown and whether the menu is
// open.
package navigation

import (
	"errors"
	"fmt"
)

// Page is the page currently rendered.
type Page int

const (
	Homepage Page = iota
	Calendar
)

var ErrUnknownPage = errors.New("unknown page")

func (p Page) String() string {
	switch p {
	case Homepage:
		return "Homepage"
	case Calendar:
		return "Calendar"
	default:
		return fmt.Sprintf("Page(%d)", int(p))
	}
}

// Title is the header shown above the page.
func (p Page) Title() string {
	if p == Calendar {
		return "Calendar"
	}
	return "Prototype Calorie Counter"
}

// Pages lists every page in menu order.
func Pages() []Page {
	return []Page{Homepage, Calendar}
}

// ParsePage accepts the names returned by Page.String.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages() {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPage, s)
}

// State is the navigation state of one session. The zero value is the
// initial state: Homepage with the menu closed.
type State struct {
	page     Page
	menuOpen bool
}

func (s *State) Page() Page { return s.page }

func (s *State) MenuOpen() bool { return s.menuOpen }

func (s *State) OpenMenu() { s.menuOpen = true }

func (s *State) CloseMenu() { s.menuOpen = false }

// Navigate switches to p and closes the menu.
func (s *State) Navigate(p Page) error {
	switch p {
	case Homepage, Calendar:
	default:
		return fmt.Errorf("%w: %d", ErrUnknownPage, int(p))
	}
	s.page = p
	s.menuOpen = false
	return nil
}
