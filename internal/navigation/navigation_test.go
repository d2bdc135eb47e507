package navigation

import (
	"errors"
	"testing"
)

func TestInitialState(t *testing.T) {
	var s State
	if s.Page() != Homepage {
		t.Fatalf("expected Homepage, got %v", s.Page())
	}
	if s.MenuOpen() {
		t.Fatal("menu should start closed")
	}
}

func TestNavigateClosesMenu(t *testing.T) {
	var s State
	s.OpenMenu()
	if !s.MenuOpen() {
		t.Fatal("menu should be open")
	}
	if err := s.Navigate(Calendar); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if s.Page() != Calendar || s.MenuOpen() {
		t.Fatalf("unexpected state page=%v menu=%v", s.Page(), s.MenuOpen())
	}

	s.OpenMenu()
	s.CloseMenu()
	if s.MenuOpen() {
		t.Fatal("menu should be closed")
	}

	if err := s.Navigate(Homepage); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	if s.Page() != Homepage {
		t.Fatalf("expected Homepage, got %v", s.Page())
	}
}

func TestNavigateUnknownPage(t *testing.T) {
	var s State
	if err := s.Navigate(Page(7)); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
	if s.Page() != Homepage {
		t.Fatal("state must not change on unknown page")
	}
}

func TestParsePageAndTitle(t *testing.T) {
	cases := []struct {
		in    string
		page  Page
		title string
	}{
		{"Homepage", Homepage, "Prototype Calorie Counter"},
		{"Calendar", Calendar, "Calendar"},
	}
	for _, tc := range cases {
		p, err := ParsePage(tc.in)
		if err != nil || p != tc.page {
			t.Fatalf("%q: got %v, %v", tc.in, p, err)
		}
		if p.Title() != tc.title {
			t.Fatalf("%q: title %q", tc.in, p.Title())
		}
	}
	if _, err := ParsePage("Settings"); !errors.Is(err, ErrUnknownPage) {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}
