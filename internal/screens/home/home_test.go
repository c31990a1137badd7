package home

import (
	"strings"
	"testing"

	"github.com/mathspiral/mathspiral/internal/skills"
)

func TestHomeListsEverySkill(t *testing.T) {
	h := New(nil, nil)
	view := h.View(100, 30)

	for _, sk := range skills.All() {
		if !strings.Contains(view, sk.Name) {
			t.Errorf("home view missing skill %q", sk.Name)
		}
	}
	for _, d := range skills.AllDomains() {
		if !strings.Contains(view, strings.ToUpper(skills.DomainDisplayName(d))) {
			t.Errorf("home view missing domain header %q", skills.DomainDisplayName(d))
		}
	}
	if !strings.Contains(view, "Exit") {
		t.Error("home view missing exit entry")
	}
}

func TestHomeSkipsHeadersWhenNavigating(t *testing.T) {
	h := New(nil, nil)
	// First selectable entry sits below the first domain header.
	if h.menu.Selected == 0 {
		t.Error("initial selection landed on a header row")
	}
	if h.menu.Items[h.menu.Selected].Disabled {
		t.Error("initial selection is disabled")
	}
}

func TestHomeTitle(t *testing.T) {
	h := New(nil, nil)
	if h.Title() != "Home" {
		t.Errorf("Title = %q", h.Title())
	}
}
