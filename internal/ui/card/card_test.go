package card

import (
	"testing"

	"github.com/riskibarqy/clubdesk/internal/usecase"
)

type navigatorFake struct {
	paths []string
}

func (n *navigatorFake) Navigate(path string) {
	n.paths = append(n.paths, path)
}

type scrollerFake struct {
	anchors []string
	found   bool
}

func (s *scrollerFake) ScrollTo(anchor string) bool {
	s.anchors = append(s.anchors, anchor)
	return s.found
}

func TestThemeFor_AllColorModeCombinations(t *testing.T) {
	seen := make(map[string]bool)
	for _, color := range AllColors {
		for _, dark := range []bool{false, true} {
			theme := ThemeFor(color, dark)
			if theme.Container == "" || theme.Accent == "" || theme.Value == "" {
				t.Fatalf("incomplete theme for %s dark=%v: %+v", color, dark, theme)
			}
			if seen[theme.Container] {
				t.Fatalf("duplicate container classes for %s dark=%v", color, dark)
			}
			seen[theme.Container] = true
		}
	}
	if len(seen) != 10 {
		t.Fatalf("expected 10 distinct themes, got %d", len(seen))
	}
}

func TestThemeFor_UnknownColorFallsBackToBlue(t *testing.T) {
	if got := ThemeFor(Color("crimson"), false); got != ThemeFor(ColorBlue, false) {
		t.Fatalf("expected blue fallback, got %+v", got)
	}
	if got := ParseColor("crimson"); got != ColorBlue {
		t.Fatalf("expected blue fallback, got %s", got)
	}
	if got := ParseColor("indigo"); got != ColorIndigo {
		t.Fatalf("expected indigo, got %s", got)
	}
}

func TestCardView_KeepsStatOrder(t *testing.T) {
	c := Card{
		Title: "Positions",
		Color: ColorGreen,
		Stats: []Stat{
			{Label: "Forwards", Value: "1"},
			{Label: "Midfielders", Value: "1"},
			{Label: "Defenders", Value: "1"},
			{Label: "Goalkeepers", Value: "0"},
		},
	}

	for _, dark := range []bool{false, true} {
		view := c.View(dark)
		if len(view.Stats) != 4 {
			t.Fatalf("expected 4 stats, got %d", len(view.Stats))
		}
		want := []string{"Forwards", "Midfielders", "Defenders", "Goalkeepers"}
		for i, label := range want {
			if view.Stats[i].Label != label {
				t.Fatalf("stat %d out of order: got %s, want %s", i, view.Stats[i].Label, label)
			}
		}
		if view.Classes != ThemeFor(ColorGreen, dark) {
			t.Fatalf("unexpected theme: %+v", view.Classes)
		}
	}
}

func TestCardActivate_NavigatesOncePerClick(t *testing.T) {
	nav := &navigatorFake{}
	scroll := &scrollerFake{}

	Card{Path: "/roster", Color: ColorBlue}.Activate(nav, scroll)

	if len(nav.paths) != 1 || nav.paths[0] != "/roster" {
		t.Fatalf("expected one navigation to /roster, got %v", nav.paths)
	}
	if len(scroll.anchors) != 0 {
		t.Fatalf("navigation must not scroll, got %v", scroll.anchors)
	}
}

func TestCardActivate_AnchorScrollsWithoutNavigation(t *testing.T) {
	nav := &navigatorFake{}
	scroll := &scrollerFake{found: true}

	Card{Path: "#position-breakdown", Color: ColorGreen}.Activate(nav, scroll)

	if len(nav.paths) != 0 {
		t.Fatalf("anchor activation must not navigate, got %v", nav.paths)
	}
	if len(scroll.anchors) != 1 || scroll.anchors[0] != "position-breakdown" {
		t.Fatalf("expected one scroll to position-breakdown, got %v", scroll.anchors)
	}
}

func TestCardActivate_MissingAnchorIgnored(t *testing.T) {
	nav := &navigatorFake{}
	scroll := &scrollerFake{found: false}

	Card{Path: "#gone"}.Activate(nav, scroll)

	if len(nav.paths) != 0 {
		t.Fatalf("missing anchor must not fall back to navigation, got %v", nav.paths)
	}
	if len(scroll.anchors) != 1 {
		t.Fatalf("expected one scroll attempt, got %v", scroll.anchors)
	}
}

func TestFromDashboard(t *testing.T) {
	in := usecase.DashboardCard{
		Title:       "Squad",
		Description: "Roster overview",
		Icon:        "users",
		Color:       "blue",
		Path:        "/roster",
		Stats: []usecase.CardStat{
			{Label: "Players", Value: "4"},
			{Label: "Active", Value: "3"},
		},
	}

	c := FromDashboard(in)
	if c.Color != ColorBlue || c.Path != "/roster" || c.Title != "Squad" {
		t.Fatalf("unexpected card: %+v", c)
	}
	if len(c.Stats) != 2 || c.Stats[0].Label != "Players" || c.Stats[1].Value != "3" {
		t.Fatalf("unexpected stats: %+v", c.Stats)
	}
}
