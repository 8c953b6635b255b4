// Package card renders the dashboard management cards: themed summary
// tiles that either navigate to another section or scroll to an
// in-page anchor when activated.
package card

import (
	"strings"

	"github.com/riskibarqy/clubdesk/internal/usecase"
)

// Stat is one label/value pair displayed on a card, in order.
type Stat struct {
	Label string
	Value string
}

// Card is the stateless model behind one management tile. A Path
// beginning with "#" names an in-page anchor instead of a route.
type Card struct {
	Title       string
	Description string
	Icon        string
	Color       Color
	Path        string
	Stats       []Stat
}

// Navigator performs a client-side route change.
type Navigator interface {
	Navigate(path string)
}

// Scroller brings an in-page anchor into view. It reports whether the
// anchor existed; activation ignores the result since a missing anchor
// is not an error.
type Scroller interface {
	ScrollTo(anchor string) bool
}

// Activate handles a click. An anchor path scrolls and never
// navigates; any other path triggers exactly one navigation.
func (c Card) Activate(nav Navigator, scroll Scroller) {
	if anchor, ok := strings.CutPrefix(c.Path, "#"); ok {
		if anchor != "" && scroll != nil {
			scroll.ScrollTo(anchor)
		}
		return
	}
	if nav != nil {
		nav.Navigate(c.Path)
	}
}

// View is the fully resolved render model for one card.
type View struct {
	Title       string
	Description string
	Icon        string
	Classes     Theme
	Stats       []Stat
}

// View resolves the card against a color mode. Stats keep their given
// order.
func (c Card) View(dark bool) View {
	return View{
		Title:       c.Title,
		Description: c.Description,
		Icon:        c.Icon,
		Classes:     ThemeFor(c.Color, dark),
		Stats:       append([]Stat(nil), c.Stats...),
	}
}

// FromDashboard maps a service card into a renderable one. Unknown
// colors fall back to blue.
func FromDashboard(in usecase.DashboardCard) Card {
	stats := make([]Stat, 0, len(in.Stats))
	for _, s := range in.Stats {
		stats = append(stats, Stat{Label: s.Label, Value: s.Value})
	}
	return Card{
		Title:       in.Title,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       ParseColor(in.Color),
		Path:        in.Path,
		Stats:       stats,
	}
}
