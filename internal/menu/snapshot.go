// Package menu holds the startup snapshot of the weekly menu. The snapshot
// is immutable for the process lifetime: /editmenu writes to the repository
// only, so menu text shown to users is stale until the process restarts.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/thespread/spreadbot/internal/orders"
)

type Day struct {
	Items    []orders.MenuItem
	Photo    []byte
	Rendered string // HTML, one <pre> bullet line per item
}

type Snapshot struct {
	days   map[orders.Weekday]Day
	weekly string
}

// Load reads every weekday's items and category photo and pre-renders the
// display strings. Called once, after the repository connection is ready.
func Load(ctx context.Context, store orders.Store) (*Snapshot, error) {
	s := &Snapshot{days: make(map[orders.Weekday]Day, len(orders.Weekdays))}
	var weekly strings.Builder
	weekly.WriteString("<b>CURRENT WEEKLY MENU</b>\r\n\r\n")
	for _, w := range orders.Weekdays {
		items, err := store.Menu(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("load menu %s: %w", w, err)
		}
		photo, err := store.CategoryPhoto(ctx, w)
		if err != nil {
			return nil, fmt.Errorf("load photo %s: %w", w, err)
		}
		d := Day{Items: items, Photo: photo, Rendered: renderDay(items)}
		s.days[w] = d
		fmt.Fprintf(&weekly, "<b>%s</b>\r\n%s\r\n\r\n", w, d.Rendered)
	}
	s.weekly = weekly.String()
	return s, nil
}

func (s *Snapshot) Day(w orders.Weekday) Day { return s.days[w] }

// Weekly is the full /menu message.
func (s *Snapshot) Weekly() string { return s.weekly }

// ItemNames lists a day's item names, in menu order, for inline buttons.
func (s *Snapshot) ItemNames(w orders.Weekday) []string {
	d := s.days[w]
	names := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		names = append(names, it.Name)
	}
	return names
}

func renderDay(items []orders.MenuItem) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("<pre>• %s - $%s</pre>", it.Name, it.Price.StringFixed(2)))
	}
	return strings.Join(lines, "\r\n")
}
