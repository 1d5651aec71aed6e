// Package offerings handles the expandable service detail panel.
package offerings

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/saifidev/portfolio/internal/content"
)

var ErrUnknownService = errors.New("unknown service")

// Toggle returns the selection after clicking id. Clicking the selected
// service collapses it; clicking another one selects that instead.
func Toggle(selected *int, id int) *int {
	if selected != nil && *selected == id {
		return nil
	}
	return &id
}

// ParseSelected reads the current selection from a query value. Empty or
// malformed input means nothing is selected.
func ParseSelected(raw string) *int {
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &id
}

// Tier is one pricing column of the detail panel.
type Tier struct {
	Name    string
	Price   string
	Perks   []string
	Popular bool
}

// Detail is the expanded panel for a service.
type Detail struct {
	Service content.Service
	Tiers   []Tier
}

// Panel is the result of a toggle: Detail is nil when collapsed.
type Panel struct {
	ID       int
	Selected *int
	Detail   *Detail
}

// Expanded reports whether a detail panel is showing.
func (p Panel) Expanded() bool { return p.Detail != nil }

// Click applies a toggle of id against the current selection.
func Click(c *content.Content, selected *int, id int) (Panel, error) {
	svc, ok := c.ServiceByID(id)
	if !ok {
		return Panel{}, fmt.Errorf("service %d: %w", id, ErrUnknownService)
	}
	next := Toggle(selected, id)
	p := Panel{ID: id, Selected: next}
	if next != nil {
		d := Build(*svc, c.TierPerks)
		p.Detail = &d
	}
	return p, nil
}

// Build assembles the three tiers of svc.
func Build(svc content.Service, perks content.TierPerks) Detail {
	return Detail{
		Service: svc,
		Tiers: []Tier{
			{Name: "Basic", Price: svc.Price.Basic, Perks: perks.Basic},
			{Name: "Standard", Price: svc.Price.Standard, Perks: perks.Standard, Popular: true},
			{Name: "Premium", Price: svc.Price.Premium, Perks: perks.Premium},
		},
	}
}
