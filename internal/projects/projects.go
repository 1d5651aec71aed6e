// Package projects filters, searches and paginates the project grid.
package projects

import (
	"strings"

	"github.com/saifidev/portfolio/internal/content"
)

const (
	// InitialVisible is how many cards show before "load more".
	InitialVisible = 6
	// BatchSize is how many cards each "load more" adds.
	BatchSize = 3
)

// Query is the grid state carried by each request.
type Query struct {
	Category string
	Search   string
	Visible  int
}

// Normalize fills defaults: category "all" and the initial visible count.
func (q Query) Normalize(initial int) Query {
	if q.Category == "" {
		q.Category = content.CategoryAll
	}
	if q.Visible <= 0 {
		q.Visible = initial
	}
	return q
}

// View is one rendering of the grid.
type View struct {
	Query   Query
	Items   []content.Project
	Total   int
	HasMore bool
}

// Matches reports whether p passes both the category and the search predicate.
// The search is a case-insensitive substring match on the title, the
// description and each technology tag. An empty search matches everything.
func Matches(p content.Project, category, search string) bool {
	if category != "" && category != content.CategoryAll && p.Category != category {
		return false
	}
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Title), needle) ||
		strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

// Filter returns the projects matching category and search, in list order.
func Filter(all []content.Project, category, search string) []content.Project {
	out := make([]content.Project, 0, len(all))
	for _, p := range all {
		if Matches(p, category, search) {
			out = append(out, p)
		}
	}
	return out
}

// Paginate returns the visible prefix of the filtered list.
func Paginate(all []content.Project, q Query) View {
	filtered := Filter(all, q.Category, q.Search)
	n := max(min(q.Visible, len(filtered)), 0)
	return View{
		Query:   q,
		Items:   filtered[:n],
		Total:   len(filtered),
		HasMore: q.Visible < len(filtered),
	}
}

// LoadMore grows visible by batch, capped at the filtered total. visible
// comes from the request, so it is compared before adding.
func LoadMore(visible, batch, total int) int {
	if visible >= total-batch {
		return total
	}
	return visible + batch
}

// Grid ties the pagination rules to configured sizes.
type Grid struct {
	initial int
	batch   int
}

// NewGrid returns a grid with the given page sizes; non-positive values fall
// back to InitialVisible and BatchSize.
func NewGrid(initial, batch int) *Grid {
	if initial <= 0 {
		initial = InitialVisible
	}
	if batch <= 0 {
		batch = BatchSize
	}
	return &Grid{initial: initial, batch: batch}
}

// Show renders the first page of q. Any visible count carried over from a
// previous filter is dropped, so a filter or search change restarts the grid.
func (g *Grid) Show(all []content.Project, q Query) View {
	q.Visible = 0
	return Paginate(all, q.Normalize(g.initial))
}

// More renders q with one more batch revealed.
func (g *Grid) More(all []content.Project, q Query) View {
	q = q.Normalize(g.initial)
	total := len(Filter(all, q.Category, q.Search))
	q.Visible = LoadMore(q.Visible, g.batch, total)
	return Paginate(all, q)
}

// Initial returns the configured initial visible count.
func (g *Grid) Initial() int { return g.initial }
