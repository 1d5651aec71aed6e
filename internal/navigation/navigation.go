// Package navigation models the navbar: the ordered section links, the
// initial active section and the thresholds the browser script tracks.
package navigation

const (
	// ReferenceLine is the viewport offset, in CSS pixels, a section must
	// straddle to become active.
	ReferenceLine = 100
	// ScrolledThreshold is the scroll offset past which the navbar gets its
	// solid background.
	ScrolledThreshold = 50
)

// Link is one navbar entry.
type Link struct {
	ID   string
	Name string
}

// Href is the in-page anchor for the link.
func (l Link) Href() string { return "#" + l.ID }

// Links is the page order of the tracked sections.
var Links = []Link{
	{ID: "home", Name: "Home"},
	{ID: "about", Name: "About"},
	{ID: "skills", Name: "Skills"},
	{ID: "experience", Name: "Experience"},
	{ID: "projects", Name: "Projects"},
	{ID: "services", Name: "Services"},
	{ID: "contact", Name: "Contact"},
}

// InitialSection is the section marked active before the first scroll event.
// From then on the browser script recomputes it against ReferenceLine.
func InitialSection() string { return Links[0].ID }

// Scrolled reports whether the page has scrolled far enough for the solid
// navbar style.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrolledThreshold
}
