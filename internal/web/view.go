package web

import (
	"encoding/json"
	"html/template"
	"strconv"

	"github.com/saifidev/portfolio/internal/contact"
	"github.com/saifidev/portfolio/internal/content"
	"github.com/saifidev/portfolio/internal/navigation"
	"github.com/saifidev/portfolio/internal/offerings"
	"github.com/saifidev/portfolio/internal/projects"
	"github.com/saifidev/portfolio/internal/visibility"
)

// pageData feeds the full page template.
type pageData struct {
	C         *content.Content
	Bio       template.HTML
	Nav       []navigation.Link
	Active    string
	Reference int
	Scrolled  int
	// AtTop is the navbar style before the first scroll event.
	AtTop     bool
	Portrait  string
	Phrases   string
	Year      int
	Grid      gridData
	Services  servicesData
	Form      formData
}

type projectCard struct {
	content.Project
	ImageURL string
}

// gridData is the projects body: tabs, cards and the load-more button.
type gridData struct {
	Categories []content.Category
	Query      projects.Query
	Cards      []projectCard
	Total      int
	HasMore    bool
	Revealed   bool
	MoreVals   string
	GitHub     string
}

type servicesData struct {
	Services []content.Service
	Panel    offerings.Panel
}

// SelectedValue is the hidden input value carrying the current selection.
func (d servicesData) SelectedValue() string {
	if d.Panel.Selected == nil {
		return ""
	}
	return strconv.Itoa(*d.Panel.Selected)
}

type formData struct {
	Draft    contact.Draft
	Errors   map[string]string
	Status   contact.Status
	TTLMilli int64
	Services []string
	Budgets  []string
}

func newGridData(c *content.Content, v projects.View, images *content.ImageResolver, reveal visibility.State) gridData {
	cards := make([]projectCard, len(v.Items))
	for i, p := range v.Items {
		cards[i] = projectCard{Project: p, ImageURL: images.Resolve(p.Image)}
	}
	return gridData{
		Categories: c.Categories,
		Query:      v.Query,
		Cards:      cards,
		Total:      v.Total,
		HasMore:    v.HasMore,
		Revealed:   reveal == visibility.Visible,
		MoreVals: hxVals(map[string]string{
			"category": v.Query.Category,
			"q":        v.Query.Search,
			"visible":  strconv.Itoa(v.Query.Visible),
		}),
		GitHub: c.GitHubProfile,
	}
}

func newFormData(c *content.Content, out contact.Outcome, status contact.Status, d *contact.Desk) formData {
	return formData{
		Draft:    out.Draft,
		Errors:   out.Errors,
		Status:   status,
		TTLMilli: d.StatusTTL().Milliseconds(),
		Services: c.Contact.Services,
		Budgets:  c.Contact.Budgets,
	}
}

// hxVals encodes an hx-vals attribute payload.
func hxVals(v map[string]string) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func phrasesJSON(phrases []string) string {
	b, err := json.Marshal(phrases)
	if err != nil {
		return "[]"
	}
	return string(b)
}
