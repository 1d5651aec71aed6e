package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saifidev/portfolio/internal/contact"
	"github.com/saifidev/portfolio/internal/content"
	"github.com/saifidev/portfolio/internal/navigation"
	"github.com/saifidev/portfolio/internal/offerings"
	"github.com/saifidev/portfolio/internal/projects"
	"github.com/saifidev/portfolio/internal/visibility"
)

func (s *Server) images(c *content.Content) *content.ImageResolver {
	return content.NewImageResolver(s.cfg.AssetsDir, c.Site.Placeholder)
}

// buildPage assembles the initial state of every section.
func (s *Server) buildPage(c *content.Content) (pageData, error) {
	bio, err := c.RenderBio()
	if err != nil {
		return pageData{}, err
	}
	images := s.images(c)
	view := s.grid.Show(c.Projects, projects.Query{})
	return pageData{
		C:         c,
		Bio:       bio,
		Nav:       navigation.Links,
		Active:    navigation.InitialSection(),
		Reference: navigation.ReferenceLine,
		Scrolled:  navigation.ScrolledThreshold,
		AtTop:     !navigation.Scrolled(0),
		Portrait:  images.Resolve(c.Site.Portrait),
		Phrases:   phrasesJSON(c.Site.Phrases),
		Year:      s.now().Year(),
		Grid:      newGridData(c, view, images, visibility.For("projects").Initial()),
		Services:  servicesData{Services: c.Services},
		Form:      newFormData(c, contact.Outcome{}, contact.StatusIdle, s.desk),
	}, nil
}

// index handles GET /
func (s *Server) index(c *gin.Context) {
	page, err := s.buildPage(s.store.Load())
	if err != nil {
		s.logger.Error("rendering page", "error", err)
		c.String(http.StatusInternalServerError, "Something went wrong")
		return
	}
	c.HTML(http.StatusOK, "index.html", page)
}

func gridQuery(c *gin.Context) projects.Query {
	q := projects.Query{
		Category: c.Query("category"),
		Search:   c.Query("q"),
	}
	if v, err := strconv.Atoi(c.Query("visible")); err == nil {
		q.Visible = v
	}
	return q
}

// projectGrid handles GET /sections/projects. Filter and search changes
// always restart the grid at its first page.
func (s *Server) projectGrid(c *gin.Context) {
	s.renderGrid(c, s.grid.Show)
}

// projectGridMore handles GET /sections/projects/more
func (s *Server) projectGridMore(c *gin.Context) {
	s.renderGrid(c, s.grid.More)
}

func (s *Server) renderGrid(c *gin.Context, show func([]content.Project, projects.Query) projects.View) {
	doc := s.store.Load()
	view := show(doc.Projects, gridQuery(c))
	s.metrics.ProjectQueries.WithLabelValues(view.Query.Category).Inc()
	// The visitor just clicked inside the grid, so it is on screen.
	reveal := visibility.For("projects").InView()
	c.HTML(http.StatusOK, "projects-body", newGridData(doc, view, s.images(doc), reveal))
}

// serviceToggle handles GET /sections/services/:id?selected=
func (s *Server) serviceToggle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid service id")
		return
	}
	doc := s.store.Load()
	panel, err := offerings.Click(doc, offerings.ParseSelected(c.Query("selected")), id)
	if errors.Is(err, offerings.ErrUnknownService) {
		c.String(http.StatusNotFound, "service not found")
		return
	}
	state := "collapsed"
	if panel.Expanded() {
		state = "expanded"
	}
	s.metrics.ServiceToggles.WithLabelValues(state).Inc()
	c.HTML(http.StatusOK, "service-panel", servicesData{Services: doc.Services, Panel: panel})
}

// contactForm handles GET /contact-form
func (s *Server) contactForm(c *gin.Context) {
	doc := s.store.Load()
	c.HTML(http.StatusOK, "contact-form", newFormData(doc, contact.Outcome{}, contact.StatusIdle, s.desk))
}

// submitContact handles POST /contact
func (s *Server) submitContact(c *gin.Context) {
	var draft contact.Draft
	if err := c.ShouldBind(&draft); err != nil {
		c.String(http.StatusBadRequest, "invalid form")
		return
	}

	out := s.desk.Submit(c.Request.Context(), draft)
	doc := s.store.Load()
	// Field errors are re-rendered with 200 so htmx swaps them in.
	c.HTML(http.StatusOK, "contact-form", newFormData(doc, out, out.StatusAt(s.now()), s.desk))
}

// contactStatus handles GET /contact/status. The success banner polls it
// once after the status TTL to remove itself.
func (s *Server) contactStatus(c *gin.Context) {
	c.HTML(http.StatusOK, "contact-status", formData{Status: contact.StatusIdle})
}
