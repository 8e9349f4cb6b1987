package web

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/chandan25sharma/portfolio/internal/catalog"
	"github.com/chandan25sharma/portfolio/internal/contact"
	"github.com/chandan25sharma/portfolio/internal/content"
	"github.com/chandan25sharma/portfolio/internal/views"
	"github.com/gin-gonic/gin"
)

// Pages renders the public HTML pages.
type Pages struct {
	contact   *contact.Service
	hashIP    func(string) string
	retention time.Duration
	now       func() time.Time
}

func (p *Pages) RegisterRoutes(r gin.IRouter) {
	r.GET("/", p.home)
	r.GET("/about", p.about)
	r.GET("/projects", p.projects)
	r.GET("/research", p.research)
	r.GET("/contact", p.contactPage)
	r.POST("/contact", p.submitContact)
	r.GET("/privacy", p.privacy)
}

// page merges the chrome every page template needs into h.
func (p *Pages) page(c *gin.Context, title string, h gin.H) gin.H {
	data := gin.H{
		"title":       title + " | " + content.SiteOwner.Name,
		"description": content.SiteDescription,
		"path":        c.Request.URL.Path,
		"year":        p.now().Year(),
		"owner":       content.SiteOwner,
		"nav":         content.NavLinks,
		"social":      content.SocialLinks,
		"footer":      content.FooterBlurb,
	}
	for k, v := range h {
		data[k] = v
	}
	return data
}

func (p *Pages) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", p.page(c, "Home", gin.H{
		"intro":        content.HeroIntro,
		"techLogos":    content.TechLogos,
		"featured":     content.FeaturedProjects,
		"aboutTeaser":  content.AboutTeaser,
		"cards":        content.HighlightCards,
		"stats":        content.Stats,
		"testimonials": content.Testimonials,
		"cta":          content.ContactCTA,
	}))
}

func (p *Pages) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", p.page(c, "About", gin.H{
		"story":    content.AboutStory,
		"timeline": content.Timeline,
		"skills":   content.SkillCategories,
		"hobbies":  content.Hobbies,
	}))
}

func (p *Pages) projects(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		category = catalog.AllCategories
	}
	// the filter link for "All" is the bare page
	categoryParam := category
	if category == catalog.AllCategories {
		categoryParam = ""
	}

	all := content.Projects()
	selected := catalog.SelectProject(c.Query("project"))

	c.HTML(http.StatusOK, "projects.html", p.page(c, "Projects", gin.H{
		"categories":    catalog.Categories(all),
		"category":      category,
		"categoryParam": categoryParam,
		"projects":      catalog.FilterByCategory(all, category),
		"selected":      selected.Current(),
		"closeURL":      views.ProjectsURL(categoryParam, ""),
	}))
}

func (p *Pages) research(c *gin.Context) {
	expandedID := -1
	domainParam := ""
	if d := catalog.SelectDomain(c.Query("domain")); d.Active() {
		expandedID = d.Current().ID
		domainParam = strconv.Itoa(expandedID)
	}

	selected := catalog.SelectExperiment(c.Query("experiment"))
	experimentParam := ""
	if selected.Active() {
		experimentParam = selected.Current().ID
	}

	focus := catalog.ParseFocus(c.Query("focus"))
	focusParam := focus.Key()

	c.HTML(http.StatusOK, "research.html", p.page(c, "Research", gin.H{
		"mission":         content.ResearchMission,
		"domains":         content.Domains(),
		"experiments":     content.Experiments(),
		"findings":        content.Findings(),
		"codeLinks":       content.CodeLinks(),
		"expandedID":      expandedID,
		"domainParam":     domainParam,
		"experimentParam": experimentParam,
		"focusParam":      focusParam,
		"focus":           focus,
		"selected":        selected.Current(),
		"closeURL":        views.ResearchURL(domainParam, "", focusParam),
	}))
}

func (p *Pages) privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", p.page(c, "Privacy Policy", gin.H{
		"retention": retentionText(p.retention),
	}))
}

func (p *Pages) notFound(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.HTML(http.StatusNotFound, "error.html", p.page(c, "Not Found", gin.H{
		"code":  http.StatusNotFound,
		"error": "The page you are looking for does not exist.",
	}))
}

// retentionText renders a retention period in whole months or days.
func retentionText(d time.Duration) string {
	days := int(d.Hours() / 24)
	switch {
	case days >= 365 && days%365 == 0:
		return strconv.Itoa(days/365*12) + " months"
	case days >= 30 && days%30 == 0:
		return strconv.Itoa(days/30) + " months"
	case days == 1:
		return "1 day"
	case days > 1:
		return strconv.Itoa(days) + " days"
	}
	return d.String()
}
