// Package views embeds the HTML templates and static assets.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/chandan25sharma/portfolio/internal/catalog"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Load parses every template. Template names are the file names
// ("projects.html"), as gin's LoadHTMLGlob would name them.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs()).ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"join":        strings.Join,
		"lower":       strings.ToLower,
		"projectsURL": ProjectsURL,
		"researchURL": ResearchURL,
		"statusClass": StatusClass,
		"hashtag":     Hashtag,
		"itoa":        strconv.Itoa,

		"domainFocus":     catalog.DomainFocusKey,
		"experimentFocus": catalog.ExperimentFocusKey,
	}
}

// ProjectsURL builds a gallery link keeping the category filter and the
// selected project.
func ProjectsURL(category, project string) string {
	return buildURL("/projects", "category", category, "project", project)
}

// ResearchURL builds a research link from the expanded domain, the open
// experiment and the focus key. Empty values are dropped.
func ResearchURL(domain, experiment, focus string) string {
	return buildURL("/research", "domain", domain, "experiment", experiment, "focus", focus)
}

func buildURL(path string, kv ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			q.Set(kv[i], kv[i+1])
		}
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

// StatusClass maps a record status to a badge style. It takes any so the
// typed project and experiment statuses can be passed straight from a template.
func StatusClass(status any) string {
	switch fmt.Sprint(status) {
	case "Published", "completed":
		return "badge badge-green"
	case "In Progress", "in-progress":
		return "badge badge-blue"
	case "Under Review":
		return "badge badge-orange"
	}
	return "badge badge-gray"
}

// Hashtag renders a category as "#webapplication".
func Hashtag(category string) string {
	return "#" + strings.ReplaceAll(strings.ToLower(category), " ", "")
}
