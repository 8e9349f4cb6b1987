// Package catalog holds the interactive rules of the gallery and research
// pages: the category filter, single-record selection and the research focus
// panel.
package catalog

import (
	"strconv"
	"strings"

	"github.com/chandan25sharma/portfolio/internal/content"
)

// AllCategories is the sentinel category that disables filtering.
const AllCategories = "All"

// Categories lists AllCategories followed by every distinct project category
// in order of first appearance.
func Categories(projects []content.Project) []string {
	out := []string{AllCategories}
	seen := make(map[string]bool, len(projects))
	for _, p := range projects {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}

// FilterByCategory returns the projects whose category equals category
// exactly, in their original order. AllCategories and the empty string return
// the full list.
func FilterByCategory(projects []content.Project, category string) []content.Project {
	if category == "" || category == AllCategories {
		return projects
	}
	out := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// ExperimentsInDomain returns the experiments attached to a domain label, in
// order. An empty label returns all of them.
func ExperimentsInDomain(experiments []content.Experiment, domain string) []content.Experiment {
	if domain == "" {
		return experiments
	}
	out := make([]content.Experiment, 0, len(experiments))
	for _, e := range experiments {
		if e.Domain == domain {
			out = append(out, e)
		}
	}
	return out
}

// Selection holds at most one record.
type Selection[T any] struct {
	current *T
}

// Set replaces the selected record.
func (s *Selection[T]) Set(v T) { s.current = &v }

func (s *Selection[T]) Clear() { s.current = nil }

// Current returns the selected record, or nil.
func (s *Selection[T]) Current() *T { return s.current }

func (s Selection[T]) Active() bool { return s.current != nil }

// SelectProject builds a selection from a project id; unknown or empty ids
// leave it empty.
func SelectProject(id string) Selection[content.Project] {
	var sel Selection[content.Project]
	if p, ok := content.ProjectByID(id); ok {
		sel.Set(p)
	}
	return sel
}

func SelectExperiment(id string) Selection[content.Experiment] {
	var sel Selection[content.Experiment]
	if e, ok := content.ExperimentByID(id); ok {
		sel.Set(e)
	}
	return sel
}

// SelectDomain parses a pillar id as sent in the query string.
func SelectDomain(raw string) Selection[content.Domain] {
	var sel Selection[content.Domain]
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return sel
	}
	if d, ok := content.DomainByID(id); ok {
		sel.Set(d)
	}
	return sel
}

type FocusKind string

const (
	FocusDefault    FocusKind = "default"
	FocusDomain     FocusKind = "domain"
	FocusExperiment FocusKind = "experiment"
)

// Focus is what the research "Visualizations & Findings" panel shows.
type Focus struct {
	Kind       FocusKind
	Domain     *content.Domain
	Experiment *content.Experiment
}

// Key renders the focus back into its query form.
func (f Focus) Key() string {
	switch f.Kind {
	case FocusDomain:
		return DomainFocusKey(f.Domain.ID)
	case FocusExperiment:
		return ExperimentFocusKey(f.Experiment.ID)
	}
	return ""
}

func DomainFocusKey(id int) string         { return "domain-" + strconv.Itoa(id) }
func ExperimentFocusKey(id string) string { return "experiment-" + id }

// ParseFocus reads "domain-<id>" or "experiment-<id>". Anything else, including
// ids that match no record, yields the default focus.
func ParseFocus(raw string) Focus {
	kind, id, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return Focus{Kind: FocusDefault}
	}
	switch FocusKind(kind) {
	case FocusDomain:
		if sel := SelectDomain(id); sel.Active() {
			return Focus{Kind: FocusDomain, Domain: sel.Current()}
		}
	case FocusExperiment:
		if sel := SelectExperiment(id); sel.Active() {
			return Focus{Kind: FocusExperiment, Experiment: sel.Current()}
		}
	}
	return Focus{Kind: FocusDefault}
}
