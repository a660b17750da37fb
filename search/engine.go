// ABOUTME: Case-insensitive cross-collection text search with per-category caps
// ABOUTME: Descends the grant tree (aims, sub-aims, activities) with breadcrumbs
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harperreed/grantdesk/models"
)

const (
	// MinQueryLength is the shortest query the engine will run.
	MinQueryLength = 2

	// MaxPerCategory caps the displayed results per category. Totals still
	// report the real match count.
	MaxPerCategory = 5
)

// Source supplies the collections to search. The store satisfies this.
type Source interface {
	Grants() []models.Grant
	Documents() []models.Document
	Meetings() []models.Meeting
	PaymentRequests() []models.PaymentRequest
	Tasks() []models.Task
	Templates() []models.Template
}

// Result is one match.
type Result struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Path    string `json:"path,omitempty"` // breadcrumb for nested grant matches
	Snippet string `json:"snippet,omitempty"`

	score int
}

// CategoryResults holds the capped matches and true total for one category.
type CategoryResults struct {
	Category string   `json:"category"`
	Total    int      `json:"total"`
	Items    []Result `json:"items"`
}

// Results is the full response for one query.
type Results struct {
	Query      string            `json:"query"`
	Total      int               `json:"total"`
	Categories []CategoryResults `json:"categories"`
}

// Engine runs queries against a source.
type Engine struct {
	src Source
}

// NewEngine creates a search engine over the given source.
func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// Search runs a query across all searchable collections. Queries shorter than
// MinQueryLength return an empty result set without touching the source.
func (e *Engine) Search(query string) Results {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return Results{Query: query, Categories: []CategoryResults{}}
	}
	q = strings.ToLower(q)

	out := Results{Query: query, Categories: []CategoryResults{}}
	for _, cat := range []CategoryResults{
		e.searchGrants(q),
		e.searchDocuments(q),
		e.searchMeetings(q),
		e.searchPayments(q),
		e.searchTasks(q),
		e.searchTemplates(q),
	} {
		if cat.Total == 0 {
			continue
		}
		out.Categories = append(out.Categories, cat)
		out.Total += cat.Total
	}
	return out
}

func matches(q, field string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), q)
}

func matchesAny(q string, fields []string) bool {
	for _, f := range fields {
		if matches(q, f) {
			return true
		}
	}
	return false
}

// finish ranks, caps, and counts a category's raw matches.
func finish(category string, items []Result) CategoryResults {
	sort.SliceStable(items, func(i, j int) bool { return items[i].score > items[j].score })
	total := len(items)
	if len(items) > MaxPerCategory {
		items = items[:MaxPerCategory]
	}
	if items == nil {
		items = []Result{}
	}
	return CategoryResults{Category: category, Total: total, Items: items}
}

func (e *Engine) searchGrants(q string) CategoryResults {
	var items []Result
	for _, g := range e.src.Grants() {
		switch {
		case matches(q, g.Title):
			items = append(items, Result{ID: g.ID, Title: g.Title, score: 2})
		case matches(q, g.FundingAgency) || matches(q, g.PrincipalInvestigator) || matches(q, g.Institution):
			items = append(items, Result{ID: g.ID, Title: g.Title, Snippet: g.FundingAgency, score: 1})
		}

		for _, aim := range g.Aims {
			if matches(q, aim.Title) || matches(q, aim.Description) || matches(q, aim.Number) {
				items = append(items, Result{
					ID:    g.ID,
					Title: aim.Title,
					Path:  g.Title + " › " + aim.Number,
					score: 1,
				})
			}
			for _, sub := range aim.SubAims {
				if matches(q, sub.Title) || matches(q, sub.Description) {
					items = append(items, Result{
						ID:    g.ID,
						Title: sub.Title,
						Path:  g.Title + " › " + aim.Number + " › " + sub.Title,
						score: 1,
					})
				}
				for _, act := range sub.Activities {
					if matches(q, act.Title) || matches(q, act.Description) || matches(q, act.Deliverables) {
						items = append(items, Result{
							ID:    g.ID,
							Title: act.Title,
							Path:  g.Title + " › " + aim.Number + " › " + sub.Title + " › " + act.Title,
							score: 1,
						})
					}
				}
			}
		}
	}
	return finish("grants", items)
}

func (e *Engine) searchDocuments(q string) CategoryResults {
	var items []Result
	for _, d := range e.src.Documents() {
		switch {
		case matches(q, d.Name):
			items = append(items, Result{ID: d.ID, Title: d.Name, score: 2})
		case matches(q, d.Description) || matches(q, d.Category):
			items = append(items, Result{ID: d.ID, Title: d.Name, Snippet: d.Description, score: 1})
		}
	}
	return finish("documents", items)
}

func (e *Engine) searchMeetings(q string) CategoryResults {
	var items []Result
	for _, m := range e.src.Meetings() {
		switch {
		case matches(q, m.Title):
			items = append(items, Result{ID: m.ID, Title: m.Title, score: 2})
		case matches(q, m.Agenda) || matches(q, m.Notes) ||
			matches(q, m.Transcription) || matchesAny(q, m.Attendees):
			items = append(items, Result{ID: m.ID, Title: m.Title, Snippet: m.Agenda, score: 1})
		}
	}
	return finish("meetings", items)
}

func (e *Engine) searchPayments(q string) CategoryResults {
	var items []Result
	for _, p := range e.src.PaymentRequests() {
		switch {
		case matches(q, p.Payee):
			items = append(items, Result{ID: p.ID, Title: p.Payee, score: 2})
		case matches(q, p.Description) || matches(q, p.AuthorizationNumber):
			items = append(items, Result{ID: p.ID, Title: p.Payee, Snippet: p.Description, score: 1})
		}
	}
	return finish("paymentRequests", items)
}

func (e *Engine) searchTasks(q string) CategoryResults {
	var items []Result
	for _, t := range e.src.Tasks() {
		switch {
		case matches(q, t.Title):
			items = append(items, Result{ID: t.ID, Title: t.Title, score: 2})
		case matches(q, t.Description) || matches(q, t.Assignee):
			items = append(items, Result{ID: t.ID, Title: t.Title, Snippet: t.Description, score: 1})
		}
	}
	return finish("tasks", items)
}

func (e *Engine) searchTemplates(q string) CategoryResults {
	var items []Result
	for _, tpl := range e.src.Templates() {
		switch {
		case matches(q, tpl.Name):
			items = append(items, Result{ID: tpl.ID, Title: tpl.Name, score: 2})
		case matches(q, tpl.Description) || matches(q, tpl.Category):
			items = append(items, Result{ID: tpl.ID, Title: tpl.Name, Snippet: tpl.Description, score: 1})
		}
	}
	return finish("templates", items)
}
