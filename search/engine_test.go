// ABOUTME: Tests for the cross-collection search engine
// ABOUTME: Covers the short-query guard, caps, totals, and grant-tree descent
package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/models"
)

// fakeSource records whether the engine touched it.
type fakeSource struct {
	touched   bool
	grants    []models.Grant
	documents []models.Document
	meetings  []models.Meeting
	payments  []models.PaymentRequest
	tasks     []models.Task
	templates []models.Template
}

func (f *fakeSource) Grants() []models.Grant                    { f.touched = true; return f.grants }
func (f *fakeSource) Documents() []models.Document              { f.touched = true; return f.documents }
func (f *fakeSource) Meetings() []models.Meeting                { f.touched = true; return f.meetings }
func (f *fakeSource) PaymentRequests() []models.PaymentRequest  { f.touched = true; return f.payments }
func (f *fakeSource) Tasks() []models.Task                      { f.touched = true; return f.tasks }
func (f *fakeSource) Templates() []models.Template              { f.touched = true; return f.templates }

func TestShortQuerySkipsSource(t *testing.T) {
	src := &fakeSource{tasks: []models.Task{{ID: "t", Title: "anything"}}}
	e := NewEngine(src)

	for _, q := range []string{"", "a", " a ", "  "} {
		res := e.Search(q)
		assert.Zero(t, res.Total, "query %q", q)
		assert.Empty(t, res.Categories, "query %q", q)
	}
	assert.False(t, src.touched, "short queries must not invoke the search routine")
}

func TestSearchFindsAcrossCollections(t *testing.T) {
	src := &fakeSource{
		grants:    []models.Grant{{ID: "g1", Title: "Community Health Pilot"}},
		tasks:     []models.Task{{ID: "t1", Title: "Schedule community meeting"}},
		documents: []models.Document{{ID: "d1", Name: "Community survey.pdf"}},
		meetings:  []models.Meeting{{ID: "m1", Title: "Budget review"}},
	}
	res := NewEngine(src).Search("community")

	assert.Equal(t, 3, res.Total)
	cats := map[string]CategoryResults{}
	for _, c := range res.Categories {
		cats[c.Category] = c
	}
	assert.Contains(t, cats, "grants")
	assert.Contains(t, cats, "tasks")
	assert.Contains(t, cats, "documents")
	assert.NotContains(t, cats, "meetings")
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	src := &fakeSource{tasks: []models.Task{{ID: "t1", Title: "Submit IRB Amendment"}}}
	res := NewEngine(src).Search("irb amend")
	require.Len(t, res.Categories, 1)
	assert.Equal(t, 1, res.Categories[0].Total)
}

func TestCategoryCapKeepsTrueTotal(t *testing.T) {
	src := &fakeSource{}
	for i := 0; i < 9; i++ {
		src.tasks = append(src.tasks, models.Task{
			ID:    fmt.Sprintf("t%d", i),
			Title: fmt.Sprintf("Quarterly report %d", i),
		})
	}
	res := NewEngine(src).Search("quarterly")

	require.Len(t, res.Categories, 1)
	cat := res.Categories[0]
	assert.Equal(t, 9, cat.Total)
	assert.Len(t, cat.Items, MaxPerCategory)
	assert.GreaterOrEqual(t, cat.Total, len(cat.Items))
}

func TestGrantTreeDescentWithBreadcrumbs(t *testing.T) {
	g := models.Grant{ID: "g1", Title: "RWJF Pilot"}
	aim := models.Aim{ID: "a1", Number: "Aim 2", Title: "Data infrastructure"}
	sub := models.SubAim{ID: "s1", Title: "Warehouse buildout"}
	sub.Activities = []models.Activity{{ID: "ac1", Title: "Deploy ingestion pipeline"}}
	aim.SubAims = []models.SubAim{sub}
	g.Aims = []models.Aim{aim}

	src := &fakeSource{grants: []models.Grant{g}}
	res := NewEngine(src).Search("pipeline")

	require.Len(t, res.Categories, 1)
	items := res.Categories[0].Items
	require.Len(t, items, 1)
	assert.Equal(t, "Deploy ingestion pipeline", items[0].Title)
	assert.Equal(t, "RWJF Pilot › Aim 2 › Warehouse buildout › Deploy ingestion pipeline", items[0].Path)
	assert.Equal(t, "g1", items[0].ID)
}

func TestMeetingTranscriptionAndAttendeesSearchable(t *testing.T) {
	src := &fakeSource{meetings: []models.Meeting{
		{ID: "m1", Title: "Weekly sync", Transcription: "we discussed the zebra cohort"},
		{ID: "m2", Title: "Site visit prep", Attendees: []string{"Quintessa Marbury", "Dana Ito"}},
	}}

	res := NewEngine(src).Search("zebra")
	require.Len(t, res.Categories, 1)
	require.Len(t, res.Categories[0].Items, 1)
	assert.Equal(t, "m1", res.Categories[0].Items[0].ID)

	res = NewEngine(src).Search("quintessa")
	require.Len(t, res.Categories, 1)
	require.Len(t, res.Categories[0].Items, 1)
	assert.Equal(t, "m2", res.Categories[0].Items[0].ID)
}

func TestMinQueryLengthCountsRunes(t *testing.T) {
	src := &fakeSource{meetings: []models.Meeting{{ID: "m1", Title: "Café planning"}}}
	e := NewEngine(src)

	// One rune, two bytes: still below the minimum
	res := e.Search("é")
	assert.Zero(t, res.Total)
	assert.False(t, src.touched)

	res = e.Search("fé")
	assert.Equal(t, 1, res.Total)
}

func TestTitleMatchesRankAboveFieldMatches(t *testing.T) {
	src := &fakeSource{tasks: []models.Task{
		{ID: "t1", Title: "Unrelated", Description: "mentions budget in passing"},
		{ID: "t2", Title: "Budget reconciliation"},
	}}
	res := NewEngine(src).Search("budget")

	require.Len(t, res.Categories, 1)
	items := res.Categories[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "t2", items[0].ID)
}

func TestEmptyCollectionsYieldEmptyResults(t *testing.T) {
	res := NewEngine(&fakeSource{}).Search("anything")
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Categories)
}
