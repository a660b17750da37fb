// ABOUTME: Tests for web server routes
// ABOUTME: Exercises the embedded templates against a populated store
package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

func newTestServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()
	client, cleanup := charm.NewTestClient(t)
	t.Cleanup(cleanup)
	s := store.New(client)
	require.NoError(t, s.Load())

	srv, err := NewServer(s)
	require.NoError(t, err)
	return srv, s
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	return rec
}

func TestDashboardRoute(t *testing.T) {
	srv, s := newTestServer(t)
	g := models.NewGrant("Web Test Grant")
	g.Status = models.GrantStatusActive
	s.AddGrant(g)

	rec := get(t, srv, "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
	assert.Contains(t, rec.Body.String(), "active")
}

func TestGrantsListAndDetail(t *testing.T) {
	srv, s := newTestServer(t)
	g := models.NewGrant("Rural Health Initiative")
	g.FundingAgency = "NIH"
	g.Aims = append(g.Aims, models.NewAim("Aim 1", "Outreach"))
	s.AddGrant(g)

	rec := get(t, srv, "/grants")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rural Health Initiative")
	assert.Contains(t, rec.Body.String(), "NIH")

	rec = get(t, srv, "/grants/detail?id="+g.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Outreach")
}

func TestGrantsListFiltersByQuery(t *testing.T) {
	srv, s := newTestServer(t)
	s.AddGrant(models.NewGrant("Rural Health Initiative"))
	s.AddGrant(models.NewGrant("Urban Housing Study"))

	rec := get(t, srv, "/grants?q=rural")
	body := rec.Body.String()
	assert.Contains(t, body, "Rural Health Initiative")
	assert.NotContains(t, body, "Urban Housing Study")
}

func TestGrantDetailNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv, "/grants/detail?id=nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTasksBoardRoute(t *testing.T) {
	srv, s := newTestServer(t)
	task := models.NewTask("Submit budget justification")
	task.Status = models.TaskStatusInProgress
	s.AddTask(task)

	rec := get(t, srv, "/tasks")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Submit budget justification")
	assert.Contains(t, rec.Body.String(), models.TaskStatusInProgress)
}

func TestSearchRoute(t *testing.T) {
	srv, s := newTestServer(t)
	s.AddGrant(models.NewGrant("Vaccine Outreach"))

	rec := get(t, srv, "/search?q=vaccine")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vaccine Outreach")

	// Queries under the minimum length return no result sections
	rec = get(t, srv, "/search?q=v")
	assert.NotContains(t, rec.Body.String(), "Vaccine Outreach")
}

func TestGrantGraphRequiresID(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := get(t, srv, "/graphs/grant")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
