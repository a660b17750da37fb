// ABOUTME: Web UI server with embedded templates
// ABOUTME: Provides read-only dashboard at localhost:8080
package web

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/search"
	"github.com/harperreed/grantdesk/store"
	"github.com/harperreed/grantdesk/viz"
)

//go:embed templates/*
var templatesFS embed.FS

type Server struct {
	store     *store.Store
	engine    *search.Engine
	templates *template.Template
	generator *viz.GraphGenerator
}

func NewServer(s *store.Store) (*Server, error) {
	funcMap := template.FuncMap{
		"money": func(cents int64) string {
			sign := ""
			if cents < 0 {
				sign = "-"
				cents = -cents
			}
			return fmt.Sprintf("%s$%.2f", sign, float64(cents)/100)
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Server{
		store:     s,
		engine:    search.NewEngine(s),
		templates: tmpl,
		generator: viz.NewGraphGenerator(s),
	}, nil
}

func (s *Server) Start(port int) error {
	mux := s.routes()

	addr := fmt.Sprintf(":%d", port)
	log.Printf("Starting web server at http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleDashboard)
	mux.HandleFunc("/grants", s.handleGrants)
	mux.HandleFunc("/grants/detail", s.handleGrantDetail)
	mux.HandleFunc("/tasks", s.handleTasks)
	mux.HandleFunc("/meetings", s.handleMeetings)
	mux.HandleFunc("/search", s.handleSearch)
	mux.HandleFunc("/graphs/grant", s.handleGrantGraph)
	return mux
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Template error rendering %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := map[string]interface{}{
		"Title": "Dashboard",
		"Stats": viz.GenerateDashboardStats(s.store),
	}
	s.renderTemplate(w, "dashboard.html", data)
}

func (s *Server) handleGrants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	grants := s.store.Grants()
	if query != "" {
		results := s.engine.Search(query)
		keep := make(map[string]bool)
		for _, category := range results.Categories {
			if category.Category != "grants" {
				continue
			}
			for _, item := range category.Items {
				keep[item.ID] = true
			}
		}
		var filtered []models.Grant
		for _, g := range grants {
			if keep[g.ID] {
				filtered = append(filtered, g)
			}
		}
		grants = filtered
	}

	data := map[string]interface{}{
		"Title":  "Grants",
		"Grants": grants,
		"Query":  query,
	}
	s.renderTemplate(w, "grants.html", data)
}

func (s *Server) handleGrantDetail(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	grant, err := s.store.GrantByID(id)
	if err != nil {
		http.Error(w, "grant not found", http.StatusNotFound)
		return
	}

	data := map[string]interface{}{
		"Title":   grant.Title,
		"Grant":   grant,
		"Budgets": s.store.BudgetsForGrant(grant.ID),
	}
	s.renderTemplate(w, "grant_detail.html", data)
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	board := s.store.TasksByStatus()

	type column struct {
		Name  string
		Tasks []models.Task
	}
	columns := []column{
		{Name: models.TaskStatusTodo, Tasks: board[models.TaskStatusTodo]},
		{Name: models.TaskStatusInProgress, Tasks: board[models.TaskStatusInProgress]},
		{Name: models.TaskStatusReview, Tasks: board[models.TaskStatusReview]},
		{Name: models.TaskStatusDone, Tasks: board[models.TaskStatusDone]},
	}

	data := map[string]interface{}{
		"Title":   "Tasks",
		"Columns": columns,
	}
	s.renderTemplate(w, "tasks.html", data)
}

func (s *Server) handleMeetings(w http.ResponseWriter, r *http.Request) {
	data := map[string]interface{}{
		"Title":    "Meetings",
		"Meetings": s.store.Meetings(),
	}
	s.renderTemplate(w, "meetings.html", data)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := s.engine.Search(query)

	data := map[string]interface{}{
		"Title":   "Search",
		"Query":   query,
		"Results": results,
	}
	s.renderTemplate(w, "search.html", data)
}

func (s *Server) handleGrantGraph(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "grant ID required", http.StatusBadRequest)
		return
	}

	dot, err := s.generator.GenerateGrantGraph(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if _, err := w.Write([]byte(dot)); err != nil {
		log.Printf("Error writing graph response: %v", err)
	}
}
