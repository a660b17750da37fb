// ABOUTME: CRUD for documents, knowledge docs, templates, and todos
// ABOUTME: The content-ish collections that share no cross-reference logic
package store

import (
	"fmt"
	"time"

	"github.com/harperreed/grantdesk/charm"
	"github.com/harperreed/grantdesk/models"
)

// Documents returns a snapshot of the uploaded-document metadata collection.
func (s *Store) Documents() []models.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Document, len(s.documents))
	copy(out, s.documents)
	return out
}

// AddDocument assigns defaults and appends the document record.
func (s *Store) AddDocument(d *models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = models.NewID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now

	s.documents = append(s.documents, *d)
	s.persist(charm.KeyDocuments)
	s.record("document", d.ID, "created", d.Name)
}

// UpdateDocument replaces the stored document with the same id.
func (s *Store) UpdateDocument(d models.Document) (models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == d.ID {
			d.CreatedAt = s.documents[i].CreatedAt
			d.UpdatedAt = time.Now().UTC()
			s.documents[i] = d
			s.persist(charm.KeyDocuments)
			s.record("document", d.ID, "updated", d.Name)
			return d, nil
		}
	}
	return models.Document{}, fmt.Errorf("document %s: %w", d.ID, ErrNotFound)
}

// DeleteDocument removes a document record by id.
func (s *Store) DeleteDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.documents {
		if s.documents[i].ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			s.persist(charm.KeyDocuments)
			s.record("document", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("document %s: %w", id, ErrNotFound)
}

// KnowledgeDocs returns a snapshot of the knowledge-doc collection.
func (s *Store) KnowledgeDocs() []models.KnowledgeDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.KnowledgeDoc, len(s.knowledgeDocs))
	copy(out, s.knowledgeDocs)
	return out
}

// AddKnowledgeDoc assigns defaults and appends the knowledge doc.
func (s *Store) AddKnowledgeDoc(d *models.KnowledgeDoc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if d.ID == "" {
		d.ID = models.NewID()
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if d.Category == "" {
		d.Category = models.KnowledgeCategoryReference
	}

	s.knowledgeDocs = append(s.knowledgeDocs, *d)
	s.persist(charm.KeyKnowledgeDocs)
	s.record("knowledge_doc", d.ID, "created", d.Title)
}

// UpdateKnowledgeDoc replaces the stored knowledge doc with the same id.
func (s *Store) UpdateKnowledgeDoc(d models.KnowledgeDoc) (models.KnowledgeDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.knowledgeDocs {
		if s.knowledgeDocs[i].ID == d.ID {
			d.CreatedAt = s.knowledgeDocs[i].CreatedAt
			d.UpdatedAt = time.Now().UTC()
			s.knowledgeDocs[i] = d
			s.persist(charm.KeyKnowledgeDocs)
			s.record("knowledge_doc", d.ID, "updated", d.Title)
			return d, nil
		}
	}
	return models.KnowledgeDoc{}, fmt.Errorf("knowledge doc %s: %w", d.ID, ErrNotFound)
}

// DeleteKnowledgeDoc removes a knowledge doc by id.
func (s *Store) DeleteKnowledgeDoc(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.knowledgeDocs {
		if s.knowledgeDocs[i].ID == id {
			s.knowledgeDocs = append(s.knowledgeDocs[:i], s.knowledgeDocs[i+1:]...)
			s.persist(charm.KeyKnowledgeDocs)
			s.record("knowledge_doc", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("knowledge doc %s: %w", id, ErrNotFound)
}

// Templates returns a snapshot of the template collection.
func (s *Store) Templates() []models.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// AddTemplate assigns defaults and appends the template.
func (s *Store) AddTemplate(t *models.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = models.NewID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now

	s.templates = append(s.templates, *t)
	s.persist(charm.KeyTemplates)
	s.record("template", t.ID, "created", t.Name)
}

// UpdateTemplate replaces the stored template with the same id.
func (s *Store) UpdateTemplate(t models.Template) (models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == t.ID {
			t.CreatedAt = s.templates[i].CreatedAt
			t.UpdatedAt = time.Now().UTC()
			s.templates[i] = t
			s.persist(charm.KeyTemplates)
			s.record("template", t.ID, "updated", t.Name)
			return t, nil
		}
	}
	return models.Template{}, fmt.Errorf("template %s: %w", t.ID, ErrNotFound)
}

// DeleteTemplate removes a template by id.
func (s *Store) DeleteTemplate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.templates {
		if s.templates[i].ID == id {
			s.templates = append(s.templates[:i], s.templates[i+1:]...)
			s.persist(charm.KeyTemplates)
			s.record("template", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("template %s: %w", id, ErrNotFound)
}

// Todos returns a snapshot of the todo collection.
func (s *Store) Todos() []models.Todo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Todo, len(s.todos))
	copy(out, s.todos)
	return out
}

// AddTodo appends a checklist line. Ids are always store-assigned; a
// caller-supplied id is ignored so todos behave like every other kind.
func (s *Store) AddTodo(text string) models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo := *models.NewTodo(text)
	s.todos = append(s.todos, todo)
	s.persist(charm.KeyTodos)
	s.record("todo", todo.ID, "created", text)
	return todo
}

// ToggleTodo flips a todo's completed flag.
func (s *Store) ToggleTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].Completed = !s.todos[i].Completed
			s.todos[i].UpdatedAt = time.Now().UTC()
			s.persist(charm.KeyTodos)
			s.record("todo", id, "updated", s.todos[i].Text)
			return nil
		}
	}
	return fmt.Errorf("todo %s: %w", id, ErrNotFound)
}

// DeleteTodo removes a todo by id.
func (s *Store) DeleteTodo(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			s.persist(charm.KeyTodos)
			s.record("todo", id, "deleted", "")
			return nil
		}
	}
	return fmt.Errorf("todo %s: %w", id, ErrNotFound)
}
