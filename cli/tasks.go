// ABOUTME: Task and todo CLI commands
// ABOUTME: Kanban board listing plus quick-capture todos
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

// AddTaskCommand adds a task to the board
func AddTaskCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	description := fs.String("description", "", "Task details")
	priority := fs.String("priority", models.PriorityMedium, "Priority (low, medium, high)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	assignee := fs.String("assignee", "", "Assignee")
	grantID := fs.String("grant", "", "Associated grant ID")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *title == "" {
		return fmt.Errorf("--title is required")
	}

	task := models.NewTask(*title)
	task.Description = *description
	task.Priority = *priority
	task.DueDate = *due
	task.Assignee = *assignee

	if *grantID != "" {
		grant, err := resolveGrant(s, *grantID)
		if err != nil {
			return err
		}
		task.GrantID = grant.ID
	}

	s.AddTask(task)

	fmt.Printf("✓ Task created: %s (ID: %s)\n", task.Title, shortID(task.ID))
	return nil
}

// ListTasksCommand prints the board grouped by kanban column
func ListTasksCommand(s *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	status := fs.String("status", "", "Only show one column")
	if err := fs.Parse(args); err != nil {
		return err
	}

	board := s.TasksByStatus()
	columns := []string{
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusReview,
		models.TaskStatusDone,
	}

	total := 0
	for _, column := range columns {
		if *status != "" && column != *status {
			continue
		}
		tasks := board[column]
		fmt.Printf("%s (%d)\n", column, len(tasks))
		if len(tasks) == 0 {
			fmt.Println("  (empty)")
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, t := range tasks {
			due := t.DueDate
			if due == "" {
				due = "-"
			}
			fmt.Fprintf(w, "  %s\t%s\tdue %s\t%s\n", t.Title, t.Priority, due, shortID(t.ID))
		}
		w.Flush()
		total += len(tasks)
	}

	fmt.Printf("\nTotal: %d task(s)\n", total)
	return nil
}

// MoveTaskCommand moves a task to another kanban column
func MoveTaskCommand(s *store.Store, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: move-task <id> <column>")
	}

	task, err := s.TaskByID(args[0])
	if err != nil {
		return fmt.Errorf("task %s: %w", args[0], err)
	}

	task.Status = args[1]
	if _, err := s.UpdateTask(task); err != nil {
		return fmt.Errorf("failed to move task: %w", err)
	}

	fmt.Printf("✓ %s → %s\n", task.Title, args[1])
	return nil
}

// DeleteTaskCommand removes a task
func DeleteTaskCommand(s *store.Store, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("task ID required")
	}

	if err := s.DeleteTask(args[0]); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Println("✓ Task deleted")
	return nil
}

// TodoCommand handles the quick-capture todo list
func TodoCommand(s *store.Store, args []string) error {
	if len(args) == 0 {
		todos := s.Todos()
		if len(todos) == 0 {
			fmt.Println("No todos")
			return nil
		}
		for _, todo := range todos {
			check := " "
			if todo.Completed {
				check = "x"
			}
			fmt.Printf("[%s] %s  (%s)\n", check, todo.Text, shortID(todo.ID))
		}
		return nil
	}

	switch args[0] {
	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: todo add <text>")
		}
		todo := s.AddTodo(args[1])
		fmt.Printf("✓ Todo added (ID: %s)\n", shortID(todo.ID))
		return nil
	case "toggle":
		if len(args) < 2 {
			return fmt.Errorf("usage: todo toggle <id>")
		}
		if err := s.ToggleTodo(args[1]); err != nil {
			return fmt.Errorf("failed to toggle todo: %w", err)
		}
		fmt.Println("✓ Todo toggled")
		return nil
	case "delete":
		if len(args) < 2 {
			return fmt.Errorf("usage: todo delete <id>")
		}
		if err := s.DeleteTodo(args[1]); err != nil {
			return fmt.Errorf("failed to delete todo: %w", err)
		}
		fmt.Println("✓ Todo deleted")
		return nil
	default:
		return fmt.Errorf("unknown todo subcommand: %s", args[0])
	}
}
