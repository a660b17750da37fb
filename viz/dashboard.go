// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: Aggregates grant, budget, task, and approval state into ASCII output
package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/grantdesk/models"
	"github.com/harperreed/grantdesk/store"
)

type DashboardStats struct {
	GrantsByStatus map[string]int
	TotalGrants    int
	TotalAwarded   int64 // cents

	TotalBudget int64
	TotalSpent  int64

	TasksByColumn map[string]int
	TotalTasks    int
	OverdueTasks  int

	PendingPayments  int
	PendingTravel    int
	PendingGiftCards int

	UpcomingMilestones []MilestoneItem
}

type MilestoneItem struct {
	Grant      string
	Aim        string
	Title      string
	TargetDate string
}

// GenerateDashboardStats aggregates the store's collections for display.
func GenerateDashboardStats(s *store.Store) *DashboardStats {
	stats := &DashboardStats{
		GrantsByStatus: make(map[string]int),
		TasksByColumn:  make(map[string]int),
	}

	for _, g := range s.Grants() {
		stats.TotalGrants++
		stats.TotalAwarded += g.Amount
		status := g.Status
		if status == "" {
			status = "unknown"
		}
		stats.GrantsByStatus[status]++

		for _, aim := range g.Aims {
			for _, m := range aim.Milestones {
				if m.Completed {
					continue
				}
				stats.UpcomingMilestones = append(stats.UpcomingMilestones, MilestoneItem{
					Grant:      g.Title,
					Aim:        aim.Number,
					Title:      m.Title,
					TargetDate: m.TargetDate,
				})
			}
		}
	}

	for _, b := range s.Budgets() {
		stats.TotalBudget += b.TotalBudget
		stats.TotalSpent += b.Spent()
	}

	today := time.Now().UTC().Format("2006-01-02")
	for _, t := range s.Tasks() {
		stats.TotalTasks++
		stats.TasksByColumn[t.Status]++
		// Due dates are YYYY-MM-DD strings, so lexical compare works.
		if t.DueDate != "" && t.DueDate < today && t.Status != models.TaskStatusDone {
			stats.OverdueTasks++
		}
	}

	for _, p := range s.PaymentRequests() {
		if p.Status == models.ApprovalPending {
			stats.PendingPayments++
		}
	}
	for _, tr := range s.TravelRequests() {
		if tr.Status == models.ApprovalPending {
			stats.PendingTravel++
		}
	}
	for _, gc := range s.GiftCardDistributions() {
		if gc.Status == models.ApprovalPending {
			stats.PendingGiftCards++
		}
	}

	return stats
}

// dollars renders cents as $X,XXX.XX without a dependency.
func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return fmt.Sprintf("%s$%s.%02d", sign, b.String(), frac)
}

// RenderDashboard formats stats as an ASCII overview.
func RenderDashboard(stats *DashboardStats) string {
	var b strings.Builder

	b.WriteString("═══ Grant Portfolio ═══\n\n")
	fmt.Fprintf(&b, "Grants: %d (awarded %s)\n", stats.TotalGrants, dollars(stats.TotalAwarded))
	for _, status := range []string{
		models.GrantStatusActive,
		models.GrantStatusPending,
		models.GrantStatusCompleted,
		models.GrantStatusRejected,
	} {
		if n := stats.GrantsByStatus[status]; n > 0 {
			fmt.Fprintf(&b, "  %-10s %d\n", status, n)
		}
	}

	b.WriteString("\n═══ Budget ═══\n\n")
	fmt.Fprintf(&b, "Total:     %s\n", dollars(stats.TotalBudget))
	fmt.Fprintf(&b, "Spent:     %s\n", dollars(stats.TotalSpent))
	fmt.Fprintf(&b, "Remaining: %s\n", dollars(stats.TotalBudget-stats.TotalSpent))

	b.WriteString("\n═══ Tasks ═══\n\n")
	for _, col := range []string{
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusReview,
		models.TaskStatusDone,
	} {
		fmt.Fprintf(&b, "  %-12s %d\n", col, stats.TasksByColumn[col])
	}
	if stats.OverdueTasks > 0 {
		fmt.Fprintf(&b, "  %-12s %d\n", "overdue", stats.OverdueTasks)
	}

	pending := stats.PendingPayments + stats.PendingTravel + stats.PendingGiftCards
	if pending > 0 {
		b.WriteString("\n═══ Needs Approval ═══\n\n")
		if stats.PendingPayments > 0 {
			fmt.Fprintf(&b, "  payments:   %d\n", stats.PendingPayments)
		}
		if stats.PendingTravel > 0 {
			fmt.Fprintf(&b, "  travel:     %d\n", stats.PendingTravel)
		}
		if stats.PendingGiftCards > 0 {
			fmt.Fprintf(&b, "  gift cards: %d\n", stats.PendingGiftCards)
		}
	}

	if len(stats.UpcomingMilestones) > 0 {
		b.WriteString("\n═══ Open Milestones ═══\n\n")
		limit := len(stats.UpcomingMilestones)
		if limit > 8 {
			limit = 8
		}
		for _, m := range stats.UpcomingMilestones[:limit] {
			date := m.TargetDate
			if date == "" {
				date = "no date"
			}
			fmt.Fprintf(&b, "  [%s] %s / %s: %s\n", date, m.Grant, m.Aim, m.Title)
		}
	}

	return b.String()
}
