// ABOUTME: Record factories for default-shaped entities
// ABOUTME: Every factory assigns a generated id and creation timestamps
package models

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a generated unique id for any record kind.
func NewID() string {
	return uuid.New().String()
}

// NewGrant creates a pending grant with an empty aim list.
func NewGrant(title string) *Grant {
	now := time.Now().UTC()
	return &Grant{
		ID:        NewID(),
		Title:     title,
		Status:    GrantStatusPending,
		Aims:      []Aim{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewAim creates a not-started aim with the given display label.
func NewAim(number, title string) Aim {
	return Aim{
		ID:         NewID(),
		Number:     number,
		Title:      title,
		Status:     AimStatusNotStarted,
		KPIs:       []KPI{},
		Milestones: []Milestone{},
	}
}

// NewKPI creates a KPI tracking toward a target value.
func NewKPI(name string, target float64, unit string) KPI {
	return KPI{
		ID:          NewID(),
		Name:        name,
		TargetValue: target,
		Unit:        unit,
		Status:      KPIStatusOnTrack,
	}
}

// NewMilestone creates an incomplete milestone.
func NewMilestone(title, targetDate string) Milestone {
	return Milestone{
		ID:         NewID(),
		Title:      title,
		TargetDate: targetDate,
	}
}

// NewBudget creates a budget weakly referencing a grant.
func NewBudget(grantID string, total int64) *Budget {
	now := time.Now().UTC()
	return &Budget{
		ID:          NewID(),
		GrantID:     grantID,
		TotalBudget: total,
		Categories:  []Category{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewCategory creates a budget category.
func NewCategory(name string, allocated int64) Category {
	return Category{
		ID:        NewID(),
		Name:      name,
		Allocated: allocated,
		MiniPools: []MiniPool{},
	}
}

// NewMiniPool creates a mini-pool under a category.
func NewMiniPool(name string, allocated int64) MiniPool {
	return MiniPool{
		ID:        NewID(),
		Name:      name,
		Allocated: allocated,
		Expenses:  []Expense{},
	}
}

// NewExpense creates an expense, marked spent by default.
func NewExpense(description string, amount int64, date string) Expense {
	return Expense{
		ID:          NewID(),
		Description: description,
		Amount:      amount,
		Date:        date,
		Spent:       true,
	}
}

// NewTask creates a kanban task in the To Do column.
func NewTask(title string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:        NewID(),
		Title:     title,
		Status:    TaskStatusTodo,
		Priority:  PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewPaymentRequest creates a pending payment request.
func NewPaymentRequest(payee string, amount int64) *PaymentRequest {
	now := time.Now().UTC()
	return &PaymentRequest{
		ID:        NewID(),
		Payee:     payee,
		Amount:    amount,
		Status:    ApprovalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTravelRequest creates a pending travel request.
func NewTravelRequest(traveler string) *TravelRequest {
	now := time.Now().UTC()
	return &TravelRequest{
		ID:        NewID(),
		Traveler:  traveler,
		Status:    ApprovalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewGiftCardDistribution creates a pending gift-card distribution.
func NewGiftCardDistribution(recipient string, amount int64) *GiftCardDistribution {
	now := time.Now().UTC()
	return &GiftCardDistribution{
		ID:        NewID(),
		Recipient: recipient,
		Amount:    amount,
		Status:    ApprovalPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewMeeting creates a meeting record.
func NewMeeting(title, date string) *Meeting {
	now := time.Now().UTC()
	return &Meeting{
		ID:        NewID(),
		Title:     title,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewPersonnel creates a person record of the given type.
func NewPersonnel(firstName, lastName, personType string) *Personnel {
	now := time.Now().UTC()
	return &Personnel{
		ID:        NewID(),
		FirstName: firstName,
		LastName:  lastName,
		Type:      personType,
		GrantIDs:  []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewKnowledgeDoc creates a knowledge document.
func NewKnowledgeDoc(title, category string) *KnowledgeDoc {
	now := time.Now().UTC()
	return &KnowledgeDoc{
		ID:        NewID(),
		Title:     title,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewDocument creates uploaded-file metadata.
func NewDocument(name string) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTemplate creates a template record.
func NewTemplate(name string) *Template {
	now := time.Now().UTC()
	return &Template{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewTodo creates a checklist line. Todos get generated ids like every other
// record kind; callers never supply their own.
func NewTodo(text string) *Todo {
	now := time.Now().UTC()
	return &Todo{
		ID:        NewID(),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
