// ABOUTME: Data models for grant-program entities
// ABOUTME: Defines Grant, Aim, KPI, Milestone, and the dependent record types
package models

import (
	"time"
)

// Grant is the top-level funding award. Aims are owned inline; BudgetID is a
// weak reference to a Budget that may not exist yet (or anymore).
type Grant struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	FundingAgency         string    `json:"fundingAgency,omitempty"`
	Amount                int64     `json:"amount,omitempty"` // in cents
	Status                string    `json:"status"`
	StartDate             string    `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate               string    `json:"endDate,omitempty"`
	PrincipalInvestigator string    `json:"principalInvestigator,omitempty"`
	Institution           string    `json:"institution,omitempty"`
	Aims                  []Aim     `json:"aims"`
	BudgetID              string    `json:"budgetId,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Grant statuses.
const (
	GrantStatusPending   = "pending"
	GrantStatusActive    = "active"
	GrantStatusCompleted = "completed"
	GrantStatusRejected  = "rejected"
)

// Aim is a grant objective. KPIs, milestones, and sub-aims are owned inline.
// Number is the display label ("Aim 1") that budget category names embed.
type Aim struct {
	ID                   string      `json:"id"`
	Number               string      `json:"number"`
	Title                string      `json:"title"`
	Description          string      `json:"description,omitempty"`
	TargetDate           string      `json:"targetDate,omitempty"`
	Status               string      `json:"status"`
	BudgetAllocation     int64       `json:"budgetAllocation"` // in cents
	BudgetSpent          int64       `json:"budgetSpent"`      // in cents
	CompletionPercentage int         `json:"completionPercentage"`
	KPIs                 []KPI       `json:"kpis"`
	Milestones           []Milestone `json:"milestones"`
	SubAims              []SubAim    `json:"subAims,omitempty"`
}

// Aim statuses.
const (
	AimStatusNotStarted = "not-started"
	AimStatusInProgress = "in-progress"
	AimStatusCompleted  = "completed"
)

// SubAim is a nested work item under an Aim.
type SubAim struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Activities  []Activity `json:"activities,omitempty"`
}

// Activity is the leaf level of the grant work breakdown.
type Activity struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Deliverables string `json:"deliverables,omitempty"`
}

// KPI tracks a measurable indicator for an aim.
type KPI struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	TargetValue  float64       `json:"targetValue"`
	CurrentValue float64       `json:"currentValue"`
	Unit         string        `json:"unit,omitempty"`
	Status       string        `json:"status"`
	History      []Measurement `json:"history,omitempty"`
}

// KPI statuses.
const (
	KPIStatusOnTrack   = "on-track"
	KPIStatusAtRisk    = "at-risk"
	KPIStatusBehind    = "behind"
	KPIStatusCompleted = "completed"
)

// Measurement is one recorded KPI reading.
type Measurement struct {
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
	Note       string    `json:"note,omitempty"`
}

// Milestone is a dated deliverable under an Aim. Dependencies reference other
// milestones by title, which is fragile but matches how users name them.
type Milestone struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	TargetDate    string   `json:"targetDate,omitempty"`
	Completed     bool     `json:"completed"`
	CompletedDate string   `json:"completedDate,omitempty"`
	Status        string   `json:"status,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

// Task is a kanban board item with a weak grant reference.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"`
	Assignee    string    `json:"assignee,omitempty"`
	GrantID     string    `json:"grantId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Task statuses (kanban columns).
const (
	TaskStatusTodo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusReview     = "Review"
	TaskStatusDone       = "Done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Approval statuses shared by payment, travel, and gift-card records.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
	ApprovalPaid     = "paid"
)

// PaymentRequest asks for a disbursement against a grant/aim.
type PaymentRequest struct {
	ID                  string    `json:"id"`
	GrantID             string    `json:"grantId,omitempty"`
	AimID               string    `json:"aimId,omitempty"`
	Payee               string    `json:"payee"`
	Amount              int64     `json:"amount"` // in cents
	Description         string    `json:"description,omitempty"`
	AuthorizationNumber string    `json:"authorizationNumber,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// TravelRequest covers trip approval and reimbursement.
type TravelRequest struct {
	ID          string    `json:"id"`
	GrantID     string    `json:"grantId,omitempty"`
	AimID       string    `json:"aimId,omitempty"`
	Traveler    string    `json:"traveler"`
	Destination string    `json:"destination,omitempty"`
	Purpose     string    `json:"purpose,omitempty"`
	StartDate   string    `json:"startDate,omitempty"`
	EndDate     string    `json:"endDate,omitempty"`
	Estimate    int64     `json:"estimate,omitempty"` // in cents
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GiftCardDistribution tracks participant-incentive card handouts.
type GiftCardDistribution struct {
	ID        string    `json:"id"`
	GrantID   string    `json:"grantId,omitempty"`
	AimID     string    `json:"aimId,omitempty"`
	Recipient string    `json:"recipient"`
	Vendor    string    `json:"vendor,omitempty"`
	Amount    int64     `json:"amount"` // in cents
	CardCount int       `json:"cardCount,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meeting is a calendar entry with notes and optional transcription.
type Meeting struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date,omitempty"` // YYYY-MM-DD
	GrantID       string    `json:"grantId,omitempty"`
	Attendees     []string  `json:"attendees,omitempty"`
	Agenda        string    `json:"agenda,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Transcription string    `json:"transcription,omitempty"`
	ActionItems   []string  `json:"actionItems,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Personnel is a person associated with zero or more grants. GrantIDs are weak
// references forming the many-to-many side.
type Personnel struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role,omitempty"`
	Type      string    `json:"type"`
	GrantIDs  []string  `json:"grantIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Personnel types.
const (
	PersonnelInternal = "internal"
	PersonnelExternal = "external"
	PersonnelFunder   = "funder"
	PersonnelOther    = "other"
)

// KnowledgeDoc is a curated reference document (policy, SOP, archived email).
type KnowledgeDoc struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Category  string     `json:"category"`
	Content   string     `json:"content,omitempty"`
	Summary   string     `json:"summary,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	EmailMeta *EmailMeta `json:"emailMeta,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Knowledge doc categories.
const (
	KnowledgeCategoryPolicy    = "policy"
	KnowledgeCategorySOP       = "sop"
	KnowledgeCategoryEmail     = "email"
	KnowledgeCategoryReference = "reference"
	KnowledgeCategoryNotes     = "notes"
)

// EmailMeta captures the extracted shape of an archived email thread.
type EmailMeta struct {
	Participants []string `json:"participants,omitempty"`
	DateRange    string   `json:"dateRange,omitempty"`
	KeyDecisions []string `json:"keyDecisions,omitempty"`
	ActionItems  []string `json:"actionItems,omitempty"`
}

// Document is uploaded-file metadata.
type Document struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	GrantID     string    `json:"grantId,omitempty"`
	FileType    string    `json:"fileType,omitempty"`
	SizeBytes   int64     `json:"sizeBytes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Template is a reusable document/report template.
type Template struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Content     string    `json:"content,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Todo is a freestanding checklist line.
type Todo struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Settings is the single per-user settings object.
type Settings struct {
	Theme         string       `json:"theme"`
	Notifications bool         `json:"notifications"`
	UserProfile   *UserProfile `json:"userProfile,omitempty"`
}

// UserProfile identifies the local user in exports and AI context.
type UserProfile struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// DefaultSettings returns the settings used before the user saves any.
func DefaultSettings() Settings {
	return Settings{Theme: "light", Notifications: true}
}
