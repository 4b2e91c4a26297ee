package models

// Icon names a subject icon on the dashboard.
type Icon string

const (
	IconCalculator   Icon = "Calculator"
	IconAtom         Icon = "Atom"
	IconFlaskConical Icon = "FlaskConical"
	IconGlobe        Icon = "Globe"
	IconPenTool      Icon = "PenTool"
	IconBookOpen     Icon = "BookOpen"
)

// Topic is one syllabus item with a due date.
type Topic struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Completed   bool   `json:"completed"`
	CompletedBy string `json:"completedBy,omitempty"`
	CompletedAt string `json:"completedAt,omitempty"`
}

// Subject owns its topics; slice order is display order.
type Subject struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Icon   Icon    `json:"icon" validate:"oneof=Calculator Atom FlaskConical Globe PenTool BookOpen"`
	Color  string  `json:"color" validate:"required"`
	Topics []Topic `json:"topics" validate:"dive"`
}

// TopicUpdate is a partial topic. Nil fields are left untouched;
// an empty string clears an optional field.
type TopicUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Completed   *bool   `json:"completed,omitempty"`
	CompletedBy *string `json:"completedBy,omitempty"`
	CompletedAt *string `json:"completedAt,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Apply merges the non-nil fields of u onto t.
func (u TopicUpdate) Apply(t *Topic) {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.Completed != nil {
		t.Completed = *u.Completed
	}
	if u.CompletedBy != nil {
		t.CompletedBy = *u.CompletedBy
	}
	if u.CompletedAt != nil {
		t.CompletedAt = *u.CompletedAt
	}
}

// MarksCompleted reports whether the update sets completion to true.
func (u TopicUpdate) MarksCompleted() bool {
	return u.Completed != nil && *u.Completed
}

type ActivityType string

const (
	ActivityCompleted ActivityType = "completed"
	ActivityAdded     ActivityType = "added"
	ActivityUpdated   ActivityType = "updated"
)

// Activity copies topic and subject names at record time.
type Activity struct {
	ID          string       `json:"id"`
	Topic       string       `json:"topic"`
	Subject     string       `json:"subject"`
	CompletedBy string       `json:"completedBy"`
	Date        string       `json:"date"`
	Type        ActivityType `json:"type"`
}

// Severity grades an alert by days overdue.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Alert is derived from an overdue topic; it is never stored.
type Alert struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic"`
	Subject     string   `json:"subject"`
	DaysOverdue int      `json:"daysOverdue"`
	Severity    Severity `json:"severity"`
}

// ToggleRequest flips a topic's completion on behalf of the caller.
type ToggleRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}
