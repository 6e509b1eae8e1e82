package models

import "time"

type TaskStatus string

const (
	TaskTodo       TaskStatus = "TODO"
	TaskInProgress TaskStatus = "IN_PROGRESS"
	TaskReview     TaskStatus = "REVIEW"
	TaskDone       TaskStatus = "DONE"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "LOW"
	PriorityMedium TaskPriority = "MEDIUM"
	PriorityHigh   TaskPriority = "HIGH"
	PriorityUrgent TaskPriority = "URGENT"
)

// PriorityRank orders priorities by urgency rather than by their spelling.
const PriorityRank = "CASE priority WHEN 'URGENT' THEN 4 WHEN 'HIGH' THEN 3 WHEN 'MEDIUM' THEN 2 WHEN 'LOW' THEN 1 ELSE 0 END"

type Task struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Title       string       `gorm:"size:255;not null" json:"title"`
	Description *string      `gorm:"size:1000" json:"description"`
	Status      TaskStatus   `gorm:"size:32;not null;default:TODO;index" json:"status"`
	Priority    TaskPriority `gorm:"size:32;not null;default:MEDIUM;index" json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	AssigneeID  *uint        `gorm:"index" json:"assigneeId"`
	ProjectID   *uint        `gorm:"index" json:"projectId"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	Assignee *ContactSummary `gorm:"foreignKey:AssigneeID" json:"assignee"`
	Project  *ProjectSummary `gorm:"foreignKey:ProjectID" json:"project"`
}

type TaskSummary struct {
	ID        uint         `json:"id"`
	Title     string       `json:"title"`
	Status    TaskStatus   `json:"status"`
	Priority  TaskPriority `json:"priority"`
	ProjectID *uint        `json:"-"`
}

func (TaskSummary) TableName() string { return "tasks" }
