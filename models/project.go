package models

import "time"

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPlanning  ProjectStatus = "planning"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
)

type Project struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Description *string       `gorm:"size:1000" json:"description"`
	Status      ProjectStatus `gorm:"size:32;not null;default:active;index" json:"status"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	Members []ProjectMember `gorm:"foreignKey:ProjectID" json:"members"`
	Tasks   []TaskSummary   `gorm:"foreignKey:ProjectID" json:"tasks"`
	Count   *ProjectCount   `gorm:"-" json:"_count,omitempty"`
}

type ProjectCount struct {
	Tasks   int64 `json:"tasks"`
	Members int64 `json:"members"`
}

// ProjectDetail is a project with its full task rows instead of summaries.
type ProjectDetail struct {
	*Project
	Tasks []Task `json:"tasks"`
}

type ProjectSummary struct {
	ID          uint          `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description,omitempty"`
	Status      ProjectStatus `json:"status,omitempty"`
}

func (ProjectSummary) TableName() string { return "projects" }

type ProjectStats struct {
	TotalTasks    int64                `json:"totalTasks"`
	TotalMembers  int64                `json:"totalMembers"`
	TasksByStatus map[TaskStatus]int64 `json:"tasksByStatus"`
}
