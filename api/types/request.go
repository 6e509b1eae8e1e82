package types

import "projecthub/models"

type IDParam struct {
	ID uint `uri:"id" binding:"required,gt=0"`
}

type MemberParam struct {
	ID        uint `uri:"id" binding:"required,gt=0"`
	ContactID uint `uri:"contactId" binding:"required,gt=0"`
}

type ContactCreateRequest struct {
	FirstName string  `json:"firstName" binding:"required,min=1,max=100"`
	LastName  string  `json:"lastName" binding:"required,min=1,max=100"`
	Email     string  `json:"email" binding:"required,email,max=255"`
	Phone     *string `json:"phone" binding:"omitnil,max=50"`
	Company   *string `json:"company" binding:"omitnil,max=255"`
	Notes     *string `json:"notes" binding:"omitnil,max=2000"`
}

type ContactUpdateRequest struct {
	FirstName *string `json:"firstName" binding:"omitnil,min=1,max=100"`
	LastName  *string `json:"lastName" binding:"omitnil,min=1,max=100"`
	Email     *string `json:"email" binding:"omitnil,email,max=255"`
	Phone     *string `json:"phone" binding:"omitnil,max=50"`
	Company   *string `json:"company" binding:"omitnil,max=255"`
	Notes     *string `json:"notes" binding:"omitnil,max=2000"`
}

type ProjectListQuery struct {
	Status models.ProjectStatus `form:"status" binding:"omitempty,project_status"`
}

type ProjectCreateRequest struct {
	Name        string               `json:"name" binding:"required,min=1,max=255"`
	Description *string              `json:"description" binding:"omitnil,max=1000"`
	Status      models.ProjectStatus `json:"status" binding:"omitempty,project_status"`
	StartDate   *Date                `json:"startDate"`
	EndDate     *Date                `json:"endDate"`
}

type ProjectUpdateRequest struct {
	Name        *string               `json:"name" binding:"omitnil,min=1,max=255"`
	Description *string               `json:"description" binding:"omitnil,max=1000"`
	Status      *models.ProjectStatus `json:"status" binding:"omitnil,project_status"`
	StartDate   Nullable[Date]        `json:"startDate"`
	EndDate     Nullable[Date]        `json:"endDate"`
}

type MemberAddRequest struct {
	ContactID uint   `json:"contactId" binding:"required,gt=0"`
	Role      string `json:"role" binding:"omitempty,max=50,member_role"`
}

type TaskListQuery struct {
	Status     models.TaskStatus   `form:"status" binding:"omitempty,task_status"`
	Priority   models.TaskPriority `form:"priority" binding:"omitempty,task_priority"`
	AssigneeID uint                `form:"assigneeId" binding:"omitempty,gt=0"`
	ProjectID  uint                `form:"projectId" binding:"omitempty,gt=0"`
}

type TaskCreateRequest struct {
	Title       string              `json:"title" binding:"required,min=1,max=255"`
	Description *string             `json:"description" binding:"omitnil,max=1000"`
	Status      models.TaskStatus   `json:"status" binding:"omitempty,task_status"`
	Priority    models.TaskPriority `json:"priority" binding:"omitempty,task_priority"`
	DueDate     *Date               `json:"dueDate"`
	AssigneeID  *uint               `json:"assigneeId" binding:"omitnil,gt=0"`
	ProjectID   *uint               `json:"projectId" binding:"omitnil,gt=0"`
}

type TaskUpdateRequest struct {
	Title       *string              `json:"title" binding:"omitnil,min=1,max=255"`
	Description *string              `json:"description" binding:"omitnil,max=1000"`
	Status      *models.TaskStatus   `json:"status" binding:"omitnil,task_status"`
	Priority    *models.TaskPriority `json:"priority" binding:"omitnil,task_priority"`
	DueDate     Nullable[Date]       `json:"dueDate"`
	AssigneeID  Nullable[uint]       `json:"assigneeId" binding:"omitnil,gt=0"`
	ProjectID   Nullable[uint]       `json:"projectId" binding:"omitnil,gt=0"`
}

type TaskStatusRequest struct {
	Status models.TaskStatus `json:"status" binding:"required,task_status"`
}
