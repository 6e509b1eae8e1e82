package controllers

import (
	"context"
	"projecthub/api/types"
	"projecthub/models"
	"projecthub/services"
)

// The controllers depend on these instead of the concrete services so tests
// can swap in fakes.

type ContactService interface {
	List(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
	Create(ctx context.Context, req *types.ContactCreateRequest) (*models.Contact, error)
	Update(ctx context.Context, id uint, req *types.ContactUpdateRequest) (*models.Contact, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type ProjectService interface {
	List(ctx context.Context, filter services.ProjectFilter) ([]models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.ProjectDetail, error)
	Create(ctx context.Context, req *types.ProjectCreateRequest) (*models.Project, error)
	Update(ctx context.Context, id uint, req *types.ProjectUpdateRequest) (*models.Project, error)
	Remove(ctx context.Context, id uint) (bool, error)
	AddMember(ctx context.Context, projectID uint, req *types.MemberAddRequest) (*models.ProjectMember, error)
	GetMembers(ctx context.Context, projectID uint) ([]models.ProjectMember, error)
	RemoveMember(ctx context.Context, projectID, contactID uint) (bool, error)
	Stats(ctx context.Context, projectID uint) (*models.ProjectStats, error)
}

type TaskService interface {
	List(ctx context.Context, filter services.TaskFilter) ([]models.Task, error)
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Create(ctx context.Context, req *types.TaskCreateRequest) (*models.Task, error)
	Update(ctx context.Context, id uint, req *types.TaskUpdateRequest) (*models.Task, error)
	UpdateStatus(ctx context.Context, id uint, status models.TaskStatus) (*models.Task, error)
	Remove(ctx context.Context, id uint) (bool, error)
	FindByProject(ctx context.Context, projectID uint) ([]models.Task, error)
	FindByAssignee(ctx context.Context, assigneeID uint) ([]models.Task, error)
}
