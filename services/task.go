package services

import (
	"context"
	"gorm.io/gorm"
	"projecthub/api/types"
	"projecthub/models"
)

type TaskFilter struct {
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssigneeID uint
	ProjectID  uint
}

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

var (
	assigneeColumns      = []string{"id", "first_name", "last_name", "email"}
	projectColumns       = []string{"id", "name", "status"}
	projectDetailColumns = []string{"id", "name", "description", "status"}
)

func withRelations(projectCols []string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Preload("Assignee", columns(assigneeColumns...)).
			Preload("Project", columns(projectCols...))
	}
}

// taskOrder is priority, then due date, then newest first. The trailing id
// keeps the order stable for rows created in the same instant.
func taskOrder(db *gorm.DB) *gorm.DB {
	return byPriority(db).Order("created_at DESC").Order("id DESC")
}

func (s *TaskService) List(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Scopes(withRelations(projectColumns), taskOrder)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssigneeID != 0 {
		query = query.Where("assignee_id = ?", filter.AssigneeID)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}

	tasks := []models.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) FindByProject(ctx context.Context, projectID uint) ([]models.Task, error) {
	return s.List(ctx, TaskFilter{ProjectID: projectID})
}

func (s *TaskService) FindByAssignee(ctx context.Context, assigneeID uint) ([]models.Task, error) {
	return s.List(ctx, TaskFilter{AssigneeID: assigneeID})
}

func (s *TaskService) load(ctx context.Context, id uint, projectCols []string) (*models.Task, error) {
	var task models.Task
	if err := s.db.WithContext(ctx).Scopes(withRelations(projectCols)).First(&task, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

// GetByID returns nil when the task does not exist.
func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	return s.load(ctx, id, projectDetailColumns)
}

func (s *TaskService) checkReferences(db *gorm.DB, assigneeID, projectID *uint) error {
	if assigneeID != nil {
		if found, err := exists(db, &models.Contact{}, *assigneeID); err != nil {
			return err
		} else if !found {
			return ErrContactMissing
		}
	}
	if projectID != nil {
		if found, err := exists(db, &models.Project{}, *projectID); err != nil {
			return err
		} else if !found {
			return ErrProjectMissing
		}
	}
	return nil
}

// Create fails with ErrContactMissing or ErrProjectMissing when the task
// points at rows that do not exist.
func (s *TaskService) Create(ctx context.Context, req *types.TaskCreateRequest) (*models.Task, error) {
	db := s.db.WithContext(ctx)
	if err := s.checkReferences(db, req.AssigneeID, req.ProjectID); err != nil {
		return nil, err
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     types.TimePtr(req.DueDate),
		AssigneeID:  req.AssigneeID,
		ProjectID:   req.ProjectID,
	}
	if task.Status == "" {
		task.Status = models.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, normalize(err)
	}
	return s.load(ctx, task.ID, projectColumns)
}

// Update applies the fields present in req; explicit nulls clear the due
// date, assignee and project. It returns nil when the task does not exist.
func (s *TaskService) Update(ctx context.Context, id uint, req *types.TaskUpdateRequest) (*models.Task, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.DueDate.Set {
		fields["due_date"] = nil
		if req.DueDate.Valid {
			fields["due_date"] = req.DueDate.Value.Time
		}
	}
	if req.AssigneeID.Set {
		fields["assignee_id"] = nil
		if req.AssigneeID.Valid {
			fields["assignee_id"] = req.AssigneeID.Value
		}
	}
	if req.ProjectID.Set {
		fields["project_id"] = nil
		if req.ProjectID.Valid {
			fields["project_id"] = req.ProjectID.Value
		}
	}

	db := s.db.WithContext(ctx)
	if found, err := exists(db, &models.Task{}, id); err != nil || !found {
		return nil, err
	}
	if err := s.checkReferences(db, req.AssigneeID.Ptr(), req.ProjectID.Ptr()); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := db.Model(&models.Task{ID: id}).Updates(fields).Error; err != nil {
			return nil, normalize(err)
		}
	}
	return s.load(ctx, id, projectColumns)
}

// UpdateStatus changes only the status column. It returns nil when the task
// does not exist.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status models.TaskStatus) (*models.Task, error) {
	result := s.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return s.load(ctx, id, projectColumns)
}

func (s *TaskService) Remove(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).Delete(&models.Task{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
