package services

import (
	"context"
	"gorm.io/gorm"
	"projecthub/api/types"
	"projecthub/models"
)

type ProjectFilter struct {
	Status models.ProjectStatus
}

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// withOverview loads what list, create and update return: member contacts
// and task summaries.
func withOverview(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Members", byJoinTime).
		Preload("Members.Contact", columns("id", "first_name", "last_name", "email")).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "title", "status", "priority", "project_id").Order("id ASC")
		})
}

func countRelations(project *models.Project) {
	project.Count = &models.ProjectCount{
		Tasks:   int64(len(project.Tasks)),
		Members: int64(len(project.Members)),
	}
}

func (s *ProjectService) List(ctx context.Context, filter ProjectFilter) ([]models.Project, error) {
	projects := []models.Project{}
	query := s.db.WithContext(ctx).Scopes(withOverview, newestFirst)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if err := query.Find(&projects).Error; err != nil {
		return nil, err
	}
	for i := range projects {
		countRelations(&projects[i])
	}
	return projects, nil
}

func (s *ProjectService) overview(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).Scopes(withOverview).First(&project, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	countRelations(&project)
	return &project, nil
}

// GetByID returns the project with member contacts and its tasks ordered by
// priority, or nil when it does not exist.
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*models.ProjectDetail, error) {
	db := s.db.WithContext(ctx)

	var project models.Project
	err := db.
		Preload("Members", byJoinTime).
		Preload("Members.Contact", columns("id", "first_name", "last_name", "email", "phone")).
		First(&project, id).Error
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}

	tasks := []models.Task{}
	err = db.
		Preload("Assignee", columns("id", "first_name", "last_name")).
		Where("project_id = ?", id).
		Scopes(byPriority, byID).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return &models.ProjectDetail{Project: &project, Tasks: tasks}, nil
}

func (s *ProjectService) Create(ctx context.Context, req *types.ProjectCreateRequest) (*models.Project, error) {
	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   types.TimePtr(req.StartDate),
		EndDate:     types.TimePtr(req.EndDate),
	}
	if project.Status == "" {
		project.Status = models.ProjectActive
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, normalize(err)
	}
	return s.overview(ctx, project.ID)
}

// Update returns nil when the project does not exist.
func (s *ProjectService) Update(ctx context.Context, id uint, req *types.ProjectUpdateRequest) (*models.Project, error) {
	fields := map[string]any{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.StartDate.Set {
		fields["start_date"] = types.NullableTime(req.StartDate)
	}
	if req.EndDate.Set {
		fields["end_date"] = types.NullableTime(req.EndDate)
	}

	db := s.db.WithContext(ctx)
	if found, err := exists(db, &models.Project{}, id); err != nil || !found {
		return nil, err
	}
	if len(fields) > 0 {
		if err := db.Model(&models.Project{ID: id}).Updates(fields).Error; err != nil {
			return nil, normalize(err)
		}
	}
	return s.overview(ctx, id)
}

// Remove deletes the project's tasks, its members and the project in one
// transaction. It reports false, and leaves everything in place, when the
// project does not exist.
func (s *ProjectService) Remove(ctx context.Context, id uint) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddMember returns nil when the project does not exist, ErrContactMissing
// for an unknown contact and ErrDuplicate when the contact already belongs
// to the project.
func (s *ProjectService) AddMember(ctx context.Context, projectID uint, req *types.MemberAddRequest) (*models.ProjectMember, error) {
	db := s.db.WithContext(ctx)
	if found, err := exists(db, &models.Project{}, projectID); err != nil || !found {
		return nil, err
	}
	if found, err := exists(db, &models.Contact{}, req.ContactID); err != nil {
		return nil, err
	} else if !found {
		return nil, ErrContactMissing
	}

	member := models.ProjectMember{
		ProjectID: projectID,
		ContactID: req.ContactID,
		Role:      req.Role,
	}
	if member.Role == "" {
		member.Role = models.DefaultMemberRole
	}
	if err := db.Create(&member).Error; err != nil {
		return nil, normalize(err)
	}

	err := db.
		Preload("Contact", columns("id", "first_name", "last_name", "email")).
		Preload("Project", columns("id", "name")).
		First(&member, member.ID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetMembers returns nil when the project does not exist.
func (s *ProjectService) GetMembers(ctx context.Context, projectID uint) ([]models.ProjectMember, error) {
	db := s.db.WithContext(ctx)
	if found, err := exists(db, &models.Project{}, projectID); err != nil || !found {
		return nil, err
	}

	members := []models.ProjectMember{}
	err := db.
		Preload("Contact", columns("id", "first_name", "last_name", "email", "phone", "company")).
		Where("project_id = ?", projectID).
		Scopes(byJoinTime).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (s *ProjectService) RemoveMember(ctx context.Context, projectID, contactID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("project_id = ? AND contact_id = ?", projectID, contactID).
		Delete(&models.ProjectMember{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Stats counts the project's tasks per status. It returns nil when the
// project does not exist.
func (s *ProjectService) Stats(ctx context.Context, projectID uint) (*models.ProjectStats, error) {
	db := s.db.WithContext(ctx)
	if found, err := exists(db, &models.Project{}, projectID); err != nil || !found {
		return nil, err
	}

	var rows []struct {
		Status models.TaskStatus
		Count  int64
	}
	err := db.Model(&models.Task{}).
		Select("status, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := &models.ProjectStats{TasksByStatus: map[models.TaskStatus]int64{}}
	for _, row := range rows {
		stats.TasksByStatus[row.Status] = row.Count
		stats.TotalTasks += row.Count
	}
	if err := db.Model(&models.ProjectMember{}).Where("project_id = ?", projectID).Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
