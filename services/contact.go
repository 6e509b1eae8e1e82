package services

import (
	"context"
	"gorm.io/gorm"
	"projecthub/api/types"
	"projecthub/models"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts := []models.Contact{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// GetByID returns nil when the contact does not exist.
func (s *ContactService) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Create(ctx context.Context, req *types.ContactCreateRequest) (*models.Contact, error) {
	contact := models.Contact{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Notes:     req.Notes,
	}
	if err := s.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, normalize(err)
	}
	return &contact, nil
}

// Update applies the fields present in req. It returns nil when the contact
// does not exist.
func (s *ContactService) Update(ctx context.Context, id uint, req *types.ContactUpdateRequest) (*models.Contact, error) {
	fields := map[string]any{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Company != nil {
		fields["company"] = *req.Company
	}
	if req.Notes != nil {
		fields["notes"] = *req.Notes
	}

	contact, err := s.GetByID(ctx, id)
	if err != nil || contact == nil {
		return nil, err
	}
	if len(fields) == 0 {
		return contact, nil
	}
	if err := s.db.WithContext(ctx).Model(contact).Updates(fields).Error; err != nil {
		return nil, normalize(err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes the contact together with its project memberships and
// unassigns its tasks, all in one transaction. It reports false, and leaves
// everything in place, when the contact does not exist.
func (s *ContactService) Delete(ctx context.Context, id uint) (bool, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}
		err := tx.Model(&models.Task{}).
			Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error
		if err != nil {
			return err
		}
		result := tx.Delete(&models.Contact{}, id)
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
