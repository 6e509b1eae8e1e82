package services

import (
	"errors"
	"gorm.io/gorm"
	"projecthub/models"
)

var (
	// ErrDuplicate is returned when a write hits a unique constraint.
	ErrDuplicate = errors.New("duplicate record")

	ErrContactMissing = errors.New("referenced contact does not exist")
	ErrProjectMissing = errors.New("referenced project does not exist")
)

func normalize(err error) error {
	if models.IsDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func exists(db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func columns(cols ...string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Select(cols)
	}
}

// byPriority sorts most urgent first, then earliest due date with undated
// rows last.
func byPriority(db *gorm.DB) *gorm.DB {
	return db.Order(models.PriorityRank + " DESC").
		Order("due_date IS NULL").
		Order("due_date ASC")
}

// Scopes run lazily when the query executes, so ordering that has to come
// after another scope must be a scope too.
func byID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func byJoinTime(db *gorm.DB) *gorm.DB {
	return db.Order("joined_at ASC").Order("id ASC")
}
