package repo

import (
	"context"
	"errors"

	"edurev/backend/app/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	return count, r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, "user_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// ApplyChanges writes every set field of the change-set in one UPDATE.
func (r *UserRepository) ApplyChanges(ctx context.Context, id uint, changes models.UserChanges) error {
	if changes.Empty() {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", id).Updates(changes.Columns()).Error
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
