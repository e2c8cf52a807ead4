package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	gormModels "flightops/frms/internal/models/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *gormModels.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context) ([]gormModels.User, error) {
	var users []gormModels.User
	if err := r.db.WithContext(ctx).Order("email asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) UpdateRole(ctx context.Context, userID int64, role string) error {
	res := r.db.WithContext(ctx).Model(&gormModels.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		return fmt.Errorf("failed to update role: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
