package repository

import (
	"context"
	"errors"

	"msistore/internal/domain/model"
	repo "msistore/internal/repository"

	"gorm.io/gorm"
)

type RoleGormRepository struct {
	db *gorm.DB
}

func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func (r *RoleGormRepository) FindByID(ctx context.Context, id int64) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Role{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Role{}, err
	}
	return role, nil
}

// 既定のロールを起動時に用意する
func (r *RoleGormRepository) EnsureSeed(ctx context.Context) error {
	seeds := []model.Role{
		{ID: model.RoleIDUser, Name: model.RoleNameUser},
		{ID: model.RoleIDAdmin, Name: model.RoleNameAdmin},
	}
	for _, s := range seeds {
		if err := r.db.WithContext(ctx).
			Where("id = ?", s.ID).
			FirstOrCreate(&model.Role{}, s).Error; err != nil {
			return err
		}
	}
	return nil
}
