package repository

import (
	"context"

	"github.com/marco2712/POS-PROCESOS/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizacionRepository interface {
	Create(ctx context.Context, o *model.Organizacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organizacion, error)
}

type organizacionRepo struct{ db *gorm.DB }

func NewOrganizacionRepository(db *gorm.DB) OrganizacionRepository {
	return &organizacionRepo{db: db}
}

func (r *organizacionRepo) Create(ctx context.Context, o *model.Organizacion) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *organizacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Organizacion, error) {
	var o model.Organizacion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return &o, err
}
