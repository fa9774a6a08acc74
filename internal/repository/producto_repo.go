package repository

import (
	"context"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM
// implementation, enabling clean unit testing via stubs.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Producto, error)
	List(ctx context.Context, orgID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, error)
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(&p).Error
	return &p, err
}

func (r *productoRepo) List(ctx context.Context, orgID uuid.UUID, filter dto.ProductoFilter) ([]model.Producto, error) {
	var productos []model.Producto
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if filter.Buscar != "" {
		like := "%" + filter.Buscar + "%"
		q = q.Where("codigo ILIKE ? OR nombre ILIKE ?", like, like)
	}
	err := q.Order("created_at DESC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).
		Where("org_id = ?", p.OrgID).
		Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Delete(&model.Producto{}).Error
}
