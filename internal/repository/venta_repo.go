package repository

import (
	"context"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VentaRepository is the gateway for sale headers and line items.
// Header and items are inserted in two separate calls on purpose: the sale
// creator compensates a failed item insert by deleting the header it just
// created (see service.VentaService).
type VentaRepository interface {
	CreateVenta(ctx context.Context, v *model.Venta) error
	CreateItems(ctx context.Context, items []model.VentaItem) error
	DeleteVenta(ctx context.Context, orgID, id uuid.UUID) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Venta, error)
	List(ctx context.Context, orgID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error)
	// ListItems returns every line item of the organization, joined through
	// productos to re-apply the tenant filter (items carry no org_id).
	ListItems(ctx context.Context, orgID uuid.UUID) ([]model.VentaItem, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateVenta(ctx context.Context, v *model.Venta) error {
	return r.db.WithContext(ctx).Omit("Items", "Cliente").Create(v).Error
}

func (r *ventaRepo) CreateItems(ctx context.Context, items []model.VentaItem) error {
	return r.db.WithContext(ctx).Omit("Producto").Create(&items).Error
}

func (r *ventaRepo) DeleteVenta(ctx context.Context, orgID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Delete(&model.Venta{}).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Venta, error) {
	var v model.Venta
	err := r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Preload("Items.Producto").Preload("Cliente").
		First(&v).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, orgID uuid.UUID, filter dto.VentaFilter) ([]model.Venta, int64, error) {
	var ventas []model.Venta
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venta{}).Where("org_id = ?", orgID)
	if filter.Fecha != "" {
		q = q.Where("DATE(created_at) = ?", filter.Fecha)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Items.Producto").Preload("Cliente").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&ventas).Error
	return ventas, total, err
}

func (r *ventaRepo) ListItems(ctx context.Context, orgID uuid.UUID) ([]model.VentaItem, error) {
	var items []model.VentaItem
	err := r.db.WithContext(ctx).
		Joins("JOIN productos ON productos.id = venta_items.producto_id").
		Where("productos.org_id = ?", orgID).
		Find(&items).Error
	return items, err
}
