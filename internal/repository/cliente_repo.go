package repository

import (
	"context"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for customers.
// Every method takes the organization explicitly — there is no ambient
// tenant state, and no method may query without it.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Cliente, error)
	List(ctx context.Context, orgID uuid.UUID, filter dto.ClienteFilter) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).Where("id = ? AND org_id = ?", id, orgID).First(&c).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context, orgID uuid.UUID, filter dto.ClienteFilter) ([]model.Cliente, error) {
	var clientes []model.Cliente
	q := r.db.WithContext(ctx).Where("org_id = ?", orgID)
	if filter.Buscar != "" {
		like := "%" + filter.Buscar + "%"
		q = q.Where("nombre ILIKE ? OR idnum ILIKE ? OR correo ILIKE ?", like, like, like)
	}
	err := q.Order("created_at DESC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).
		Where("org_id = ?", c.OrgID).
		Save(c).Error
}

func (r *clienteRepo) Delete(ctx context.Context, orgID, id uuid.UUID) error {
	// A foreign-key violation here means the customer is referenced by
	// sales; the service maps it to a domain message.
	return r.db.WithContext(ctx).
		Where("id = ? AND org_id = ?", id, orgID).
		Delete(&model.Cliente{}).Error
}
