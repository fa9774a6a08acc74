package repository

import (
	"context"

	"github.com/marco2712/POS-PROCESOS/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioRepository covers login identities and per-org role membership.
type UsuarioRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	// FindRol returns the caller's active membership in the given org.
	FindRol(ctx context.Context, usuarioID, orgID uuid.UUID) (*model.UsuarioRol, error)
	// ListOrgs returns every active membership of the user, with the
	// organization preloaded.
	ListOrgs(ctx context.Context, usuarioID uuid.UUID) ([]model.UsuarioRol, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ? AND activo = true", username).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindRol(ctx context.Context, usuarioID, orgID uuid.UUID) (*model.UsuarioRol, error) {
	var ur model.UsuarioRol
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND org_id = ? AND activo = true", usuarioID, orgID).
		First(&ur).Error
	return &ur, err
}

func (r *usuarioRepo) ListOrgs(ctx context.Context, usuarioID uuid.UUID) ([]model.UsuarioRol, error) {
	var roles []model.UsuarioRol
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND activo = true", usuarioID).
		Preload("Organizacion").
		Find(&roles).Error
	return roles, err
}
