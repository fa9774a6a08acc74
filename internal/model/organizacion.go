package model

import (
	"time"

	"github.com/google/uuid"
)

// Organizacion is the tenant boundary. Every business row carries an
// org_id foreign key and all queries filter on it.
type Organizacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	CreatedAt time.Time
}

func (Organizacion) TableName() string { return "organizaciones" }

// UsuarioRol links a user to an organization with a role.
// Rol: "admin" | "manager" | "cashier"
type UsuarioRol struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;index;not null"`
	OrgID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Rol       string    `gorm:"type:varchar(20);not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time

	Organizacion *Organizacion `gorm:"foreignKey:OrgID"`
}

func (UsuarioRol) TableName() string { return "usuario_roles" }
