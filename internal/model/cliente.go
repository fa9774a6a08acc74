package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is an org-scoped customer record.
// TipoID/IDNum are either both present or both absent — enforced by the
// service layer, not the schema.
type Cliente struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Nombre string    `gorm:"not null"`
	// TipoID: CC | TI | CE | NIT | PP
	TipoID    *string `gorm:"column:tipo_id;type:varchar(5)"`
	IDNum     *string `gorm:"column:idnum"`
	Correo    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
