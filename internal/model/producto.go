package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is an org-scoped catalog entry. Codigo is unique per
// organization; a violation surfaces as a duplicate-code error.
type Producto struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uni_productos_org_codigo"`
	Codigo    string          `gorm:"not null;uniqueIndex:uni_productos_org_codigo"`
	Nombre    string          `gorm:"index;not null"`
	Precio    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
