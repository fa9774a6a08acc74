package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Venta is a sale header. Numero is generated client-side from a
// timestamp-derived scheme — practically unlikely to collide, not
// constrained unique. Sales are never updated; the only delete path is the
// compensating rollback during creation.
type Venta struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrgID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	ClienteID *uuid.UUID `gorm:"type:uuid;index"`
	Numero    string     `gorm:"type:varchar(11);index;not null"`
	CreatedAt time.Time

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Items   []VentaItem `gorm:"foreignKey:VentaID"`
}

// VentaItem is a sale line. PrecioUnitario is captured at sale time so
// later catalog price changes never alter historical sale values.
type VentaItem struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProductoID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	Cantidad       int             `gorm:"not null"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}
