package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarProductoRequest is shared by create and update.
type GuardarProductoRequest struct {
	Codigo string          `json:"codigo" validate:"required,min=2"`
	Nombre string          `json:"nombre" validate:"required,min=2"`
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
}

type ProductoFilter struct {
	Buscar string `form:"buscar"` // matches codigo or nombre, case-insensitive
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID        string          `json:"id"`
	Codigo    string          `json:"codigo"`
	Nombre    string          `json:"nombre"`
	Precio    decimal.Decimal `json:"precio"`
	CreatedAt string          `json:"created_at"`
}
