package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVentaRequest struct {
	ProductoID string `json:"producto_id" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
	// PrecioUnitario is captured from the form at sale time — it is NOT
	// re-read from the catalog, so later price edits never rewrite history.
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type RegistrarVentaRequest struct {
	ClienteID *string            `json:"cliente_id" validate:"omitempty,uuid"`
	Items     []ItemVentaRequest `json:"items"      validate:"required,min=1,dive"`
}

type VentaFilter struct {
	Fecha string `form:"fecha"` // YYYY-MM-DD; empty = all
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=50" validate:"min=1,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ItemVentaResponse struct {
	ProductoID     string          `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type VentaResponse struct {
	ID        string              `json:"id"`
	Numero    string              `json:"numero"`
	ClienteID *string             `json:"cliente_id"`
	Items     []ItemVentaResponse `json:"items"`
	Total     decimal.Decimal     `json:"total"`
	CreatedAt string              `json:"created_at"`
}

type VentaListResponse struct {
	Data  []VentaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}
