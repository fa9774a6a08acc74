package dto

import "github.com/shopspring/decimal"

// InventarioItemResponse is one row of the derived inventory view.
// Stock is the internal accumulator (non-positive: negative of cumulative
// sales); Disponible is its absolute value, the number shown to users.
type InventarioItemResponse struct {
	ProductoID string          `json:"producto_id"`
	Codigo     string          `json:"codigo"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Stock      int             `json:"stock"`
	Disponible int             `json:"disponible"`
}

// ValidacionStockResponse is the accept/reject decision for a requested
// quantity against the current stock snapshot.
type ValidacionStockResponse struct {
	EsValido        bool   `json:"es_valido"`
	Mensaje         string `json:"mensaje"`
	StockDisponible int    `json:"stock_disponible"`
}
