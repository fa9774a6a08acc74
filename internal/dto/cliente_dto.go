package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarClienteRequest is shared by create and update.
// TipoID and IDNum must be provided together or not at all.
type GuardarClienteRequest struct {
	Nombre string  `json:"nombre" validate:"required,min=2"`
	TipoID *string `json:"tipo_id" validate:"omitempty,oneof=CC TI CE NIT PP"`
	IDNum  *string `json:"idnum"`
	Correo *string `json:"correo"`
}

type ClienteFilter struct {
	Buscar string `form:"buscar"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	TipoID *string `json:"tipo_id"`
	IDNum  *string `json:"idnum"`
	// IDNumFormateado is the display form (thousand separators, NIT dash).
	IDNumFormateado string  `json:"idnum_formateado,omitempty"`
	Correo          *string `json:"correo"`
	CreatedAt       string  `json:"created_at"`
}
