package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarCategoriaRequest covers both create and rename; the image file (if
// any) travels as a multipart part next to these fields, never through JSON.
type GuardarCategoriaRequest struct {
	Nombre string `form:"nombre" validate:"required,min=1,max=80"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CategoriaResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Imagen string `json:"imagen,omitempty"`
}
