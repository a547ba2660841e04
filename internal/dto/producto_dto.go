package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// GuardarProductoRequest carries the form fields of the product modal.
// Image files travel as multipart parts alongside; Categoria is only honored
// on create — updates always keep the categoria of the existing document.
// Precio carries no validator tag: presence is enforced by the form parse,
// and a price of 0 is a legal value ("required" would reject it).
type GuardarProductoRequest struct {
	Nombre      string          `form:"nombre"      validate:"required,min=1,max=120"`
	Precio      decimal.Decimal `form:"precio"`
	Talle       string          `form:"talle"`
	Descripcion string          `form:"descripcion"`
	Stock       bool            `form:"stock"`
	Categoria   string          `form:"categoria"`
}

type ProductoFilter struct {
	Categoria string `form:"categoria"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Precio      decimal.Decimal `json:"precio"`
	Talle       string          `json:"talle,omitempty"`
	Descripcion string          `json:"descripcion,omitempty"`
	Stock       bool            `json:"stock"`
	Imagenes    []string        `json:"imagenes"`
	Imagen      string          `json:"imagen,omitempty"`
	Categoria   string          `json:"categoria"`
}
