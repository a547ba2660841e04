package dto

import (
	"github.com/MaxiBlanc/Krevo-control/internal/model"

	"github.com/shopspring/decimal"
)

// FromCategoria converts a store document to its API shape.
func FromCategoria(c model.Categoria) CategoriaResponse {
	return CategoriaResponse{
		ID:     c.ID.Hex(),
		Nombre: c.Nombre,
		Imagen: c.Imagen,
	}
}

// FromProducto converts a store document to its API shape. The store keeps
// prices as Decimal128; a value that fails to parse renders as zero rather
// than breaking the whole snapshot.
func FromProducto(p model.Producto) ProductoResponse {
	precio, err := decimal.NewFromString(p.Precio.String())
	if err != nil {
		precio = decimal.Zero
	}
	return ProductoResponse{
		ID:          p.ID.Hex(),
		Nombre:      p.Nombre,
		Precio:      precio,
		Talle:       p.Talle,
		Descripcion: p.Descripcion,
		Stock:       p.Stock,
		Imagenes:    p.ImagenesEfectivas(),
		Imagen:      p.Imagen,
		Categoria:   p.Categoria,
	}
}
