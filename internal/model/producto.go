package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Producto is a clothing item stored in the "productos" collection.
// Imagen is kept as a redundant mirror of Imagenes[0] for older consumers
// that predate the multi-image gallery.
type Producto struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Nombre      string               `bson:"nombre"`
	Precio      primitive.Decimal128 `bson:"precio"`
	Talle       string               `bson:"talle,omitempty"`
	Descripcion string               `bson:"descripcion,omitempty"`
	Stock       bool                 `bson:"stock"`
	Imagenes    []string             `bson:"imagenes"`
	Imagen      string               `bson:"imagen"`
	Categoria   string               `bson:"categoria"`
}

// ImagenesEfectivas returns the image gallery, falling back to the legacy
// single-image field for documents written before Imagenes existed.
func (p Producto) ImagenesEfectivas() []string {
	if len(p.Imagenes) > 0 {
		return p.Imagenes
	}
	if p.Imagen != "" {
		return []string{p.Imagen}
	}
	return nil
}
