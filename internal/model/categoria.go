package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categoria is a catalog category stored in the "categorias" collection.
// Nombre doubles as the join key from productos (Producto.Categoria holds the
// name, not the id), so every rename must be cascaded onto the matching
// products in the same transaction.
type Categoria struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Nombre string             `bson:"nombre"`
	Imagen string             `bson:"imagen"`
}
