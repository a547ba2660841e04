package repository

import (
	"context"

	"github.com/MaxiBlanc/Krevo-control/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductoRepository defines store operations for Producto.
type ProductoRepository interface {
	Crear(ctx context.Context, p *model.Producto) error
	// Listar returns products, filtered by categoria when non-empty.
	// The store keeps no product ordering; the list is unordered.
	Listar(ctx context.Context, categoria string) ([]model.Producto, error)
	ObtenerPorID(ctx context.Context, id primitive.ObjectID) (*model.Producto, error)
	Actualizar(ctx context.Context, p *model.Producto) error
	Eliminar(ctx context.Context, id primitive.ObjectID) error
}

type productoRepository struct {
	db *mongo.Database
}

func NewProductoRepository(db *mongo.Database) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) col() *mongo.Collection {
	return r.db.Collection("productos")
}

func (r *productoRepository) Crear(ctx context.Context, p *model.Producto) error {
	res, err := r.col().InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *productoRepository) Listar(ctx context.Context, categoria string) ([]model.Producto, error) {
	filter := bson.M{}
	if categoria != "" {
		filter["categoria"] = categoria
	}
	cursor, err := r.col().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]model.Producto, 0)
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *productoRepository) ObtenerPorID(ctx context.Context, id primitive.ObjectID) (*model.Producto, error) {
	var p model.Producto
	if err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepository) Actualizar(ctx context.Context, p *model.Producto) error {
	_, err := r.col().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	return err
}

func (r *productoRepository) Eliminar(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
