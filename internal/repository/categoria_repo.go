package repository

import (
	"context"

	"github.com/MaxiBlanc/Krevo-control/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoriaRepository defines store operations for Categoria.
// Renombrar and Eliminar are transactional: the category write and the
// cascade onto dependent productos commit together or not at all, so readers
// never observe a half-renamed or half-deleted catalog.
type CategoriaRepository interface {
	Crear(ctx context.Context, c *model.Categoria) error
	Listar(ctx context.Context) ([]model.Categoria, error)
	ObtenerPorID(ctx context.Context, id primitive.ObjectID) (*model.Categoria, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error)
	Renombrar(ctx context.Context, c *model.Categoria, nombreAnterior string) error
	Eliminar(ctx context.Context, id primitive.ObjectID, nombre string) error
}

type categoriaRepository struct {
	db *mongo.Database
}

func NewCategoriaRepository(db *mongo.Database) CategoriaRepository {
	return &categoriaRepository{db: db}
}

func (r *categoriaRepository) col() *mongo.Collection {
	return r.db.Collection("categorias")
}

func (r *categoriaRepository) productos() *mongo.Collection {
	return r.db.Collection("productos")
}

func (r *categoriaRepository) Crear(ctx context.Context, c *model.Categoria) error {
	res, err := r.col().InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Listar returns all categories ordered by nombre ascending — the order the
// tab strip renders and from which the default active category is picked.
func (r *categoriaRepository) Listar(ctx context.Context) ([]model.Categoria, error) {
	opts := options.Find().SetSort(bson.D{{Key: "nombre", Value: 1}})
	cursor, err := r.col().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	list := make([]model.Categoria, 0)
	if err := cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *categoriaRepository) ObtenerPorID(ctx context.Context, id primitive.ObjectID) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.col().FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoriaRepository) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Categoria, error) {
	var c model.Categoria
	if err := r.col().FindOne(ctx, bson.M{"nombre": nombre}).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Renombrar updates the category document and rewrites categoria on every
// product that referenced the old name, inside one transaction.
func (r *categoriaRepository) Renombrar(ctx context.Context, c *model.Categoria, nombreAnterior string) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if c.Nombre != nombreAnterior {
			_, err := r.productos().UpdateMany(sc,
				bson.M{"categoria": nombreAnterior},
				bson.M{"$set": bson.M{"categoria": c.Nombre}},
			)
			if err != nil {
				return nil, err
			}
		}
		_, err := r.col().UpdateOne(sc,
			bson.M{"_id": c.ID},
			bson.M{"$set": bson.M{"nombre": c.Nombre, "imagen": c.Imagen}},
		)
		return nil, err
	})
	return err
}

// Eliminar removes the category and every product referencing it by name,
// inside one transaction.
func (r *categoriaRepository) Eliminar(ctx context.Context, id primitive.ObjectID, nombre string) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.productos().DeleteMany(sc, bson.M{"categoria": nombre}); err != nil {
			return nil, err
		}
		_, err := r.col().DeleteOne(sc, bson.M{"_id": id})
		return nil, err
	})
	return err
}
