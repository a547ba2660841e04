// Command seedcatalog inserts a small demo catalog for local development.
// Run it against an empty database; it does not deduplicate.
package main

import (
	"context"
	"os"
	"time"

	"github.com/MaxiBlanc/Krevo-control/internal/config"
	"github.com/MaxiBlanc/Krevo-control/internal/infra"
	"github.com/MaxiBlanc/Krevo-control/internal/model"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewMongo(cfg.MongoURL, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	categorias := repository.NewCategoriaRepository(db)
	productos := repository.NewProductoRepository(db)

	seed := []struct {
		categoria string
		items     []model.Producto
	}{
		{
			categoria: "Remeras",
			items: []model.Producto{
				{Nombre: "Remera negra", Precio: precio("8500"), Talle: "M", Stock: true},
				{Nombre: "Remera blanca", Precio: precio("8500"), Talle: "L", Stock: true},
			},
		},
		{
			categoria: "Buzos",
			items: []model.Producto{
				{Nombre: "Buzo oversize", Precio: precio("19900"), Talle: "XL", Descripcion: "Frisa invisible", Stock: true},
			},
		},
	}

	for _, s := range seed {
		cat := &model.Categoria{Nombre: s.categoria}
		if err := categorias.Crear(ctx, cat); err != nil {
			log.Fatal().Err(err).Str("categoria", s.categoria).Msg("seed categoria failed")
		}
		for i := range s.items {
			s.items[i].Categoria = s.categoria
			s.items[i].Imagenes = []string{}
			if err := productos.Crear(ctx, &s.items[i]); err != nil {
				log.Fatal().Err(err).Str("producto", s.items[i].Nombre).Msg("seed producto failed")
			}
		}
		log.Info().Str("categoria", s.categoria).Int("productos", len(s.items)).Msg("seeded")
	}
}

func precio(s string) primitive.Decimal128 {
	d, err := primitive.ParseDecimal128(s)
	if err != nil {
		log.Fatal().Err(err).Str("precio", s).Msg("invalid seed price")
	}
	return d
}
