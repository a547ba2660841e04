package service

import (
	"context"
	"errors"

	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/infra"
	"github.com/MaxiBlanc/Krevo-control/internal/model"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProductoNoEncontrado = errors.New("producto no encontrado")
	ErrCategoriaRequerida   = errors.New("la categoría es obligatoria")
)

// ProductoService defines the product manager for items scoped to a category.
type ProductoService interface {
	Crear(ctx context.Context, req dto.GuardarProductoRequest, archivos []Archivo) (dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id primitive.ObjectID, req dto.GuardarProductoRequest, archivos []Archivo) (dto.ProductoResponse, error)
	Eliminar(ctx context.Context, id primitive.ObjectID) error
}

type productoService struct {
	repo     repository.ProductoRepository
	uploader infra.Uploader
	notifier Notifier
}

func NewProductoService(repo repository.ProductoRepository, uploader infra.Uploader, notifier Notifier) ProductoService {
	return &productoService{repo: repo, uploader: uploader, notifier: notifier}
}

// Crear inserts a product under the given category. All images upload before
// the write: an upload failure means nothing is stored.
func (s *productoService) Crear(ctx context.Context, req dto.GuardarProductoRequest, archivos []Archivo) (dto.ProductoResponse, error) {
	if req.Categoria == "" {
		return dto.ProductoResponse{}, ErrCategoriaRequerida
	}

	urls, err := s.subirImagenes(ctx, archivos)
	if err != nil {
		return dto.ProductoResponse{}, err
	}

	precio, err := primitive.ParseDecimal128(req.Precio.String())
	if err != nil {
		return dto.ProductoResponse{}, err
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Precio:      precio,
		Talle:       req.Talle,
		Descripcion: req.Descripcion,
		Stock:       req.Stock,
		Imagenes:    urls,
		Imagen:      primeraImagen(urls),
		Categoria:   req.Categoria,
	}
	if err := s.repo.Crear(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}

	s.notifier.Notify(ctx)
	return dto.FromProducto(*p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	list, err := s.repo.Listar(ctx, filter.Categoria)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, dto.FromProducto(p))
	}
	return result, nil
}

// Actualizar rewrites the product's fields. With new files the stored image
// sequence is replaced entirely; without them it is preserved (falling back
// to the legacy single-image field). Categoria always comes from the existing
// document — a product cannot change category through this operation.
func (s *productoService) Actualizar(ctx context.Context, id primitive.ObjectID, req dto.GuardarProductoRequest, archivos []Archivo) (dto.ProductoResponse, error) {
	existente, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.ProductoResponse{}, ErrProductoNoEncontrado
		}
		return dto.ProductoResponse{}, err
	}

	urls := existente.ImagenesEfectivas()
	if len(archivos) > 0 {
		urls, err = s.subirImagenes(ctx, archivos)
		if err != nil {
			return dto.ProductoResponse{}, err
		}
	}

	precio, err := primitive.ParseDecimal128(req.Precio.String())
	if err != nil {
		return dto.ProductoResponse{}, err
	}

	p := &model.Producto{
		ID:          id,
		Nombre:      req.Nombre,
		Precio:      precio,
		Talle:       req.Talle,
		Descripcion: req.Descripcion,
		Stock:       req.Stock,
		Imagenes:    urls,
		Imagen:      primeraImagen(urls),
		Categoria:   existente.Categoria,
	}
	if err := s.repo.Actualizar(ctx, p); err != nil {
		return dto.ProductoResponse{}, err
	}

	s.notifier.Notify(ctx)
	return dto.FromProducto(*p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProductoNoEncontrado
		}
		return err
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ctx)
	return nil
}

// subirImagenes uploads all files concurrently and awaits them jointly: one
// failure fails the whole save and no partial URL set is committed. Results
// are reassembled by index, so the stored order always matches selection
// order regardless of which upload resolves first.
func (s *productoService) subirImagenes(ctx context.Context, archivos []Archivo) ([]string, error) {
	if len(archivos) == 0 {
		return []string{}, nil
	}

	urls := make([]string, len(archivos))
	g, gctx := errgroup.WithContext(ctx)
	for i, a := range archivos {
		i, a := i, a
		g.Go(func() error {
			url, err := s.uploader.Upload(gctx, a.Nombre, a.Datos)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

func primeraImagen(urls []string) string {
	if len(urls) > 0 {
		return urls[0]
	}
	return ""
}
