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
)

var (
	ErrCategoriaNoEncontrada = errors.New("categoría no encontrada")
	ErrNombreDuplicado       = errors.New("ya existe una categoría con ese nombre")
)

// CategoriaService defines the category manager. Nombre is the join key from
// productos, so rename and delete cascade onto dependent products inside the
// repository's transaction; this layer sequences uploads and guards the
// duplicate-name invariant.
type CategoriaService interface {
	Crear(ctx context.Context, req dto.GuardarCategoriaRequest, imagen *Archivo) (dto.CategoriaResponse, error)
	Listar(ctx context.Context) ([]dto.CategoriaResponse, error)
	Actualizar(ctx context.Context, id primitive.ObjectID, req dto.GuardarCategoriaRequest, imagen *Archivo) (dto.CategoriaResponse, error)
	Eliminar(ctx context.Context, id primitive.ObjectID) error
}

type categoriaService struct {
	repo     repository.CategoriaRepository
	uploader infra.Uploader
	notifier Notifier
}

func NewCategoriaService(repo repository.CategoriaRepository, uploader infra.Uploader, notifier Notifier) CategoriaService {
	return &categoriaService{repo: repo, uploader: uploader, notifier: notifier}
}

// Crear uploads the optional image first (an upload failure writes nothing)
// and inserts the category. The caller activates the returned id.
func (s *categoriaService) Crear(ctx context.Context, req dto.GuardarCategoriaRequest, imagen *Archivo) (dto.CategoriaResponse, error) {
	if err := s.verificarNombreLibre(ctx, req.Nombre, primitive.NilObjectID); err != nil {
		return dto.CategoriaResponse{}, err
	}

	urlImagen := ""
	if imagen != nil {
		url, err := s.uploader.Upload(ctx, imagen.Nombre, imagen.Datos)
		if err != nil {
			return dto.CategoriaResponse{}, err
		}
		urlImagen = url
	}

	c := &model.Categoria{Nombre: req.Nombre, Imagen: urlImagen}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.CategoriaResponse{}, err
	}

	s.notifier.Notify(ctx)
	return dto.FromCategoria(*c), nil
}

func (s *categoriaService) Listar(ctx context.Context) ([]dto.CategoriaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		result = append(result, dto.FromCategoria(c))
	}
	return result, nil
}

// Actualizar renames the category and, through the repository transaction,
// rewrites categoria on every product that referenced the old name — readers
// never observe a half-renamed catalog.
func (s *categoriaService) Actualizar(ctx context.Context, id primitive.ObjectID, req dto.GuardarCategoriaRequest, imagen *Archivo) (dto.CategoriaResponse, error) {
	existente, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return dto.CategoriaResponse{}, ErrCategoriaNoEncontrada
		}
		return dto.CategoriaResponse{}, err
	}

	if req.Nombre != existente.Nombre {
		if err := s.verificarNombreLibre(ctx, req.Nombre, id); err != nil {
			return dto.CategoriaResponse{}, err
		}
	}

	urlImagen := existente.Imagen
	if imagen != nil {
		url, err := s.uploader.Upload(ctx, imagen.Nombre, imagen.Datos)
		if err != nil {
			return dto.CategoriaResponse{}, err
		}
		urlImagen = url
	}

	actualizada := &model.Categoria{ID: id, Nombre: req.Nombre, Imagen: urlImagen}
	if err := s.repo.Renombrar(ctx, actualizada, existente.Nombre); err != nil {
		return dto.CategoriaResponse{}, err
	}

	s.notifier.Notify(ctx)
	return dto.FromCategoria(*actualizada), nil
}

// Eliminar removes the category and all products referencing it by name in
// one transaction. Interactive confirmation belongs to the panel; this is
// the already-confirmed path.
func (s *categoriaService) Eliminar(ctx context.Context, id primitive.ObjectID) error {
	existente, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrCategoriaNoEncontrada
		}
		return err
	}

	if err := s.repo.Eliminar(ctx, id, existente.Nombre); err != nil {
		return err
	}

	s.notifier.Notify(ctx)
	return nil
}

func (s *categoriaService) verificarNombreLibre(ctx context.Context, nombre string, salvo primitive.ObjectID) error {
	existente, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil
		}
		return err
	}
	if existente.ID != salvo {
		return ErrNombreDuplicado
	}
	return nil
}
