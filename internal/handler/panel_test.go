package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MaxiBlanc/Krevo-control/internal/handler"
	"github.com/MaxiBlanc/Krevo-control/internal/model"
	"github.com/MaxiBlanc/Krevo-control/internal/realtime"
	"github.com/MaxiBlanc/Krevo-control/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Read-only repository stubs feeding the hub the panel renders from.

type categoriasDePrueba struct{ list []model.Categoria }

func (r *categoriasDePrueba) Crear(context.Context, *model.Categoria) error { return nil }
func (r *categoriasDePrueba) Listar(context.Context) ([]model.Categoria, error) {
	return r.list, nil
}
func (r *categoriasDePrueba) ObtenerPorID(context.Context, primitive.ObjectID) (*model.Categoria, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *categoriasDePrueba) ObtenerPorNombre(context.Context, string) (*model.Categoria, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *categoriasDePrueba) Renombrar(context.Context, *model.Categoria, string) error { return nil }
func (r *categoriasDePrueba) Eliminar(context.Context, primitive.ObjectID, string) error {
	return nil
}

type productosDePrueba struct{ list []model.Producto }

func (r *productosDePrueba) Crear(context.Context, *model.Producto) error { return nil }
func (r *productosDePrueba) Listar(context.Context, string) ([]model.Producto, error) {
	return r.list, nil
}
func (r *productosDePrueba) ObtenerPorID(context.Context, primitive.ObjectID) (*model.Producto, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *productosDePrueba) Actualizar(context.Context, *model.Producto) error  { return nil }
func (r *productosDePrueba) Eliminar(context.Context, primitive.ObjectID) error { return nil }

var (
	_ repository.CategoriaRepository = (*categoriasDePrueba)(nil)
	_ repository.ProductoRepository  = (*productosDePrueba)(nil)
)

func routerPanel(t *testing.T, cats []model.Categoria, prods []model.Producto) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := realtime.NewHub(&categoriasDePrueba{list: cats}, &productosDePrueba{list: prods}, nil)
	hub.Notify(context.Background())

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	r.GET("/panel", handler.NewPanelHandler(nil, hub).Panel)
	return r
}

func verPanel(r *gin.Engine, url string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func precioDePrueba(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}

func TestPanelActivaPrimeraCategoriaPorDefecto(t *testing.T) {
	r := routerPanel(t, []model.Categoria{
		{ID: primitive.NewObjectID(), Nombre: "Buzos"},
		{ID: primitive.NewObjectID(), Nombre: "Remeras"},
	}, nil)

	w := verPanel(r, "/panel")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<h2 style="display:inline">Buzos</h2>`)
}

func TestPanelActivaCategoriaDeLaQuery(t *testing.T) {
	remeras := model.Categoria{ID: primitive.NewObjectID(), Nombre: "Remeras"}
	r := routerPanel(t, []model.Categoria{
		{ID: primitive.NewObjectID(), Nombre: "Buzos"},
		remeras,
	}, []model.Producto{
		{ID: primitive.NewObjectID(), Nombre: "Remera negra", Precio: precioDePrueba(t, "8500"), Stock: true, Categoria: "Remeras"},
		{ID: primitive.NewObjectID(), Nombre: "Buzo liso", Precio: precioDePrueba(t, "19900"), Stock: true, Categoria: "Buzos"},
	})

	w := verPanel(r, "/panel?cat="+remeras.ID.Hex())
	body := w.Body.String()
	assert.Contains(t, body, `<h2 style="display:inline">Remeras</h2>`)
	assert.Contains(t, body, "Remera negra")
	assert.NotContains(t, body, "Buzo liso", "solo se listan los productos de la categoría activa")
}

func TestPanelNavegaALaCategoriaRecienCreada(t *testing.T) {
	id := primitive.NewObjectID()
	r := routerPanel(t, []model.Categoria{{ID: id, Nombre: "Remeras"}}, nil)

	// Al crear una categoría el guardado responde con su id y la vista debe
	// saltar a /panel?cat=<id> para dejarla activa, no recargar la URL vieja.
	body := verPanel(r, "/panel").Body.String()
	assert.Contains(t, body, "'/panel?cat=' + nueva.id")
	assert.Contains(t, body, "/panel?cat="+id.Hex())
}
