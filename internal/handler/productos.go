package handler

import (
	"net/http"

	"github.com/MaxiBlanc/Krevo-control/internal/apierror"
	"github.com/MaxiBlanc/Krevo-control/internal/dto"
	"github.com/MaxiBlanc/Krevo-control/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductosHandler exposes the product manager. Saves arrive as multipart
// forms: the modal's fields plus zero or more image files under "imagenes".
type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Listar GET /v1/productos?categoria=
func (h *ProductosHandler) Listar(c *gin.Context) {
	filter := dto.ProductoFilter{Categoria: c.Query("categoria")}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Crear POST /v1/productos (multipart)
func (h *ProductosHandler) Crear(c *gin.Context) {
	req, archivos, cerrar, ok := h.leerFormulario(c)
	if !ok {
		return
	}
	defer cerrar()

	resp, err := h.svc.Crear(c.Request.Context(), req, archivos)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Actualizar PUT /v1/productos/:id (multipart)
// Without new files the stored image gallery is preserved; the categoria
// field is ignored here — it always comes from the stored document.
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	req, archivos, cerrar, ok := h.leerFormulario(c)
	if !ok {
		return
	}
	defer cerrar()

	resp, svcErr := h.svc.Actualizar(c.Request.Context(), id, req, archivos)
	if svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /v1/productos/:id
func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if svcErr := h.svc.Eliminar(c.Request.Context(), id); svcErr != nil {
		writeServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *ProductosHandler) leerFormulario(c *gin.Context) (dto.GuardarProductoRequest, []service.Archivo, func(), bool) {
	var req dto.GuardarProductoRequest

	precio, err := decimal.NewFromString(c.PostForm("precio"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity,
			apierror.NewValidation(map[string]string{"Precio": "required"}))
		return req, nil, nil, false
	}

	req = dto.GuardarProductoRequest{
		Nombre:      c.PostForm("nombre"),
		Precio:      precio,
		Talle:       c.PostForm("talle"),
		Descripcion: c.PostForm("descripcion"),
		Stock:       leerStock(c),
		Categoria:   c.PostForm("categoria"),
	}
	if !validateStruct(c, &req) {
		return req, nil, nil, false
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulario inválido"))
		return req, nil, nil, false
	}
	archivos, cerrar, err := abrirArchivos(form.File["imagenes"])
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudieron leer las imágenes"))
		return req, nil, nil, false
	}
	return req, archivos, cerrar, true
}

// leerStock parses the stock checkbox; an absent field defaults to in-stock,
// matching how new products come into the catalog.
func leerStock(c *gin.Context) bool {
	switch c.DefaultPostForm("stock", "true") {
	case "false", "0", "off", "no":
		return false
	default:
		return true
	}
}
